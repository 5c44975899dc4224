// Package api exposes the combat engine and character store over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	charsvc "github.com/hollowmoor/soulsfight/internal/services/character"
	"github.com/hollowmoor/soulsfight/internal/services/session"
)

// Handler carries the services the HTTP layer delegates to
type Handler struct {
	sessions   session.Service
	characters charsvc.Service
}

// HandlerConfig holds the dependencies for the HTTP handler
type HandlerConfig struct {
	Sessions   session.Service
	Characters charsvc.Service
}

// NewHandler creates a new HTTP handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil {
		panic("HandlerConfig cannot be nil")
	}
	if cfg.Sessions == nil {
		panic("session service cannot be nil")
	}
	if cfg.Characters == nil {
		panic("character service cannot be nil")
	}
	return &Handler{
		sessions:   cfg.Sessions,
		characters: cfg.Characters,
	}
}

// RegisterRoutes attaches every endpoint to the router
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)

	api := router.Group("/api")

	combat := api.Group("/combat")
	{
		combat.GET("/status", h.GetCombatStatus)
		combat.POST("/start", h.StartCombat)
		combat.POST("/end", h.EndCombat)
		combat.GET("/turn", h.GetCurrentTurn)
		combat.POST("/turn/end", h.EndTurn)
		combat.POST("/turn/delay", h.DelayTurn)
		combat.GET("/participants", h.ListParticipants)
		combat.GET("/participant/:id", h.GetParticipant)
		combat.POST("/participant/add", h.AddParticipant)
		combat.DELETE("/participant/:id", h.RemoveParticipant)
		combat.POST("/effect/apply", h.ApplyEffect)
		combat.DELETE("/effect/:participant_id/:effect_name", h.RemoveEffect)
		combat.POST("/effects/update", h.UpdateEffects)
		combat.POST("/action", h.PerformAction)
	}

	chars := api.Group("/characters")
	{
		chars.GET("", h.ListCharacters)
		chars.GET("/ids", h.ListCharacterIDs)
		chars.GET("/:id", h.GetCharacter)
		chars.POST("", h.CreateCharacter)
		chars.PUT("/:id", h.UpdateCharacter)
		chars.DELETE("/:id", h.DeleteCharacter)
		chars.PATCH("/:id/equip", h.EquipItem)
	}
}

// Health reports service liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
