package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hollowmoor/soulsfight/internal/domain/game/combat"
	apperr "github.com/hollowmoor/soulsfight/internal/errors"
	"github.com/hollowmoor/soulsfight/internal/services/session"
)

// StartCombatRequest names the characters entering the fight
type StartCombatRequest struct {
	CharacterIDs []string `json:"character_ids" binding:"required"`
}

// AddParticipantRequest brings one more character into a running fight
type AddParticipantRequest struct {
	CharacterID string `json:"character_id" binding:"required"`
}

// DelayTurnRequest pushes the actor's turn to the end of the round
type DelayTurnRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
}

// ApplyEffectRequest attaches a status effect to a participant
type ApplyEffectRequest struct {
	ParticipantID string        `json:"participant_id" binding:"required"`
	Effect        combat.Effect `json:"effect" binding:"required"`
}

// GetCombatStatus returns the full session snapshot
func (h *Handler) GetCombatStatus(c *gin.Context) {
	snap, err := h.sessions.GetStatus(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// StartCombat resolves the named characters and opens a new session
func (h *Handler) StartCombat(c *gin.Context) {
	var req StartCombatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "invalid request body"))
		return
	}
	if len(req.CharacterIDs) == 0 {
		writeError(c, apperr.Validation("at least one character ID is required"))
		return
	}

	ctx := c.Request.Context()
	participants := make([]*combat.Participant, 0, len(req.CharacterIDs))
	for _, id := range req.CharacterIDs {
		p, err := h.characters.Combatant(ctx, id)
		if err != nil {
			writeError(c, err)
			return
		}
		participants = append(participants, p)
	}

	id, err := h.sessions.StartCombat(ctx, participants)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"combat_id": id})
}

// EndCombat closes the running session
func (h *Handler) EndCombat(c *gin.Context) {
	if err := h.sessions.EndCombat(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "combat ended"})
}

// GetCurrentTurn reports whose turn it is
func (h *Handler) GetCurrentTurn(c *gin.Context) {
	snap, err := h.sessions.GetStatus(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"current_participant": snap.CurrentParticipant,
		"round":               snap.Round,
		"turn_index":          snap.TurnIndex,
	})
}

// EndTurn advances to the next participant
func (h *Handler) EndTurn(c *gin.Context) {
	info, err := h.sessions.EndTurn(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// DelayTurn moves the actor to the end of the current round
func (h *Handler) DelayTurn(c *gin.Context) {
	var req DelayTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "invalid request body"))
		return
	}

	if err := h.sessions.DelayTurn(c.Request.Context(), req.ActorID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "turn delayed"})
}

// ListParticipants returns every participant in the session
func (h *Handler) ListParticipants(c *gin.Context) {
	snap, err := h.sessions.GetStatus(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"participants": snap.Participants})
}

// GetParticipant returns one participant's combat state
func (h *Handler) GetParticipant(c *gin.Context) {
	id := c.Param("id")

	snap, err := h.sessions.GetStatus(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	for _, p := range snap.Participants {
		if p.ID == id {
			c.JSON(http.StatusOK, p)
			return
		}
	}
	writeError(c, apperr.NotFoundf("participant '%s' not found", id))
}

// AddParticipant brings a character into the running fight
func (h *Handler) AddParticipant(c *gin.Context) {
	var req AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "invalid request body"))
		return
	}

	ctx := c.Request.Context()
	p, err := h.characters.Combatant(ctx, req.CharacterID)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.sessions.AddParticipant(ctx, p); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "participant added"})
}

// RemoveParticipant drops a participant from the fight
func (h *Handler) RemoveParticipant(c *gin.Context) {
	if err := h.sessions.RemoveParticipant(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "participant removed"})
}

// ApplyEffect attaches a status effect to a participant
func (h *Handler) ApplyEffect(c *gin.Context) {
	var req ApplyEffectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "invalid request body"))
		return
	}

	effect := req.Effect
	if err := h.sessions.ApplyEffect(c.Request.Context(), req.ParticipantID, &effect); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "effect applied"})
}

// RemoveEffect detaches a named effect from a participant
func (h *Handler) RemoveEffect(c *gin.Context) {
	participantID := c.Param("participant_id")
	effectName := c.Param("effect_name")

	if err := h.sessions.RemoveEffect(c.Request.Context(), participantID, effectName); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "effect removed"})
}

// UpdateEffects runs the round's effect tick and reports expirations
func (h *Handler) UpdateEffects(c *gin.Context) {
	expired, err := h.sessions.UpdateEffects(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if expired == nil {
		expired = []combat.ExpiredEffect{}
	}
	c.JSON(http.StatusOK, gin.H{"expired_effects": expired})
}

// PerformAction resolves one combat action for the current actor
func (h *Handler) PerformAction(c *gin.Context) {
	var req session.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "invalid request body"))
		return
	}

	result, err := h.sessions.PerformAction(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
