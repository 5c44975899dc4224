package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hollowmoor/soulsfight/internal/domain/character"
	apperr "github.com/hollowmoor/soulsfight/internal/errors"
)

// EquipRequest places a catalog item into an equipment slot
type EquipRequest struct {
	ItemName string         `json:"item_name" binding:"required"`
	Slot     character.Slot `json:"slot" binding:"required"`
}

// ListCharacters returns every stored character
func (h *Handler) ListCharacters(c *gin.Context) {
	chars, err := h.characters.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"characters": chars})
}

// ListCharacterIDs returns every stored character ID
func (h *Handler) ListCharacterIDs(c *gin.Context) {
	ids, err := h.characters.ListIDs(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"ids": ids})
}

// GetCharacter returns one character by ID
func (h *Handler) GetCharacter(c *gin.Context) {
	char, err := h.characters.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, char)
}

// CreateCharacter validates and stores a new character
func (h *Handler) CreateCharacter(c *gin.Context) {
	var char character.Character
	if err := c.ShouldBindJSON(&char); err != nil {
		writeError(c, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "invalid request body"))
		return
	}

	created, err := h.characters.Create(c.Request.Context(), &char)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateCharacter overwrites an existing character
func (h *Handler) UpdateCharacter(c *gin.Context) {
	var char character.Character
	if err := c.ShouldBindJSON(&char); err != nil {
		writeError(c, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "invalid request body"))
		return
	}
	char.ID = c.Param("id")

	updated, err := h.characters.Update(c.Request.Context(), &char)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCharacter removes a character
func (h *Handler) DeleteCharacter(c *gin.Context) {
	id := c.Param("id")
	if err := h.characters.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "character deleted"})
}

// EquipItem places a catalog item into one of the character's slots
func (h *Handler) EquipItem(c *gin.Context) {
	var req EquipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "invalid request body"))
		return
	}

	char, err := h.characters.Equip(c.Request.Context(), c.Param("id"), req.ItemName, req.Slot)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, char)
}
