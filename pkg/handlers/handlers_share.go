package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dugoutapps/lineup-api-go/pkg/database"
	"github.com/dugoutapps/lineup-api-go/pkg/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShareSession saves a full session snapshot under a fresh token. The
// state blob round-trips opaquely; only its in-memory shape is validated.
func (h *Handler) ShareSession(c *gin.Context) {
	var state session.State
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blob, err := json.Marshal(state)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not encode state"})
		return
	}

	shared := database.SharedSession{
		Token: uuid.New().String(),
		State: string(blob),
	}
	if err := h.DB.Create(&shared).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save shared session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": shared.Token})
}

// GetSharedSession returns the session snapshot saved under a token.
func (h *Handler) GetSharedSession(c *gin.Context) {
	token := c.Param("token")

	var shared database.SharedSession
	if err := h.DB.Where("token = ?", token).First(&shared).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shared session not found"})
		return
	}

	var state session.State
	if err := json.Unmarshal([]byte(shared.State), &state); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored state is corrupt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      shared.Token,
		"state":      state,
		"created_at": shared.CreatedAt,
	})
}
