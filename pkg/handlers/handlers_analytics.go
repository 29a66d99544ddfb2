package handlers

import (
	"net/http"

	"github.com/dugoutapps/lineup-api-go/pkg/lineup"
	"github.com/dugoutapps/lineup-api-go/pkg/models"
	"github.com/gin-gonic/gin"
)

// AnalyticsRequest carries a finished lineup plus the roster context it was
// generated for.
type AnalyticsRequest struct {
	models.GenerateInput
	Lineup models.Lineup `json:"lineup"`
}

// Analytics returns the fairness report for a finished lineup.
func (h *Handler) Analytics(c *gin.Context) {
	var input AnalyticsRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Lineup == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lineup is required"})
		return
	}

	_, attending, err := buildGenerator(&input.GenerateInput)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fairness":   lineup.Analyze(input.Lineup, attending),
		"validation": lineup.Validate(input.Lineup, attending),
	})
}
