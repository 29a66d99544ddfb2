package handlers

import (
	"net/http"
	"strings"

	"github.com/dugoutapps/lineup-api-go/pkg/lineup"
	"github.com/dugoutapps/lineup-api-go/pkg/models"
	"github.com/gin-gonic/gin"
)

// ValidateRequest is the payload for the validation endpoint: a generation
// input, optionally with a lineup to check against the league rules.
type ValidateRequest struct {
	models.GenerateInput
	Lineup models.Lineup `json:"lineup,omitempty"`
}

// ValidateInput handles the JSON-based validation request. It checks the
// input shapes (names, position labels, capability coverage) and, when a
// lineup is included, runs the full rule validation on it.
func (h *Handler) ValidateInput(c *gin.Context) {
	var input ValidateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	_, attending, err := buildGenerator(&input.GenerateInput)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	// Players with no capable position never fail generation outright,
	// they just force the fallback path. Flag them here instead.
	var uncapable []string
	for _, name := range input.Roster {
		if len(input.Capabilities[name]) == 0 {
			uncapable = append(uncapable, name)
		}
	}
	if len(uncapable) > 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "players with no capable positions: " + strings.Join(uncapable, ", "),
		})
		return
	}

	response := gin.H{
		"valid": true,
		"stats": gin.H{
			"roster_count":    len(input.Roster),
			"attending_count": len(attending),
			"sitting_slots":   sittingSlots(len(attending)),
		},
	}

	if input.Lineup != nil {
		response["lineup_validation"] = lineup.Validate(input.Lineup, attending)
	}

	c.JSON(http.StatusOK, response)
}

func sittingSlots(attending int) int {
	if attending <= models.FieldersPerInning {
		return 0
	}
	return attending - models.FieldersPerInning
}
