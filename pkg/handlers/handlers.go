package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dugoutapps/lineup-api-go/pkg/auth"
	"github.com/dugoutapps/lineup-api-go/pkg/database"
	"github.com/dugoutapps/lineup-api-go/pkg/lineup"
	"github.com/dugoutapps/lineup-api-go/pkg/models"
	"github.com/dugoutapps/lineup-api-go/pkg/ratelimit"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Handler contains dependencies for the route handlers
type Handler struct {
	DB      *gorm.DB
	Limiter *ratelimit.Limiter
}

// AuthMiddleware verifies the JWT token for admin routes
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Strip "Bearer " if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}

// APIKeyMiddleware verifies the API key for lineup routes using HMAC and
// enforces the key's daily request budget when redis is configured.
func (h *Handler) APIKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Authorization")
		if key == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "API Key required"})
			c.Abort()
			return
		}

		if len(key) > 7 && key[:7] == "Bearer " {
			key = key[7:]
		}

		userID, err := auth.VerifyHMACKey(key)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API Key signature"})
			c.Abort()
			return
		}

		// Fetch or create API key record to track usage
		var apiKey database.APIKey
		h.DB.Where(database.APIKey{Key: key}).FirstOrCreate(&apiKey, database.APIKey{
			Key:       key,
			Name:      userID,
			RateLimit: 10000,
		})

		if h.Limiter != nil && !h.Limiter.Allow(c.Request.Context(), apiKey.ID, apiKey.RateLimit) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Daily rate limit exceeded"})
			c.Abort()
			return
		}

		c.Set("apiKey", &apiKey)
		c.Set("userID", userID)
		c.Next()
	}
}

// buildGenerator validates a generation input and constructs the generator.
func buildGenerator(input *models.GenerateInput) (*lineup.Generator, []string, error) {
	if len(input.Roster) == 0 {
		return nil, nil, fmt.Errorf("at least one player is required")
	}

	seen := make(map[string]bool, len(input.Roster))
	for _, name := range input.Roster {
		if name == "" {
			return nil, nil, fmt.Errorf("player names cannot be empty")
		}
		if seen[name] {
			return nil, nil, fmt.Errorf("duplicate player name: %s", name)
		}
		seen[name] = true
	}

	capabilities := make(models.Capabilities, len(input.Capabilities))
	for player, labels := range input.Capabilities {
		if !seen[player] {
			return nil, nil, fmt.Errorf("capabilities refer to unknown player: %s", player)
		}
		positions := make([]models.Position, 0, len(labels))
		for _, label := range labels {
			if !models.ValidPosition(label) {
				return nil, nil, fmt.Errorf("unknown position %q for player %s", label, player)
			}
			positions = append(positions, models.Position(label))
		}
		capabilities[player] = positions
	}

	attendance := make(models.Attendance, len(input.Attendance))
	for player, attending := range input.Attendance {
		if !seen[player] {
			return nil, nil, fmt.Errorf("attendance refers to unknown player: %s", player)
		}
		attendance[player] = attending
	}

	gen := lineup.NewGenerator(input.Roster, capabilities, attendance)
	return gen, gen.Attending(), nil
}

// GenerateLineup handles the JSON-based lineup generation request
func (h *Handler) GenerateLineup(c *gin.Context) {
	var input models.GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gen, attending, err := buildGenerator(&input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := gen.Generate()

	// Record usage
	h.RecordUsage(c, 1, len(attending))

	c.JSON(http.StatusOK, models.GenerateResponse{
		Lineup:     result.Lineup,
		Validation: result.Validation,
		Attempts:   result.Attempts,
		Fallback:   result.Fallback,
		Fairness:   lineup.Analyze(result.Lineup, attending),
	})
}

// RecordUsage records API usage in the database using an efficient upsert
func (h *Handler) RecordUsage(c *gin.Context, lineupCount, playerCount int) {
	apiKeyRaw, exists := c.Get("apiKey")
	if !exists {
		return
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	today := time.Now().Format("2006-01-02")

	// Use OnConflict for a single-query upsert (supported by both Postgres and SQLite)
	h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"request_count": gorm.Expr("request_count + ?", 1),
			"total_lineups": gorm.Expr("total_lineups + ?", lineupCount),
			"total_players": gorm.Expr("total_players + ?", playerCount),
		}),
	}).Create(&database.APIUsage{
		KeyID:        apiKey.ID,
		Date:         today,
		RequestCount: 1,
		TotalLineups: lineupCount,
		TotalPlayers: playerCount,
	})
}

// Login handles admin login
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user database.MasterUser
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.CreateToken(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// GenerateKey creates a new API key using the HMAC strategy
func (h *Handler) GenerateKey(c *gin.Context) {
	var req struct {
		Name      string `json:"name"`
		RateLimit int    `json:"rate_limit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if req.RateLimit == 0 {
		req.RateLimit = 10000
	}

	// Generate key using HMAC
	key := auth.GenerateHMACKey(req.Name)

	// Create preview (e.g., sk_...****)
	preview := ""
	if len(key) > 8 {
		preview = key[:3] + "..." + key[len(key)-4:]
	} else {
		preview = "****"
	}

	apiKey := database.APIKey{
		Key:        key,
		Name:       req.Name,
		KeyPreview: preview,
		RateLimit:  req.RateLimit,
	}

	if err := h.DB.Create(&apiKey).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create key record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name": req.Name,
		"key":  key,
	})
}

// ListKeys returns all API keys
func (h *Handler) ListKeys(c *gin.Context) {
	var keys []database.APIKey
	h.DB.Find(&keys)
	c.JSON(http.StatusOK, gin.H{"keys": keys})
}

// RevokeKey deletes an API key
func (h *Handler) RevokeKey(c *gin.Context) {
	id := c.Param("id")
	if err := h.DB.Delete(&database.APIKey{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete key"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Key revoked"})
}

// UpdateKeyLimit updates the rate limit for a key
func (h *Handler) UpdateKeyLimit(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		RateLimit int `json:"rate_limit" form:"rate_limit"`
	}

	// Try JSON first, then Form/Query
	if err := c.ShouldBindJSON(&req); err != nil {
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rate_limit is required"})
			return
		}
	}

	if req.RateLimit == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rate limit"})
		return
	}

	if err := h.DB.Model(&database.APIKey{}).Where("id = ?", id).Update("rate_limit", req.RateLimit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update key limit"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rate limit updated successfully"})
}

// GetUsage returns usage stats for a key
func (h *Handler) GetUsage(c *gin.Context) {
	id := c.Param("id")
	var usage []database.APIUsage
	h.DB.Where("key_id = ?", id).Order("date desc").Limit(30).Find(&usage)
	c.JSON(http.StatusOK, gin.H{"usage": usage})
}
