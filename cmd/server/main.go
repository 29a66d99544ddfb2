package main

import (
	"net/http"
	"os"

	"github.com/dugoutapps/lineup-api-go/pkg/auth"
	"github.com/dugoutapps/lineup-api-go/pkg/database"
	"github.com/dugoutapps/lineup-api-go/pkg/handlers"
	"github.com/dugoutapps/lineup-api-go/pkg/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	limiter := ratelimit.NewFromEnv()
	h := &handlers.Handler{DB: db, Limiter: limiter}

	r := gin.Default()

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Lineup Scheduler API",
			"version": "1.3.0",
		})
	})

	r.POST("/admin/login", h.Login)

	// Admin Endpoints
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	// Lineup Endpoints
	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/lineup", h.GenerateLineup)
		api.POST("/lineup/csv", h.GenerateLineupCSV)
		api.POST("/validate", h.ValidateInput)
		api.POST("/analytics", h.Analytics)
		api.POST("/share", h.ShareSession)
		api.GET("/share/:token", h.GetSharedSession)
		api.GET("/usage", h.GetMyUsage)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	logrus.WithFields(logrus.Fields{
		"port":       port,
		"rate_limit": limiter.Enabled(),
	}).Info("Server starting")
	if err := r.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("could not run server")
	}
}
