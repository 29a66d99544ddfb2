package handler

import (
	"net/http"

	"github.com/dugoutapps/lineup-api-go/pkg/auth"
	"github.com/dugoutapps/lineup-api-go/pkg/database"
	"github.com/dugoutapps/lineup-api-go/pkg/handlers"
	"github.com/dugoutapps/lineup-api-go/pkg/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	// Initialize DB
	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	h := &handlers.Handler{DB: db, Limiter: ratelimit.NewFromEnv()}

	// Initialize Gin
	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Lineup Scheduler API (Vercel)",
			"version": "1.3.0",
		})
	})

	r.POST("/admin/login", h.Login)

	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

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
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
