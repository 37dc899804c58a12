package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/lyralearn/workshop-backend/internal/handlers"
	"github.com/lyralearn/workshop-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName string
	CORSOrigins []string

	WorkshopHandler   *handlers.WorkshopHandler
	SessionHandler    *handlers.SessionHandler
	GenerationHandler *handlers.GenerationHandler
	SnapshotHandler   *handlers.SnapshotHandler

	// RunHandler is nil when no database is configured.
	RunHandler *handlers.RunHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(otelgin.Middleware(cfg.ServiceName))

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Workshop catalog
		api.GET("/workshops", cfg.WorkshopHandler.List)
		api.GET("/workshops/:workshopID", cfg.WorkshopHandler.Get)

		// Sessions
		api.POST("/sessions", cfg.SessionHandler.Create)
		api.GET("/sessions/:sessionID", cfg.SessionHandler.Get)
		api.PUT("/sessions/:sessionID/selections/:categoryID", cfg.SessionHandler.ApplySelection)
		api.PUT("/sessions/:sessionID/rankings/:categoryID/move", cfg.SessionHandler.MoveCard)
		api.GET("/sessions/:sessionID/prompt", cfg.SessionHandler.Preview)
		api.POST("/sessions/:sessionID/reset", cfg.SessionHandler.Reset)

		// Generation
		api.POST("/sessions/:sessionID/generate", cfg.GenerationHandler.Generate)
		api.GET("/sessions/:sessionID/document", cfg.GenerationHandler.Document)
		api.GET("/sessions/:sessionID/document/export", cfg.GenerationHandler.ExportDocument)
		api.GET("/sessions/:sessionID/resources/:slug/export", cfg.GenerationHandler.ExportResource)

		// Snapshots
		if cfg.SnapshotHandler != nil {
			api.PUT("/sessions/:sessionID/snapshot", cfg.SnapshotHandler.Save)
			api.GET("/sessions/:sessionID/snapshot", cfg.SnapshotHandler.Load)
		}

		// History
		if cfg.RunHandler != nil {
			api.GET("/runs", cfg.RunHandler.List)
		}
	}

	return router
}
