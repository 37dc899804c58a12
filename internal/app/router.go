package app

import (
	"github.com/gin-gonic/gin"

	"github.com/lyralearn/workshop-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:       "workshop-backend",
		CORSOrigins:       cfg.CORSOrigins,
		WorkshopHandler:   handlerset.Workshop,
		SessionHandler:    handlerset.Session,
		GenerationHandler: handlerset.Generation,
		SnapshotHandler:   handlerset.Snapshot,
		RunHandler:        handlerset.Run,
	})
}
