package app

import (
	"github.com/lyralearn/workshop-backend/internal/catalog"
	"github.com/lyralearn/workshop-backend/internal/handlers"
)

type Handlers struct {
	Workshop   *handlers.WorkshopHandler
	Session    *handlers.SessionHandler
	Generation *handlers.GenerationHandler
	Snapshot   *handlers.SnapshotHandler
	Run        *handlers.RunHandler
}

func wireHandlers(cat *catalog.Catalog, serviceset Services, reposet Repos) Handlers {
	h := Handlers{
		Workshop:   handlers.NewWorkshopHandler(cat),
		Session:    handlers.NewSessionHandler(serviceset.Workshop),
		Generation: handlers.NewGenerationHandler(serviceset.Workshop, serviceset.Export),
	}
	if serviceset.Snapshot != nil {
		h.Snapshot = handlers.NewSnapshotHandler(serviceset.Snapshot)
	}
	if reposet.WorkshopRuns != nil && reposet.GeneratedDocuments != nil {
		h.Run = handlers.NewRunHandler(reposet.WorkshopRuns, reposet.GeneratedDocuments)
	}
	return h
}
