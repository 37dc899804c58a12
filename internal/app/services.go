package app

import (
	"fmt"

	"github.com/lyralearn/workshop-backend/internal/catalog"
	redisclient "github.com/lyralearn/workshop-backend/internal/clients/redis"
	"github.com/lyralearn/workshop-backend/internal/gateway"
	"github.com/lyralearn/workshop-backend/internal/platform/logger"
	"github.com/lyralearn/workshop-backend/internal/services"
)

type Services struct {
	Workshop services.WorkshopService
	Export   services.ExportService

	// Snapshot is nil when redis is not configured.
	Snapshot services.SnapshotService
}

func wireServices(log *logger.Logger, cfg Config, cat *catalog.Catalog, reposet Repos, snapshots redisclient.SnapshotStore) (Services, error) {
	gw, err := gateway.New(cfg.Gateway)
	if err != nil {
		return Services{}, fmt.Errorf("init gateway: %w", err)
	}

	workshop := services.NewWorkshopService(log, cat, gw, reposet.WorkshopRuns, reposet.GeneratedDocuments)

	set := Services{
		Workshop: workshop,
		Export:   services.NewExportService(log, workshop),
	}
	if snapshots != nil {
		set.Snapshot = services.NewSnapshotService(log, snapshots, workshop)
	}
	return set, nil
}
