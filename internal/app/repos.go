package app

import (
	"gorm.io/gorm"

	"github.com/lyralearn/workshop-backend/internal/platform/logger"
	"github.com/lyralearn/workshop-backend/internal/repos"
)

type Repos struct {
	WorkshopRuns       repos.WorkshopRunRepo
	GeneratedDocuments repos.GeneratedDocumentRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		WorkshopRuns:       repos.NewWorkshopRunRepo(db, log),
		GeneratedDocuments: repos.NewGeneratedDocumentRepo(db, log),
	}
}
