package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lyralearn/workshop-backend/internal/platform/logger"
	"github.com/lyralearn/workshop-backend/internal/types"
)

type WorkshopRunRepo interface {
	Create(ctx context.Context, tx *gorm.DB, run *types.WorkshopRun) (*types.WorkshopRun, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.WorkshopRun, error)
	ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.WorkshopRun, error)
}

type workshopRunRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWorkshopRunRepo(db *gorm.DB, baseLog *logger.Logger) WorkshopRunRepo {
	repoLog := baseLog.With("repo", "WorkshopRunRepo")
	return &workshopRunRepo{db: db, log: repoLog}
}

func (r *workshopRunRepo) Create(ctx context.Context, tx *gorm.DB, run *types.WorkshopRun) (*types.WorkshopRun, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}

	if err := transaction.WithContext(ctx).Create(run).Error; err != nil {
		return nil, err
	}
	return run, nil
}

func (r *workshopRunRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.WorkshopRun, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var out types.WorkshopRun
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *workshopRunRepo) ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.WorkshopRun, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if limit <= 0 {
		limit = 50
	}

	var results []*types.WorkshopRun
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
