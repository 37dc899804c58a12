package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lyralearn/workshop-backend/internal/platform/logger"
	"github.com/lyralearn/workshop-backend/internal/types"
)

type GeneratedDocumentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, doc *types.GeneratedDocument) (*types.GeneratedDocument, error)
	GetByRunID(ctx context.Context, tx *gorm.DB, runID uuid.UUID) (*types.GeneratedDocument, error)
}

type generatedDocumentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGeneratedDocumentRepo(db *gorm.DB, baseLog *logger.Logger) GeneratedDocumentRepo {
	repoLog := baseLog.With("repo", "GeneratedDocumentRepo")
	return &generatedDocumentRepo{db: db, log: repoLog}
}

func (r *generatedDocumentRepo) Create(ctx context.Context, tx *gorm.DB, doc *types.GeneratedDocument) (*types.GeneratedDocument, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}

	if err := transaction.WithContext(ctx).Create(doc).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *generatedDocumentRepo) GetByRunID(ctx context.Context, tx *gorm.DB, runID uuid.UUID) (*types.GeneratedDocument, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var out types.GeneratedDocument
	if err := transaction.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("created_at DESC").
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
