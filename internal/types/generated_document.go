package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GeneratedDocument stores the synthesized strategy for a run.
type GeneratedDocument struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	RunID            uuid.UUID      `gorm:"type:uuid;index;not null;column:run_id" json:"run_id"`
	ExecutiveSummary string         `gorm:"type:text;not null;column:executive_summary" json:"executive_summary"`
	Payload          datatypes.JSON `gorm:"column:payload" json:"payload"`
	CreatedAt        time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (GeneratedDocument) TableName() string {
	return "generated_document"
}
