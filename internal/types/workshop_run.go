package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WorkshopRun records one completed generation: the workshop, the
// prompt snapshot that was sent, and the selections it was built from.
type WorkshopRun struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID  uuid.UUID      `gorm:"type:uuid;index;not null;column:session_id" json:"session_id"`
	WorkshopID string         `gorm:"not null;index;column:workshop_id" json:"workshop_id"`
	Character  string         `gorm:"not null;column:character" json:"character"`
	Prompt     string         `gorm:"type:text;not null;column:prompt" json:"prompt"`
	Selections datatypes.JSON `gorm:"column:selections" json:"selections"`
	Status     string         `gorm:"not null;column:status" json:"status"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (WorkshopRun) TableName() string {
	return "workshop_run"
}
