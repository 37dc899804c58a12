package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lyralearn/workshop-backend/internal/catalog"
	redisclient "github.com/lyralearn/workshop-backend/internal/clients/redis"
	"github.com/lyralearn/workshop-backend/internal/platform/logger"
	"github.com/lyralearn/workshop-backend/internal/selection"
)

const snapshotKeyPrefix = "workshop:snapshot:"

// snapshotTTL keeps abandoned sessions from accumulating forever.
const snapshotTTL = 30 * 24 * time.Hour

// CategoryRule is the selection rule in force when a snapshot was
// taken, so older snapshots can be interpreted after catalog changes.
type CategoryRule struct {
	Kind          catalog.Kind `json:"kind"`
	MaxSelections int          `json:"max_selections,omitempty"`
	Min           int          `json:"min,omitempty"`
	Max           int          `json:"max,omitempty"`
}

// Snapshot is the persisted progress blob for one session.
type Snapshot struct {
	Timestamp          time.Time               `json:"timestamp"`
	WorkshopID         string                  `json:"workshop_id"`
	Answers            map[string]any          `json:"answers"`
	CompletedQuestions []string                `json:"completed_questions"`
	RulesSnapshot      map[string]CategoryRule `json:"rules_snapshot"`
}

type SnapshotService interface {
	Save(ctx context.Context, sessionID uuid.UUID) (*Snapshot, error)
	Load(ctx context.Context, sessionID uuid.UUID) (*Snapshot, error)
}

type snapshotService struct {
	log      *logger.Logger
	store    redisclient.SnapshotStore
	sessions WorkshopService
}

func NewSnapshotService(log *logger.Logger, store redisclient.SnapshotStore, sessions WorkshopService) SnapshotService {
	return &snapshotService{
		log:      log.With("service", "SnapshotService"),
		store:    store,
		sessions: sessions,
	}
}

func (s *snapshotService) Save(ctx context.Context, sessionID uuid.UUID) (*Snapshot, error) {
	w, sel, err := s.sessions.Selections(sessionID)
	if err != nil {
		return nil, err
	}

	snap := buildSnapshot(w, sel)
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.store.Put(ctx, snapshotKey(sessionID), raw, snapshotTTL); err != nil {
		return nil, err
	}
	s.log.Info("Snapshot saved", "session_id", sessionID, "completed", len(snap.CompletedQuestions))
	return snap, nil
}

func (s *snapshotService) Load(ctx context.Context, sessionID uuid.UUID) (*Snapshot, error) {
	raw, err := s.store.Get(ctx, snapshotKey(sessionID))
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

func snapshotKey(sessionID uuid.UUID) string {
	return snapshotKeyPrefix + sessionID.String()
}

func buildSnapshot(w *catalog.Workshop, sel map[string]selection.Selection) *Snapshot {
	snap := &Snapshot{
		Timestamp:          time.Now().UTC(),
		WorkshopID:         w.ID,
		Answers:            make(map[string]any, len(sel)),
		CompletedQuestions: []string{},
		RulesSnapshot:      make(map[string]CategoryRule, len(w.Categories)),
	}
	for i := range w.Categories {
		cat := &w.Categories[i]
		snap.RulesSnapshot[cat.ID] = CategoryRule{
			Kind:          cat.Kind,
			MaxSelections: cat.MaxSelections,
			Min:           cat.Min,
			Max:           cat.Max,
		}
		cur, ok := sel[cat.ID]
		if !ok {
			continue
		}
		snap.Answers[cat.ID] = cur
		if !cur.Empty() {
			snap.CompletedQuestions = append(snap.CompletedQuestions, cat.ID)
		}
	}
	return snap
}
