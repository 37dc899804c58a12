package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lyralearn/workshop-backend/internal/catalog"
	redisclient "github.com/lyralearn/workshop-backend/internal/clients/redis"
	"github.com/lyralearn/workshop-backend/internal/platform/logger"
)

type memSnapshotStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memSnapshotStore) Put(ctx context.Context, key string, blob []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = blob
	return nil
}

func (m *memSnapshotStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	if !ok {
		return nil, redisclient.ErrNotFound
	}
	return raw, nil
}

func (m *memSnapshotStore) Close() error { return nil }

func TestSnapshotRoundTrip(t *testing.T) {
	svc := NewWorkshopService(logger.NewNop(), catalog.New(), &fakeGenerator{}, nil, nil)
	snaps := NewSnapshotService(logger.NewNop(), &memSnapshotStore{}, svc)

	sess, err := svc.CreateSession(context.Background(), "carmen-performance-insights")
	if err != nil {
		t.Fatal(err)
	}
	opt := "small-team"
	if _, err := svc.ApplySelection(context.Background(), sess.ID, "team-size", SelectionUpdate{OptionID: &opt}); err != nil {
		t.Fatal(err)
	}

	saved, err := snaps.Save(context.Background(), sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if saved.WorkshopID != "carmen-performance-insights" {
		t.Fatalf("workshop=%q", saved.WorkshopID)
	}
	if len(saved.CompletedQuestions) != 1 || saved.CompletedQuestions[0] != "team-size" {
		t.Fatalf("completed=%v", saved.CompletedQuestions)
	}
	if rule, ok := saved.RulesSnapshot["challenges"]; !ok || rule.MaxSelections != 3 {
		t.Fatalf("rules snapshot missing challenge bound: %+v", saved.RulesSnapshot)
	}

	loaded, err := snaps.Load(context.Background(), sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.WorkshopID != saved.WorkshopID || len(loaded.CompletedQuestions) != 1 {
		t.Fatalf("loaded=%+v", loaded)
	}
}

func TestSnapshotLoadMissing(t *testing.T) {
	svc := NewWorkshopService(logger.NewNop(), catalog.New(), &fakeGenerator{}, nil, nil)
	snaps := NewSnapshotService(logger.NewNop(), &memSnapshotStore{}, svc)

	_, err := snaps.Load(context.Background(), uuid.New())
	if !errors.Is(err, redisclient.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestExportResourceFilename(t *testing.T) {
	svc := NewWorkshopService(logger.NewNop(), catalog.New(), &fakeGenerator{content: "Plan."}, nil, nil)
	sess := readySession(t, svc)
	if _, err := svc.Generate(context.Background(), sess.ID); err != nil {
		t.Fatal(err)
	}

	exp := NewExportService(logger.NewNop(), svc).(*exportService)
	exp.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }

	got, err := exp.Resource(sess.ID, "structured-interview-guide")
	if err != nil {
		t.Fatal(err)
	}
	if got.Filename != "structured-interview-guide-2026-03-14.txt" {
		t.Fatalf("filename=%q", got.Filename)
	}
	if got.Content == "" {
		t.Fatal("empty export content")
	}

	if _, err := exp.Resource(sess.ID, "missing-slug"); err == nil {
		t.Fatal("want error for unknown slug")
	}
}
