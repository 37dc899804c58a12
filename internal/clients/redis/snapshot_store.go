package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/lyralearn/workshop-backend/internal/platform/logger"
)

// ErrNotFound signals a missing snapshot key.
var ErrNotFound = errors.New("snapshot not found")

// SnapshotStore persists opaque session snapshot blobs.
type SnapshotStore interface {
	Put(ctx context.Context, key string, blob []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Close() error
}

type snapshotStore struct {
	log *logger.Logger
	rdb *goredis.Client
}

func NewSnapshotStore(log *logger.Logger) (SnapshotStore, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &snapshotStore{
		log: log.With("service", "RedisSnapshotStore"),
		rdb: rdb,
	}, nil
}

func (s *snapshotStore) Put(ctx context.Context, key string, blob []byte, ttl time.Duration) error {
	if s == nil || s.rdb == nil {
		return fmt.Errorf("snapshot store not initialized")
	}
	if err := s.rdb.Set(ctx, key, blob, ttl).Err(); err != nil {
		s.log.Error("Failed to store snapshot", "key", key, "error", err)
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *snapshotStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s == nil || s.rdb == nil {
		return nil, fmt.Errorf("snapshot store not initialized")
	}
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.log.Error("Failed to load snapshot", "key", key, "error", err)
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return raw, nil
}

func (s *snapshotStore) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}
