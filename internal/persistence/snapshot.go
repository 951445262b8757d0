package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/community-engage/internal/state"
)

const snapshotKeyPrefix = "state:"

// RedisSnapshotStore persists one JSON-serialized state snapshot per user
// under a redis key. It implements state.SnapshotStore.
type RedisSnapshotStore struct {
	client *redis.Client
}

// NewRedisSnapshotStore builds the adapter over a connected client.
func NewRedisSnapshotStore(r *Redis) *RedisSnapshotStore {
	if r == nil {
		return &RedisSnapshotStore{}
	}
	return &RedisSnapshotStore{client: r.Client}
}

// Load returns the stored snapshot for a user, reporting absence without error.
func (s *RedisSnapshotStore) Load(ctx context.Context, userID string) (*state.State, bool, error) {
	if s.client == nil {
		return nil, false, nil
	}
	raw, err := s.client.Get(ctx, snapshotKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load snapshot: %w", err)
	}

	var snapshot state.State
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snapshot, true, nil
}

// Save persists the snapshot for a user, replacing any previous one.
func (s *RedisSnapshotStore) Save(ctx context.Context, userID string, snapshot *state.State) error {
	if s.client == nil || snapshot == nil {
		return nil
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.client.Set(ctx, snapshotKeyPrefix+userID, raw, 0).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
