package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gradeyour401k/internal/domain"

	"github.com/redis/go-redis/v9"
)

// SnapshotCacheRepository holds the latest snapshot per provider and profile
type SnapshotCacheRepository interface {
	// Get returns nil on a cache miss
	Get(ctx context.Context, provider domain.Provider, profile domain.Profile) (*domain.Snapshot, error)
	Set(ctx context.Context, snapshot domain.Snapshot) error
}

type snapshotCacheRepositoryHandler struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewSnapshotCacheRepository(client *redis.Client, ttl time.Duration) SnapshotCacheRepository {
	return snapshotCacheRepositoryHandler{
		Client: client,
		TTL:    ttl,
	}
}

func snapshotCacheKey(provider domain.Provider, profile domain.Profile) string {
	return fmt.Sprintf("model:%s:%s", provider, profile)
}

func (h snapshotCacheRepositoryHandler) Get(ctx context.Context, provider domain.Provider, profile domain.Profile) (*domain.Snapshot, error) {
	res, err := h.Client.Get(ctx, snapshotCacheKey(provider, profile)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached snapshot: %w", err)
	}

	snapshot := domain.Snapshot{}
	err = json.Unmarshal([]byte(res), &snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached snapshot: %w", err)
	}

	return &snapshot, nil
}

func (h snapshotCacheRepositoryHandler) Set(ctx context.Context, snapshot domain.Snapshot) error {
	bytes, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	pipe := h.Client.Pipeline()
	pipe.Set(ctx, snapshotCacheKey(snapshot.Provider, snapshot.Profile), bytes, h.TTL)
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to cache snapshot: %w", err)
	}

	return nil
}
