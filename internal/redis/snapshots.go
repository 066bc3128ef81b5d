package redisclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/pawmate/petcare-backend/internal/snapshot"
)

// SnapshotStore keeps full JSON state snapshots in Redis, one key per
// state container ("appointment-storage", "cart-storage").
type SnapshotStore struct {
	client *redis.Client
}

func NewSnapshotStore(client *redis.Client) *SnapshotStore {
	return &SnapshotStore{client: client}
}

func (s *SnapshotStore) Load(ctx context.Context, name string) ([]byte, error) {
	b, err := s.client.Get(ctx, name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, snapshot.ErrNotFound
		}
		return nil, fmt.Errorf("load snapshot %s: %w", name, err)
	}
	return b, nil
}

func (s *SnapshotStore) Save(ctx context.Context, name string, data []byte) error {
	if err := s.client.Set(ctx, name, data, 0).Err(); err != nil {
		return fmt.Errorf("save snapshot %s: %w", name, err)
	}
	return nil
}
