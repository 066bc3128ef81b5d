package snapshot

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("snapshot not found")
)

// Store persists named JSON state snapshots. Each state container owns
// exactly one name and always writes its full serialized state under it.
type Store interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
}
