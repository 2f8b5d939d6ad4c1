package persistence

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// Snapshot keys for the two collections.
const (
	TaskSnapshotKey   = "deskboard-tasks"
	TicketSnapshotKey = "deskboard-tickets"
)

// ErrNoSnapshot indicates no snapshot has been written for the key yet.
var ErrNoSnapshot = errors.New("snapshot not found")

// SnapshotStore persists opaque JSON snapshots keyed by collection name.
// It is a cache of convenience, not a system of record: callers treat
// Save failures as best-effort.
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// FileSnapshotStore keeps one JSON file per key under a data directory.
type FileSnapshotStore struct {
	dir string
}

// NewFileSnapshotStore creates the data directory if needed.
func NewFileSnapshotStore(dir string) (*FileSnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}
	return &FileSnapshotStore{dir: dir}, nil
}

// Load reads the snapshot file for the key.
func (s *FileSnapshotStore) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("reading snapshot %q: %w", key, err)
	}
	return data, nil
}

// Save writes the snapshot atomically so a crash never leaves a torn file.
func (s *FileSnapshotStore) Save(_ context.Context, key string, data []byte) error {
	if err := atomic.WriteFile(s.path(key), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing snapshot %q: %w", key, err)
	}
	return nil
}

// Ping verifies the data directory is still accessible.
func (s *FileSnapshotStore) Ping(_ context.Context) error {
	_, err := os.Stat(s.dir)
	return err
}

func (s *FileSnapshotStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
