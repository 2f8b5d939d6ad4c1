package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSnapshotStoreRoundTrip(t *testing.T) {
	store, err := NewFileSnapshotStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	_, err = store.Load(ctx, TaskSnapshotKey)
	assert.ErrorIs(t, err, ErrNoSnapshot)

	payload := []byte(`[{"id":"task-1"}]`)
	require.NoError(t, store.Save(ctx, TaskSnapshotKey, payload))

	loaded, err := store.Load(ctx, TaskSnapshotKey)
	require.NoError(t, err)
	assert.Equal(t, payload, loaded)

	// Keys are independent entries.
	_, err = store.Load(ctx, TicketSnapshotKey)
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestFileSnapshotStoreOverwrite(t *testing.T) {
	store, err := NewFileSnapshotStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, TaskSnapshotKey, []byte(`["old"]`)))
	require.NoError(t, store.Save(ctx, TaskSnapshotKey, []byte(`["new"]`)))

	loaded, err := store.Load(ctx, TaskSnapshotKey)
	require.NoError(t, err)
	assert.Equal(t, []byte(`["new"]`), loaded)
}

func TestFileSnapshotStorePing(t *testing.T) {
	store, err := NewFileSnapshotStore(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, store.Ping(context.Background()))
}
