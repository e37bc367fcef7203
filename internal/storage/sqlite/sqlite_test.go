package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("Get on absent slot returns nil", func(t *testing.T) {
		value, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		require.Nil(t, value)
	})

	t.Run("Set then Get round-trips", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "greeting", []byte(`"hello"`)))

		value, err := store.Get(ctx, "greeting")
		require.NoError(t, err)
		require.Equal(t, []byte(`"hello"`), value)
	})

	t.Run("Set overwrites previous payload", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "counter", []byte("1")))
		require.NoError(t, store.Set(ctx, "counter", []byte("2")))

		value, err := store.Get(ctx, "counter")
		require.NoError(t, err)
		require.Equal(t, []byte("2"), value)
	})

	t.Run("Delete removes slot", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "doomed", []byte("x")))
		require.NoError(t, store.Delete(ctx, "doomed"))

		value, err := store.Get(ctx, "doomed")
		require.NoError(t, err)
		require.Nil(t, value)
	})

	t.Run("Delete on absent slot is not an error", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "never-written"))
	})
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	store, err := New(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "app_users", []byte("[]")))
	require.NoError(t, store.Close())

	reopened, err := New(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, "app_users")
	require.NoError(t, err)
	require.Equal(t, []byte("[]"), value)
}
