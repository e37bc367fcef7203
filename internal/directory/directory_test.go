package directory

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"watchshelf/internal/auth"
	"watchshelf/internal/models"
	"watchshelf/internal/storage"
	"watchshelf/internal/storage/sqlite"
)

func newTestDirectory(t *testing.T) (*Directory, storage.Store) {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	dir, err := Load(context.Background(), store, auth.PlaintextVerifier{}, slog.Default())
	require.NoError(t, err)
	return dir, store
}

func addUser(t *testing.T, dir *Directory, email, password, name string) models.User {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err)
	user, err := dir.Add(context.Background(), models.User{
		ID:       id.String(),
		Email:    email,
		Password: password,
		Name:     name,
	})
	require.NoError(t, err)
	return user
}

func TestDirectoryAddAndFind(t *testing.T) {
	dir, _ := newTestDirectory(t)

	created := addUser(t, dir, "a@x.com", "secret", "A")
	require.NotEmpty(t, created.ID)

	t.Run("find with matching credentials", func(t *testing.T) {
		found := dir.FindByEmailAndPassword("a@x.com", "secret")
		require.NotNil(t, found)
		require.Equal(t, created.ID, found.ID)
	})

	t.Run("wrong password finds nothing", func(t *testing.T) {
		require.Nil(t, dir.FindByEmailAndPassword("a@x.com", "wrong"))
	})

	t.Run("email comparison is case-sensitive", func(t *testing.T) {
		require.Nil(t, dir.FindByEmailAndPassword("A@x.com", "secret"))
	})

	t.Run("exists", func(t *testing.T) {
		require.True(t, dir.Exists("a@x.com"))
		require.False(t, dir.Exists("b@x.com"))
	})
}

func TestDirectoryRejectsDuplicateEmail(t *testing.T) {
	dir, _ := newTestDirectory(t)
	addUser(t, dir, "a@x.com", "secret", "A")

	id, err := uuid.NewV7()
	require.NoError(t, err)
	_, err = dir.Add(context.Background(), models.User{
		ID:       id.String(),
		Email:    "a@x.com",
		Password: "other-secret",
		Name:     "Imposter",
	})
	require.ErrorIs(t, err, auth.ErrEmailExists)
	require.Equal(t, 1, dir.Count())
}

func TestDirectoryUpdatePassword(t *testing.T) {
	dir, _ := newTestDirectory(t)
	user := addUser(t, dir, "a@x.com", "secret", "A")
	ctx := context.Background()

	t.Run("unknown id reports not found", func(t *testing.T) {
		require.ErrorIs(t, dir.UpdatePassword(ctx, "no-such-id", "newsecret"), ErrUserNotFound)
	})

	t.Run("known id replaces credential", func(t *testing.T) {
		require.NoError(t, dir.UpdatePassword(ctx, user.ID, "newsecret"))
		require.Nil(t, dir.FindByEmailAndPassword("a@x.com", "secret"))
		require.NotNil(t, dir.FindByEmailAndPassword("a@x.com", "newsecret"))
	})
}

func TestDirectoryCheckPassword(t *testing.T) {
	dir, _ := newTestDirectory(t)
	user := addUser(t, dir, "a@x.com", "secret", "A")

	require.True(t, dir.CheckPassword(user.ID, "secret"))
	require.False(t, dir.CheckPassword(user.ID, "wrong"))
	require.False(t, dir.CheckPassword("no-such-id", "secret"))
}

func TestDirectoryPersistsAcrossLoads(t *testing.T) {
	dir, store := newTestDirectory(t)
	created := addUser(t, dir, "a@x.com", "secret", "A")
	ctx := context.Background()

	reloaded, err := Load(ctx, store, auth.PlaintextVerifier{}, slog.Default())
	require.NoError(t, err)

	found := reloaded.FindByEmailAndPassword("a@x.com", "secret")
	require.NotNil(t, found)
	require.Equal(t, created.ID, found.ID)

	t.Run("slot holds the documented JSON array shape", func(t *testing.T) {
		raw, err := store.Get(ctx, storage.SlotUsers)
		require.NoError(t, err)

		var snapshot []map[string]any
		require.NoError(t, json.Unmarshal(raw, &snapshot))
		require.Len(t, snapshot, 1)
		require.Equal(t, "a@x.com", snapshot[0]["email"])
		require.Equal(t, "secret", snapshot[0]["password"])
	})
}

func TestDirectoryCorruptSlotStartsEmpty(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.SlotUsers, []byte("{not json")))

	dir, err := Load(ctx, store, auth.PlaintextVerifier{}, slog.Default())
	require.NoError(t, err)
	require.Equal(t, 0, dir.Count())
}

func TestDirectoryWithBcryptVerifier(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	dir, err := Load(ctx, store, auth.BcryptVerifier{}, slog.Default())
	require.NoError(t, err)

	user := addUser(t, dir, "a@x.com", "secret", "A")
	require.NotEqual(t, "secret", user.Password)
	require.NotNil(t, dir.FindByEmailAndPassword("a@x.com", "secret"))
	require.Nil(t, dir.FindByEmailAndPassword("a@x.com", user.Password))
}
