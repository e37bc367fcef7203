// Package session tracks the single authenticated user of the running
// instance and mirrors that state into the persistent store so it survives
// restarts, the way the original app kept its current-user localStorage key.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"watchshelf/internal/auth"
	"watchshelf/internal/directory"
	"watchshelf/internal/models"
	"watchshelf/internal/storage"
)

// Manager owns the authentication state machine: Anonymous or
// Authenticated(user). At most one user is active at a time, process-wide.
type Manager struct {
	mu    sync.Mutex
	dir   *directory.Directory
	store storage.Store
	codec *TokenCodec
	log   *slog.Logger

	// current is nil when anonymous; its Password field is always empty.
	current *models.User
}

// NewManager builds the manager and rehydrates the session from the store.
// An absent slot starts Anonymous; an invalid or tampered snapshot is logged
// and likewise starts Anonymous rather than failing startup.
func NewManager(ctx context.Context, dir *directory.Directory, store storage.Store, codec *TokenCodec, log *slog.Logger) (*Manager, error) {
	m := &Manager{dir: dir, store: store, codec: codec, log: log}

	raw, err := store.Get(ctx, storage.SlotSession)
	if err != nil {
		return nil, fmt.Errorf("failed to probe session slot: %w", err)
	}
	if raw == nil {
		return m, nil
	}

	user, err := codec.Decode(string(raw))
	if err != nil {
		log.Warn("stored session is invalid, starting anonymous", "error", err)
		return m, nil
	}

	m.current = &user
	log.Info("session restored", "user_id", user.ID, "email", user.Email)
	return m, nil
}

// Current returns a copy of the active user, or nil when anonymous.
func (m *Manager) Current() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil
	}
	u := *m.current
	return &u
}

// Login authenticates against the directory and, on success, makes the user
// the active session and persists the snapshot.
func (m *Manager) Login(ctx context.Context, email, password string) (models.User, error) {
	found := m.dir.FindByEmailAndPassword(email, password)
	if found == nil {
		m.log.Warn("login failed", "email", email)
		return models.User{}, auth.ErrInvalidCredentials
	}

	public := found.Public()
	if err := m.activate(ctx, public); err != nil {
		return models.User{}, err
	}

	m.log.Info("user logged in", "user_id", public.ID, "email", public.Email)
	return public, nil
}

// Register creates a new account and logs it in. Fails with ErrEmailExists
// when the email is already registered; the directory is left unchanged.
func (m *Manager) Register(ctx context.Context, email, password, name string) (models.User, error) {
	if err := auth.ValidatePassword(password); err != nil {
		return models.User{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return models.User{}, fmt.Errorf("failed to generate user id: %w", err)
	}

	created, err := m.dir.Add(ctx, models.User{
		ID:       id.String(),
		Email:    email,
		Password: password,
		Name:     name,
	})
	if err != nil {
		m.log.Warn("registration failed", "email", email, "error", err)
		return models.User{}, err
	}

	public := created.Public()
	if err := m.activate(ctx, public); err != nil {
		return models.User{}, err
	}

	m.log.Info("user registered", "user_id", public.ID, "email", public.Email)
	return public, nil
}

// Logout clears the active session and deletes the persisted snapshot.
// Always succeeds, including when already anonymous.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	if err := m.store.Delete(ctx, storage.SlotSession); err != nil {
		return fmt.Errorf("failed to clear persisted session: %w", err)
	}
	m.log.Info("user logged out")
	return nil
}

// ChangePassword replaces the active user's password after verifying the
// current one. The session itself is unaffected; the snapshot carries no
// credential, so only the directory is rewritten.
func (m *Manager) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	active := m.Current()
	if active == nil {
		return auth.ErrNotAuthenticated
	}
	if err := auth.ValidatePassword(newPassword); err != nil {
		return err
	}

	if !m.dir.CheckPassword(active.ID, currentPassword) {
		m.log.Warn("change password rejected", "user_id", active.ID)
		return auth.ErrInvalidCurrentPassword
	}

	if err := m.dir.UpdatePassword(ctx, active.ID, newPassword); err != nil {
		return err
	}
	m.log.Info("password changed", "user_id", active.ID)
	return nil
}

// ResetPassword acknowledges a reset request for a known email. No password
// changes and no mail is sent; the original app only simulated the delivery.
func (m *Manager) ResetPassword(ctx context.Context, email string) error {
	if !m.dir.Exists(email) {
		return auth.ErrEmailNotFound
	}
	m.log.Info("password reset link sent", "email", email)
	return nil
}

// activate makes user the current session and persists the signed snapshot.
func (m *Manager) activate(ctx context.Context, user models.User) error {
	token, err := m.codec.Issue(user)
	if err != nil {
		return err
	}
	if err := m.store.Set(ctx, storage.SlotSession, []byte(token)); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	m.mu.Lock()
	m.current = &user
	m.mu.Unlock()
	return nil
}
