// Package directory maintains the authoritative list of registered accounts.
//
// The directory is an in-memory projection of the users slot: it is loaded
// whole at startup and the full snapshot is rewritten on every mutation,
// mirroring how the original app treated its localStorage array. All
// operations are serialized by a single mutex so the duplicate-email check
// and the insert cannot interleave under concurrent callers.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"watchshelf/internal/auth"
	"watchshelf/internal/models"
	"watchshelf/internal/storage"
)

// ErrUserNotFound reports a password update against an unknown user id.
var ErrUserNotFound = errors.New("user not found")

// Directory owns the registered-users collection.
type Directory struct {
	mu       sync.Mutex
	store    storage.Store
	verifier auth.Verifier
	log      *slog.Logger
	users    []models.User
}

// Load builds the directory from the users slot. An absent slot yields an
// empty directory; a corrupt payload is logged and treated as empty rather
// than failing startup.
func Load(ctx context.Context, store storage.Store, verifier auth.Verifier, log *slog.Logger) (*Directory, error) {
	d := &Directory{store: store, verifier: verifier, log: log}

	raw, err := store.Get(ctx, storage.SlotUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if raw == nil {
		return d, nil
	}

	if err := json.Unmarshal(raw, &d.users); err != nil {
		log.Warn("users slot is corrupt, starting with empty directory", "error", err)
		d.users = nil
	}
	return d, nil
}

// FindByEmailAndPassword scans for a user whose email matches exactly and
// whose stored credential verifies against secret. Returns nil when absent.
func (d *Directory) FindByEmailAndPassword(email, secret string) *models.User {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.users {
		if d.users[i].Email == email && d.verifier.Verify(secret, d.users[i].Password) {
			u := d.users[i]
			return &u
		}
	}
	return nil
}

// FindByEmail returns the user with the given email, or nil.
func (d *Directory) FindByEmail(email string) *models.User {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.users {
		if d.users[i].Email == email {
			u := d.users[i]
			return &u
		}
	}
	return nil
}

// Exists reports whether an account with the given email is registered.
func (d *Directory) Exists(email string) bool {
	return d.FindByEmail(email) != nil
}

// CheckPassword verifies secret against the stored credential of the user
// with the given id. Unknown ids fail the check.
func (d *Directory) CheckPassword(id, secret string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.users {
		if d.users[i].ID == id {
			return d.verifier.Verify(secret, d.users[i].Password)
		}
	}
	return false
}

// Add registers a new account. The Password field of user must hold the raw
// secret; it is converted to stored form here. The uniqueness check and the
// append happen under one lock, so two concurrent registrations for the same
// email cannot both succeed.
func (d *Directory) Add(ctx context.Context, user models.User) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.users {
		if d.users[i].Email == user.Email {
			return models.User{}, auth.ErrEmailExists
		}
	}

	stored, err := d.verifier.Hash(user.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to prepare credential: %w", err)
	}
	user.Password = stored

	d.users = append(d.users, user)
	if err := d.persist(ctx); err != nil {
		d.users = d.users[:len(d.users)-1]
		return models.User{}, err
	}
	return user, nil
}

// UpdatePassword replaces the stored credential of the user with the given
// id. Returns ErrUserNotFound if the id is unknown.
func (d *Directory) UpdatePassword(ctx context.Context, id, newSecret string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.users {
		if d.users[i].ID == id {
			stored, err := d.verifier.Hash(newSecret)
			if err != nil {
				return fmt.Errorf("failed to prepare credential: %w", err)
			}
			previous := d.users[i].Password
			d.users[i].Password = stored
			if err := d.persist(ctx); err != nil {
				d.users[i].Password = previous
				return err
			}
			return nil
		}
	}
	return ErrUserNotFound
}

// Count returns the number of registered accounts.
func (d *Directory) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.users)
}

// persist rewrites the full snapshot. Callers must hold d.mu.
func (d *Directory) persist(ctx context.Context) error {
	raw, err := json.Marshal(d.users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := d.store.Set(ctx, storage.SlotUsers, raw); err != nil {
		return fmt.Errorf("failed to persist users: %w", err)
	}
	return nil
}
