// Package catalog manages the movie and TV show collections.
//
// Each collection is the exclusive owner of one persisted slot: it loads the
// whole JSON array at startup and rewrites it on every mutation, matching the
// original app's localStorage handling. Items stamp the id of the user who
// added them, but no operation filters by owner; the catalog is shared across
// accounts exactly as the demo shipped it.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"watchshelf/internal/models"
	"watchshelf/internal/storage"
)

// ErrNotFound reports an update or delete against an id absent from the
// collection.
var ErrNotFound = errors.New("item not found")

// SampleOwnerID stamps the seeded demo items and anything added while
// anonymous.
const SampleOwnerID = "sample"

// Collection owns one catalog slot. The type parameter picks the item kind;
// the id and stamp hooks keep the implementation free of per-kind switches.
type Collection[T any] struct {
	slot  string
	store storage.Store
	log   *slog.Logger

	mu    sync.Mutex
	items []T

	id    func(T) string
	stamp func(*T, string, string)
}

func load[T any](ctx context.Context, store storage.Store, log *slog.Logger, slot string,
	id func(T) string, stamp func(*T, string, string), samples []T) (*Collection[T], error) {

	c := &Collection[T]{slot: slot, store: store, log: log, id: id, stamp: stamp}

	raw, err := store.Get(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", slot, err)
	}
	if raw == nil {
		// First run: seed the demo items, as the original app does.
		c.items = append(c.items, samples...)
		if err := c.persist(ctx); err != nil {
			return nil, err
		}
		return c, nil
	}

	if err := json.Unmarshal(raw, &c.items); err != nil {
		log.Warn("catalog slot is corrupt, starting empty", "slot", slot, "error", err)
		c.items = nil
	}
	return c, nil
}

// NewMovies loads the movies collection from its slot.
func NewMovies(ctx context.Context, store storage.Store, log *slog.Logger) (*Collection[models.Movie], error) {
	return load(ctx, store, log, storage.SlotMovies,
		func(m models.Movie) string { return m.ID },
		func(m *models.Movie, id, owner string) { m.ID = id; m.UserID = owner },
		sampleMovies())
}

// NewShows loads the TV shows collection from its slot.
func NewShows(ctx context.Context, store storage.Store, log *slog.Logger) (*Collection[models.TVShow], error) {
	return load(ctx, store, log, storage.SlotShows,
		func(s models.TVShow) string { return s.ID },
		func(s *models.TVShow, id, owner string) { s.ID = id; s.UserID = owner },
		sampleShows())
}

// List returns the items in insertion order. Filtering and pagination are the
// caller's concern; see Filter and Paginate.
func (c *Collection[T]) List() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Add assigns a fresh id, stamps the owner, appends and persists. An empty
// ownerID is stamped as SampleOwnerID, matching the anonymous path of the
// original app.
func (c *Collection[T]) Add(ctx context.Context, item T, ownerID string) (T, error) {
	var zero T

	id, err := uuid.NewV7()
	if err != nil {
		return zero, fmt.Errorf("failed to generate item id: %w", err)
	}
	if ownerID == "" {
		ownerID = SampleOwnerID
	}
	c.stamp(&item, id.String(), ownerID)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item)
	if err := c.persist(ctx); err != nil {
		c.items = c.items[:len(c.items)-1]
		return zero, err
	}
	c.log.Info("catalog item added", "slot", c.slot, "id", id.String(), "owner", ownerID)
	return item, nil
}

// Update applies a partial mutation to the item with the given id and
// persists the collection. Returns ErrNotFound if the id is absent. When
// apply returns an error the item is left untouched and nothing is
// persisted; callers use this to reject merged results that break the
// field invariants.
func (c *Collection[T]) Update(ctx context.Context, id string, apply func(*T) error) (T, error) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.id(c.items[i]) != id {
			continue
		}
		previous := c.items[i]
		if err := apply(&c.items[i]); err != nil {
			c.items[i] = previous
			return zero, err
		}
		if err := c.persist(ctx); err != nil {
			c.items[i] = previous
			return zero, err
		}
		c.log.Info("catalog item updated", "slot", c.slot, "id", id)
		return c.items[i], nil
	}
	return zero, ErrNotFound
}

// Delete removes the item with the given id and persists the collection.
// Returns ErrNotFound when no removal occurred.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.id(c.items[i]) != id {
			continue
		}
		removed := c.items[i]
		c.items = append(c.items[:i], c.items[i+1:]...)
		if err := c.persist(ctx); err != nil {
			c.items = append(c.items[:i], append([]T{removed}, c.items[i:]...)...)
			return err
		}
		c.log.Info("catalog item deleted", "slot", c.slot, "id", id)
		return nil
	}
	return ErrNotFound
}

// persist rewrites the full slot snapshot. Callers must hold c.mu.
func (c *Collection[T]) persist(ctx context.Context) error {
	items := c.items
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.slot, err)
	}
	if err := c.store.Set(ctx, c.slot, raw); err != nil {
		return fmt.Errorf("failed to persist %s: %w", c.slot, err)
	}
	return nil
}
