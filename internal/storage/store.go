// Package storage provides abstractions for persistent data storage.
package storage

import "context"

// Slot names for the persisted collections. The values are the localStorage
// keys of the original browser app and double as the on-disk contract.
const (
	SlotUsers   = "app_users"
	SlotSession = "current_user"
	SlotMovies  = "app_movies"
	SlotShows   = "app_tvshows"
)

// Store is a named-slot key/value store surviving restarts, the stand-in for
// the browser's local storage. Each slot holds one serialized payload that is
// read and rewritten whole; writes are last-writer-wins.
//
// This abstraction allows swapping storage backends (SQLite, flat files, etc.)
// without changing the layers above it.
type Store interface {
	// Get returns the payload stored under key, or (nil, nil) if the slot
	// has never been written.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous payload.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the slot. Deleting an absent slot is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
