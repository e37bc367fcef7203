// Package models defines the core domain models for Watchshelf.
//
// # Models
//
//   - User: a registered account (also the shape of the active session)
//   - Movie, TVShow: catalog items owned by the user who added them
//   - MoviePatch, TVShowPatch: partial updates applied field-by-field
//
// # Design Principles
//
//  1. **Stable persisted shape**: the JSON tags are the on-disk slot format,
//     so renaming a field is a data migration, not a refactor.
//  2. **Avoid circular references**: items carry the owner's ID string, never
//     a pointer back to the User.
//  3. **Stamped, not enforced**: UserID records who created an item; it is not
//     an access-control field.
package models
