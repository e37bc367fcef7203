package models

// User represents a registered account.
//
// The same struct doubles as the session snapshot: when a User is exposed as
// the active session, Password is zeroed and must never be serialized into
// the session slot.
type User struct {
	// ID is the unique identifier for the user (UUIDv7, time-ordered).
	ID string `json:"id"`

	// Email is the user's login address. Unique across the directory,
	// compared case-sensitively as stored.
	Email string `json:"email"`

	// Password is the stored credential. Depending on the configured
	// verifier this is plaintext (demo default) or a bcrypt hash.
	Password string `json:"password,omitempty"`

	// Name is the display name shown in the UI.
	Name string `json:"name"`
}

// Public returns a copy of the user safe to hand to callers: identical
// identity fields, credential stripped.
func (u User) Public() User {
	u.Password = ""
	return u
}
