package domain

import "time"

// User represents a registered identity. Email is the natural key the rest of
// the system scopes by; PasswordHash is the deterministic hex digest of the
// plaintext password and never leaves the service.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
