package domain

import "time"

// Session is the server-side record behind a bearer token. It replaces the
// ambient "current user" the desktop client kept in process globals: every
// store call receives the owner email resolved from one of these.
type Session struct {
	ID         string    `json:"id"`
	OwnerEmail string    `json:"owner_email"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func (s *Session) IsExpired(reference time.Time) bool {
	if s == nil {
		return true
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	return !s.ExpiresAt.After(reference)
}
