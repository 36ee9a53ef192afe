package repository

import (
	"context"

	"github.com/taskdeck/backend/domain"
)

type UserRepository interface {
	// Create inserts a new user row. A duplicate email yields
	// domain.ErrEmailTaken; any other failure propagates as-is.
	Create(ctx context.Context, user *domain.User) error

	// ExistsByCredentials reports whether a row matches (email, passwordHash)
	// exactly. A missing email and a wrong hash are indistinguishable.
	ExistsByCredentials(ctx context.Context, email, passwordHash string) (bool, error)
}
