package repository

import (
	"context"

	"github.com/taskdeck/backend/domain"
)

type TaskRepository interface {
	// Create inserts the task and fills in its store-assigned ID.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// Update replaces all mutable fields of the row matching the task's
	// (ID, OwnerEmail). No matching row is a silent no-op, not an error.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the row matching (id, ownerEmail); no-op if absent.
	Delete(ctx context.Context, id int64, ownerEmail string) error

	// ListByOwner returns every task owned by ownerEmail, ordered by priority
	// rank descending then id descending. The ordering is recomputed on every
	// call.
	ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Task, error)
}
