package task

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/pkg/dateonly"
	"github.com/taskdeck/backend/repository"
)

// Fields carries the mutable task attributes as they cross the presentation
// boundary. DueDate is the raw "YYYY-MM-DD" string; parsing happens here so a
// malformed date surfaces as a validation error instead of being dropped.
type Fields struct {
	Title       string
	Description string
	DueDate     string
	Priority    string
	Category    string
	Status      string
}

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

// Create inserts a new task for owner, applying the documented defaults to
// omitted fields.
func (uc *UseCase) Create(ctx context.Context, owner string, fields Fields) (*domain.Task, error) {
	task, err := buildTask(owner, fields)
	if err != nil {
		return nil, err
	}

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("task created",
		zap.Int64("task_id", created.ID),
		zap.String("owner", owner),
		zap.String("category", created.Category))
	return created, nil
}

// Update replaces all mutable fields of the task matching (id, owner). An
// id/owner pair that matches nothing is a silent no-op.
func (uc *UseCase) Update(ctx context.Context, id int64, owner string, fields Fields) error {
	task, err := buildTask(owner, fields)
	if err != nil {
		return err
	}
	task.ID = id

	return uc.tasks.Update(ctx, task)
}

// Delete removes the task matching (id, owner); no-op if absent.
func (uc *UseCase) Delete(ctx context.Context, id int64, owner string) error {
	return uc.tasks.Delete(ctx, id, owner)
}

// List returns the owner's tasks in display order: priority rank descending,
// then most recently created first.
func (uc *UseCase) List(ctx context.Context, owner string) ([]domain.Task, error) {
	return uc.tasks.ListByOwner(ctx, owner)
}

func buildTask(owner string, fields Fields) (*domain.Task, error) {
	title := strings.TrimSpace(fields.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}

	due, err := dateonly.Parse(fields.DueDate)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, domain.ErrBadDueDate.Message, err)
	}

	task := &domain.Task{
		OwnerEmail:  owner,
		Title:       title,
		Description: fields.Description,
		DueDate:     due,
		Priority:    fields.Priority,
		Category:    strings.TrimSpace(fields.Category),
		Status:      fields.Status,
	}
	if task.Priority == "" {
		task.Priority = domain.DefaultPriority
	}
	if task.Category == "" {
		task.Category = domain.DefaultCategory
	}
	if task.Status == "" {
		task.Status = domain.DefaultStatus
	}
	return task, nil
}
