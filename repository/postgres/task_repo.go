package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO tasks (user_email, title, description, due_date, priority, category, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id
	`

	if err := r.pool.QueryRow(ctx, query,
		task.OwnerEmail,
		task.Title,
		task.Description,
		nullDate(task.DueDate),
		task.Priority,
		task.Category,
		task.Status,
	).Scan(&task.ID); err != nil {
		return nil, err
	}

	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE tasks
	SET title = $3,
		description = $4,
		due_date = $5,
		priority = $6,
		category = $7,
		status = $8
	WHERE id = $1 AND user_email = $2
	`

	// Zero rows affected means the id/owner pair matched nothing, which the
	// caller cannot distinguish from "already deleted". Not an error.
	_, err := r.pool.Exec(ctx, query,
		task.ID,
		task.OwnerEmail,
		task.Title,
		task.Description,
		nullDate(task.DueDate),
		task.Priority,
		task.Category,
		task.Status,
	)
	return err
}

func (r *taskRepository) Delete(ctx context.Context, id int64, ownerEmail string) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_email = $2`
	_, err := r.pool.Exec(ctx, query, id, ownerEmail)
	return err
}

func (r *taskRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Task, error) {
	const query = `
	SELECT id, user_email, title, description, due_date, priority, category, status
	FROM tasks
	WHERE user_email = $1
	ORDER BY
		CASE priority
			WHEN 'High' THEN 3
			WHEN 'Medium' THEN 2
			WHEN 'Low' THEN 1
			ELSE 0
		END DESC,
		id DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var task domain.Task
		var due *time.Time
		if err := rows.Scan(
			&task.ID,
			&task.OwnerEmail,
			&task.Title,
			&task.Description,
			&due,
			&task.Priority,
			&task.Category,
			&task.Status,
		); err != nil {
			return nil, err
		}
		task.DueDate = due
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}
