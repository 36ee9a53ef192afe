package task

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/backend/domain"
)

// fakeTaskRepo keeps tasks in memory and reproduces the store's contracts:
// monotonically increasing ids, owner-scoped mutations, no-op on mismatch,
// display ordering recomputed on every list.
type fakeTaskRepo struct {
	tasks  []domain.Task
	nextID int64
}

func (r *fakeTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	r.nextID++
	task.ID = r.nextID
	r.tasks = append(r.tasks, *task)
	return task, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *domain.Task) error {
	for i := range r.tasks {
		if r.tasks[i].ID == task.ID && r.tasks[i].OwnerEmail == task.OwnerEmail {
			r.tasks[i] = *task
		}
	}
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id int64, ownerEmail string) error {
	kept := r.tasks[:0]
	for _, t := range r.tasks {
		if t.ID != id || t.OwnerEmail != ownerEmail {
			kept = append(kept, t)
		}
	}
	r.tasks = kept
	return nil
}

func (r *fakeTaskRepo) ListByOwner(_ context.Context, ownerEmail string) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range r.tasks {
		if t.OwnerEmail == ownerEmail {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := domain.PriorityRank(out[i].Priority), domain.PriorityRank(out[j].Priority)
		if ri != rj {
			return ri > rj
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func TestCreateAppliesDefaults(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := New(repo, nil)

	created, err := uc.Create(context.Background(), "a@example.com", Fields{Title: "Buy milk"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "a@example.com", created.OwnerEmail)
	assert.Equal(t, domain.DefaultPriority, created.Priority)
	assert.Equal(t, domain.DefaultCategory, created.Category)
	assert.Equal(t, domain.DefaultStatus, created.Status)
	assert.Empty(t, created.Description)
	assert.Nil(t, created.DueDate)
}

func TestCreateRequiresTitle(t *testing.T) {
	uc := New(&fakeTaskRepo{}, nil)

	_, err := uc.Create(context.Background(), "a@example.com", Fields{Title: "   "})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestCreateParsesDueDate(t *testing.T) {
	uc := New(&fakeTaskRepo{}, nil)

	created, err := uc.Create(context.Background(), "a@example.com", Fields{
		Title:   "Dentist",
		DueDate: "2024-03-15",
	})
	require.NoError(t, err)
	require.NotNil(t, created.DueDate)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *created.DueDate)
}

func TestCreateRejectsMalformedDueDate(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := New(repo, nil)

	_, err := uc.Create(context.Background(), "a@example.com", Fields{
		Title:   "Dentist",
		DueDate: "15/03/2024",
	})
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	assert.Empty(t, repo.tasks, "nothing persisted on validation failure")
}

func TestUpdateReplacesFields(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := New(repo, nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, "a@example.com", Fields{Title: "Draft report"})
	require.NoError(t, err)

	err = uc.Update(ctx, created.ID, "a@example.com", Fields{
		Title:    "Draft report",
		Priority: domain.PriorityHigh,
		Status:   domain.StatusCompleted,
		Category: "Work",
	})
	require.NoError(t, err)

	tasks, err := uc.List(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, domain.PriorityHigh, tasks[0].Priority)
	assert.Equal(t, domain.StatusCompleted, tasks[0].Status)
	assert.Equal(t, "Work", tasks[0].Category)
}

func TestUpdateNonexistentIsNoop(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := New(repo, nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, "a@example.com", Fields{Title: "Keep me"})
	require.NoError(t, err)

	// Wrong id, and wrong owner for a real id: both silently do nothing.
	require.NoError(t, uc.Update(ctx, 999, "a@example.com", Fields{Title: "changed"}))
	require.NoError(t, uc.Update(ctx, created.ID, "b@example.com", Fields{Title: "changed"}))

	tasks, err := uc.List(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Keep me", tasks[0].Title)
}

func TestDeleteNonexistentIsNoop(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := New(repo, nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, "a@example.com", Fields{Title: "Keep me"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, 999, "a@example.com"))
	require.NoError(t, uc.Delete(ctx, created.ID, "b@example.com"))

	tasks, err := uc.List(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestListOwnerIsolation(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := New(repo, nil)
	ctx := context.Background()

	_, err := uc.Create(ctx, "a@example.com", Fields{Title: "A's task"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, "b@example.com", Fields{Title: "B's task"})
	require.NoError(t, err)

	tasks, err := uc.List(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "A's task", tasks[0].Title)
}

func TestListDisplayOrder(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := New(repo, nil)
	ctx := context.Background()

	for _, p := range []string{domain.PriorityLow, domain.PriorityHigh, domain.PriorityMedium, domain.PriorityHigh} {
		_, err := uc.Create(ctx, "a@example.com", Fields{Title: p + " task", Priority: p})
		require.NoError(t, err)
	}

	tasks, err := uc.List(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, tasks, 4)

	// High before Medium before Low; within High, the later insert first.
	assert.Equal(t, int64(4), tasks[0].ID)
	assert.Equal(t, int64(2), tasks[1].ID)
	assert.Equal(t, domain.PriorityMedium, tasks[2].Priority)
	assert.Equal(t, domain.PriorityLow, tasks[3].Priority)
}
