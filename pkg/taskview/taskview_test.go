package taskview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/backend/domain"
)

func snapshot() []domain.Task {
	return []domain.Task{
		{ID: 3, Title: "Buy milk", Category: "General", Status: domain.StatusPending},
		{ID: 2, Title: "Buy eggs", Category: "Work", Status: domain.StatusCompleted},
		{ID: 1, Title: "Call mom", Category: "General", Status: domain.StatusPending},
	}
}

func TestCategories(t *testing.T) {
	cats := Categories(snapshot())
	require.Len(t, cats, 2)
	assert.Equal(t, CategoryCount{Name: "General", Count: 2}, cats[0])
	assert.Equal(t, CategoryCount{Name: "Work", Count: 1}, cats[1])
}

func TestCategoriesSkipsEmpty(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, Title: "untagged"},
		{ID: 2, Title: "tagged", Category: "Home"},
	}
	cats := Categories(tasks)
	require.Len(t, cats, 1)
	assert.Equal(t, "Home", cats[0].Name)
}

func TestByCategoryExactMatch(t *testing.T) {
	filtered := ByCategory(snapshot(), "General")
	require.Len(t, filtered, 2)
	assert.Equal(t, int64(3), filtered[0].ID)
	assert.Equal(t, int64(1), filtered[1].ID)

	// Case-sensitive: "general" selects nothing.
	assert.Empty(t, ByCategory(snapshot(), "general"))
}

func TestByKeywordCaseInsensitive(t *testing.T) {
	filtered := ByKeyword(snapshot(), "buy")
	require.Len(t, filtered, 2)
	assert.Equal(t, "Buy milk", filtered[0].Title)
	assert.Equal(t, "Buy eggs", filtered[1].Title)
}

func TestByKeywordEmptyMatchesAll(t *testing.T) {
	assert.Len(t, ByKeyword(snapshot(), ""), 3)
}

func TestByKeywordTitleOnly(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, Title: "Report", Description: "buy supplies first"},
	}
	assert.Empty(t, ByKeyword(tasks, "buy"))
}

func TestApplyComposesCategoryFirst(t *testing.T) {
	filtered := Apply(snapshot(), "General", "buy")
	require.Len(t, filtered, 1)
	assert.Equal(t, "Buy milk", filtered[0].Title)
}

func TestSummarize(t *testing.T) {
	tasks := []domain.Task{
		{Status: domain.StatusCompleted},
		{Status: domain.StatusPending},
		{Status: domain.StatusCompleted},
		{Status: domain.StatusPending},
		{Status: domain.StatusPending},
	}
	assert.Equal(t, Counts{Total: 5, Completed: 2, Pending: 3}, Summarize(tasks))
}

func TestSummarizeUnknownStatusIsPending(t *testing.T) {
	tasks := []domain.Task{
		{Status: "Completed"},
		{Status: "completed"}, // wrong case, not recognized
		{Status: "Blocked"},
		{Status: ""},
	}
	assert.Equal(t, Counts{Total: 4, Completed: 1, Pending: 3}, Summarize(tasks))
}

func TestFiltersDoNotMutateSnapshot(t *testing.T) {
	tasks := snapshot()
	_ = Apply(tasks, "General", "buy")
	_ = Summarize(tasks)
	require.Len(t, tasks, 3)
	assert.Equal(t, int64(3), tasks[0].ID)
	assert.Equal(t, "Work", tasks[1].Category)
}
