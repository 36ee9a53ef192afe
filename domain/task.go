package domain

import "time"

// Priority values recognized by the sort and the dashboard. The store accepts
// and persists any string; anything outside this set ranks below Low.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Status values recognized by the counters. Anything else counts as pending.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// Defaults applied when a task arrives with fields omitted.
const (
	DefaultPriority = PriorityMedium
	DefaultCategory = "General"
	DefaultStatus   = StatusPending
)

// Task is a user-owned activity item. The ID is assigned by the store and is
// monotonically increasing; OwnerEmail scopes every query that touches the row.
type Task struct {
	ID          int64      `json:"id"`
	OwnerEmail  string     `json:"owner_email"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	Status      string     `json:"status"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == StatusCompleted
}

// PriorityRank maps a priority string to its sort weight: High > Medium > Low,
// with unrecognized values ranking lowest.
func PriorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}
