// Package taskview derives display views from a snapshot of one owner's tasks.
//
// Every function here is pure: it operates on a list already fetched from the
// store, never mutates it, and performs no I/O. Callers re-query the store when
// they want fresh data and re-derive the view from the new snapshot.
package taskview

import (
	"sort"
	"strings"

	"github.com/taskdeck/backend/domain"
)

// CategoryCount pairs a category name with the number of tasks carrying it.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Categories returns the distinct non-empty categories present in the
// snapshot, sorted by name, each with its task count.
func Categories(tasks []domain.Task) []CategoryCount {
	counts := make(map[string]int)
	for _, t := range tasks {
		if t.Category == "" {
			continue
		}
		counts[t.Category]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, CategoryCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ByCategory keeps only tasks whose category equals the selection exactly,
// preserving the snapshot order. An empty selection keeps everything.
func ByCategory(tasks []domain.Task, category string) []domain.Task {
	if category == "" {
		return tasks
	}
	var out []domain.Task
	for _, t := range tasks {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// ByKeyword keeps tasks whose title contains the keyword, case-insensitively,
// preserving the snapshot order. An empty keyword keeps everything.
func ByKeyword(tasks []domain.Task, keyword string) []domain.Task {
	if keyword == "" {
		return tasks
	}
	needle := strings.ToLower(keyword)
	var out []domain.Task
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), needle) {
			out = append(out, t)
		}
	}
	return out
}

// Apply composes both filters as a conjunction, category first: the keyword
// search runs within the category-filtered subset.
func Apply(tasks []domain.Task, category, keyword string) []domain.Task {
	return ByKeyword(ByCategory(tasks, category), keyword)
}

// Counts summarizes a snapshot for the dashboard stat cards.
type Counts struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// Summarize tallies the snapshot. Only the exact status "Completed" counts as
// completed; every other value, recognized or not, is pending.
func Summarize(tasks []domain.Task) Counts {
	c := Counts{Total: len(tasks)}
	for _, t := range tasks {
		if t.IsCompleted() {
			c.Completed++
		}
	}
	c.Pending = c.Total - c.Completed
	return c
}
