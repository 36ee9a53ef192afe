// Package dateonly converts calendar dates between their wire form
// ("YYYY-MM-DD" strings) and time.Time values with no time-of-day component.
package dateonly

import (
	"strings"
	"time"
)

// Layout is the interchange format for due dates.
const Layout = "2006-01-02"

// Parse converts a "YYYY-MM-DD" string into a calendar date. An empty or
// all-whitespace input yields (nil, nil): absent dates are legal. A non-empty
// input that does not match the layout is an error, never silently dropped.
func Parse(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Format renders a calendar date back into its wire form. Nil dates render as
// the empty string, matching what the table shows for tasks without one.
func Format(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(Layout)
}
