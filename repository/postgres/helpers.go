package postgres

import "time"

func nullDate(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
