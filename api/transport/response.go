package transport

import (
	"encoding/json"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/pkg/dateonly"
)

// Envelope is the standard API response wrapper used for both success and error payloads.
type Envelope struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  interface{} `json:"error,omitempty"`
	Meta   interface{} `json:"meta,omitempty"`
}

// NewSuccess returns a success envelope.
func NewSuccess(data interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "success",
		Data:   data,
		Meta:   meta,
	}
}

// NewError returns an error envelope with optional metadata.
func NewError(code string, err interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "error",
		Code:   code,
		Error:  err,
		Meta:   meta,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}

// TaskRecord is the listing row shape. The uppercase keys are a boundary
// contract with the table view and are distinct from the lowercase request
// keys; DUE_DATE is "YYYY-MM-DD" or "" for tasks without one.
type TaskRecord struct {
	ID          int64  `json:"ID"`
	Title       string `json:"TITLE"`
	Description string `json:"DESCRIPTION"`
	DueDate     string `json:"DUE_DATE"`
	Priority    string `json:"PRIORITY"`
	Category    string `json:"CATEGORY"`
	Status      string `json:"STATUS"`
}

// NewTaskRecord converts a domain task into its listing row.
func NewTaskRecord(t domain.Task) TaskRecord {
	return TaskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     dateonly.Format(t.DueDate),
		Priority:    t.Priority,
		Category:    t.Category,
		Status:      t.Status,
	}
}

// NewTaskRecords converts a snapshot, preserving its order.
func NewTaskRecords(tasks []domain.Task) []TaskRecord {
	records := make([]TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, NewTaskRecord(t))
	}
	return records
}
