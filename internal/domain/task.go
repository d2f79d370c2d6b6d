package domain

import "errors"

// ErrEmptyTaskName is returned when a task is created without a name.
var ErrEmptyTaskName = errors.New("task name cannot be empty")

// TaskRecord is a single created background task. Records are immutable
// once created; there are no update or delete operations.
type TaskRecord struct {
	Name    string `json:"name"`
	Message string `json:"message,omitempty"`
}

// NewTaskRecord builds a TaskRecord, requiring a non-empty name. The
// message is optional.
func NewTaskRecord(name, message string) (TaskRecord, error) {
	if name == "" {
		return TaskRecord{}, ErrEmptyTaskName
	}
	return TaskRecord{Name: name, Message: message}, nil
}
