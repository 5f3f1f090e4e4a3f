package model

import "time"

// Task statuses used by the workspace backend.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// Task priorities.
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

// Task is a to-do item stored in the workspace backend.
type Task struct {
	ID       string
	Title    string
	Status   string
	Priority string
	Project  string
	Assignee string
	DueDate  time.Time
}

// Done reports whether the task is completed.
func (t Task) Done() bool {
	return t.Status == TaskStatusDone
}
