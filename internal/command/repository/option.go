package repository

import "time"

// CreateEventOptions is the input for creating a calendar event.
type CreateEventOptions struct {
	Title    string
	Start    time.Time
	End      time.Time
	Category string
	Color    string
}

// ListEventsOptions is the input for listing upcoming calendar events.
type ListEventsOptions struct {
	From  time.Time
	Limit int
}

// CreateTaskOptions is the input for creating a task.
type CreateTaskOptions struct {
	Title    string
	DueDate  time.Time
	Status   string
	Priority string
	Project  string
	Assignee string
}

// ListTasksOptions is the input for listing tasks.
// ExcludeDone filters completed tasks on the server so the limit applies
// to open tasks only.
type ListTasksOptions struct {
	Limit       int
	ExcludeDone bool
}

// CreateNoteOptions is the input for creating a note.
type CreateNoteOptions struct {
	Title   string
	Content string
	Tags    []string
	Pinned  bool
	Author  string
}
