package repository

import (
	"context"

	"collab-assistant/internal/model"
)

// EventRepository is the event store consumed by the command dispatcher.
type EventRepository interface {
	Create(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	ListUpcoming(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
}

// TaskRepository is the task store consumed by the command dispatcher.
type TaskRepository interface {
	Create(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	List(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}

// NoteRepository is the note store consumed by the command dispatcher.
type NoteRepository interface {
	Create(ctx context.Context, opt CreateNoteOptions) (model.Note, error)
}
