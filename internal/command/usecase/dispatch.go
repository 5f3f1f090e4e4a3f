package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"collab-assistant/internal/command"
	"collab-assistant/internal/command/repository"
	"collab-assistant/internal/model"
	"collab-assistant/internal/router"
)

// dispatch performs the store call for a classified command and renders the
// confirmation. Store failures are logged and replaced with a generic retry
// message; they never surface as errors.
func (uc *implUseCase) dispatch(ctx context.Context, sc model.Scope, cmd *command.ParsedCommand) string {
	switch cmd.Action {
	case router.ActionAdd:
		switch cmd.Entity {
		case router.EntityEvent:
			return uc.addEvent(ctx, cmd)
		case router.EntityTodo:
			return uc.addTask(ctx, sc, cmd)
		case router.EntityMemo:
			return uc.addNote(ctx, sc, cmd)
		}
	case router.ActionList:
		switch cmd.Entity {
		case router.EntityEvent:
			return uc.listEvents(ctx)
		case router.EntityTodo:
			return uc.listTasks(ctx)
		case router.EntityMemo:
			return MsgMemoListNotSupported
		}
	case router.ActionUpdate:
		return MsgUpdateNotSupported
	case router.ActionDelete:
		return MsgDeleteNotSupported
	}

	uc.l.Warnf(ctx, "%s: unhandled command %s/%s", LogPrefixDispatch, cmd.Action, cmd.Entity)
	return MsgStoreFailure
}

func (uc *implUseCase) addEvent(ctx context.Context, cmd *command.ParsedCommand) string {
	if cmd.Title == "" {
		return MsgEventTitleRequired
	}

	// Without a named date the event starts now, a real clock time.
	start := uc.now()
	withClock := true
	if cmd.ResolvedDate != nil {
		start = *cmd.ResolvedDate
		withClock = cmd.HasTime
	}

	event, err := uc.eventRepo.Create(ctx, repository.CreateEventOptions{
		Title:    cmd.Title,
		Start:    start,
		End:      start.Add(time.Hour),
		Category: defaultEventCategory,
		Color:    defaultEventColor,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: create event failed: %v", LogPrefixDispatch, err)
		return MsgStoreFailure
	}

	return fmt.Sprintf(MsgEventCreatedFmt, event.Title, formatDateTime(start, withClock))
}

func (uc *implUseCase) addTask(ctx context.Context, sc model.Scope, cmd *command.ParsedCommand) string {
	if cmd.Title == "" {
		return MsgTaskTitleRequired
	}

	var due time.Time
	if cmd.ResolvedDate != nil {
		due = *cmd.ResolvedDate
	} else {
		// No deadline named: due end of tomorrow.
		due = uc.parser.EndOfDay(uc.parser.StartOfDay(uc.now().AddDate(0, 0, 1)))
	}

	assignee := sc.DisplayName
	if assignee == "" {
		assignee = sc.UserID
	}

	task, err := uc.taskRepo.Create(ctx, repository.CreateTaskOptions{
		Title:    cmd.Title,
		DueDate:  due,
		Status:   model.TaskStatusTodo,
		Priority: model.TaskPriorityMedium,
		Assignee: assignee,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: create task failed: %v", LogPrefixDispatch, err)
		return MsgStoreFailure
	}

	return fmt.Sprintf(MsgTaskCreatedFmt, task.Title, formatDate(due))
}

// addNote never blocks on a missing title: an untitled memo gets a
// placeholder, and empty content falls back to the full original text.
func (uc *implUseCase) addNote(ctx context.Context, sc model.Scope, cmd *command.ParsedCommand) string {
	title := cmd.Title
	if title == "" {
		title = defaultNoteTitle
	}
	content := cmd.Content
	if content == "" {
		content = cmd.OriginalText
	}

	note, err := uc.noteRepo.Create(ctx, repository.CreateNoteOptions{
		Title:   title,
		Content: content,
		Author:  sc.DisplayName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: create note failed: %v", LogPrefixDispatch, err)
		return MsgStoreFailure
	}

	return fmt.Sprintf(MsgNoteCreatedFmt, note.Title)
}

func (uc *implUseCase) listEvents(ctx context.Context) string {
	events, err := uc.eventRepo.ListUpcoming(ctx, repository.ListEventsOptions{
		From:  uc.now(),
		Limit: listLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: list events failed: %v", LogPrefixDispatch, err)
		return MsgStoreFailure
	}
	if len(events) == 0 {
		return MsgNoEvents
	}

	var b strings.Builder
	b.WriteString(MsgEventListHeader)
	for i, ev := range events {
		if i == listLimit {
			break
		}
		fmt.Fprintf(&b, "\n• %s (%s)", ev.Title, formatEventTime(ev.Start))
	}
	return b.String()
}

func (uc *implUseCase) listTasks(ctx context.Context) string {
	// Completed tasks are excluded server-side so the limit always yields
	// open tasks; the Done check below only guards against stale rows.
	tasks, err := uc.taskRepo.List(ctx, repository.ListTasksOptions{
		Limit:       listLimit,
		ExcludeDone: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: list tasks failed: %v", LogPrefixDispatch, err)
		return MsgStoreFailure
	}

	var b strings.Builder
	b.WriteString(MsgTaskListHeader)
	shown := 0
	for _, task := range tasks {
		if task.Done() {
			continue
		}
		fmt.Fprintf(&b, "\n• %s", task.Title)
		shown++
		if shown == listLimit {
			break
		}
	}
	if shown == 0 {
		return MsgNoTasks
	}
	return b.String()
}
