package workspace

import (
	"context"
	"fmt"
	"time"

	"collab-assistant/internal/command/repository"
	"collab-assistant/internal/model"
	pkgLog "collab-assistant/pkg/log"
)

// taskRow is the tasks table wire representation.
type taskRow struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Project  string `json:"project,omitempty"`
	Assignee string `json:"assignee,omitempty"`
	DueDate  string `json:"due_date,omitempty"`
}

type implTaskRepository struct {
	client *Client
	l      pkgLog.Logger
}

// NewTaskRepository creates a task repository over the workspace backend.
func NewTaskRepository(client *Client, l pkgLog.Logger) repository.TaskRepository {
	return &implTaskRepository{client: client, l: l}
}

func (r *implTaskRepository) Create(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	row := taskRow{
		Title:    opt.Title,
		Status:   opt.Status,
		Priority: opt.Priority,
		Project:  opt.Project,
		Assignee: opt.Assignee,
	}
	if !opt.DueDate.IsZero() {
		row.DueDate = opt.DueDate.Format(time.RFC3339)
	}

	var created []taskRow
	if err := r.client.post(ctx, "tasks", row, &created); err != nil {
		r.l.Errorf(ctx, "workspace repository: failed to create task %q: %v", opt.Title, err)
		return model.Task{}, err
	}
	if len(created) == 0 {
		return model.Task{}, fmt.Errorf("workspace API returned no task row")
	}

	return rowToTask(created[0]), nil
}

func (r *implTaskRepository) List(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	query := "order=due_date.asc"
	if opt.ExcludeDone {
		query += "&status=neq." + model.TaskStatusDone
	}
	if opt.Limit > 0 {
		query += fmt.Sprintf("&limit=%d", opt.Limit)
	}

	var rows []taskRow
	if err := r.client.get(ctx, "tasks", query, &rows); err != nil {
		r.l.Errorf(ctx, "workspace repository: failed to list tasks: %v", err)
		return nil, err
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, rowToTask(row))
	}
	return tasks, nil
}

func rowToTask(row taskRow) model.Task {
	t := model.Task{
		ID:       row.ID,
		Title:    row.Title,
		Status:   row.Status,
		Priority: row.Priority,
		Project:  row.Project,
		Assignee: row.Assignee,
	}
	if row.DueDate != "" {
		if due, err := time.Parse(time.RFC3339, row.DueDate); err == nil {
			t.DueDate = due
		}
	}
	return t
}
