package workspace_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"collab-assistant/internal/command/repository"
	"collab-assistant/internal/command/repository/workspace"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

func TestTaskRepository_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/tasks" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("apikey") != "test-key" {
			t.Errorf("missing apikey header")
		}

		var row map[string]interface{}
		json.NewDecoder(r.Body).Decode(&row)
		if row["title"] != "보고서 작성" {
			t.Errorf("unexpected title: %v", row["title"])
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"id": "task-1", "title": "보고서 작성", "status": "todo", "priority": "medium", "due_date": "2024-05-03T23:59:59Z"}]`))
	}))
	defer server.Close()

	client := workspace.NewClient(server.URL, "test-key")
	repo := workspace.NewTaskRepository(client, &mockLogger{})

	task, err := repo.Create(context.Background(), repository.CreateTaskOptions{
		Title:    "보고서 작성",
		Status:   "todo",
		Priority: "medium",
		DueDate:  time.Date(2024, 5, 3, 23, 59, 59, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != "task-1" {
		t.Errorf("expected id task-1, got %s", task.ID)
	}
	if task.DueDate.IsZero() {
		t.Errorf("expected parsed due date")
	}
}

func TestTaskRepository_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/tasks" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "5" {
			t.Errorf("expected limit=5, got %s", r.URL.Query().Get("limit"))
		}
		if r.URL.Query().Get("status") != "neq.done" {
			t.Errorf("expected status=neq.done, got %s", r.URL.Query().Get("status"))
		}
		w.Write([]byte(`[
			{"id": "t1", "title": "리뷰", "status": "todo", "priority": "high"},
			{"id": "t2", "title": "배포", "status": "in_progress", "priority": "low"}
		]`))
	}))
	defer server.Close()

	client := workspace.NewClient(server.URL, "test-key")
	repo := workspace.NewTaskRepository(client, &mockLogger{})

	tasks, err := repo.List(context.Background(), repository.ListTasksOptions{Limit: 5, ExcludeDone: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[1].Done() {
		t.Errorf("expected second task to be open")
	}
}

func TestTaskRepository_ListIncludesDoneByDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("status") {
			t.Errorf("expected no status filter, got %s", r.URL.Query().Get("status"))
		}
		w.Write([]byte(`[{"id": "t2", "title": "배포", "status": "done", "priority": "low"}]`))
	}))
	defer server.Close()

	client := workspace.NewClient(server.URL, "test-key")
	repo := workspace.NewTaskRepository(client, &mockLogger{})

	tasks, err := repo.List(context.Background(), repository.ListTasksOptions{Limit: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 || !tasks[0].Done() {
		t.Errorf("expected the done task returned, got %+v", tasks)
	}
}

func TestNoteRepository_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/notes" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"id": "note-1", "title": "회의록", "content": "내용", "pinned": false}]`))
	}))
	defer server.Close()

	client := workspace.NewClient(server.URL, "test-key")
	repo := workspace.NewNoteRepository(client, &mockLogger{})

	note, err := repo.Create(context.Background(), repository.CreateNoteOptions{
		Title:   "회의록",
		Content: "내용",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if note.ID != "note-1" {
		t.Errorf("expected id note-1, got %s", note.ID)
	}
}

func TestTaskRepository_CreateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "boom"}`))
	}))
	defer server.Close()

	client := workspace.NewClient(server.URL, "test-key")
	repo := workspace.NewTaskRepository(client, &mockLogger{})

	_, err := repo.Create(context.Background(), repository.CreateTaskOptions{Title: "x"})
	if err == nil {
		t.Fatalf("expected error on 500 response")
	}
}
