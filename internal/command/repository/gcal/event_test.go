package gcal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"collab-assistant/internal/command/repository"
	"collab-assistant/pkg/gcalendar"
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

// rewriteTransport redirects every request to the local test server so the
// generated Google API client can be exercised without network access.
type rewriteTransport struct {
	transport http.RoundTripper
	host      string
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.host
	return t.transport.RoundTrip(req)
}

func newTestClient(t *testing.T, srv *httptest.Server) *gcalendar.Client {
	t.Helper()
	hc := &http.Client{Transport: rewriteTransport{
		transport: http.DefaultTransport,
		host:      strings.TrimPrefix(srv.URL, "http://"),
	}}
	client, err := gcalendar.NewClientFromHTTP(context.Background(), hc)
	if err != nil {
		t.Fatalf("failed to create calendar client: %v", err)
	}
	return client
}

func TestCreate_ColorID(t *testing.T) {
	var gotInsert map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.Contains(r.URL.Path, "/calendars/primary/events") {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&gotInsert); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":       "evt-1",
			"summary":  gotInsert["summary"],
			"htmlLink": "https://calendar.google.com/event?eid=evt-1",
		})
	}))
	defer srv.Close()

	repo := New(newTestClient(t, srv), "primary", "Asia/Seoul", &mockLogger{})
	start := time.Date(2024, 5, 2, 14, 0, 0, 0, time.UTC)

	t.Run("calendar color ID forwarded", func(t *testing.T) {
		gotInsert = nil
		event, err := repo.Create(context.Background(), repository.CreateEventOptions{
			Title: "팀 미팅",
			Start: start,
			Color: "9",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotInsert["colorId"] != "9" {
			t.Errorf("expected colorId 9 in request, got %v", gotInsert["colorId"])
		}
		if event.Color != "9" {
			t.Errorf("expected event color 9, got %q", event.Color)
		}
	})

	t.Run("non-ID color omitted from request", func(t *testing.T) {
		gotInsert = nil
		event, err := repo.Create(context.Background(), repository.CreateEventOptions{
			Title: "팀 미팅",
			Start: start,
			Color: "#3788d8",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, present := gotInsert["colorId"]; present {
			t.Errorf("expected colorId omitted for non-ID value, got %v", gotInsert["colorId"])
		}
		// The display color still rides along on the model.
		if event.Color != "#3788d8" {
			t.Errorf("expected event color preserved, got %q", event.Color)
		}
	})

	t.Run("out of range ID omitted", func(t *testing.T) {
		gotInsert = nil
		if _, err := repo.Create(context.Background(), repository.CreateEventOptions{
			Title: "팀 미팅",
			Start: start,
			Color: "12",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, present := gotInsert["colorId"]; present {
			t.Errorf("expected colorId omitted for out-of-range value, got %v", gotInsert["colorId"])
		}
	})
}
