package gcal

import (
	"context"
	"strconv"
	"time"

	"collab-assistant/internal/command/repository"
	"collab-assistant/internal/model"
	"collab-assistant/pkg/gcalendar"
	pkgLog "collab-assistant/pkg/log"
)

const defaultEventDuration = time.Hour

type implRepository struct {
	client     *gcalendar.Client
	calendarID string
	timezone   string
	l          pkgLog.Logger
}

// New creates an event repository backed by Google Calendar.
func New(client *gcalendar.Client, calendarID, timezone string, l pkgLog.Logger) repository.EventRepository {
	return &implRepository{
		client:     client,
		calendarID: calendarID,
		timezone:   timezone,
		l:          l,
	}
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	end := opt.End
	if end.IsZero() {
		end = opt.Start.Add(defaultEventDuration)
	}

	// The Calendar API rejects any colorId outside "1".."11" with a 400,
	// so other values (hex codes included) stay on the model only.
	colorID := ""
	if isCalendarColorID(opt.Color) {
		colorID = opt.Color
	}

	created, err := r.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: r.calendarID,
		Summary:    opt.Title,
		StartTime:  opt.Start,
		EndTime:    end,
		Timezone:   r.timezone,
		ColorID:    colorID,
	})
	if err != nil {
		r.l.Errorf(ctx, "gcal repository: failed to create event %q: %v", opt.Title, err)
		return model.Event{}, err
	}

	return model.Event{
		ID:       created.ID,
		Title:    created.Summary,
		Start:    created.StartTime,
		End:      created.EndTime,
		Category: opt.Category,
		Color:    opt.Color,
		HTMLLink: created.HtmlLink,
	}, nil
}

// isCalendarColorID reports whether s is one of the event color IDs the
// Calendar API accepts, "1" through "11".
func isCalendarColorID(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= 1 && n <= 11
}

func (r *implRepository) ListUpcoming(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	items, err := r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.calendarID,
		TimeMin:    opt.From,
		MaxResults: int64(opt.Limit),
	})
	if err != nil {
		r.l.Errorf(ctx, "gcal repository: failed to list events: %v", err)
		return nil, err
	}

	events := make([]model.Event, 0, len(items))
	for _, item := range items {
		events = append(events, model.Event{
			ID:       item.ID,
			Title:    item.Summary,
			Start:    item.StartTime,
			End:      item.EndTime,
			HTMLLink: item.HtmlLink,
		})
	}
	return events, nil
}
