package model

import "time"

// Event is a calendar event as seen by the assistant.
type Event struct {
	ID       string
	Title    string
	Start    time.Time
	End      time.Time
	Category string
	Color    string
	HTMLLink string // deep link to the event in the calendar UI
}
