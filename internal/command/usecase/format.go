package usecase

import (
	"fmt"
	"time"
)

var koreanWeekdays = map[time.Weekday]string{
	time.Sunday:    "일",
	time.Monday:    "월",
	time.Tuesday:   "화",
	time.Wednesday: "수",
	time.Thursday:  "목",
	time.Friday:    "금",
	time.Saturday:  "토",
}

// formatDate renders a date as "2024년 5월 3일 (금)".
func formatDate(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일 (%s)", t.Year(), int(t.Month()), t.Day(), koreanWeekdays[t.Weekday()])
}

// formatDateTime appends a 12-hour clock when withClock is set, so a command
// that explicitly named midnight still renders its clock time.
func formatDateTime(t time.Time, withClock bool) string {
	if !withClock {
		return formatDate(t)
	}
	return formatDate(t) + " " + formatClock(t)
}

// formatEventTime renders a calendar event's start. Calendar rows carry no
// clock flag, so exact midnight is treated as an all-day event.
func formatEventTime(t time.Time) string {
	return formatDateTime(t, t.Hour() != 0 || t.Minute() != 0)
}

func formatClock(t time.Time) string {
	meridiem := "오전"
	hour := t.Hour()
	if hour >= 12 {
		meridiem = "오후"
		if hour > 12 {
			hour -= 12
		}
	}
	if hour == 0 {
		hour = 12
	}
	if t.Minute() == 0 {
		return fmt.Sprintf("%s %d시", meridiem, hour)
	}
	return fmt.Sprintf("%s %d시 %d분", meridiem, hour, t.Minute())
}
