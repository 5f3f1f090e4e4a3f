package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves Korean date/time expressions to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Seoul"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var (
	reFullDate  = regexp.MustCompile(`(\d{4})년\s*(\d{1,2})월\s*(\d{1,2})일`)
	reMonthDay  = regexp.MustCompile(`(\d{1,2})월\s*(\d{1,2})일`)
	reDaysFrom  = regexp.MustCompile(`(\d+)일\s*(?:후|뒤)`)
	reWeeksFrom = regexp.MustCompile(`(\d+)주\s*(?:후|뒤)`)
	reWeekday   = regexp.MustCompile(`([월화수목금토일])요일`)

	reMeridiemClock = regexp.MustCompile(`(오전|오후)\s*(\d{1,2})시(?:\s*(\d{1,2})분)?`)
	rePlainClock    = regexp.MustCompile(`(\d{1,2})시(?:\s*(\d{1,2})분)?`)
	reColonClock    = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
)

var weekdays = map[string]time.Weekday{
	"월": time.Monday,
	"화": time.Tuesday,
	"수": time.Wednesday,
	"목": time.Thursday,
	"금": time.Friday,
	"토": time.Saturday,
	"일": time.Sunday,
}

// Resolution is the outcome of a successful Resolve call. HasClock reports
// whether an explicit clock time was found, so callers can tell a stated
// midnight apart from the date-only default.
type Resolution struct {
	Time     time.Time
	HasClock bool
}

// Resolve extracts an absolute date, and optionally a clock time, from free
// text containing Korean temporal expressions. Date patterns are tried in a
// fixed order and the first match wins. The boolean is false when no date
// pattern matches; absence of a date is not an error.
//
// A clock time is only applied after a successful date match; it overwrites
// the hour and minute of the resolved date.
func (p *Parser) Resolve(text string, baseTime time.Time) (Resolution, bool) {
	date, ok := p.resolveDate(text, baseTime.In(p.location))
	if !ok {
		return Resolution{}, false
	}
	resolved, hasClock := p.applyClock(text, date)
	return Resolution{Time: resolved, HasClock: hasClock}, true
}

func (p *Parser) resolveDate(text string, base time.Time) (time.Time, bool) {
	switch {
	case strings.Contains(text, "오늘"):
		return p.startOfDay(base), true
	case strings.Contains(text, "내일"):
		return p.startOfDay(base.AddDate(0, 0, 1)), true
	case strings.Contains(text, "모레"):
		return p.startOfDay(base.AddDate(0, 0, 2)), true
	}

	if m := reWeekday.FindStringSubmatch(text); m != nil {
		return p.nextWeekday(weekdays[m[1]], base), true
	}

	if m := reDaysFrom.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return p.startOfDay(base.AddDate(0, 0, n)), true
	}

	if m := reWeeksFrom.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return p.startOfDay(base.AddDate(0, 0, n*7)), true
	}

	// The full Y년 M월 D일 form is matched before M월 D일 so a year prefix is
	// never re-interpreted with rollover semantics.
	if m := reFullDate.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if !validMonthDay(month, day) {
			return time.Time{}, false
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location), true
	}

	if m := reMonthDay.FindStringSubmatch(text); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if !validMonthDay(month, day) {
			return time.Time{}, false
		}
		candidate := time.Date(base.Year(), time.Month(month), day, 0, 0, 0, 0, p.location)
		// Already past this year: roll forward to the same month/day next year.
		if candidate.Before(p.startOfDay(base)) {
			candidate = candidate.AddDate(1, 0, 0)
		}
		return candidate, true
	}

	return time.Time{}, false
}

// nextWeekday returns the next occurrence of target strictly after base.
// When base already falls on target, the result is seven days out.
func (p *Parser) nextWeekday(target time.Weekday, base time.Time) time.Time {
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(base.AddDate(0, 0, daysUntil))
}

// applyClock overwrites the hour/minute of date with a clock time found in
// text. Patterns are tried in order: meridiem form, plain hour form, colon
// form. The boolean is false when no clock matched and the date keeps its
// midnight default.
func (p *Parser) applyClock(text string, date time.Time) (time.Time, bool) {
	if m := reMeridiemClock.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[2])
		minute := 0
		if m[3] != "" {
			minute, _ = strconv.Atoi(m[3])
		}
		if hour >= 1 && hour <= 12 && minute <= 59 {
			if m[1] == "오후" && hour < 12 {
				hour += 12
			}
			if m[1] == "오전" && hour == 12 {
				hour = 0
			}
			return p.withClock(date, hour, minute), true
		}
	}

	if m := rePlainClock.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		// No meridiem: the hour is taken literally as a 24-hour value.
		if hour <= 23 && minute <= 59 {
			return p.withClock(date, hour, minute), true
		}
	}

	if m := reColonClock.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour <= 23 && minute <= 59 {
			return p.withClock(date, hour, minute), true
		}
	}

	return date, false
}

// StripTemporal removes every recognized date and time expression from text.
// The title extractor uses this to reduce a message to its free-text label.
func (p *Parser) StripTemporal(text string) string {
	for _, re := range []*regexp.Regexp{
		reFullDate, reMonthDay, reWeeksFrom, reDaysFrom, reWeekday,
		reMeridiemClock, rePlainClock, reColonClock,
	} {
		text = re.ReplaceAllString(text, "")
	}
	for _, word := range []string{"오늘", "내일", "모레", "오전", "오후"} {
		text = strings.ReplaceAll(text, word, "")
	}
	return text
}

func validMonthDay(month, day int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

func (p *Parser) withClock(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, p.location)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// StartOfDay is the exported form of startOfDay.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	return p.startOfDay(t)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
