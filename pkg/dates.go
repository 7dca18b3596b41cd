package pkg

import (
	"time"
)

// DateLayout is the calendar date format used across the API and the db (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Clock returns the current time in the service time zone.
type Clock func() time.Time

func ClockIn(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DateOrToday parses s, or returns today's date when s is empty.
func DateOrToday(s string, now Clock) (string, error) {
	if s == "" {
		return FormatDate(now()), nil
	}
	if _, err := ParseDate(s); err != nil {
		return "", err
	}
	return s, nil
}

// WeekStart returns midnight of the Monday of t's week.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
