package templates

import (
	"slices"
	"time"
)

// Weekdays are the day labels used in splits and requests, Monday first.
var Weekdays = []string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sáb", "Dom"}

func IsWeekday(label string) bool {
	return slices.Contains(Weekdays, label)
}

// WeekdayOf maps a label to its time.Weekday.
func WeekdayOf(label string) (time.Weekday, bool) {
	i := slices.Index(Weekdays, label)
	if i < 0 {
		return 0, false
	}
	return time.Weekday((i + 1) % 7), true
}

func Label(d time.Weekday) string {
	return Weekdays[(int(d)+6)%7]
}

// NextOccurrence returns the date of the next given weekday, today included.
func NextOccurrence(today time.Time, label string) (time.Time, bool) {
	target, ok := WeekdayOf(label)
	if !ok {
		return time.Time{}, false
	}
	diff := (int(target) - int(today.Weekday()) + 7) % 7
	return today.AddDate(0, 0, diff), true
}

// SortDays orders labels Monday first, dropping unknown ones.
func SortDays(days []string) []string {
	sorted := make([]string, 0, len(days))
	for _, d := range Weekdays {
		if slices.Contains(days, d) {
			sorted = append(sorted, d)
		}
	}
	return sorted
}
