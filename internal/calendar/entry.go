package calendar

import "time"

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
)

type Entry struct {
	ID        string    `json:"id"`
	WorkoutID string    `json:"workoutId"`
	Date      string    `json:"date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	Workout   *Summary  `json:"workout,omitempty"`
}

// Summary is the part of the workout shown next to a calendar entry.
type Summary struct {
	Title      string `json:"title"`
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
	Duration   int    `json:"duration"`
}

// GroupByDate keeps the order of entries within each date.
func GroupByDate(entries []Entry) map[string][]Entry {
	grouped := make(map[string][]Entry)
	for _, e := range entries {
		grouped[e.Date] = append(grouped[e.Date], e)
	}
	return grouped
}
