package workouts

import (
	"time"

	"github.com/2beens/movimentai/internal/workouts/templates"
)

const (
	TypeAI       = "ai"
	TypeManual   = "manual"
	TypeTemplate = "template"

	DefaultDuration = 30
	// generated plans are counted as five exercises per training day
	exercisesPerGeneratedDay = 5
)

type Workout struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Type           string           `json:"type"`
	Difficulty     string           `json:"difficulty"`
	Duration       int              `json:"duration"`
	ExercisesCount int              `json:"exercisesCount"`
	DaysPerWeek    int              `json:"daysPerWeek"`
	SelectedDays   []string         `json:"selectedDays"`
	Splits         templates.Splits `json:"splits"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// SplitFor returns the split planned for the weekday label, if any.
func (w *Workout) SplitFor(day string) (templates.Split, bool) {
	split, ok := w.Splits[day]
	return split, ok
}

// Today resolves the split planned for now's weekday.
func (w *Workout) Today(now time.Time) (string, templates.Split, bool) {
	day := templates.Label(now.Weekday())
	split, ok := w.SplitFor(day)
	return day, split, ok
}
