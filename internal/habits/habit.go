package habits

import (
	"slices"
	"time"
)

const (
	MaxHabitsPerUser = 20
	DefaultIcon      = "✨"
)

type Habit struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Icon           string    `json:"icon"`
	CompletedDates []string  `json:"completedDates"`
	Completed      bool      `json:"completed"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CompletedOn reports whether the habit was checked on the given date.
func (h *Habit) CompletedOn(date string) bool {
	return slices.Contains(h.CompletedDates, date)
}

// Defaults are created for a user on onboarding when they have no habits yet.
var Defaults = []Habit{
	{Name: "Beber água", Icon: "💧"},
	{Name: "Dormir bem", Icon: "😴"},
	{Name: "Fazer treino", Icon: "💪"},
	{Name: "Comer saudável", Icon: "🥗"},
}
