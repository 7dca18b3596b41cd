package dashboard

import (
	"github.com/2beens/movimentai/internal/habits"
	"github.com/2beens/movimentai/internal/water"
)

type DayProgress struct {
	Day       string `json:"day"`
	Date      string `json:"date"`
	Scheduled bool   `json:"scheduled"`
	Completed bool   `json:"completed"`
}

type NextWorkout struct {
	WorkoutID string `json:"workoutId"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Day       string `json:"day"`
	SplitName string `json:"splitName,omitempty"`
	Today     bool   `json:"today"`
}

type ProfileSummary struct {
	Name                string `json:"name"`
	PhotoURL            string `json:"photoUrl"`
	Goal                string `json:"goal"`
	Level               string `json:"level"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`
}

type Mindfulness struct {
	Enabled        bool `json:"enabled"`
	CompletedToday bool `json:"completedToday"`
}

type Dashboard struct {
	Date        string         `json:"date"`
	Habits      []habits.Habit `json:"habits"`
	Water       water.Intake   `json:"water"`
	Week        []DayProgress  `json:"week"`
	WeekDone    int            `json:"weekCompleted"`
	NextWorkout *NextWorkout   `json:"nextWorkout"`
	Profile     ProfileSummary `json:"profile"`
	Mindfulness Mindfulness    `json:"mindfulness"`
	// names of the parts that could not be read and hold defaults
	Degraded []string `json:"degraded,omitempty"`
}
