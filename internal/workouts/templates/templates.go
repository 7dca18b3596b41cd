package templates

import (
	"errors"
	"fmt"
	"slices"
)

const (
	DifficultyLight    = "Leve"
	DifficultyModerate = "Moderado"
	DifficultyHigh     = "Alto"

	RestSplitName = "Descanso"
)

var (
	ErrUnsupportedDayCount = errors.New("unsupported number of days per week")
	ErrDaysMismatch        = errors.New("selected days do not match days per week")
	ErrInvalidDay          = errors.New("invalid weekday")
	ErrDuplicateDay        = errors.New("duplicate weekday")
)

// Split is the named list of exercises assigned to one weekday.
type Split struct {
	Name      string   `json:"name"`
	Exercises []string `json:"exercises"`
}

// Splits maps weekday labels to their split.
type Splits map[string]Split

func (s Splits) ExercisesCount() int {
	count := 0
	for _, split := range s {
		count += len(split.Exercises)
	}
	return count
}

var table = map[int][]Split{
	3: {
		{Name: "Full Body Express A", Exercises: []string{"chest-1", "back-1", "legs-1", "shoulders-1", "abs-1"}},
		{Name: "Full Body Express B", Exercises: []string{"chest-2", "back-2", "legs-2", "triceps-1", "abs-2"}},
		{Name: "Full Body Express C", Exercises: []string{"chest-3", "back-3", "legs-3", "biceps-1", "abs-3"}},
	},
	4: {
		{Name: "Peito & Tríceps", Exercises: []string{"chest-1", "chest-2", "chest-3", "triceps-1", "triceps-2", "triceps-3"}},
		{Name: "Costas & Bíceps", Exercises: []string{"back-1", "back-2", "back-3", "biceps-1", "biceps-2", "biceps-3"}},
		{Name: "Pernas Completo", Exercises: []string{"legs-1", "legs-2", "legs-3", "posterior-1", "posterior-2"}},
		{Name: "Full Body Express", Exercises: []string{"chest-1", "back-1", "shoulders-1", "legs-1", "abs-1"}},
	},
	5: {
		{Name: "Peito & Tríceps", Exercises: []string{"chest-1", "chest-2", "chest-3", "triceps-1", "triceps-2"}},
		{Name: "Costas & Bíceps", Exercises: []string{"back-1", "back-2", "back-3", "biceps-1", "biceps-2"}},
		{Name: "Pernas Completo", Exercises: []string{"legs-1", "legs-2", "legs-3", "posterior-1"}},
		{Name: "Ombros & Core", Exercises: []string{"shoulders-1", "shoulders-2", "shoulders-3", "abs-1", "abs-2", "abs-3"}},
		{Name: "Full Body Express", Exercises: []string{"chest-1", "back-1", "legs-1", "shoulders-1"}},
	},
	6: {
		{Name: "Peito & Tríceps", Exercises: []string{"chest-1", "chest-2", "chest-3", "triceps-1", "triceps-2", "triceps-3"}},
		{Name: "Costas & Bíceps", Exercises: []string{"back-1", "back-2", "back-3", "biceps-1", "biceps-2", "biceps-3"}},
		{Name: "Pernas Completo", Exercises: []string{"legs-1", "legs-2", "legs-3", "posterior-1", "posterior-2", "posterior-3"}},
		{Name: "Ombros & Core", Exercises: []string{"shoulders-1", "shoulders-2", "shoulders-3", "abs-1", "abs-2", "abs-3"}},
		{Name: "Full Body Express", Exercises: []string{"chest-1", "back-1", "legs-1", "shoulders-1", "abs-1"}},
		{Name: "Peito & Tríceps", Exercises: []string{"chest-1", "chest-2", "triceps-1", "triceps-2"}},
	},
}

// SupportedDayCounts lists the day counts Select accepts.
func SupportedDayCounts() []int {
	return []int{3, 4, 5, 6}
}

// Select assigns the fixed splits for dayCount to the days, in the order given:
// the i-th selected day gets the i-th split of the table.
func Select(dayCount int, days []string) (Splits, error) {
	entries, ok := table[dayCount]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDayCount, dayCount)
	}
	if len(days) != dayCount {
		return nil, fmt.Errorf("%w: %d days for %d per week", ErrDaysMismatch, len(days), dayCount)
	}
	for i, d := range days {
		if !IsWeekday(d) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDay, d)
		}
		if slices.Contains(days[:i], d) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDay, d)
		}
	}

	splits := make(Splits, dayCount)
	for i, d := range days {
		splits[d] = Split{
			Name:      entries[i].Name,
			Exercises: slices.Clone(entries[i].Exercises),
		}
	}
	return splits, nil
}

// Difficulty derives the intensity label from the generation inputs.
func Difficulty(age int, sex, activityLevel string) string {
	sedentary := activityLevel == "sedentary"
	older := age > 45
	if (sedentary || older) && sex == "female" {
		return DifficultyLight
	}
	if activityLevel == "very-active" || activityLevel == "athlete" {
		return DifficultyHigh
	}
	return DifficultyModerate
}
