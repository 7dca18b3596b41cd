package profiles

import (
	"slices"
	"time"
)

type Measurements struct {
	Chest float64 `json:"chest" validate:"gte=0,lt=400"`
	Waist float64 `json:"waist" validate:"gte=0,lt=400"`
	Hips  float64 `json:"hips" validate:"gte=0,lt=400"`
}

type Profile struct {
	UserID        string       `json:"userId"`
	Email         string       `json:"email"`
	Name          string       `json:"name"`
	Age           int          `json:"age"`
	Gender        string       `json:"gender"`
	Height        float64      `json:"height"`
	Weight        float64      `json:"weight"`
	Goal          string       `json:"goal"`
	AvailableTime int          `json:"availableTime"`
	Equipment     []string     `json:"equipment"`
	Level         string       `json:"level"`
	Restrictions  []string     `json:"restrictions"`
	Measurements  Measurements `json:"measurements"`
	PhotoURL      string       `json:"photoUrl"`

	OnboardingCompleted       bool      `json:"onboardingCompleted"`
	MindfulnessEnabled        bool      `json:"mindfulnessEnabled"`
	MindfulnessCompletedDates []string  `json:"mindfulnessCompletedDates"`
	DefaultWorkoutID          string    `json:"defaultWorkoutId,omitempty"`
	UpdatedAt                 time.Time `json:"updatedAt"`
}

// Empty is what a user without a stored profile gets.
func Empty(userID string) *Profile {
	return &Profile{
		UserID:                    userID,
		Equipment:                 []string{},
		Restrictions:              []string{},
		MindfulnessCompletedDates: []string{},
	}
}

func (p *Profile) MindfulnessDoneOn(date string) bool {
	return slices.Contains(p.MindfulnessCompletedDates, date)
}

type Onboarding struct {
	Name          string       `json:"name" validate:"required,max=80"`
	Age           int          `json:"age" validate:"required,min=10,max=100"`
	Gender        string       `json:"gender" validate:"required,oneof=male female other"`
	Height        float64      `json:"height" validate:"required,gt=0,lt=300"`
	Weight        float64      `json:"weight" validate:"required,gt=0,lt=500"`
	Goal          string       `json:"goal" validate:"required,oneof=fat-loss muscle-gain maintenance conditioning consistency"`
	TimeAvailable int          `json:"timeAvailable" validate:"required,oneof=5 10 20 30 45"`
	Equipment     []string     `json:"equipment" validate:"dive,oneof=none dumbbells bands gym"`
	Level         string       `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Restrictions  []string     `json:"restrictions" validate:"max=10,dive,max=200"`
	Measurements  Measurements `json:"measurements"`
}

// Update holds the fields editable from the profile screen.
type Update struct {
	Name         string       `json:"name" validate:"required,max=80"`
	Age          int          `json:"age" validate:"gte=0,max=100"`
	Height       float64      `json:"height" validate:"gte=0,lt=300"`
	Weight       float64      `json:"weight" validate:"gte=0,lt=500"`
	Goal         string       `json:"goal" validate:"omitempty,oneof=fat-loss muscle-gain maintenance conditioning consistency"`
	Level        string       `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Measurements Measurements `json:"measurements"`
}
