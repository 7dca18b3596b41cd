package execution

import (
	"errors"
	"time"
)

type State string

const (
	StateExerciseActive State = "exercise_active"
	StateResting        State = "resting"
	StateCompleted      State = "completed"
)

const (
	DefaultSets        = 3
	DefaultReps        = 12
	DefaultRestSeconds = 60
)

var (
	ErrCompleted   = errors.New("workout already completed")
	ErrNoExercises = errors.New("no exercises to execute")
	ErrNotResting  = errors.New("not resting")
	ErrResting     = errors.New("rest in progress")
)

type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestSeconds int    `json:"restSeconds"`
	Series      []bool `json:"series"`
	Skipped     bool   `json:"skipped"`
}

// NewExercise returns an exercise with the default 3x12 and 60s rest.
func NewExercise(id, name string) Exercise {
	return Exercise{
		ID:          id,
		Name:        name,
		Sets:        DefaultSets,
		Reps:        DefaultReps,
		RestSeconds: DefaultRestSeconds,
		Series:      make([]bool, DefaultSets),
	}
}

func (e Exercise) SeriesDone() int {
	done := 0
	for _, s := range e.Series {
		if s {
			done++
		}
	}
	return done
}

func (e Exercise) FullyCompleted() bool {
	return len(e.Series) > 0 && e.SeriesDone() == len(e.Series)
}

// Transition describes what a single operation did to the machine.
// Completed is true only for the operation that finished the workout.
type Transition struct {
	From      State `json:"from"`
	To        State `json:"to"`
	Completed bool  `json:"completed"`
}

// Machine is the state of one workout run. It holds no clock; time enters
// only through Tick and Advance.
type Machine struct {
	Exercises     []Exercise `json:"exercises"`
	ExerciseIndex int        `json:"exerciseIndex"`
	SeriesIndex   int        `json:"seriesIndex"`
	State         State      `json:"state"`
	RestRemaining int        `json:"restRemaining"`
}

func NewMachine(exercises []Exercise) (*Machine, error) {
	if len(exercises) == 0 {
		return nil, ErrNoExercises
	}
	list := make([]Exercise, len(exercises))
	for i, ex := range exercises {
		if ex.Sets <= 0 {
			ex.Sets = DefaultSets
		}
		if ex.RestSeconds < 0 {
			ex.RestSeconds = 0
		}
		ex.Series = make([]bool, ex.Sets)
		ex.Skipped = false
		list[i] = ex
	}
	return &Machine{
		Exercises: list,
		State:     StateExerciseActive,
	}, nil
}

func (m *Machine) Current() *Exercise {
	if m.State == StateCompleted {
		return nil
	}
	return &m.Exercises[m.ExerciseIndex]
}

func (m *Machine) isLastExercise() bool {
	return m.ExerciseIndex == len(m.Exercises)-1
}

// CompleteSeries marks the current series as done. With series left it starts
// the rest countdown, after the last series it moves on to the next exercise
// or finishes the workout.
func (m *Machine) CompleteSeries() (Transition, error) {
	from := m.State
	switch m.State {
	case StateCompleted:
		return Transition{From: from, To: from}, ErrCompleted
	case StateResting:
		return Transition{From: from, To: from}, ErrResting
	}

	ex := &m.Exercises[m.ExerciseIndex]
	ex.Series[m.SeriesIndex] = true

	if m.SeriesIndex < ex.Sets-1 {
		m.SeriesIndex++
		m.RestRemaining = ex.RestSeconds
		m.State = StateResting
		if m.RestRemaining == 0 {
			m.State = StateExerciseActive
		}
		return Transition{From: from, To: m.State}, nil
	}

	return m.nextExercise(from), nil
}

// Skip marks the current exercise skipped, also in the middle of a rest.
func (m *Machine) Skip() (Transition, error) {
	from := m.State
	if m.State == StateCompleted {
		return Transition{From: from, To: from}, ErrCompleted
	}

	m.Exercises[m.ExerciseIndex].Skipped = true
	return m.nextExercise(from), nil
}

func (m *Machine) nextExercise(from State) Transition {
	m.RestRemaining = 0
	if m.isLastExercise() {
		m.State = StateCompleted
		return Transition{From: from, To: StateCompleted, Completed: true}
	}
	m.ExerciseIndex++
	m.SeriesIndex = 0
	m.State = StateExerciseActive
	return Transition{From: from, To: StateExerciseActive}
}

func (m *Machine) CancelRest() (Transition, error) {
	from := m.State
	switch m.State {
	case StateCompleted:
		return Transition{From: from, To: from}, ErrCompleted
	case StateExerciseActive:
		return Transition{From: from, To: from}, ErrNotResting
	}

	m.RestRemaining = 0
	m.State = StateExerciseActive
	return Transition{From: from, To: m.State}, nil
}

// Tick counts one second of rest. Outside of a rest it changes nothing.
func (m *Machine) Tick() (Transition, error) {
	from := m.State
	if m.State == StateCompleted {
		return Transition{From: from, To: from}, ErrCompleted
	}
	if m.State != StateResting {
		return Transition{From: from, To: from}, nil
	}

	m.RestRemaining--
	if m.RestRemaining <= 0 {
		m.RestRemaining = 0
		m.State = StateExerciseActive
	}
	return Transition{From: from, To: m.State}, nil
}

// Advance applies the whole seconds of d as ticks and returns the overall transition.
func (m *Machine) Advance(d time.Duration) (Transition, error) {
	from := m.State
	if m.State == StateCompleted {
		return Transition{From: from, To: from}, ErrCompleted
	}

	for secs := int(d / time.Second); secs > 0 && m.State == StateResting; secs-- {
		if _, err := m.Tick(); err != nil {
			return Transition{From: from, To: m.State}, err
		}
	}
	return Transition{From: from, To: m.State}, nil
}

// Clone returns a deep copy, safe to hand to another goroutine.
func (m *Machine) Clone() *Machine {
	c := *m
	c.Exercises = make([]Exercise, len(m.Exercises))
	for i, ex := range m.Exercises {
		ex.Series = append([]bool(nil), ex.Series...)
		c.Exercises[i] = ex
	}
	return &c
}
