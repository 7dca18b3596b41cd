package water

import "errors"

const (
	DefaultGoalCups  = 8
	GoalIncreaseStep = 4
	MaxGoalCups      = 28
	MinGoalCups      = 4
)

var (
	ErrGoalAtMax = errors.New("water goal already at maximum")
	ErrGoalAtMin = errors.New("water goal already at minimum")
)

type Intake struct {
	Date          string `json:"date"`
	CupsCompleted int    `json:"cupsCompleted"`
	GoalCups      int    `json:"goalCups"`
	GoalReached   bool   `json:"goalReached"`
}

func NewIntake(date string) Intake {
	return Intake{
		Date:     date,
		GoalCups: DefaultGoalCups,
	}
}

func (i Intake) withGoalReached() Intake {
	i.GoalReached = i.GoalCups > 0 && i.CupsCompleted >= i.GoalCups
	return i
}

// SetCups clamps cups to [0, goal].
func (i Intake) SetCups(cups int) Intake {
	i.CupsCompleted = min(max(cups, 0), i.GoalCups)
	return i.withGoalReached()
}

func (i Intake) IncreaseGoal() (Intake, error) {
	if i.GoalCups >= MaxGoalCups {
		return i, ErrGoalAtMax
	}
	i.GoalCups += GoalIncreaseStep
	return i.withGoalReached(), nil
}

// DecreaseGoal lowers the goal by one cup, and the cups with it if they overflow.
func (i Intake) DecreaseGoal() (Intake, error) {
	if i.GoalCups <= MinGoalCups {
		return i, ErrGoalAtMin
	}
	i.GoalCups--
	i.CupsCompleted = min(i.CupsCompleted, i.GoalCups)
	return i.withGoalReached(), nil
}
