package execution

import (
	"time"
)

// Completion is the outcome of persisting a finished workout.
type Completion struct {
	Recorded bool   `json:"recorded"`
	EntryID  string `json:"entryId,omitempty"`
	Error    string `json:"error,omitempty"`
	Phrase   string `json:"phrase"`
}

// Session is one user's run of today's split, stored between requests.
type Session struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	WorkoutID   string      `json:"workoutId"`
	Day         string      `json:"day"`
	SplitName   string      `json:"splitName"`
	Date        string      `json:"date"`
	Machine     *Machine    `json:"machine"`
	StartedAt   time.Time   `json:"startedAt"`
	RestSince   time.Time   `json:"restSince,omitempty"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
	Completion  *Completion `json:"completion,omitempty"`
}

// CatchUp applies the whole seconds of rest that passed since RestSince, so a
// countdown keeps running between requests.
func (s *Session) CatchUp(now time.Time) {
	if s.Machine.State != StateResting || s.RestSince.IsZero() {
		return
	}
	secs := int(now.Sub(s.RestSince) / time.Second)
	if secs <= 0 {
		return
	}
	elapsed := time.Duration(secs) * time.Second
	_, _ = s.Machine.Advance(elapsed)
	s.RestSince = s.RestSince.Add(elapsed)
	if s.Machine.State != StateResting {
		s.RestSince = time.Time{}
	}
}
