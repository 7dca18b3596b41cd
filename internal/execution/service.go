package execution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/movimentai/internal/calendar"
	"github.com/2beens/movimentai/internal/exercises"
	"github.com/2beens/movimentai/internal/telemetry/metrics"
	"github.com/2beens/movimentai/internal/telemetry/tracing"
	"github.com/2beens/movimentai/internal/workouts"
	"github.com/2beens/movimentai/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=execution_test

var ErrRestDay = errors.New("no exercises planned for today")

type Action string

const (
	ActionCompleteSeries Action = "series"
	ActionSkip           Action = "skip"
	ActionCancelRest     Action = "rest-cancel"
)

type sessionStore interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	ClaimCompletion(ctx context.Context, id string) (bool, error)
}

type workoutGetter interface {
	Get(ctx context.Context, userID, id string) (*workouts.Workout, error)
}

type completionRecorder interface {
	Record(ctx context.Context, userID, workoutID, date string) (*calendar.Entry, error)
}

// Service runs workout executions: it builds the machine from today's split,
// keeps sessions in the store and records the completion once.
type Service struct {
	store    sessionStore
	workouts workoutGetter
	recorder completionRecorder
	phrases  *PhraseBook
	metrics  *metrics.Manager
	now      pkg.Clock
	newID    func() string
}

func NewService(
	store sessionStore,
	workoutGetter workoutGetter,
	recorder completionRecorder,
	metricsManager *metrics.Manager,
	now pkg.Clock,
) *Service {
	return &Service{
		store:    store,
		workouts: workoutGetter,
		recorder: recorder,
		phrases:  NewPhraseBook(),
		metrics:  metricsManager,
		now:      now,
		newID:    uuid.NewString,
	}
}

func (s *Service) Start(ctx context.Context, userID, workoutID string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "execution.service.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workoutID))

	workout, err := s.workouts.Get(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	day, split, ok := workout.Today(now)
	if !ok || len(split.Exercises) == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrRestDay, day)
	}

	list := make([]Exercise, 0, len(split.Exercises))
	for _, id := range split.Exercises {
		list = append(list, NewExercise(id, exercises.Title(id)))
	}
	machine, err := NewMachine(list)
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:        s.newID(),
		UserID:    userID,
		WorkoutID: workout.ID,
		Day:       day,
		SplitName: split.Name,
		Date:      pkg.FormatDate(now),
		Machine:   machine,
		StartedAt: now,
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.metrics.CounterExecutionsStarted.Inc()
	log.Debugf("execution %s started: user %s, workout %s, %d exercises", session.ID, userID, workoutID, len(list))
	return session, nil
}

// Get returns the session with the rest countdown brought up to date.
func (s *Service) Get(ctx context.Context, userID, sessionID string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "execution.service.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	session.CatchUp(s.now())
	return session, nil
}

// Apply runs one user action on the session. The returned error is a machine
// error (ErrCompleted, ErrResting, ErrNotResting) or a storage failure; a failed
// completion write is not an error here, it is reported in session.Completion.
func (s *Service) Apply(ctx context.Context, userID, sessionID string, action Action) (_ *Session, _ Transition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "execution.service.apply")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("action", string(action)))

	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, Transition{}, err
	}

	now := s.now()
	session.CatchUp(now)

	var transition Transition
	switch action {
	case ActionCompleteSeries:
		transition, err = session.Machine.CompleteSeries()
	case ActionSkip:
		transition, err = session.Machine.Skip()
	case ActionCancelRest:
		transition, err = session.Machine.CancelRest()
	default:
		err = fmt.Errorf("unknown action %q", action)
	}
	if err != nil {
		return session, transition, err
	}

	if transition.To == StateResting && transition.From != StateResting {
		session.RestSince = now
	}
	if transition.To != StateResting {
		session.RestSince = time.Time{}
	}
	if transition.Completed {
		// another request may have finished the same session meanwhile
		claimed, err := s.store.ClaimCompletion(ctx, session.ID)
		if err != nil {
			return nil, transition, fmt.Errorf("claim completion: %w", err)
		}
		if !claimed {
			return nil, Transition{}, ErrCompleted
		}
		session.CompletedAt = &now
		session.Completion = s.complete(ctx, session)
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, transition, fmt.Errorf("save session: %w", err)
	}
	return session, transition, nil
}

func (s *Service) complete(ctx context.Context, session *Session) *Completion {
	completion := &Completion{
		Phrase: s.phrases.Random(),
	}
	entry, err := s.recorder.Record(ctx, session.UserID, session.WorkoutID, session.Date)
	if err != nil {
		log.Errorf("execution %s: %s", session.ID, err)
		completion.Error = "failed to record workout completion"
		return completion
	}
	completion.Recorded = true
	completion.EntryID = entry.ID
	return completion
}

func (s *Service) load(ctx context.Context, userID, sessionID string) (*Session, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}
