package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/movimentai/internal/calendar"
	"github.com/2beens/movimentai/internal/habits"
	"github.com/2beens/movimentai/internal/profiles"
	"github.com/2beens/movimentai/internal/telemetry/tracing"
	"github.com/2beens/movimentai/internal/water"
	"github.com/2beens/movimentai/internal/workouts"
	"github.com/2beens/movimentai/internal/workouts/templates"
	"github.com/2beens/movimentai/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=builder_mocks_test.go -package=dashboard_test

type habitsReader interface {
	List(ctx context.Context, userID string) ([]habits.Habit, error)
}

type waterReader interface {
	GetOrCreate(ctx context.Context, userID, date string) (*water.Intake, error)
}

type calendarReader interface {
	Range(ctx context.Context, userID, from, to string) ([]calendar.Entry, error)
	NextScheduled(ctx context.Context, userID, from string) (*calendar.Entry, error)
}

type workoutsReader interface {
	Get(ctx context.Context, userID, id string) (*workouts.Workout, error)
	Latest(ctx context.Context, userID string) (*workouts.Workout, error)
}

type profilesReader interface {
	Get(ctx context.Context, userID string) (*profiles.Profile, error)
}

// Builder reads every part of the dashboard. A part that fails to load is
// logged and replaced by its empty value, so the page always renders.
type Builder struct {
	habits   habitsReader
	water    waterReader
	calendar calendarReader
	workouts workoutsReader
	profiles profilesReader
	now      pkg.Clock
}

func NewBuilder(
	habitsRepo habitsReader,
	waterRepo waterReader,
	calendarRepo calendarReader,
	workoutsRepo workoutsReader,
	profilesRepo profilesReader,
	now pkg.Clock,
) *Builder {
	return &Builder{
		habits:   habitsRepo,
		water:    waterRepo,
		calendar: calendarRepo,
		workouts: workoutsRepo,
		profiles: profilesRepo,
		now:      now,
	}
}

func (b *Builder) Build(ctx context.Context, userID string) *Dashboard {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.build")
	defer span.End()

	now := b.now()
	today := pkg.FormatDate(now)
	d := &Dashboard{
		Date:   today,
		Habits: []habits.Habit{},
		Water:  water.NewIntake(today),
	}

	degrade := func(part string, err error) {
		log.Errorf("dashboard for %s, %s: %s", userID, part, err)
		d.Degraded = append(d.Degraded, part)
	}

	if list, err := b.habits.List(ctx, userID); err != nil {
		degrade("habits", err)
	} else {
		for i := range list {
			list[i].Completed = list[i].CompletedOn(today)
		}
		d.Habits = list
	}

	if intake, err := b.water.GetOrCreate(ctx, userID, today); err != nil {
		degrade("water", err)
	} else {
		d.Water = *intake
	}

	profile, err := b.profiles.Get(ctx, userID)
	if err != nil && !errors.Is(err, profiles.ErrProfileNotFound) {
		degrade("profile", err)
	}
	if profile == nil {
		profile = profiles.Empty(userID)
	}
	d.Profile = ProfileSummary{
		Name:                profile.Name,
		PhotoURL:            profile.PhotoURL,
		Goal:                profile.Goal,
		Level:               profile.Level,
		OnboardingCompleted: profile.OnboardingCompleted,
	}
	d.Mindfulness = Mindfulness{
		Enabled:        profile.MindfulnessEnabled,
		CompletedToday: profile.MindfulnessDoneOn(today),
	}

	weekStart := pkg.WeekStart(now)
	weekEntries, err := b.calendar.Range(ctx, userID, pkg.FormatDate(weekStart), pkg.FormatDate(weekStart.AddDate(0, 0, 6)))
	if err != nil {
		degrade("week", err)
	}
	d.Week, d.WeekDone = weekProgress(weekStart, weekEntries)

	next, err := b.nextWorkout(ctx, userID, profile.DefaultWorkoutID, now, weekEntries)
	if err != nil {
		degrade("nextWorkout", err)
	}
	d.NextWorkout = next

	return d
}

func weekProgress(weekStart time.Time, entries []calendar.Entry) ([]DayProgress, int) {
	byDate := calendar.GroupByDate(entries)
	week := make([]DayProgress, 0, len(templates.Weekdays))
	done := 0
	for i, label := range templates.Weekdays {
		date := pkg.FormatDate(weekStart.AddDate(0, 0, i))
		dp := DayProgress{Day: label, Date: date}
		for _, e := range byDate[date] {
			switch e.Status {
			case calendar.StatusCompleted:
				dp.Completed = true
			case calendar.StatusScheduled:
				dp.Scheduled = true
			}
		}
		if dp.Completed {
			done++
		}
		week = append(week, dp)
	}
	return week, done
}

// nextWorkout is today's split of the current plan when it is not done yet,
// otherwise the next scheduled calendar entry. Nil when there is none.
func (b *Builder) nextWorkout(
	ctx context.Context,
	userID, defaultWorkoutID string,
	now time.Time,
	weekEntries []calendar.Entry,
) (*NextWorkout, error) {
	today := pkg.FormatDate(now)

	workout, err := b.currentWorkout(ctx, userID, defaultWorkoutID)
	if err != nil {
		return nil, err
	}

	if workout != nil {
		day, split, ok := workout.Today(now)
		if ok && len(split.Exercises) > 0 && !completedOn(weekEntries, workout.ID, today) {
			return &NextWorkout{
				WorkoutID: workout.ID,
				Title:     workout.Title,
				Date:      today,
				Day:       day,
				SplitName: split.Name,
				Today:     true,
			}, nil
		}
	}

	tomorrow := pkg.FormatDate(now.AddDate(0, 0, 1))
	entry, err := b.calendar.NextScheduled(ctx, userID, tomorrow)
	if errors.Is(err, calendar.ErrEntryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	next := &NextWorkout{
		WorkoutID: entry.WorkoutID,
		Date:      entry.Date,
	}
	if entry.Workout != nil {
		next.Title = entry.Workout.Title
	}
	if t, err := pkg.ParseDate(entry.Date); err == nil {
		next.Day = templates.Label(t.Weekday())
	}
	if workout != nil && workout.ID == entry.WorkoutID {
		if split, ok := workout.SplitFor(next.Day); ok {
			next.SplitName = split.Name
		}
	}
	return next, nil
}

// currentWorkout prefers the workout the user picked as default, then the latest one.
func (b *Builder) currentWorkout(ctx context.Context, userID, defaultWorkoutID string) (*workouts.Workout, error) {
	if defaultWorkoutID != "" {
		workout, err := b.workouts.Get(ctx, userID, defaultWorkoutID)
		if err == nil {
			return workout, nil
		}
		if !errors.Is(err, workouts.ErrWorkoutNotFound) {
			return nil, err
		}
	}

	workout, err := b.workouts.Latest(ctx, userID)
	if errors.Is(err, workouts.ErrWorkoutNotFound) {
		return nil, nil
	}
	return workout, err
}

func completedOn(entries []calendar.Entry, workoutID, date string) bool {
	for _, e := range entries {
		if e.Date == date && e.WorkoutID == workoutID && e.Status == calendar.StatusCompleted {
			return true
		}
	}
	return false
}
