package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/movimentai/internal/calendar"
	"github.com/2beens/movimentai/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

const workoutColumns = `
	id::text, title, type, difficulty, duration, exercises_count,
	days_per_week, selected_days, splits, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Create stores the workout and schedules it on the given dates, all in one transaction.
func (r *Repo) Create(ctx context.Context, userID string, workout Workout, scheduleDates []string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("workout.type", workout.Type),
		attribute.Int("schedule.dates", len(scheduleDates)),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	workout.ID = uuid.NewString()
	if workout.SelectedDays == nil {
		workout.SelectedDays = []string{}
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO workout
			(id, user_id, title, type, difficulty, duration, exercises_count, days_per_week, selected_days, splits)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at;
	`,
		workout.ID, userID, workout.Title, workout.Type, workout.Difficulty, workout.Duration,
		workout.ExercisesCount, workout.DaysPerWeek, workout.SelectedDays, workout.Splits,
	).Scan(&workout.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	if err = calendar.InsertScheduled(ctx, tx, userID, workout.ID, scheduleDates); err != nil {
		return nil, err
	}

	return &workout, nil
}

func (r *Repo) List(ctx context.Context, userID string) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT `+workoutColumns+`
		FROM workout
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

func (r *Repo) Get(ctx context.Context, userID, id string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	rows, err := r.db.Query(ctx, `
		SELECT `+workoutColumns+`
		FROM workout
		WHERE id = $1 AND user_id = $2;
	`, id, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return singleWorkout(rows)
}

// Latest returns the most recently created workout of the user.
func (r *Repo) Latest(ctx context.Context, userID string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT `+workoutColumns+`
		FROM workout
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1;
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return singleWorkout(rows)
}

func (r *Repo) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM workout WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) CountByType(ctx context.Context, workoutType string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.countbytype")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workout WHERE type = $1;`, workoutType).Scan(&count); err != nil {
		return -1, fmt.Errorf("count workouts: %w", err)
	}
	return count, nil
}

func singleWorkout(rows pgx.Rows) (*Workout, error) {
	list, err := scanWorkouts(rows)
	if err != nil {
		return nil, err
	}
	if len(list) != 1 {
		return nil, ErrWorkoutNotFound
	}
	return &list[0], nil
}

func scanWorkouts(rows pgx.Rows) ([]Workout, error) {
	list := make([]Workout, 0)
	for rows.Next() {
		var w Workout
		if err := rows.Scan(
			&w.ID, &w.Title, &w.Type, &w.Difficulty, &w.Duration, &w.ExercisesCount,
			&w.DaysPerWeek, &w.SelectedDays, &w.Splits, &w.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		list = append(list, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
