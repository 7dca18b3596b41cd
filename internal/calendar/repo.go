package calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/movimentai/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrEntryNotFound   = errors.New("calendar entry not found")
	ErrWorkoutNotFound = errors.New("workout not found")
)

const entryColumns = `
	ce.id::text, ce.workout_id::text, ce.date::text, ce.status, ce.created_at,
	w.title, w.type, w.difficulty, w.duration`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Range lists the entries between from and to (inclusive), with their workout summary.
func (r *Repo) Range(ctx context.Context, userID, from, to string) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.calendar.range")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", from), attribute.String("to", to))

	rows, err := r.db.Query(ctx, `
		SELECT `+entryColumns+`
		FROM calendar_entry ce
		JOIN workout w ON w.id = ce.workout_id
		WHERE ce.user_id = $1 AND ce.date >= $2::date AND ce.date <= $3::date
		ORDER BY ce.date ASC, ce.created_at ASC;
	`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// NextScheduled returns the first scheduled entry on or after the date.
func (r *Repo) NextScheduled(ctx context.Context, userID, from string) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.calendar.nextscheduled")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT `+entryColumns+`
		FROM calendar_entry ce
		JOIN workout w ON w.id = ce.workout_id
		WHERE ce.user_id = $1 AND ce.date >= $2::date AND ce.status = $3
		ORDER BY ce.date ASC, w.created_at DESC
		LIMIT 1;
	`, userID, from, StatusScheduled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEntryNotFound
	}
	return &entries[0], nil
}

// Schedule adds an entry for one of the user's workouts.
func (r *Repo) Schedule(ctx context.Context, userID, workoutID, date string) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.calendar.schedule")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.insert(ctx, userID, workoutID, date, StatusScheduled)
}

// RecordCompletion stores one completed entry for the workout on the date.
func (r *Repo) RecordCompletion(ctx context.Context, userID, workoutID, date string) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.calendar.recordcompletion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workoutID), attribute.String("date", date))

	return r.insert(ctx, userID, workoutID, date, StatusCompleted)
}

func (r *Repo) insert(ctx context.Context, userID, workoutID, date, status string) (*Entry, error) {
	entry := &Entry{
		ID:        uuid.NewString(),
		WorkoutID: workoutID,
		Date:      date,
		Status:    status,
	}
	err := r.db.QueryRow(ctx, `
		INSERT INTO calendar_entry (id, user_id, workout_id, date, status)
		SELECT $1::uuid, w.user_id, w.id, $4::date, $5::text
		FROM workout w
		WHERE w.id = $3::uuid AND w.user_id = $2::uuid
		RETURNING created_at;
	`, entry.ID, userID, workoutID, date, status).Scan(&entry.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.calendar.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM calendar_entry WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// CountCompletedSince counts completed entries of all users from the date on.
func (r *Repo) CountCompletedSince(ctx context.Context, from string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.calendar.countcompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM calendar_entry WHERE status = $1 AND date >= $2::date;
	`, StatusCompleted, from).Scan(&count)
	if err != nil {
		return -1, fmt.Errorf("count completed entries: %w", err)
	}
	return count, nil
}

// InsertScheduled adds scheduled entries for a just created workout within tx.
func InsertScheduled(ctx context.Context, tx pgx.Tx, userID, workoutID string, dates []string) error {
	for _, date := range dates {
		_, err := tx.Exec(ctx, `
			INSERT INTO calendar_entry (id, user_id, workout_id, date, status)
			VALUES ($1, $2, $3, $4::date, $5);
		`, uuid.NewString(), userID, workoutID, date, StatusScheduled)
		if err != nil {
			return fmt.Errorf("insert calendar entry for %s: %w", date, err)
		}
	}
	return nil
}

func scanEntries(rows pgx.Rows) ([]Entry, error) {
	entries := make([]Entry, 0)
	for rows.Next() {
		e := Entry{Workout: &Summary{}}
		if err := rows.Scan(
			&e.ID, &e.WorkoutID, &e.Date, &e.Status, &e.CreatedAt,
			&e.Workout.Title, &e.Workout.Type, &e.Workout.Difficulty, &e.Workout.Duration,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
