package habits

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/movimentai/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrTooManyHabits = errors.New("too many habits")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, userID string) (_ []Habit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id::text, name, icon, completed_dates, created_at
		FROM habit
		WHERE user_id = $1
		ORDER BY created_at ASC;
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := make([]Habit, 0)
	for rows.Next() {
		var h Habit
		if err := rows.Scan(&h.ID, &h.Name, &h.Icon, &h.CompletedDates, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("habits.count", len(habits)))
	return habits, nil
}

// Add inserts a new habit, unless the user already has MaxHabitsPerUser of them.
// Adds of the same user are serialized on an advisory lock, so concurrent
// requests can't both pass the count.
func (r *Repo) Add(ctx context.Context, userID, name, icon string) (_ *Habit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

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

	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::text));`, userID); err != nil {
		return nil, fmt.Errorf("lock habits: %w", err)
	}

	habit := &Habit{
		ID:             uuid.NewString(),
		Name:           name,
		Icon:           icon,
		CompletedDates: []string{},
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO habit (id, user_id, name, icon)
		SELECT $1::uuid, $2::uuid, $3::text, $4::text
		WHERE (SELECT COUNT(*) FROM habit WHERE user_id = $2::uuid) < $5::int
		RETURNING created_at;
	`, habit.ID, userID, name, icon, MaxHabitsPerUser).Scan(&habit.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTooManyHabits
	}
	if err != nil {
		return nil, err
	}

	return habit, nil
}

// Toggle adds the date to the completed dates, or removes it if already there.
// Returns whether the habit is completed on the date after the toggle.
func (r *Repo) Toggle(ctx context.Context, userID, id, date string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.toggle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("habit.id", id), attribute.String("date", date))

	var completed bool
	err = r.db.QueryRow(ctx, `
		UPDATE habit SET completed_dates =
			CASE WHEN $3::text = ANY(completed_dates)
				THEN array_remove(completed_dates, $3::text)
				ELSE array_append(completed_dates, $3::text)
			END
		WHERE id = $1 AND user_id = $2
		RETURNING $3::text = ANY(completed_dates);
	`, id, userID, date).Scan(&completed)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, ErrHabitNotFound
	}
	if err != nil {
		return false, err
	}

	return completed, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.habits.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM habit WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrHabitNotFound
	}
	return nil
}

// InsertDefaults adds the default habits within tx when the user has none.
// Returns the number of habits inserted.
func InsertDefaults(ctx context.Context, tx pgx.Tx, userID string) (int, error) {
	var existing int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM habit WHERE user_id = $1;`, userID).Scan(&existing); err != nil {
		return 0, fmt.Errorf("count habits: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	// distinct timestamps keep the listing order stable
	now := time.Now()
	for i, h := range Defaults {
		_, err := tx.Exec(ctx, `
			INSERT INTO habit (id, user_id, name, icon, created_at) VALUES ($1, $2, $3, $4, $5);
		`, uuid.NewString(), userID, h.Name, h.Icon, now.Add(time.Duration(i)*time.Millisecond))
		if err != nil {
			return 0, fmt.Errorf("insert default habit %s: %w", h.Name, err)
		}
	}
	return len(Defaults), nil
}
