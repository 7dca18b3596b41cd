package water

import (
	"context"
	"fmt"

	"github.com/2beens/movimentai/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// GetOrCreate returns the intake of the day, creating it with the default goal.
func (r *Repo) GetOrCreate(ctx context.Context, userID, date string) (_ *Intake, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.getorcreate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	intake, err := getOrCreate(ctx, r.db, userID, date, false)
	if err != nil {
		return nil, err
	}
	return intake, nil
}

// Update applies fn to the (possibly new) intake of the day within a transaction.
// An error from fn aborts the update and is returned as is.
func (r *Repo) Update(ctx context.Context, userID, date string, fn func(Intake) (Intake, error)) (_ *Intake, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

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

	current, err := getOrCreate(ctx, tx, userID, date, true)
	if err != nil {
		return nil, err
	}

	updated, err := fn(*current)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE water_intake SET cups_completed = $3, goal_cups = $4
		WHERE user_id = $1 AND date = $2::date;
	`, userID, date, updated.CupsCompleted, updated.GoalCups)
	if err != nil {
		return nil, err
	}

	updated = updated.withGoalReached()
	return &updated, nil
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getOrCreate(ctx context.Context, q querier, userID, date string, forUpdate bool) (*Intake, error) {
	// the no-op update makes RETURNING work for an existing row too, and locks it
	query := `
		INSERT INTO water_intake (user_id, date, cups_completed, goal_cups)
		VALUES ($1, $2::date, 0, $3)
		ON CONFLICT (user_id, date) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING date::text, cups_completed, goal_cups;`
	if !forUpdate {
		query = `
		WITH inserted AS (
			INSERT INTO water_intake (user_id, date, cups_completed, goal_cups)
			VALUES ($1, $2::date, 0, $3)
			ON CONFLICT (user_id, date) DO NOTHING
			RETURNING date::text, cups_completed, goal_cups
		)
		SELECT * FROM inserted
		UNION ALL
		SELECT date::text, cups_completed, goal_cups FROM water_intake
		WHERE user_id = $1 AND date = $2::date
		LIMIT 1;`
	}

	intake := &Intake{}
	err := q.QueryRow(ctx, query, userID, date, DefaultGoalCups).
		Scan(&intake.Date, &intake.CupsCompleted, &intake.GoalCups)
	if err != nil {
		return nil, err
	}

	*intake = intake.withGoalReached()
	return intake, nil
}
