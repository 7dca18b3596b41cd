package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/movimentai/internal/habits"
	"github.com/2beens/movimentai/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrWorkoutNotFound = errors.New("workout not found")
)

const profileColumns = `
	user_id::text, email, name, age, gender, height, weight, goal, available_time,
	equipment, level, restrictions, chest, waist, hips, photo_url,
	onboarding_completed, mindfulness_enabled, mindfulness_completed_dates,
	COALESCE(default_workout_id::text, ''), updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profile WHERE user_id = $1;`, userID)
	return scanProfile(row)
}

// CompleteOnboarding stores the onboarding answers and seeds the default habits
// when the user has none yet. Both happen in one transaction.
func (r *Repo) CompleteOnboarding(ctx context.Context, userID string, data Onboarding) (_ *Profile, habitsAdded int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.onboarding")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, 0, err
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

	equipment, restrictions := data.Equipment, data.Restrictions
	if equipment == nil {
		equipment = []string{}
	}
	if restrictions == nil {
		restrictions = []string{}
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO profile
			(user_id, email, name, age, gender, height, weight, goal, available_time,
			 equipment, level, restrictions, chest, waist, hips, onboarding_completed, updated_at)
		VALUES
			($1, COALESCE((SELECT email FROM account WHERE id = $1), ''), $2, $3, $4, $5, $6, $7, $8,
			 $9, $10, $11, $12, $13, $14, TRUE, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name, age = EXCLUDED.age, gender = EXCLUDED.gender,
			height = EXCLUDED.height, weight = EXCLUDED.weight, goal = EXCLUDED.goal,
			available_time = EXCLUDED.available_time, equipment = EXCLUDED.equipment,
			level = EXCLUDED.level, restrictions = EXCLUDED.restrictions,
			chest = EXCLUDED.chest, waist = EXCLUDED.waist, hips = EXCLUDED.hips,
			onboarding_completed = TRUE, updated_at = NOW()
		RETURNING `+profileColumns+`;
	`,
		userID, data.Name, data.Age, data.Gender, data.Height, data.Weight, data.Goal, data.TimeAvailable,
		equipment, data.Level, restrictions,
		data.Measurements.Chest, data.Measurements.Waist, data.Measurements.Hips,
	)
	profile, err := scanProfile(row)
	if err != nil {
		return nil, 0, fmt.Errorf("upsert profile: %w", err)
	}

	habitsAdded, err = habits.InsertDefaults(ctx, tx, userID)
	if err != nil {
		return nil, 0, err
	}
	span.SetAttributes(attribute.Int("habits.added", habitsAdded))

	return profile, habitsAdded, nil
}

func (r *Repo) Update(ctx context.Context, userID string, update Update) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(ctx, `
		INSERT INTO profile (user_id, email, name, age, height, weight, goal, level, chest, waist, hips, updated_at)
		VALUES ($1, COALESCE((SELECT email FROM account WHERE id = $1), ''), $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name, age = EXCLUDED.age, height = EXCLUDED.height,
			weight = EXCLUDED.weight, goal = EXCLUDED.goal, level = EXCLUDED.level,
			chest = EXCLUDED.chest, waist = EXCLUDED.waist, hips = EXCLUDED.hips,
			updated_at = NOW()
		RETURNING `+profileColumns+`;
	`,
		userID, update.Name, update.Age, update.Height, update.Weight, update.Goal, update.Level,
		update.Measurements.Chest, update.Measurements.Waist, update.Measurements.Hips,
	)
	return scanProfile(row)
}

// SetPhoto stores the new photo url and returns the previous one ("" when none).
func (r *Repo) SetPhoto(ctx context.Context, userID, photoURL string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.setphoto")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var previous string
	err = r.db.QueryRow(ctx, `
		WITH old AS (
			SELECT photo_url FROM profile WHERE user_id = $1
		)
		INSERT INTO profile (user_id, photo_url, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET photo_url = EXCLUDED.photo_url, updated_at = NOW()
		RETURNING COALESCE((SELECT photo_url FROM old), '');
	`, userID, photoURL).Scan(&previous)
	if err != nil {
		return "", err
	}
	return previous, nil
}

func (r *Repo) SetMindfulness(ctx context.Context, userID string, enabled bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.setmindfulness")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO profile (user_id, mindfulness_enabled, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET mindfulness_enabled = EXCLUDED.mindfulness_enabled, updated_at = NOW();
	`, userID, enabled)
	return err
}

// CompleteMindfulness adds date to the completed dates once and returns the resulting list.
func (r *Repo) CompleteMindfulness(ctx context.Context, userID, date string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.completemindfulness")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	var dates []string
	err = r.db.QueryRow(ctx, `
		INSERT INTO profile (user_id, mindfulness_completed_dates, updated_at)
		VALUES ($1, ARRAY[$2::text], NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			mindfulness_completed_dates = CASE
				WHEN $2::text = ANY(profile.mindfulness_completed_dates) THEN profile.mindfulness_completed_dates
				ELSE array_append(profile.mindfulness_completed_dates, $2::text)
			END,
			updated_at = NOW()
		RETURNING mindfulness_completed_dates;
	`, userID, date).Scan(&dates)
	if err != nil {
		return nil, err
	}
	return dates, nil
}

// SetDefaultWorkout points the profile at one of the user's own workouts.
func (r *Repo) SetDefaultWorkout(ctx context.Context, userID, workoutID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.setdefaultworkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workoutID))

	tag, err := r.db.Exec(ctx, `
		INSERT INTO profile (user_id, default_workout_id, updated_at)
		SELECT w.user_id, w.id, NOW()
		FROM workout w
		WHERE w.id = $2::uuid AND w.user_id = $1::uuid
		ON CONFLICT (user_id) DO UPDATE SET default_workout_id = EXCLUDED.default_workout_id, updated_at = NOW();
	`, userID, workoutID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	err := row.Scan(
		&p.UserID, &p.Email, &p.Name, &p.Age, &p.Gender, &p.Height, &p.Weight, &p.Goal, &p.AvailableTime,
		&p.Equipment, &p.Level, &p.Restrictions,
		&p.Measurements.Chest, &p.Measurements.Waist, &p.Measurements.Hips, &p.PhotoURL,
		&p.OnboardingCompleted, &p.MindfulnessEnabled, &p.MindfulnessCompletedDates,
		&p.DefaultWorkoutID, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	return &p, nil
}
