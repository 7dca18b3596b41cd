package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/movimentai/internal/telemetry/tracing"
	"github.com/2beens/movimentai/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEmailTaken      = errors.New("email already registered")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, account Account) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.accounts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	if account.CreatedVia == "" {
		account.CreatedVia = CreatedViaSignup
	}
	account.Email = NormalizeEmail(account.Email)
	span.SetAttributes(attribute.String("account.created_via", account.CreatedVia))

	err = r.db.QueryRow(ctx, `
		INSERT INTO account (id, email, name, password_hash, created_via, must_reset_password)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at;
	`,
		account.ID, account.Email, account.Name, account.PasswordHash,
		account.CreatedVia, account.MustResetPassword,
	).Scan(&account.CreatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &account, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.accounts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.accounts.getbyemail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.getOne(ctx, `WHERE email = $1`, NormalizeEmail(email))
}

func (r *Repo) getOne(ctx context.Context, where string, arg any) (*Account, error) {
	account := &Account{}
	err := r.db.QueryRow(ctx, `
		SELECT id::text, email, name, password_hash, created_via, must_reset_password, created_at
		FROM account `+where,
		arg,
	).Scan(
		&account.ID, &account.Email, &account.Name, &account.PasswordHash,
		&account.CreatedVia, &account.MustResetPassword, &account.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (r *Repo) UpdatePassword(ctx context.Context, id, passwordHash string, mustReset bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.accounts.updatepassword")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE account SET password_hash = $1, must_reset_password = $2 WHERE id = $3;
	`, passwordHash, mustReset, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *Repo) Count(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.accounts.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM account;`).Scan(&count); err != nil {
		return -1, fmt.Errorf("count accounts: %w", err)
	}
	return count, nil
}
