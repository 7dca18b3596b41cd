package testing

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/2beens/movimentai/internal/db"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// GetDBPool connects to the test database (POSTGRES_HOST, default localhost) and
// makes sure the schema exists. The pool is closed when the test ends.
func GetDBPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	t.Logf("using postres host: %s", host)

	dbPool, err := db.NewDBPool(timeoutCtx, db.NewDBPoolParams{
		DBHost:         host,
		DBPort:         "5432",
		DBName:         "movimentai",
		TracingEnabled: false,
	})
	require.NoError(t, err)
	require.NoError(t, db.EnsureSchema(timeoutCtx, dbPool))

	t.Cleanup(dbPool.Close)
	return dbPool
}

// CreateAccount inserts a throwaway account and returns its id.
func CreateAccount(t *testing.T, dbPool *pgxpool.Pool) string {
	t.Helper()

	id := uuid.NewString()
	_, err := dbPool.Exec(
		context.Background(),
		`INSERT INTO account (id, email, name, password_hash) VALUES ($1, $2, $3, 'x');`,
		id, gofakeit.Email(), gofakeit.Name(),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = dbPool.Exec(context.Background(), `DELETE FROM account WHERE id = $1;`, id)
	})
	return id
}
