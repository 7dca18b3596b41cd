//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"

	"github.com/2beens/movimentai/internal/accounts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestSignupLoginLogout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := signupAndLogin(ctx, t, "ana@movimentai.test")

	var createdVia string
	require.NoError(t, s.DB.QueryRowContext(ctx,
		`SELECT created_via FROM account WHERE email = $1`, "ana@movimentai.test",
	).Scan(&createdVia))
	assert.Equal(t, accounts.CreatedViaSignup, createdVia)

	status, body := doRequest(ctx, t, http.MethodPost, "/a/signup", "", accounts.SignupRequest{
		Email:    "ANA@movimentai.test",
		Password: "secret123",
	}, nil)
	assert.Equal(t, http.StatusConflict, status, string(body))

	status, _ = doRequest(ctx, t, http.MethodPost, "/a/login", "", accounts.LoginRequest{
		Email:    "ana@movimentai.test",
		Password: "wrong-pass",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(ctx, t, http.MethodGet, "/profile", token, nil, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = doRequest(ctx, t, http.MethodGet, "/a/logout", token, nil, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = doRequest(ctx, t, http.MethodGet, "/profile", token, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestPublicAndProtectedRoutes() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	status, body := doRequest(ctx, t, http.MethodGet, "/exercises", "", nil, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "chest-1")

	for _, path := range []string{"/dashboard", "/habits", "/water", "/workouts", "/calendar", "/preferences"} {
		status, _ := doRequest(ctx, t, http.MethodGet, path, "", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, status, path)
	}
}
