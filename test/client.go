//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/2beens/movimentai/internal/accounts"
	"github.com/2beens/movimentai/internal/middleware"

	"github.com/stretchr/testify/require"
)

// doRequest sends body (JSON encoded when not nil) and returns the status and the raw response body.
func doRequest(ctx context.Context, t *testing.T, method, path, token string, body any, headers map[string]string) (int, []byte) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func doLogin(ctx context.Context, t *testing.T, email, password string) accounts.LoginResponse {
	t.Helper()

	status, body := doRequest(ctx, t, http.MethodPost, "/a/login", "", accounts.LoginRequest{
		Email:    email,
		Password: password,
	}, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	var loginResp accounts.LoginResponse
	require.NoError(t, json.Unmarshal(body, &loginResp))
	require.NotEmpty(t, loginResp.Token)
	return loginResp
}

// signupAndLogin creates a fresh account and returns its session token.
func signupAndLogin(ctx context.Context, t *testing.T, email string) string {
	t.Helper()

	status, body := doRequest(ctx, t, http.MethodPost, "/a/signup", "", accounts.SignupRequest{
		Email:    email,
		Password: "secret123",
		Name:     "Teste",
	}, nil)
	require.Equal(t, http.StatusCreated, status, string(body))

	return doLogin(ctx, t, email, "secret123").Token
}
