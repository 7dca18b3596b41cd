package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/2beens/movimentai/internal/auth"
	"github.com/2beens/movimentai/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

const TokenHeader = "X-MOVIMENTAI-TOKEN"

type loginChecker interface {
	SessionUser(ctx context.Context, token string) (string, error)
}

type AuthMiddlewareHandler struct {
	loginChecker         loginChecker
	allowedPaths         map[string]bool
	allowedPathsPrefixes []string
	// the operator session has no account row, so it only reaches these
	adminPaths         map[string]bool
	adminPathsPrefixes []string
}

func NewAuthMiddlewareHandler(loginChecker loginChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		loginChecker: loginChecker,
		allowedPaths: map[string]bool{
			"/": true,

			// login-signup:
			"/a/login":  true,
			"/a/signup": true,

			// exercise library is public
			"/exercises":            true,
			"/exercises/categories": true,

			"/chat":            true,
			"/webhook/payment": true,
		},
		allowedPathsPrefixes: []string{
			"/exercises/",
			"/profile/photo/",
		},
		adminPaths: map[string]bool{
			"/a/logout": true,
			"/mcp":      true,
		},
		adminPathsPrefixes: []string{
			"/admin/",
			"/mcp/",
		},
	}
}

func (h *AuthMiddlewareHandler) pathAllowedForAdmin(path string) bool {
	if h.adminPaths[path] {
		return true
	}
	for _, prefix := range h.adminPathsPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	for _, prefix := range h.allowedPathsPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// ReadToken reads the session token from the custom header, or from a bearer Authorization header.
func ReadToken(r *http.Request) string {
	if token := r.Header.Get(TokenHeader); token != "" {
		return token
	}
	if bearer, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		return strings.TrimSpace(bearer)
	}
	return ""
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			authToken := ReadToken(r)

			if h.pathIsAlwaysAllowed(r.URL.Path) {
				// a logged user on a public path still gets identified (e.g. chat)
				if authToken != "" {
					if userID, err := h.loginChecker.SessionUser(ctx, authToken); err == nil && userID != "" {
						r = r.WithContext(auth.WithUserID(r.Context(), userID))
					}
				}
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			userID, err := h.loginChecker.SessionUser(ctx, authToken)
			if err != nil {
				log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "check-logged-err")
				span.RecordError(err)
				return
			}
			if userID == "" {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "not-logged")
				return
			}
			if userID == auth.AdminUserID && !h.pathAllowedForAdmin(r.URL.Path) {
				log.Tracef("[admin session] [auth middleware] forbidden => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusForbidden)
				span.SetStatus(codes.Error, "admin-forbidden")
				return
			}

			span.SetAttributes(attribute.String("user.id", userID))
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}

// AdminOnly lets through only requests authenticated as the operator account.
func AdminOnly() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodOptions && !auth.IsAdmin(r.Context()) {
				http.Error(w, "no can do", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
