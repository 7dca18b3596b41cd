package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/movimentai/internal/auth"
	"github.com/2beens/movimentai/internal/middleware"
	"github.com/2beens/movimentai/internal/telemetry/tracing"
	"github.com/2beens/movimentai/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=accounts_test

type accountsRepo interface {
	Create(ctx context.Context, account Account) (*Account, error)
	Get(ctx context.Context, id string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	UpdatePassword(ctx context.Context, id, passwordHash string, mustReset bool) error
}

type sessionService interface {
	Login(ctx context.Context, userID string, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) error
}

type sessionCache interface {
	Forget(token string)
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token             string `json:"token"`
	UserID            string `json:"userId"`
	MustResetPassword bool   `json:"mustResetPassword"`
}

type PasswordChangeRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=72"`
}

type Handler struct {
	repo         accountsRepo
	sessions     sessionService
	sessionCache sessionCache
	admin        auth.Admin

	// injectable for tests, bcrypt at the production cost is slow
	HashPasswordFunc func(string) (string, error)
}

func NewHandler(
	repo accountsRepo,
	sessions sessionService,
	sessionCache sessionCache,
	admin auth.Admin,
) *Handler {
	return &Handler{
		repo:         repo,
		sessions:     sessions,
		sessionCache: sessionCache,
		admin:        admin,

		HashPasswordFunc: pkg.HashPassword,
	}
}

// SetupRoutes registers the handlers on the /a subrouter.
func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/signup", handler.HandleSignup).Methods("POST", "OPTIONS").Name("signup")
	r.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	r.HandleFunc("/logout", handler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
	r.HandleFunc("/password", handler.HandlePasswordChange).Methods("POST", "OPTIONS").Name("password-change")
}

func (handler *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.signup")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("signup, unmarshal json params: %s", err)
		http.Error(w, "signup failed", http.StatusBadRequest)
		return
	}
	if err := pkg.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := handler.HashPasswordFunc(req.Password)
	if err != nil {
		log.Errorf("signup, hash password: %s", err)
		http.Error(w, "signup failed", http.StatusInternalServerError)
		return
	}

	account, err := handler.repo.Create(ctx, Account{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		CreatedVia:   CreatedViaSignup,
	})
	if errors.Is(err, ErrEmailTaken) {
		http.Error(w, "email already registered", http.StatusConflict)
		return
	}
	if err != nil {
		log.Errorf("signup, create account: %s", err)
		http.Error(w, "signup failed", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.String("user.id", account.ID))
	log.Infof("new account signed up: %s", account.ID)

	pkg.WriteJSON(w, map[string]string{
		"id":    account.ID,
		"email": account.Email,
	}, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.login")
	defer span.End()

	var req LoginRequest
	if pkg.IsJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorf("login, unmarshal json params: %s", err)
			http.Error(w, "wrong credentials", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		req.Email = r.Form.Get("email")
		req.Password = r.Form.Get("password")
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, "wrong credentials", http.StatusBadRequest)
		return
	}

	userID, mustReset, ok := handler.checkCredentials(ctx, req)
	if !ok {
		log.Tracef("login failed for %s", req.Email)
		http.Error(w, "wrong credentials", http.StatusBadRequest)
		return
	}

	token, err := handler.sessions.Login(ctx, userID, time.Now())
	if err != nil {
		log.Errorf("login, create session: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.String("user.id", userID))
	pkg.WriteJSON(w, LoginResponse{
		Token:             token,
		UserID:            userID,
		MustResetPassword: mustReset,
	}, http.StatusOK)
}

// checkCredentials tries the operator account first, then the accounts table.
func (handler *Handler) checkCredentials(ctx context.Context, req LoginRequest) (userID string, mustReset bool, ok bool) {
	if handler.admin.Username != "" && req.Email == handler.admin.Username {
		if pkg.CheckPasswordHash(req.Password, handler.admin.PasswordHash) {
			return auth.AdminUserID, false, true
		}
		return "", false, false
	}

	account, err := handler.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, ErrAccountNotFound) {
			log.Errorf("login, get account: %s", err)
		}
		return "", false, false
	}

	if !pkg.CheckPasswordHash(req.Password, account.PasswordHash) {
		return "", false, false
	}
	return account.ID, account.MustResetPassword, true
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.logout")
	defer span.End()

	token := middleware.ReadToken(r)
	if token == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	handler.sessionCache.Forget(token)
	if err := handler.sessions.Logout(ctx, token); err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) HandlePasswordChange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.passwordchange")
	defer span.End()

	userID := auth.UserIDFromContext(ctx)
	if userID == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if userID == auth.AdminUserID {
		http.Error(w, "admin password is set in configuration", http.StatusBadRequest)
		return
	}

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req PasswordChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("password change, unmarshal json params: %s", err)
		http.Error(w, "password change failed", http.StatusBadRequest)
		return
	}
	if err := pkg.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	account, err := handler.repo.Get(ctx, userID)
	if err != nil {
		log.Errorf("password change, get account %s: %s", userID, err)
		http.Error(w, "password change failed", http.StatusInternalServerError)
		return
	}
	if !pkg.CheckPasswordHash(req.OldPassword, account.PasswordHash) {
		http.Error(w, "wrong credentials", http.StatusBadRequest)
		return
	}

	hash, err := handler.HashPasswordFunc(req.NewPassword)
	if err != nil {
		log.Errorf("password change, hash password: %s", err)
		http.Error(w, "password change failed", http.StatusInternalServerError)
		return
	}

	if err := handler.repo.UpdatePassword(ctx, userID, hash, false); err != nil {
		log.Errorf("password change, update %s: %s", userID, err)
		http.Error(w, "password change failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "password-changed")
}
