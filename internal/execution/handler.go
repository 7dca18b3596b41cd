package execution

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/movimentai/internal/auth"
	"github.com/2beens/movimentai/internal/telemetry/tracing"
	"github.com/2beens/movimentai/internal/workouts"
	"github.com/2beens/movimentai/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=execution_test

type executionService interface {
	Start(ctx context.Context, userID, workoutID string) (*Session, error)
	Get(ctx context.Context, userID, sessionID string) (*Session, error)
	Apply(ctx context.Context, userID, sessionID string, action Action) (*Session, Transition, error)
}

type SessionResponse struct {
	Session    *Session    `json:"session"`
	Transition *Transition `json:"transition,omitempty"`
}

type Handler struct {
	service executionService
}

func NewHandler(service executionService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts/{id}/execute", handler.HandleStart).Methods("POST", "OPTIONS").Name("execution-start")
	r.HandleFunc("/executions/{sid}", handler.HandleGet).Methods("GET", "OPTIONS").Name("execution-get")
	r.HandleFunc("/executions/{sid}/series", handler.actionHandler(ActionCompleteSeries)).Methods("POST", "OPTIONS").Name("execution-series")
	r.HandleFunc("/executions/{sid}/skip", handler.actionHandler(ActionSkip)).Methods("POST", "OPTIONS").Name("execution-skip")
	r.HandleFunc("/executions/{sid}/rest/cancel", handler.actionHandler(ActionCancelRest)).Methods("POST", "OPTIONS").Name("execution-rest-cancel")
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.execution.start")
	defer span.End()

	workoutID := mux.Vars(r)["id"]
	if _, err := uuid.Parse(workoutID); err != nil {
		http.Error(w, "error, workout not found", http.StatusNotFound)
		return
	}

	userID := auth.UserIDFromContext(ctx)
	session, err := handler.service.Start(ctx, userID, workoutID)
	if err != nil {
		switch {
		case errors.Is(err, workouts.ErrWorkoutNotFound):
			http.Error(w, "error, workout not found", http.StatusNotFound)
		case errors.Is(err, ErrRestDay):
			http.Error(w, "error, "+err.Error(), http.StatusConflict)
		default:
			log.Errorf("start execution of %s for %s: %s", workoutID, userID, err)
			http.Error(w, "error, failed to start workout", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, SessionResponse{Session: session}, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.execution.get")
	defer span.End()

	sessionID := mux.Vars(r)["sid"]
	userID := auth.UserIDFromContext(ctx)
	session, err := handler.service.Get(ctx, userID, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		http.Error(w, "error, execution not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get execution %s for %s: %s", sessionID, userID, err)
		http.Error(w, "error, failed to get execution", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, SessionResponse{Session: session}, http.StatusOK)
}

func (handler *Handler) actionHandler(action Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.execution."+string(action))
		defer span.End()

		sessionID := mux.Vars(r)["sid"]
		userID := auth.UserIDFromContext(ctx)
		session, transition, err := handler.service.Apply(ctx, userID, sessionID, action)
		if err != nil {
			switch {
			case errors.Is(err, ErrSessionNotFound):
				http.Error(w, "error, execution not found", http.StatusNotFound)
			case errors.Is(err, ErrCompleted), errors.Is(err, ErrResting), errors.Is(err, ErrNotResting):
				http.Error(w, "error, "+err.Error(), http.StatusConflict)
			default:
				log.Errorf("execution %s, %s for %s: %s", sessionID, action, userID, err)
				http.Error(w, "error, failed to update execution", http.StatusInternalServerError)
			}
			return
		}

		pkg.WriteJSON(w, SessionResponse{
			Session:    session,
			Transition: &transition,
		}, http.StatusOK)
	}
}
