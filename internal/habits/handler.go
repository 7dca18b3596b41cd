package habits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/movimentai/internal/auth"
	"github.com/2beens/movimentai/internal/telemetry/tracing"
	"github.com/2beens/movimentai/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=habits_test

type habitsRepo interface {
	List(ctx context.Context, userID string) ([]Habit, error)
	Add(ctx context.Context, userID, name, icon string) (*Habit, error)
	Toggle(ctx context.Context, userID, id, date string) (bool, error)
	Delete(ctx context.Context, userID, id string) error
}

type AddHabitRequest struct {
	Name string `json:"name" validate:"required,max=60"`
	Icon string `json:"icon" validate:"max=16"`
}

type Handler struct {
	repo habitsRepo
	now  pkg.Clock
}

func NewHandler(repo habitsRepo, now pkg.Clock) *Handler {
	return &Handler{
		repo: repo,
		now:  now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/habits", handler.HandleList).Methods("GET", "OPTIONS").Name("list-habits")
	r.HandleFunc("/habits", handler.HandleAdd).Methods("POST", "OPTIONS").Name("add-habit")
	r.HandleFunc("/habits/{id}/toggle", handler.HandleToggle).Methods("POST", "OPTIONS").Name("toggle-habit")
	r.HandleFunc("/habits/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-habit")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.list")
	defer span.End()

	date, err := pkg.DateOrToday(r.URL.Query().Get("date"), handler.now)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	userID := auth.UserIDFromContext(ctx)
	habits, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list habits for %s: %s", userID, err)
		http.Error(w, "error, failed to get habits", http.StatusInternalServerError)
		return
	}

	for i := range habits {
		habits[i].Completed = habits[i].CompletedOn(date)
	}

	pkg.WriteJSON(w, habits, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.add")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add habit, unmarshal json params: %s", err)
		http.Error(w, "add habit failed", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Icon = strings.TrimSpace(req.Icon)
	if err := pkg.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Icon == "" {
		req.Icon = DefaultIcon
	}

	userID := auth.UserIDFromContext(ctx)
	habit, err := handler.repo.Add(ctx, userID, req.Name, req.Icon)
	if errors.Is(err, ErrTooManyHabits) {
		http.Error(w, "error, habits limit reached", http.StatusConflict)
		return
	}
	if err != nil {
		log.Errorf("add habit for %s: %s", userID, err)
		http.Error(w, "error, failed to add habit", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, habit, http.StatusCreated)
}

func (handler *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.toggle")
	defer span.End()

	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "error, habit not found", http.StatusNotFound)
		return
	}
	span.SetAttributes(attribute.String("habit.id", id))

	date, err := pkg.DateOrToday(r.URL.Query().Get("date"), handler.now)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	userID := auth.UserIDFromContext(ctx)
	completed, err := handler.repo.Toggle(ctx, userID, id, date)
	if errors.Is(err, ErrHabitNotFound) {
		http.Error(w, "error, habit not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("toggle habit %s for %s: %s", id, userID, err)
		http.Error(w, "error, failed to toggle habit", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, map[string]any{
		"id":        id,
		"date":      date,
		"completed": completed,
	}, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habits.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "error, habit not found", http.StatusNotFound)
		return
	}

	userID := auth.UserIDFromContext(ctx)
	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			http.Error(w, "error, habit not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete habit %s for %s: %s", id, userID, err)
		http.Error(w, "error, failed to delete habit", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted:"+id)
}
