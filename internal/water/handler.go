package water

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/movimentai/internal/auth"
	"github.com/2beens/movimentai/internal/telemetry/tracing"
	"github.com/2beens/movimentai/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=water_test

type waterRepo interface {
	GetOrCreate(ctx context.Context, userID, date string) (*Intake, error)
	Update(ctx context.Context, userID, date string, fn func(Intake) (Intake, error)) (*Intake, error)
}

type SetCupsRequest struct {
	Cups int `json:"cups"`
}

type Handler struct {
	repo waterRepo
	now  pkg.Clock
}

func NewHandler(repo waterRepo, now pkg.Clock) *Handler {
	return &Handler{
		repo: repo,
		now:  now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/water", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-water")
	r.HandleFunc("/water/cups", handler.HandleSetCups).Methods("PUT", "OPTIONS").Name("set-water-cups")
	r.HandleFunc("/water/goal/increase", handler.HandleIncreaseGoal).Methods("POST", "OPTIONS").Name("increase-water-goal")
	r.HandleFunc("/water/goal/decrease", handler.HandleDecreaseGoal).Methods("POST", "OPTIONS").Name("decrease-water-goal")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.get")
	defer span.End()

	date, err := pkg.DateOrToday(r.URL.Query().Get("date"), handler.now)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	userID := auth.UserIDFromContext(ctx)
	intake, err := handler.repo.GetOrCreate(ctx, userID, date)
	if err != nil {
		log.Errorf("get water intake for %s [%s]: %s", userID, date, err)
		http.Error(w, "error, failed to get water intake", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, intake, http.StatusOK)
}

func (handler *Handler) HandleSetCups(w http.ResponseWriter, r *http.Request) {
	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SetCupsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("set water cups, unmarshal json params: %s", err)
		http.Error(w, "set cups failed", http.StatusBadRequest)
		return
	}

	handler.update(w, r, "handler.water.setcups", func(i Intake) (Intake, error) {
		return i.SetCups(req.Cups), nil
	})
}

func (handler *Handler) HandleIncreaseGoal(w http.ResponseWriter, r *http.Request) {
	handler.update(w, r, "handler.water.increasegoal", Intake.IncreaseGoal)
}

func (handler *Handler) HandleDecreaseGoal(w http.ResponseWriter, r *http.Request) {
	handler.update(w, r, "handler.water.decreasegoal", Intake.DecreaseGoal)
}

func (handler *Handler) update(w http.ResponseWriter, r *http.Request, spanName string, fn func(Intake) (Intake, error)) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), spanName)
	defer span.End()

	date, err := pkg.DateOrToday(r.URL.Query().Get("date"), handler.now)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	userID := auth.UserIDFromContext(ctx)
	intake, err := handler.repo.Update(ctx, userID, date, fn)
	if errors.Is(err, ErrGoalAtMax) || errors.Is(err, ErrGoalAtMin) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("update water intake for %s [%s]: %s", userID, date, err)
		http.Error(w, "error, failed to update water intake", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, intake, http.StatusOK)
}
