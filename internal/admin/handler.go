package admin

import (
	"context"
	"net/http"

	"github.com/2beens/movimentai/internal/exercises"
	"github.com/2beens/movimentai/internal/telemetry/tracing"
	"github.com/2beens/movimentai/internal/workouts"
	"github.com/2beens/movimentai/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=admin_test

const recentDays = 7

type accountsCounter interface {
	Count(ctx context.Context) (int, error)
}

type workoutsCounter interface {
	CountByType(ctx context.Context, workoutType string) (int, error)
}

type completionsCounter interface {
	CountCompletedSince(ctx context.Context, from string) (int, error)
}

type executionsCounter interface {
	ActiveCount(ctx context.Context) (int64, error)
}

type Stats struct {
	Accounts           int   `json:"accounts"`
	AIWorkouts         int   `json:"aiWorkouts"`
	LibraryExercises   int   `json:"libraryExercises"`
	CompletedLast7Days int   `json:"completedLast7Days"`
	ActiveExecutions   int64 `json:"activeExecutions"`
}

type Handler struct {
	accounts    accountsCounter
	workouts    workoutsCounter
	completions completionsCounter
	executions  executionsCounter
	now         pkg.Clock
}

func NewHandler(
	accountsRepo accountsCounter,
	workoutsRepo workoutsCounter,
	calendarRepo completionsCounter,
	executionStore executionsCounter,
	now pkg.Clock,
) *Handler {
	return &Handler{
		accounts:    accountsRepo,
		workouts:    workoutsRepo,
		completions: calendarRepo,
		executions:  executionStore,
		now:         now,
	}
}

// SetupRoutes expects r to be behind the admin-only middleware.
func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/admin/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("admin-stats")
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.stats")
	defer span.End()

	stats, err := handler.stats(ctx)
	if err != nil {
		log.Errorf("admin stats: %s", err)
		http.Error(w, "error, failed to get stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, stats, http.StatusOK)
}

func (handler *Handler) stats(ctx context.Context) (*Stats, error) {
	accountsCount, err := handler.accounts.Count(ctx)
	if err != nil {
		return nil, err
	}
	aiWorkouts, err := handler.workouts.CountByType(ctx, workouts.TypeAI)
	if err != nil {
		return nil, err
	}
	since := pkg.FormatDate(handler.now().AddDate(0, 0, -recentDays))
	completed, err := handler.completions.CountCompletedSince(ctx, since)
	if err != nil {
		return nil, err
	}

	// execution sessions live in redis; a failure there does not hide the rest
	active, err := handler.executions.ActiveCount(ctx)
	if err != nil {
		log.Warnf("admin stats, active executions: %s", err)
		active = -1
	}

	return &Stats{
		Accounts:           accountsCount,
		AIWorkouts:         aiWorkouts,
		LibraryExercises:   exercises.Count(),
		CompletedLast7Days: completed,
		ActiveExecutions:   active,
	}, nil
}
