package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/2beens/movimentai/internal/auth"
	"github.com/2beens/movimentai/internal/exercises"
	"github.com/2beens/movimentai/internal/telemetry/metrics"
	"github.com/2beens/movimentai/internal/telemetry/tracing"
	"github.com/2beens/movimentai/internal/workouts/templates"
	"github.com/2beens/movimentai/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Create(ctx context.Context, userID string, workout Workout, scheduleDates []string) (*Workout, error)
	List(ctx context.Context, userID string) ([]Workout, error)
	Get(ctx context.Context, userID, id string) (*Workout, error)
	Delete(ctx context.Context, userID, id string) error
}

type GenerateRequest struct {
	WorkoutName   string   `json:"workoutName" validate:"required,max=80"`
	Sex           string   `json:"sex" validate:"required,oneof=male female prefer-not"`
	Age           int      `json:"age" validate:"required,min=10,max=100"`
	ActivityLevel string   `json:"activityLevel" validate:"required,oneof=sedentary lightly-active moderately-active very-active athlete"`
	DaysPerWeek   int      `json:"daysPerWeek" validate:"required,oneof=3 4 5 6"`
	SelectedDays  []string `json:"selectedDays" validate:"required,dive,required"`
	Goal          string   `json:"goal" validate:"required,max=80"`
}

type GenerateResponse struct {
	Workout        *Workout `json:"workout"`
	ScheduledDates []string `json:"scheduledDates"`
}

type ManualDay struct {
	Rest      bool     `json:"rest"`
	Exercises []string `json:"exercises"`
}

type ManualRequest struct {
	Title string               `json:"title" validate:"required,max=80"`
	Days  map[string]ManualDay `json:"days" validate:"required"`
}

type TodayResponse struct {
	WorkoutID string               `json:"workoutId"`
	Day       string               `json:"day"`
	Name      string               `json:"name"`
	Rest      bool                 `json:"rest"`
	Exercises []exercises.Exercise `json:"exercises"`
}

type Handler struct {
	repo    workoutsRepo
	now     pkg.Clock
	metrics *metrics.Manager
}

func NewHandler(repo workoutsRepo, now pkg.Clock, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		now:     now,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts", handler.HandleList).Methods("GET", "OPTIONS").Name("workouts-list")
	r.HandleFunc("/workouts/generate", handler.HandleGenerate).Methods("POST", "OPTIONS").Name("workouts-generate")
	r.HandleFunc("/workouts/manual", handler.HandleManual).Methods("POST", "OPTIONS").Name("workouts-manual")
	r.HandleFunc("/workouts/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("workouts-get")
	r.HandleFunc("/workouts/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("workouts-delete")
	r.HandleFunc("/workouts/{id}/today", handler.HandleToday).Methods("GET", "OPTIONS").Name("workouts-today")
}

// HandleGenerate builds a plan from the fixed split table and schedules the
// next occurrence of every selected day.
func (handler *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.generate")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("generate workout, unmarshal json params: %s", err)
		http.Error(w, "generate failed", http.StatusBadRequest)
		return
	}
	if err := pkg.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	splits, err := templates.Select(req.DaysPerWeek, req.SelectedDays)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("days", req.DaysPerWeek))

	workout := Workout{
		Title:          strings.TrimSpace(req.WorkoutName),
		Type:           TypeAI,
		Difficulty:     templates.Difficulty(req.Age, req.Sex, req.ActivityLevel),
		Duration:       DefaultDuration,
		ExercisesCount: len(splits) * exercisesPerGeneratedDay,
		DaysPerWeek:    req.DaysPerWeek,
		SelectedDays:   req.SelectedDays,
		Splits:         splits,
	}

	today := handler.now()
	dates := make([]string, 0, len(req.SelectedDays))
	for _, day := range req.SelectedDays {
		next, _ := templates.NextOccurrence(today, day)
		dates = append(dates, pkg.FormatDate(next))
	}

	userID := auth.UserIDFromContext(ctx)
	created, err := handler.repo.Create(ctx, userID, workout, dates)
	if err != nil {
		log.Errorf("generate workout for %s: %s", userID, err)
		http.Error(w, "error, failed to create workout", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkoutsCreated.WithLabelValues(TypeAI).Inc()
	log.Debugf("workout %s generated for %s, scheduled on %v", created.ID, userID, dates)

	pkg.WriteJSON(w, GenerateResponse{
		Workout:        created,
		ScheduledDates: dates,
	}, http.StatusCreated)
}

func (handler *Handler) HandleManual(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.manual")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req ManualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("manual workout, unmarshal json params: %s", err)
		http.Error(w, "create failed", http.StatusBadRequest)
		return
	}
	if err := pkg.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	workout, err := manualWorkout(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID := auth.UserIDFromContext(ctx)
	created, err := handler.repo.Create(ctx, userID, workout, nil)
	if err != nil {
		log.Errorf("manual workout for %s: %s", userID, err)
		http.Error(w, "error, failed to create workout", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkoutsCreated.WithLabelValues(TypeManual).Inc()
	pkg.WriteJSON(w, created, http.StatusCreated)
}

// manualWorkout turns the per-day picks into splits. Days that are neither rest
// nor have exercises are left out.
func manualWorkout(req ManualRequest) (Workout, error) {
	splits := templates.Splits{}
	var trainingDays []string
	total := 0
	for day, picked := range req.Days {
		if !templates.IsWeekday(day) {
			return Workout{}, fmt.Errorf("%w: %q", templates.ErrInvalidDay, day)
		}
		if picked.Rest {
			splits[day] = templates.Split{Name: templates.RestSplitName, Exercises: []string{}}
			continue
		}
		if len(picked.Exercises) == 0 {
			continue
		}
		for _, id := range picked.Exercises {
			if !exercises.Exists(id) {
				return Workout{}, fmt.Errorf("error, unknown exercise %q", id)
			}
		}
		splits[day] = templates.Split{Name: "Treino " + day, Exercises: picked.Exercises}
		trainingDays = append(trainingDays, day)
		total += len(picked.Exercises)
	}
	if total == 0 {
		return Workout{}, errors.New("error, no exercises selected")
	}

	selected := templates.SortDays(trainingDays)
	return Workout{
		Title:          strings.TrimSpace(req.Title),
		Type:           TypeManual,
		Difficulty:     templates.DifficultyModerate,
		Duration:       DefaultDuration,
		ExercisesCount: total,
		DaysPerWeek:    len(selected),
		SelectedDays:   selected,
		Splits:         splits,
	}, nil
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID := auth.UserIDFromContext(ctx)
	list, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list workouts for %s: %s", userID, err)
		http.Error(w, "error, failed to get workouts", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, list, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	workout, ok := handler.workoutFromPath(ctx, w, r)
	if !ok {
		return
	}
	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "error, workout not found", http.StatusNotFound)
		return
	}

	userID := auth.UserIDFromContext(ctx)
	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "error, workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout %s for %s: %s", id, userID, err)
		http.Error(w, "error, failed to delete workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted:"+id)
}

// HandleToday resolves today's split of the workout to full exercise records.
func (handler *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.today")
	defer span.End()

	workout, ok := handler.workoutFromPath(ctx, w, r)
	if !ok {
		return
	}

	day, split, planned := workout.Today(handler.now())
	resp := TodayResponse{
		WorkoutID: workout.ID,
		Day:       day,
		Rest:      !planned || len(split.Exercises) == 0,
		Exercises: []exercises.Exercise{},
	}
	if planned {
		resp.Name = split.Name
	} else {
		resp.Name = templates.RestSplitName
	}
	for _, id := range split.Exercises {
		if ex, found := exercises.Get(id); found {
			resp.Exercises = append(resp.Exercises, ex)
		}
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (handler *Handler) workoutFromPath(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Workout, bool) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "error, workout not found", http.StatusNotFound)
		return nil, false
	}

	userID := auth.UserIDFromContext(ctx)
	workout, err := handler.repo.Get(ctx, userID, id)
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "error, workout not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		log.Errorf("get workout %s for %s: %s", id, userID, err)
		http.Error(w, "error, failed to get workout", http.StatusInternalServerError)
		return nil, false
	}
	return workout, true
}
