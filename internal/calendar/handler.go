package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/movimentai/internal/auth"
	"github.com/2beens/movimentai/internal/telemetry/tracing"
	"github.com/2beens/movimentai/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=calendar_test

const maxRangeDays = 366

type calendarRepo interface {
	Range(ctx context.Context, userID, from, to string) ([]Entry, error)
	Schedule(ctx context.Context, userID, workoutID, date string) (*Entry, error)
	Delete(ctx context.Context, userID, id string) error
}

type ScheduleRequest struct {
	WorkoutID string `json:"workoutId" validate:"required,uuid"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
}

type RangeResponse struct {
	From  string             `json:"from"`
	To    string             `json:"to"`
	Dates map[string][]Entry `json:"dates"`
}

type Handler struct {
	repo calendarRepo
	now  pkg.Clock
}

func NewHandler(repo calendarRepo, now pkg.Clock) *Handler {
	return &Handler{
		repo: repo,
		now:  now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/calendar", handler.HandleRange).Methods("GET", "OPTIONS").Name("calendar-range")
	r.HandleFunc("/calendar", handler.HandleSchedule).Methods("POST", "OPTIONS").Name("calendar-schedule")
	r.HandleFunc("/calendar/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("calendar-delete")
}

// HandleRange lists entries grouped by date. Without from/to it covers the current month.
func (handler *Handler) HandleRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calendar.range")
	defer span.End()

	from, to, err := handler.rangeParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("from", from), attribute.String("to", to))

	userID := auth.UserIDFromContext(ctx)
	entries, err := handler.repo.Range(ctx, userID, from, to)
	if err != nil {
		log.Errorf("calendar range for %s [%s - %s]: %s", userID, from, to, err)
		http.Error(w, "error, failed to get calendar", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, RangeResponse{
		From:  from,
		To:    to,
		Dates: GroupByDate(entries),
	}, http.StatusOK)
}

func (handler *Handler) rangeParams(r *http.Request) (string, string, error) {
	now := handler.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	fromDate, toDate := monthStart, monthStart.AddDate(0, 1, -1)
	if s := r.URL.Query().Get("from"); s != "" {
		d, err := pkg.ParseDate(s)
		if err != nil {
			return "", "", errors.New("error, invalid from date")
		}
		fromDate = d
	}
	if s := r.URL.Query().Get("to"); s != "" {
		d, err := pkg.ParseDate(s)
		if err != nil {
			return "", "", errors.New("error, invalid to date")
		}
		toDate = d
	}

	from, to := pkg.FormatDate(fromDate), pkg.FormatDate(toDate)
	if to < from {
		return "", "", errors.New("error, from after to")
	}
	if toDate.Sub(fromDate) > maxRangeDays*24*time.Hour {
		return "", "", errors.New("error, range too long")
	}
	return from, to, nil
}

func (handler *Handler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calendar.schedule")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("calendar schedule, unmarshal json params: %s", err)
		http.Error(w, "schedule failed", http.StatusBadRequest)
		return
	}
	if err := pkg.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID := auth.UserIDFromContext(ctx)
	entry, err := handler.repo.Schedule(ctx, userID, req.WorkoutID, req.Date)
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "error, workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("calendar schedule for %s: %s", userID, err)
		http.Error(w, "error, failed to schedule workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, entry, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calendar.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "error, entry not found", http.StatusNotFound)
		return
	}

	userID := auth.UserIDFromContext(ctx)
	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "error, entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("calendar delete %s for %s: %s", id, userID, err)
		http.Error(w, "error, failed to delete entry", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted:"+id)
}
