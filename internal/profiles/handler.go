package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/2beens/movimentai/internal/auth"
	"github.com/2beens/movimentai/internal/photos"
	"github.com/2beens/movimentai/internal/telemetry/tracing"
	"github.com/2beens/movimentai/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profiles_test

const (
	PhotoPathPrefix = "/profile/photo/"
	photoFormField  = "photo"
	// multipart overhead on top of the photo itself
	maxUploadBodySize = photos.MaxPhotoSize + 1<<20
)

type profilesRepo interface {
	Get(ctx context.Context, userID string) (*Profile, error)
	CompleteOnboarding(ctx context.Context, userID string, data Onboarding) (*Profile, int, error)
	Update(ctx context.Context, userID string, update Update) (*Profile, error)
	SetPhoto(ctx context.Context, userID, photoURL string) (string, error)
	SetMindfulness(ctx context.Context, userID string, enabled bool) error
	CompleteMindfulness(ctx context.Context, userID, date string) ([]string, error)
	SetDefaultWorkout(ctx context.Context, userID, workoutID string) error
}

type photoStore interface {
	Save(ctx context.Context, userID string, src io.Reader) (string, error)
	Open(ctx context.Context, name string) (*os.File, error)
	Delete(ctx context.Context, name string) error
}

type OnboardingResponse struct {
	Profile     *Profile `json:"profile"`
	HabitsAdded int      `json:"habitsAdded"`
}

type MindfulnessRequest struct {
	Enabled bool `json:"enabled"`
}

type MindfulnessResponse struct {
	Date           string   `json:"date"`
	CompletedDates []string `json:"completedDates"`
}

type DefaultWorkoutRequest struct {
	WorkoutID string `json:"workoutId" validate:"required,uuid"`
}

type PhotoResponse struct {
	PhotoURL string `json:"photoUrl"`
}

type Handler struct {
	repo   profilesRepo
	photos photoStore
	now    pkg.Clock
}

func NewHandler(repo profilesRepo, store photoStore, now pkg.Clock) *Handler {
	return &Handler{
		repo:   repo,
		photos: store,
		now:    now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/profile", handler.HandleGet).Methods("GET", "OPTIONS").Name("profile-get")
	r.HandleFunc("/profile", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("profile-update")
	r.HandleFunc("/onboarding", handler.HandleOnboarding).Methods("POST", "OPTIONS").Name("onboarding")
	r.HandleFunc("/profile/photo", handler.HandleUploadPhoto).Methods("POST", "OPTIONS").Name("profile-photo-upload")
	r.HandleFunc("/profile/mindfulness", handler.HandleSetMindfulness).Methods("PUT", "OPTIONS").Name("profile-mindfulness")
	r.HandleFunc("/profile/mindfulness/complete", handler.HandleCompleteMindfulness).Methods("POST", "OPTIONS").Name("profile-mindfulness-complete")
	r.HandleFunc("/profile/default-workout", handler.HandleSetDefaultWorkout).Methods("PUT", "OPTIONS").Name("profile-default-workout")
}

// SetupPublicRoutes registers the photo download, which image tags fetch without a token.
func (handler *Handler) SetupPublicRoutes(r *mux.Router) {
	r.HandleFunc(PhotoPathPrefix+"{name}", handler.HandleGetPhoto).Methods("GET", "OPTIONS").Name("profile-photo-get")
}

// HandleGet returns the stored profile, or an empty one for users that never
// went through onboarding.
func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.get")
	defer span.End()

	userID := auth.UserIDFromContext(ctx)
	profile, err := handler.repo.Get(ctx, userID)
	if errors.Is(err, ErrProfileNotFound) {
		profile = Empty(userID)
	} else if err != nil {
		log.Errorf("get profile %s: %s", userID, err)
		http.Error(w, "error, failed to get profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, profile, http.StatusOK)
}

func (handler *Handler) HandleOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.onboarding")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req Onboarding
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("onboarding, unmarshal json params: %s", err)
		http.Error(w, "onboarding failed", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := pkg.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID := auth.UserIDFromContext(ctx)
	profile, habitsAdded, err := handler.repo.CompleteOnboarding(ctx, userID, req)
	if err != nil {
		log.Errorf("onboarding for %s: %s", userID, err)
		http.Error(w, "error, failed to save onboarding", http.StatusInternalServerError)
		return
	}
	span.SetAttributes(attribute.Int("habits.added", habitsAdded))
	log.Debugf("onboarding completed for %s, %d default habits added", userID, habitsAdded)

	pkg.WriteJSON(w, OnboardingResponse{
		Profile:     profile,
		HabitsAdded: habitsAdded,
	}, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.update")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req Update
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("update profile, unmarshal json params: %s", err)
		http.Error(w, "update failed", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := pkg.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID := auth.UserIDFromContext(ctx)
	profile, err := handler.repo.Update(ctx, userID, req)
	if err != nil {
		log.Errorf("update profile %s: %s", userID, err)
		http.Error(w, "error, failed to update profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, profile, http.StatusOK)
}

func (handler *Handler) HandleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.uploadphoto")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBodySize)
	if err := r.ParseMultipartForm(maxUploadBodySize); err != nil {
		log.Errorf("upload photo, parse multipart form: %s", err)
		http.Error(w, "error, invalid upload or photo too big", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile(photoFormField)
	if err != nil {
		http.Error(w, "error, photo missing", http.StatusBadRequest)
		return
	}
	defer file.Close()

	userID := auth.UserIDFromContext(ctx)
	name, err := handler.photos.Save(ctx, userID, file)
	if err != nil {
		switch {
		case errors.Is(err, photos.ErrPhotoTooBig):
			http.Error(w, "error, photo too big", http.StatusRequestEntityTooLarge)
		case errors.Is(err, photos.ErrUnsupportedType), errors.Is(err, photos.ErrEmptyPhoto):
			http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		default:
			log.Errorf("save photo for %s: %s", userID, err)
			http.Error(w, "error, failed to save photo", http.StatusInternalServerError)
		}
		return
	}

	photoURL := PhotoPathPrefix + name
	previous, err := handler.repo.SetPhoto(ctx, userID, photoURL)
	if err != nil {
		log.Errorf("set photo url for %s: %s", userID, err)
		if delErr := handler.photos.Delete(ctx, name); delErr != nil {
			log.Errorf("remove orphan photo %s: %s", name, delErr)
		}
		http.Error(w, "error, failed to save photo", http.StatusInternalServerError)
		return
	}

	if oldName, ok := strings.CutPrefix(previous, PhotoPathPrefix); ok && oldName != name {
		if err := handler.photos.Delete(ctx, oldName); err != nil && !errors.Is(err, photos.ErrPhotoNotFound) {
			log.Errorf("remove previous photo %s: %s", oldName, err)
		}
	}

	pkg.WriteJSON(w, PhotoResponse{PhotoURL: photoURL}, http.StatusOK)
}

func (handler *Handler) HandleGetPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.getphoto")
	defer span.End()

	name := mux.Vars(r)["name"]
	file, err := handler.photos.Open(ctx, name)
	if err != nil {
		if errors.Is(err, photos.ErrPhotoNotFound) || errors.Is(err, photos.ErrInvalidName) {
			http.Error(w, "error, photo not found", http.StatusNotFound)
			return
		}
		log.Errorf("open photo %s: %s", name, err)
		http.Error(w, "error, failed to get photo", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		log.Errorf("stat photo %s: %s", name, err)
		http.Error(w, "error, failed to get photo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", photos.ContentType(name))
	w.Header().Set("Cache-Control", "private, max-age=86400")
	http.ServeContent(w, r, name, info.ModTime(), file)
}

func (handler *Handler) HandleSetMindfulness(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.setmindfulness")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req MindfulnessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("set mindfulness, unmarshal json params: %s", err)
		http.Error(w, "update failed", http.StatusBadRequest)
		return
	}

	userID := auth.UserIDFromContext(ctx)
	if err := handler.repo.SetMindfulness(ctx, userID, req.Enabled); err != nil {
		log.Errorf("set mindfulness for %s: %s", userID, err)
		http.Error(w, "error, failed to update mindfulness", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, req, http.StatusOK)
}

// HandleCompleteMindfulness marks today's session as done. Repeating it the same day changes nothing.
func (handler *Handler) HandleCompleteMindfulness(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.completemindfulness")
	defer span.End()

	today := pkg.FormatDate(handler.now())
	userID := auth.UserIDFromContext(ctx)
	dates, err := handler.repo.CompleteMindfulness(ctx, userID, today)
	if err != nil {
		log.Errorf("complete mindfulness for %s: %s", userID, err)
		http.Error(w, "error, failed to complete mindfulness", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, MindfulnessResponse{
		Date:           today,
		CompletedDates: dates,
	}, http.StatusOK)
}

func (handler *Handler) HandleSetDefaultWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.setdefaultworkout")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req DefaultWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("set default workout, unmarshal json params: %s", err)
		http.Error(w, "update failed", http.StatusBadRequest)
		return
	}
	if err := pkg.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(req.WorkoutID); err != nil {
		http.Error(w, "error, workout not found", http.StatusNotFound)
		return
	}

	userID := auth.UserIDFromContext(ctx)
	if err := handler.repo.SetDefaultWorkout(ctx, userID, req.WorkoutID); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "error, workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("set default workout for %s: %s", userID, err)
		http.Error(w, "error, failed to set default workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, req, http.StatusOK)
}
