package preferences

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/movimentai/internal/auth"
	"github.com/2beens/movimentai/internal/telemetry/tracing"
	"github.com/2beens/movimentai/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=preferences_test

type preferencesStore interface {
	Get(ctx context.Context, userID string) (*Preferences, error)
	Update(ctx context.Context, userID string, update Update) (*Preferences, error)
}

type Handler struct {
	store preferencesStore
}

func NewHandler(store preferencesStore) *Handler {
	return &Handler{
		store: store,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/preferences", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-preferences")
	r.HandleFunc("/preferences", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-preferences")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.preferences.get")
	defer span.End()

	prefs, err := handler.store.Get(ctx, auth.UserIDFromContext(ctx))
	if err != nil {
		// the UI keeps working with defaults
		log.Errorf("get preferences: %s", err)
		defaults := Defaults()
		prefs = &defaults
	}

	pkg.WriteJSON(w, prefs, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.preferences.update")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var update Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Errorf("update preferences, unmarshal json params: %s", err)
		http.Error(w, "invalid preferences", http.StatusBadRequest)
		return
	}
	if err := pkg.Validate(update); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if update.Empty() {
		http.Error(w, "nothing to update", http.StatusBadRequest)
		return
	}

	prefs, err := handler.store.Update(ctx, auth.UserIDFromContext(ctx), update)
	if err != nil {
		log.Errorf("update preferences: %s", err)
		http.Error(w, "failed to update preferences", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, prefs, http.StatusOK)
}
