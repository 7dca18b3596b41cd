package dashboard

import (
	"net/http"

	"github.com/2beens/movimentai/internal/auth"
	"github.com/2beens/movimentai/internal/telemetry/tracing"
	"github.com/2beens/movimentai/pkg"

	"github.com/gorilla/mux"
)

type Handler struct {
	builder *Builder
}

func NewHandler(builder *Builder) *Handler {
	return &Handler{
		builder: builder,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/dashboard", handler.HandleGet).Methods("GET", "OPTIONS").Name("dashboard")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.get")
	defer span.End()

	pkg.WriteJSON(w, handler.builder.Build(ctx, auth.UserIDFromContext(ctx)), http.StatusOK)
}
