package payments

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/2beens/movimentai/internal/accounts"
	"github.com/2beens/movimentai/internal/telemetry/metrics"
	"github.com/2beens/movimentai/internal/telemetry/tracing"
	"github.com/2beens/movimentai/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=payments_test

type provisioner interface {
	Provision(ctx context.Context, email, name, createdVia string) (*accounts.ProvisionResult, error)
}

type workoutRelay interface {
	Fire(payload any)
}

type Handler struct {
	provisioner provisioner
	relay       workoutRelay
	secret      string
	metrics     *metrics.Manager
}

// NewHandler creates the payment webhook handler. An empty secret disables
// the shared secret check.
func NewHandler(
	provisioner provisioner,
	relay workoutRelay,
	secret string,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		provisioner: provisioner,
		relay:       relay,
		secret:      secret,
		metrics:     metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/webhook/payment", handler.HandlePayment).Methods("POST", "OPTIONS").Name("payment-webhook")
}

func (handler *Handler) HandlePayment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.payments.webhook")
	defer span.End()

	if handler.secret != "" {
		got := r.Header.Get(SecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(handler.secret)) != 1 {
			log.Warnf("payment webhook: bad secret from %s", r.RemoteAddr)
			handler.count("unauthorized")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
	}

	var req WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("payment webhook, unmarshal json params: %s", err)
		handler.count("invalid")
		pkg.WriteJSON(w, WebhookResponse{Error: "invalid payload"}, http.StatusBadRequest)
		return
	}

	if !req.Approved() {
		log.Infof("payment webhook: status %q for %s, ignoring", req.Status, req.Email)
		handler.count("not_approved")
		pkg.WriteJSON(w, WebhookResponse{Error: errNotApproved}, http.StatusBadRequest)
		return
	}

	if err := pkg.Validate(req); err != nil {
		handler.count("invalid")
		pkg.WriteJSON(w, WebhookResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	res, err := handler.provisioner.Provision(ctx, req.Email, req.Name(), accounts.CreatedViaPaymentWebhook)
	if err != nil {
		log.Errorf("payment webhook, provision account for %s: %s", req.Email, err)
		handler.count("error")
		pkg.WriteJSON(w, WebhookResponse{Error: "failed to create account"}, http.StatusInternalServerError)
		return
	}

	handler.relay.Fire(newWorkoutRequest(req, res.Account.Email, res.TempPassword, !res.Created))

	if res.Created {
		handler.count("created")
	} else {
		handler.count("existing")
	}

	pkg.WriteJSON(w, WebhookResponse{
		Success: true,
		Message: successMessage,
		User: &WebhookUser{
			Email: res.Account.Email,
			Name:  req.Name(),
		},
	}, http.StatusOK)
}

func (handler *Handler) count(outcome string) {
	handler.metrics.CounterPaymentWebhooks.WithLabelValues(outcome).Inc()
}
