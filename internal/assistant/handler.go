package assistant

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/2beens/movimentai/internal/auth"
	"github.com/2beens/movimentai/internal/relay"
	"github.com/2beens/movimentai/internal/telemetry/tracing"
	"github.com/2beens/movimentai/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const maxMessageLength = 2000

type ChatRequest struct {
	Message  string `json:"message"`
	Mensagem string `json:"mensagem"`
}

// Text prefers the Portuguese field, like the web client sends it.
func (cr ChatRequest) Text() string {
	if m := strings.TrimSpace(cr.Mensagem); m != "" {
		return m
	}
	return strings.TrimSpace(cr.Message)
}

type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response,omitempty"`
	Source   string `json:"source,omitempty"`
	Error    string `json:"error,omitempty"`
}

type chatRelayPayload struct {
	UserID   string `json:"user_id"`
	Mensagem string `json:"mensagem"`
	Source   string `json:"source"`
}

type Handler struct {
	responder *Responder
	relay     *relay.Relay
}

func NewHandler(responder *Responder, chatRelay *relay.Relay) *Handler {
	return &Handler{
		responder: responder,
		relay:     chatRelay,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/chat", handler.HandleChat).Methods("POST", "OPTIONS").Name("chat")
}

func (handler *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.assistant.chat")
	defer span.End()

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("chat, unmarshal json params: %s", err)
		pkg.WriteJSON(w, ChatResponse{
			Success:  true,
			Response: troubleReply,
			Source:   SourceLocal,
		}, http.StatusOK)
		return
	}

	message := req.Text()
	if message == "" {
		pkg.WriteJSON(w, ChatResponse{
			Success: false,
			Error:   ErrMessageMissing,
		}, http.StatusOK)
		return
	}
	if len(message) > maxMessageLength {
		message = message[:maxMessageLength]
		message = strings.ToValidUTF8(message, "")
	}

	reply := handler.responder.Reply(ctx, message)

	handler.relay.Fire(chatRelayPayload{
		UserID:   auth.UserIDFromContext(ctx),
		Mensagem: message,
		Source:   reply.Source,
	})

	pkg.WriteJSON(w, ChatResponse{
		Success:  true,
		Response: reply.Text,
		Source:   reply.Source,
	}, http.StatusOK)
}
