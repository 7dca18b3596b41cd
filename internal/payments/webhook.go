package payments

import (
	"strings"
)

const (
	SecretHeader = "X-Webhook-Secret"

	defaultName      = "Novo Usuário"
	defaultGoal      = "Condicionamento"
	defaultLevel     = "Iniciante"
	defaultDailyTime = 30

	errNotApproved = "Payment not approved"
	successMessage = "Account created and workout generated"
)

// WebhookRequest is what the checkout platform posts after a purchase.
type WebhookRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Nome        string `json:"nome" validate:"max=120"`
	Status      string `json:"status"`
	Objetivo    string `json:"objetivo" validate:"max=60"`
	Nivel       string `json:"nivel" validate:"max=60"`
	TempoDiario int    `json:"tempo_diario" validate:"gte=0,lte=300"`
}

func (wr WebhookRequest) Approved() bool {
	switch strings.ToLower(strings.TrimSpace(wr.Status)) {
	case "aprovado", "approved":
		return true
	default:
		return false
	}
}

func (wr WebhookRequest) Name() string {
	if n := strings.TrimSpace(wr.Nome); n != "" {
		return n
	}
	return defaultName
}

// workoutRequest is relayed to the workout generation automation, which also
// delivers the welcome email with the temporary password.
type workoutRequest struct {
	Email         string `json:"email"`
	Nome          string `json:"nome"`
	Objetivo      string `json:"objetivo"`
	Nivel         string `json:"nivel"`
	TempoDiario   int    `json:"tempo_diario"`
	TempPassword  string `json:"senha_temporaria,omitempty"`
	AccountExists bool   `json:"conta_existente"`
}

func newWorkoutRequest(wr WebhookRequest, email, tempPassword string, existing bool) workoutRequest {
	req := workoutRequest{
		Email:         email,
		Nome:          wr.Name(),
		Objetivo:      strings.TrimSpace(wr.Objetivo),
		Nivel:         strings.TrimSpace(wr.Nivel),
		TempoDiario:   wr.TempoDiario,
		TempPassword:  tempPassword,
		AccountExists: existing,
	}
	if req.Objetivo == "" {
		req.Objetivo = defaultGoal
	}
	if req.Nivel == "" {
		req.Nivel = defaultLevel
	}
	if req.TempoDiario == 0 {
		req.TempoDiario = defaultDailyTime
	}
	return req
}

type WebhookUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type WebhookResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Error   string       `json:"error,omitempty"`
	User    *WebhookUser `json:"user,omitempty"`
}
