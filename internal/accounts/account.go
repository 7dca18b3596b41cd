package accounts

import (
	"strings"
	"time"
)

const (
	CreatedViaSignup         = "signup"
	CreatedViaPaymentWebhook = "payment_webhook"
	CreatedViaAdmin          = "admin"
)

type Account struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	PasswordHash      string    `json:"-"`
	CreatedVia        string    `json:"createdVia"`
	MustResetPassword bool      `json:"mustResetPassword"`
	CreatedAt         time.Time `json:"createdAt"`
}

// NormalizeEmail is applied to every email before it reaches the database.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
