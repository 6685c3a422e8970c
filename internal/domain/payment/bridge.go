package payment

import (
	"context"
	"errors"
)

var ErrSessionNotFound = errors.New("checkout session not found")

// Session is the opaque checkout-session reference returned by the
// external provider. Only the fields the engine and the payment-details
// proxy need are surfaced.
type Session struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	ApplicationID string `json:"application_id"`
	CustomerEmail string `json:"customer_email"`
	AmountCents   int64  `json:"amount_cents"`
	Currency      string `json:"currency"`
	Status        string `json:"status"`
	PaymentIntent string `json:"payment_intent,omitempty"`
}

type CheckoutInput struct {
	ApplicationID string
	CustomerEmail string
	AmountCents   int64
	Currency      string
	SuccessURL    string
	CancelURL     string
}

// Bridge is the third-party checkout provider, treated as a black box.
type Bridge interface {
	CreateCheckoutSession(ctx context.Context, in CheckoutInput) (*Session, error)
	GetSession(ctx context.Context, sessionID string) (*Session, error)
}
