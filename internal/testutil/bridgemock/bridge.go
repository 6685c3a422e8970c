package bridgemock

import (
	"context"

	"loanmarket-backend/internal/domain/payment"
)

var _ payment.Bridge = (*Bridge)(nil)

// Bridge is a function-backed mock that satisfies payment.Bridge.
type Bridge struct {
	CreateCheckoutSessionFn func(ctx context.Context, in payment.CheckoutInput) (*payment.Session, error)
	GetSessionFn            func(ctx context.Context, sessionID string) (*payment.Session, error)
}

func (m *Bridge) CreateCheckoutSession(ctx context.Context, in payment.CheckoutInput) (*payment.Session, error) {
	if m.CreateCheckoutSessionFn != nil {
		return m.CreateCheckoutSessionFn(ctx, in)
	}
	return &payment.Session{ID: "sess_mock", URL: "https://checkout.test/sess_mock"}, nil
}

func (m *Bridge) GetSession(ctx context.Context, sessionID string) (*payment.Session, error) {
	if m.GetSessionFn != nil {
		return m.GetSessionFn(ctx, sessionID)
	}
	return nil, payment.ErrSessionNotFound
}
