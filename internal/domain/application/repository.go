package application

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	ListByUserEmail(ctx context.Context, email string) ([]Application, error)
	ListByStatus(ctx context.Context, st Status) ([]Application, error)
	ListAll(ctx context.Context) ([]Application, error)

	// MarkPaid sets FeeStatus=Paid, the payment reference and paid_at in a
	// single-row update. Returns rows matched; 0 means the id is unknown.
	// Deliberately not conditional on Unpaid: a re-confirmation overwrites.
	MarkPaid(ctx context.Context, applicationID, paymentID string, paidAt time.Time) (int64, error)

	// Decide flips Pending to the given terminal status with a conditional
	// update ("where status = Pending"), so exactly one of two racing
	// decisions can win. Returns rows matched; 0 means not found or
	// already decided.
	Decide(ctx context.Context, applicationID string, st Status, at time.Time) (int64, error)

	// DeleteUnpaid removes the application only while it is still
	// cancellable (fee unpaid and not rejected), as one conditional
	// delete. Returns rows matched.
	DeleteUnpaid(ctx context.Context, applicationID string) (int64, error)

	CountByStatus(ctx context.Context, st Status) (int64, error)
	CountByUserEmail(ctx context.Context, email string) (int64, error)
	CountByUserAndStatus(ctx context.Context, email string, st Status) (int64, error)
}
