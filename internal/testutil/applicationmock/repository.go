package applicationmock

import (
	"context"
	"time"

	domain "loanmarket-backend/internal/domain/application"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies application.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, a *domain.Application) error
	GetByApplicationIDFn   func(ctx context.Context, applicationID string) (*domain.Application, error)
	ListByUserEmailFn      func(ctx context.Context, email string) ([]domain.Application, error)
	ListByStatusFn         func(ctx context.Context, st domain.Status) ([]domain.Application, error)
	ListAllFn              func(ctx context.Context) ([]domain.Application, error)
	MarkPaidFn             func(ctx context.Context, applicationID, paymentID string, paidAt time.Time) (int64, error)
	DecideFn               func(ctx context.Context, applicationID string, st domain.Status, at time.Time) (int64, error)
	DeleteUnpaidFn         func(ctx context.Context, applicationID string) (int64, error)
	CountByStatusFn        func(ctx context.Context, st domain.Status) (int64, error)
	CountByUserEmailFn     func(ctx context.Context, email string) (int64, error)
	CountByUserAndStatusFn func(ctx context.Context, email string, st domain.Status) (int64, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByUserEmail(ctx context.Context, email string) ([]domain.Application, error) {
	if m.ListByUserEmailFn != nil {
		return m.ListByUserEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *Repo) ListByStatus(ctx context.Context, st domain.Status) ([]domain.Application, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, st)
	}
	return nil, nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Application, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) MarkPaid(ctx context.Context, applicationID, paymentID string, paidAt time.Time) (int64, error) {
	if m.MarkPaidFn != nil {
		return m.MarkPaidFn(ctx, applicationID, paymentID, paidAt)
	}
	return 0, nil
}

func (m *Repo) Decide(ctx context.Context, applicationID string, st domain.Status, at time.Time) (int64, error) {
	if m.DecideFn != nil {
		return m.DecideFn(ctx, applicationID, st, at)
	}
	return 0, nil
}

func (m *Repo) DeleteUnpaid(ctx context.Context, applicationID string) (int64, error) {
	if m.DeleteUnpaidFn != nil {
		return m.DeleteUnpaidFn(ctx, applicationID)
	}
	return 0, nil
}

func (m *Repo) CountByStatus(ctx context.Context, st domain.Status) (int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, st)
	}
	return 0, nil
}

func (m *Repo) CountByUserEmail(ctx context.Context, email string) (int64, error) {
	if m.CountByUserEmailFn != nil {
		return m.CountByUserEmailFn(ctx, email)
	}
	return 0, nil
}

func (m *Repo) CountByUserAndStatus(ctx context.Context, email string, st domain.Status) (int64, error) {
	if m.CountByUserAndStatusFn != nil {
		return m.CountByUserAndStatusFn(ctx, email, st)
	}
	return 0, nil
}
