package productmock

import (
	"context"

	domain "loanmarket-backend/internal/domain/product"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies product.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, p *domain.Product) error
	GetByProductIDFn      func(ctx context.Context, productID string) (*domain.Product, error)
	ListAvailableFn       func(ctx context.Context, limit int) ([]domain.Product, error)
	ListAllFn             func(ctx context.Context) ([]domain.Product, error)
	UpdateFieldsFn        func(ctx context.Context, productID string, patch domain.Patch) (int64, error)
	SetAvailabilityFn     func(ctx context.Context, productID string, a domain.Availability) error
	DeleteFn              func(ctx context.Context, productID string) (int64, error)
	CountFn               func(ctx context.Context) (int64, error)
	CountByAvailabilityFn func(ctx context.Context, a domain.Availability) (int64, error)
	CountByManagerFn      func(ctx context.Context, managerEmail string) (int64, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Product) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByProductID(ctx context.Context, productID string) (*domain.Product, error) {
	if m.GetByProductIDFn != nil {
		return m.GetByProductIDFn(ctx, productID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListAvailable(ctx context.Context, limit int) ([]domain.Product, error) {
	if m.ListAvailableFn != nil {
		return m.ListAvailableFn(ctx, limit)
	}
	return nil, nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Product, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) UpdateFields(ctx context.Context, productID string, patch domain.Patch) (int64, error) {
	if m.UpdateFieldsFn != nil {
		return m.UpdateFieldsFn(ctx, productID, patch)
	}
	return 0, nil
}

func (m *Repo) SetAvailability(ctx context.Context, productID string, a domain.Availability) error {
	if m.SetAvailabilityFn != nil {
		return m.SetAvailabilityFn(ctx, productID, a)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, productID string) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, productID)
	}
	return 0, nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

func (m *Repo) CountByAvailability(ctx context.Context, a domain.Availability) (int64, error) {
	if m.CountByAvailabilityFn != nil {
		return m.CountByAvailabilityFn(ctx, a)
	}
	return 0, nil
}

func (m *Repo) CountByManager(ctx context.Context, managerEmail string) (int64, error) {
	if m.CountByManagerFn != nil {
		return m.CountByManagerFn(ctx, managerEmail)
	}
	return 0, nil
}
