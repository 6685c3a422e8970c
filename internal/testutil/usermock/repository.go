package usermock

import (
	"context"

	domain "loanmarket-backend/internal/domain/user"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies user.Repository. Fill in
// only the fields a test needs; unfilled getters report not-found.
type Repo struct {
	CreateFn         func(ctx context.Context, u *domain.User) error
	SaveFn           func(ctx context.Context, u *domain.User) error
	GetByEmailFn     func(ctx context.Context, email string) (*domain.User, error)
	GetByUserIDFn    func(ctx context.Context, userID string) (*domain.User, error)
	ListFn           func(ctx context.Context) ([]domain.User, error)
	AdjustCountersFn func(ctx context.Context, email string, d domain.CounterDelta) error
	SetCountersFn    func(ctx context.Context, email string, applied, pending, approved, rejected int64) error
	CountFn          func(ctx context.Context) (int64, error)
	CountByRoleFn    func(ctx context.Context, role domain.Role) (int64, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) AdjustCounters(ctx context.Context, email string, d domain.CounterDelta) error {
	if m.AdjustCountersFn != nil {
		return m.AdjustCountersFn(ctx, email, d)
	}
	return nil
}

func (m *Repo) SetCounters(ctx context.Context, email string, applied, pending, approved, rejected int64) error {
	if m.SetCountersFn != nil {
		return m.SetCountersFn(ctx, email, applied, pending, approved, rejected)
	}
	return nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

func (m *Repo) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	if m.CountByRoleFn != nil {
		return m.CountByRoleFn(ctx, role)
	}
	return 0, nil
}
