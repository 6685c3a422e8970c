package archivemock

import (
	"context"

	domain "loanmarket-backend/internal/domain/archive"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies archive.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, r *domain.Record) error
	GetByRecordIDFn      func(ctx context.Context, recordID string) (*domain.Record, error)
	GetByApplicationIDFn func(ctx context.Context, applicationID string) (*domain.Record, error)
	ListFn               func(ctx context.Context) ([]domain.Record, error)
	DeleteFn             func(ctx context.Context, recordID string) (int64, error)
	CountFn              func(ctx context.Context) (int64, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Record) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByRecordID(ctx context.Context, recordID string) (*domain.Record, error) {
	if m.GetByRecordIDFn != nil {
		return m.GetByRecordIDFn(ctx, recordID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.Record, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Record, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Delete(ctx context.Context, recordID string) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, recordID)
	}
	return 0, nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}
