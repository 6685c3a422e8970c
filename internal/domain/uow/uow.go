package uow

import (
	"context"

	"loanmarket-backend/internal/domain/application"
	"loanmarket-backend/internal/domain/archive"
	"loanmarket-backend/internal/domain/product"
	"loanmarket-backend/internal/domain/user"
)

type Repos struct {
	Users        user.Repository
	Products     product.Repository
	Applications application.Repository
	Archive      archive.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn with all repositories bound to one transaction.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
