package product

import "context"

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByProductID(ctx context.Context, productID string) (*Product, error)
	// ListAvailable returns products with availability=available, newest
	// first. limit <= 0 means no limit.
	ListAvailable(ctx context.Context, limit int) ([]Product, error)
	ListAll(ctx context.Context) ([]Product, error)

	// UpdateFields applies a partial patch; returns the number of rows
	// matched so callers can distinguish a missing product.
	UpdateFields(ctx context.Context, productID string, patch Patch) (int64, error)
	SetAvailability(ctx context.Context, productID string, a Availability) error
	Delete(ctx context.Context, productID string) (int64, error)

	Count(ctx context.Context) (int64, error)
	CountByAvailability(ctx context.Context, a Availability) (int64, error)
	CountByManager(ctx context.Context, managerEmail string) (int64, error)
}
