package archive

import "context"

type Repository interface {
	Create(ctx context.Context, r *Record) error
	GetByRecordID(ctx context.Context, recordID string) (*Record, error)
	GetByApplicationID(ctx context.Context, applicationID string) (*Record, error)
	List(ctx context.Context) ([]Record, error)
	// Delete removes only the archive record (the revoke path); the source
	// application is never touched here. Returns rows matched.
	Delete(ctx context.Context, recordID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
