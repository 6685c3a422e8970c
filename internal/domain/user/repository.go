package user

import "context"

// CounterDelta is a signed adjustment applied to the denormalized counters.
// Zero fields are left untouched.
type CounterDelta struct {
	Applied  int
	Pending  int
	Approved int
	Rejected int
}

func (d CounterDelta) Empty() bool {
	return d.Applied == 0 && d.Pending == 0 && d.Approved == 0 && d.Rejected == 0
}

type Repository interface {
	Create(ctx context.Context, u *User) error
	Save(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUserID(ctx context.Context, userID string) (*User, error)
	List(ctx context.Context) ([]User, error)

	// AdjustCounters applies the delta as a single-row atomic increment
	// (never read-modify-write). Returns gorm.ErrRecordNotFound when no
	// user matches the email.
	AdjustCounters(ctx context.Context, email string, d CounterDelta) error
	// SetCounters overwrites all four counters with absolute values.
	SetCounters(ctx context.Context, email string, applied, pending, approved, rejected int64) error

	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role Role) (int64, error)
}
