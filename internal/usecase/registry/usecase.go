package registry

import (
	"context"
	"errors"
	"strings"
	"time"

	appDomain "loanmarket-backend/internal/domain/application"
	userDomain "loanmarket-backend/internal/domain/user"
	"loanmarket-backend/pkg/id"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrInvalidEmail = errors.New("invalid email")

// Usecase owns User records: first-sign-in provisioning, role assignment,
// suspension, and the denormalized counter cache.
type Usecase struct {
	users userDomain.Repository
	apps  appDomain.Repository
	log   *zap.Logger
}

type RegisterInput struct {
	Email string
	Name  string
	Image string
	// Role is optional; empty means "preserve existing / default borrower".
	Role string
}

func NewUsecase(users userDomain.Repository, apps appDomain.Repository, log *zap.Logger) *Usecase {
	return &Usecase{users: users, apps: apps, log: log}
}

// RegisterOrTouch creates the user on first sign-in, or refreshes
// last_logged_in on a returning one. The role is only overwritten when the
// call explicitly supplies one — a plain login must never silently reset a
// manager back to borrower.
func (u *Usecase) RegisterOrTouch(ctx context.Context, in RegisterInput) (*userDomain.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if in.Role != "" && !userDomain.Role(in.Role).Valid() {
		return nil, userDomain.ErrBadRole
	}
	now := time.Now().UTC()

	existing, err := u.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		existing.LastLoggedIn = now
		if in.Name != "" {
			existing.Name = in.Name
		}
		if in.Image != "" {
			existing.Image = in.Image
		}
		if in.Role != "" {
			existing.Role = userDomain.Role(in.Role)
		}
		if err := u.users.Save(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		role := userDomain.RoleBorrower
		if in.Role != "" {
			role = userDomain.Role(in.Role)
		}
		nu := &userDomain.User{
			UserID:       id.NewID32(),
			Email:        email,
			Name:         in.Name,
			Image:        in.Image,
			Role:         role,
			Status:       userDomain.StatusActive,
			LastLoggedIn: now,
		}
		if err := u.users.Create(ctx, nu); err != nil {
			return nil, err
		}
		return nu, nil
	default:
		return nil, err
	}
}

// Role is deliberately lenient: an unknown email reads as borrower so a
// fresh dashboard can render before registration lands. Write-side
// authorization (the auth gate) stays fail-closed; see the middleware.
func (u *Usecase) Role(ctx context.Context, email string) (userDomain.Role, error) {
	usr, err := u.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return userDomain.RoleBorrower, nil
		}
		return "", err
	}
	return usr.Role, nil
}

func (u *Usecase) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	usr, err := u.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userDomain.ErrNotFound
		}
		return nil, err
	}
	return usr, nil
}

func (u *Usecase) List(ctx context.Context) ([]userDomain.User, error) {
	return u.users.List(ctx)
}

// SetRole overwrites the role unconditionally. Admin-gated upstream.
func (u *Usecase) SetRole(ctx context.Context, userID, role string) (*userDomain.User, error) {
	if !userDomain.Role(role).Valid() {
		return nil, userDomain.ErrBadRole
	}
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userDomain.ErrNotFound
		}
		return nil, err
	}
	usr.Role = userDomain.Role(role)
	if err := u.users.Save(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

type SuspendInput struct {
	Reason      string
	Feedback    string
	SuspendedAt time.Time
}

// Suspend flags the account; counters and applications are left alone.
func (u *Usecase) Suspend(ctx context.Context, userID string, in SuspendInput) (*userDomain.User, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userDomain.ErrNotFound
		}
		return nil, err
	}
	at := in.SuspendedAt
	if at.IsZero() {
		at = time.Now().UTC()
	}
	usr.Status = userDomain.StatusSuspended
	usr.SuspensionReason = in.Reason
	usr.AdminFeedback = in.Feedback
	usr.SuspendedAt = &at
	if err := u.users.Save(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// AdjustCounters forwards to the atomic single-row increment. A missing
// user is a logged no-op: the counters are cache, not truth.
func (u *Usecase) AdjustCounters(ctx context.Context, email string, d userDomain.CounterDelta) error {
	err := u.users.AdjustCounters(ctx, strings.ToLower(strings.TrimSpace(email)), d)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		u.log.Warn("counter adjustment for unknown user skipped", zap.String("email", email))
		return nil
	}
	return err
}

// Reconcile recomputes the four counters from the applications table and
// writes them back. Run when drift is suspected; the recount is the
// authoritative answer by definition.
func (u *Usecase) Reconcile(ctx context.Context, email string) (*userDomain.User, error) {
	usr, err := u.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	applied, err := u.apps.CountByUserEmail(ctx, usr.Email)
	if err != nil {
		return nil, err
	}
	pending, err := u.apps.CountByUserAndStatus(ctx, usr.Email, appDomain.StatusPending)
	if err != nil {
		return nil, err
	}
	approved, err := u.apps.CountByUserAndStatus(ctx, usr.Email, appDomain.StatusApproved)
	if err != nil {
		return nil, err
	}
	rejected, err := u.apps.CountByUserAndStatus(ctx, usr.Email, appDomain.StatusRejected)
	if err != nil {
		return nil, err
	}

	if err := u.users.SetCounters(ctx, usr.Email, applied, pending, approved, rejected); err != nil {
		return nil, err
	}
	usr.TotalApplied = applied
	usr.TotalPending = pending
	usr.TotalApproved = approved
	usr.TotalRejected = rejected
	return usr, nil
}
