package stats

import (
	"context"
	"strings"

	appDomain "loanmarket-backend/internal/domain/application"
	archiveDomain "loanmarket-backend/internal/domain/archive"
	productDomain "loanmarket-backend/internal/domain/product"
	userDomain "loanmarket-backend/internal/domain/user"
)

// Usecase serves read-only dashboard rollups. Counts are taken live at
// query time; no transactional consistency with concurrent writes is
// promised or needed here.
type Usecase struct {
	users    userDomain.Repository
	products productDomain.Repository
	apps     appDomain.Repository
	archive  archiveDomain.Repository
}

func NewUsecase(
	users userDomain.Repository,
	products productDomain.Repository,
	apps appDomain.Repository,
	arch archiveDomain.Repository,
) *Usecase {
	return &Usecase{users: users, products: products, apps: apps, archive: arch}
}

type AdminStats struct {
	TotalUsers     int64 `json:"total_users"`
	TotalBorrowers int64 `json:"total_borrowers"`
	TotalManagers  int64 `json:"total_managers"`
	TotalAdmins    int64 `json:"total_admins"`

	TotalProducts     int64 `json:"total_products"`
	AvailableProducts int64 `json:"available_products"`

	TotalApplications    int64 `json:"total_applications"`
	PendingApplications  int64 `json:"pending_applications"`
	ApprovedApplications int64 `json:"approved_applications"`
	RejectedApplications int64 `json:"rejected_applications"`
}

func (u *Usecase) Admin(ctx context.Context) (*AdminStats, error) {
	out := &AdminStats{}
	var err error
	if out.TotalUsers, err = u.users.Count(ctx); err != nil {
		return nil, err
	}
	if out.TotalBorrowers, err = u.users.CountByRole(ctx, userDomain.RoleBorrower); err != nil {
		return nil, err
	}
	if out.TotalManagers, err = u.users.CountByRole(ctx, userDomain.RoleManager); err != nil {
		return nil, err
	}
	if out.TotalAdmins, err = u.users.CountByRole(ctx, userDomain.RoleAdmin); err != nil {
		return nil, err
	}
	if out.TotalProducts, err = u.products.Count(ctx); err != nil {
		return nil, err
	}
	if out.AvailableProducts, err = u.products.CountByAvailability(ctx, productDomain.Available); err != nil {
		return nil, err
	}
	if out.TotalApplications, err = u.countAllApplications(ctx); err != nil {
		return nil, err
	}
	if out.PendingApplications, err = u.apps.CountByStatus(ctx, appDomain.StatusPending); err != nil {
		return nil, err
	}
	if out.ApprovedApplications, err = u.apps.CountByStatus(ctx, appDomain.StatusApproved); err != nil {
		return nil, err
	}
	if out.RejectedApplications, err = u.apps.CountByStatus(ctx, appDomain.StatusRejected); err != nil {
		return nil, err
	}
	return out, nil
}

type ManagerStats struct {
	OwnProducts         int64 `json:"own_products"`
	PendingApplications int64 `json:"pending_applications"`
	ApprovedLoans       int64 `json:"approved_loans"`
}

func (u *Usecase) Manager(ctx context.Context, managerEmail string) (*ManagerStats, error) {
	out := &ManagerStats{}
	var err error
	email := strings.ToLower(strings.TrimSpace(managerEmail))
	if out.OwnProducts, err = u.products.CountByManager(ctx, email); err != nil {
		return nil, err
	}
	if out.PendingApplications, err = u.apps.CountByStatus(ctx, appDomain.StatusPending); err != nil {
		return nil, err
	}
	if out.ApprovedLoans, err = u.archive.Count(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

type BorrowerStats struct {
	TotalApplied  int64 `json:"total_applied"`
	TotalPending  int64 `json:"total_pending"`
	TotalApproved int64 `json:"total_approved"`
	TotalRejected int64 `json:"total_rejected"`
}

// Borrower counts live rows rather than reading the cached counters, so
// the dashboard stays honest even when the cache has drifted.
func (u *Usecase) Borrower(ctx context.Context, email string) (*BorrowerStats, error) {
	out := &BorrowerStats{}
	var err error
	e := strings.ToLower(strings.TrimSpace(email))
	if out.TotalApplied, err = u.apps.CountByUserEmail(ctx, e); err != nil {
		return nil, err
	}
	if out.TotalPending, err = u.apps.CountByUserAndStatus(ctx, e, appDomain.StatusPending); err != nil {
		return nil, err
	}
	if out.TotalApproved, err = u.apps.CountByUserAndStatus(ctx, e, appDomain.StatusApproved); err != nil {
		return nil, err
	}
	if out.TotalRejected, err = u.apps.CountByUserAndStatus(ctx, e, appDomain.StatusRejected); err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) countAllApplications(ctx context.Context) (int64, error) {
	var total int64
	for _, st := range []appDomain.Status{
		appDomain.StatusPending, appDomain.StatusApproved, appDomain.StatusRejected,
	} {
		n, err := u.apps.CountByStatus(ctx, st)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
