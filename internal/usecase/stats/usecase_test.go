package stats

import (
	"context"
	"testing"

	appDomain "loanmarket-backend/internal/domain/application"
	productDomain "loanmarket-backend/internal/domain/product"
	userDomain "loanmarket-backend/internal/domain/user"
	"loanmarket-backend/internal/testutil/applicationmock"
	"loanmarket-backend/internal/testutil/archivemock"
	"loanmarket-backend/internal/testutil/productmock"
	"loanmarket-backend/internal/testutil/usermock"
)

func statusCounts(pending, approved, rejected int64) func(context.Context, appDomain.Status) (int64, error) {
	return func(_ context.Context, st appDomain.Status) (int64, error) {
		switch st {
		case appDomain.StatusPending:
			return pending, nil
		case appDomain.StatusApproved:
			return approved, nil
		case appDomain.StatusRejected:
			return rejected, nil
		}
		return 0, nil
	}
}

func TestAdmin(t *testing.T) {
	users := &usermock.Repo{
		CountFn: func(ctx context.Context) (int64, error) { return 10, nil },
		CountByRoleFn: func(ctx context.Context, role userDomain.Role) (int64, error) {
			switch role {
			case userDomain.RoleBorrower:
				return 7, nil
			case userDomain.RoleManager:
				return 2, nil
			case userDomain.RoleAdmin:
				return 1, nil
			}
			return 0, nil
		},
	}
	products := &productmock.Repo{
		CountFn: func(ctx context.Context) (int64, error) { return 4, nil },
		CountByAvailabilityFn: func(ctx context.Context, a productDomain.Availability) (int64, error) {
			return 3, nil
		},
	}
	apps := &applicationmock.Repo{CountByStatusFn: statusCounts(5, 3, 2)}
	uc := NewUsecase(users, products, apps, &archivemock.Repo{})

	s, err := uc.Admin(context.Background())
	if err != nil {
		t.Fatalf("Admin: %v", err)
	}
	if s.TotalUsers != 10 || s.TotalBorrowers != 7 || s.TotalManagers != 2 || s.TotalAdmins != 1 {
		t.Fatalf("user rollup: %+v", s)
	}
	if s.TotalProducts != 4 || s.AvailableProducts != 3 {
		t.Fatalf("product rollup: %+v", s)
	}
	if s.TotalApplications != 10 || s.PendingApplications != 5 || s.ApprovedApplications != 3 || s.RejectedApplications != 2 {
		t.Fatalf("application rollup: %+v", s)
	}
}

func TestManager(t *testing.T) {
	var gotManager string
	products := &productmock.Repo{
		CountByManagerFn: func(ctx context.Context, managerEmail string) (int64, error) {
			gotManager = managerEmail
			return 2, nil
		},
	}
	apps := &applicationmock.Repo{CountByStatusFn: statusCounts(6, 0, 0)}
	arch := &archivemock.Repo{
		CountFn: func(ctx context.Context) (int64, error) { return 9, nil },
	}
	uc := NewUsecase(&usermock.Repo{}, products, apps, arch)

	s, err := uc.Manager(context.Background(), "  Mgr@Example.com ")
	if err != nil {
		t.Fatalf("Manager: %v", err)
	}
	if gotManager != "mgr@example.com" {
		t.Fatalf("manager email not normalized: %q", gotManager)
	}
	if s.OwnProducts != 2 || s.PendingApplications != 6 || s.ApprovedLoans != 9 {
		t.Fatalf("manager rollup: %+v", s)
	}
}

func TestBorrower_CountsLiveRows(t *testing.T) {
	apps := &applicationmock.Repo{
		CountByUserEmailFn: func(ctx context.Context, email string) (int64, error) {
			if email != "b@example.com" {
				t.Fatalf("email not normalized: %q", email)
			}
			return 4, nil
		},
		CountByUserAndStatusFn: func(ctx context.Context, email string, st appDomain.Status) (int64, error) {
			switch st {
			case appDomain.StatusPending:
				return 1, nil
			case appDomain.StatusApproved:
				return 2, nil
			case appDomain.StatusRejected:
				return 1, nil
			}
			return 0, nil
		},
	}
	uc := NewUsecase(&usermock.Repo{}, &productmock.Repo{}, apps, &archivemock.Repo{})

	s, err := uc.Borrower(context.Background(), "B@Example.com")
	if err != nil {
		t.Fatalf("Borrower: %v", err)
	}
	if s.TotalApplied != 4 || s.TotalPending != 1 || s.TotalApproved != 2 || s.TotalRejected != 1 {
		t.Fatalf("borrower rollup: %+v", s)
	}
}
