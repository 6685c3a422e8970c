package registry

import (
	"context"
	"errors"
	"testing"
	"time"

	appDomain "loanmarket-backend/internal/domain/application"
	userDomain "loanmarket-backend/internal/domain/user"
	"loanmarket-backend/internal/testutil/applicationmock"
	"loanmarket-backend/internal/testutil/usermock"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestRegisterOrTouch_NewUser(t *testing.T) {
	var created *userDomain.User
	users := &usermock.Repo{
		CreateFn: func(ctx context.Context, u *userDomain.User) error {
			created = u
			return nil
		},
	}
	uc := NewUsecase(users, &applicationmock.Repo{}, zap.NewNop())

	u, err := uc.RegisterOrTouch(context.Background(), RegisterInput{
		Email: "New.User@Example.COM",
		Name:  "New User",
	})
	if err != nil {
		t.Fatalf("RegisterOrTouch: %v", err)
	}
	if created == nil {
		t.Fatal("Create not called")
	}
	if u.Email != "new.user@example.com" {
		t.Fatalf("email not normalized: %s", u.Email)
	}
	if u.Role != userDomain.RoleBorrower {
		t.Fatalf("default role=%s, want borrower", u.Role)
	}
	if u.Status != userDomain.StatusActive {
		t.Fatalf("status=%s, want active", u.Status)
	}
	if len(u.UserID) != 32 {
		t.Fatalf("UserID length: %d", len(u.UserID))
	}
	if u.LastLoggedIn.IsZero() {
		t.Fatal("LastLoggedIn not set")
	}
	if u.TotalApplied != 0 || u.TotalPending != 0 || u.TotalApproved != 0 || u.TotalRejected != 0 {
		t.Fatalf("counters must start at zero: %+v", u)
	}
}

func TestRegisterOrTouch_ReturningUserKeepsRole(t *testing.T) {
	old := time.Now().UTC().Add(-24 * time.Hour)
	stored := &userDomain.User{
		UserID: "dddddddddddddddddddddddddddddddd",
		Email:  "mgr@example.com", Name: "Mgr",
		Role: userDomain.RoleManager, Status: userDomain.StatusActive,
		LastLoggedIn: old,
	}
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*userDomain.User, error) {
			return stored, nil
		},
		CreateFn: func(ctx context.Context, u *userDomain.User) error {
			t.Fatal("must not create a second record for a returning user")
			return nil
		},
	}
	uc := NewUsecase(users, &applicationmock.Repo{}, zap.NewNop())

	u, err := uc.RegisterOrTouch(context.Background(), RegisterInput{Email: "mgr@example.com"})
	if err != nil {
		t.Fatalf("RegisterOrTouch: %v", err)
	}
	if u.Role != userDomain.RoleManager {
		t.Fatalf("login reset role to %s", u.Role)
	}
	if !u.LastLoggedIn.After(old) {
		t.Fatal("LastLoggedIn not refreshed")
	}
}

func TestRegisterOrTouch_ExplicitRoleOverwrites(t *testing.T) {
	stored := &userDomain.User{Email: "b@example.com", Role: userDomain.RoleBorrower}
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*userDomain.User, error) {
			return stored, nil
		},
	}
	uc := NewUsecase(users, &applicationmock.Repo{}, zap.NewNop())

	u, err := uc.RegisterOrTouch(context.Background(), RegisterInput{Email: "b@example.com", Role: "manager"})
	if err != nil {
		t.Fatalf("RegisterOrTouch: %v", err)
	}
	if u.Role != userDomain.RoleManager {
		t.Fatalf("role=%s, want manager", u.Role)
	}
}

func TestRegisterOrTouch_Invalid(t *testing.T) {
	uc := NewUsecase(&usermock.Repo{}, &applicationmock.Repo{}, zap.NewNop())

	if _, err := uc.RegisterOrTouch(context.Background(), RegisterInput{Email: "not-an-email"}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("want ErrInvalidEmail, got %v", err)
	}
	if _, err := uc.RegisterOrTouch(context.Background(), RegisterInput{Email: "a@b.com", Role: "superadmin"}); !errors.Is(err, userDomain.ErrBadRole) {
		t.Fatalf("want ErrBadRole, got %v", err)
	}
}

func TestRole_LenientDefault(t *testing.T) {
	uc := NewUsecase(&usermock.Repo{}, &applicationmock.Repo{}, zap.NewNop())

	role, err := uc.Role(context.Background(), "ghost@example.com")
	if err != nil {
		t.Fatalf("Role: %v", err)
	}
	if role != userDomain.RoleBorrower {
		t.Fatalf("role=%s, want borrower for unknown email", role)
	}
}

func TestSetRole(t *testing.T) {
	stored := &userDomain.User{UserID: "dddddddddddddddddddddddddddddddd", Role: userDomain.RoleBorrower}
	users := &usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*userDomain.User, error) {
			if userID != stored.UserID {
				return nil, gorm.ErrRecordNotFound
			}
			return stored, nil
		},
	}
	uc := NewUsecase(users, &applicationmock.Repo{}, zap.NewNop())

	u, err := uc.SetRole(context.Background(), stored.UserID, "admin")
	if err != nil {
		t.Fatalf("SetRole: %v", err)
	}
	if u.Role != userDomain.RoleAdmin {
		t.Fatalf("role=%s", u.Role)
	}

	if _, err := uc.SetRole(context.Background(), "missing", "admin"); !errors.Is(err, userDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if _, err := uc.SetRole(context.Background(), stored.UserID, "root"); !errors.Is(err, userDomain.ErrBadRole) {
		t.Fatalf("want ErrBadRole, got %v", err)
	}
}

func TestSuspend(t *testing.T) {
	stored := &userDomain.User{UserID: "dddddddddddddddddddddddddddddddd", Status: userDomain.StatusActive}
	users := &usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*userDomain.User, error) {
			return stored, nil
		},
	}
	uc := NewUsecase(users, &applicationmock.Repo{}, zap.NewNop())

	u, err := uc.Suspend(context.Background(), stored.UserID, SuspendInput{
		Reason:   "document fraud",
		Feedback: "resubmit NID",
	})
	if err != nil {
		t.Fatalf("Suspend: %v", err)
	}
	if u.Status != userDomain.StatusSuspended {
		t.Fatalf("status=%s", u.Status)
	}
	if u.SuspensionReason != "document fraud" || u.AdminFeedback != "resubmit NID" {
		t.Fatalf("suspension fields not set: %+v", u)
	}
	if u.SuspendedAt == nil || u.SuspendedAt.IsZero() {
		t.Fatal("SuspendedAt not defaulted")
	}
}

func TestAdjustCounters_MissingUserIsNoOp(t *testing.T) {
	users := &usermock.Repo{
		AdjustCountersFn: func(ctx context.Context, email string, d userDomain.CounterDelta) error {
			return gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(users, &applicationmock.Repo{}, zap.NewNop())

	if err := uc.AdjustCounters(context.Background(), "ghost@example.com", userDomain.CounterDelta{Applied: 1}); err != nil {
		t.Fatalf("missing user must be swallowed: %v", err)
	}
}

func TestReconcile(t *testing.T) {
	stored := &userDomain.User{
		Email:        "drift@example.com",
		TotalApplied: 99, TotalPending: 99, TotalApproved: 99, TotalRejected: 99,
	}
	var setApplied, setPending, setApproved, setRejected int64
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*userDomain.User, error) {
			return stored, nil
		},
		SetCountersFn: func(ctx context.Context, email string, applied, pending, approved, rejected int64) error {
			setApplied, setPending, setApproved, setRejected = applied, pending, approved, rejected
			return nil
		},
	}
	apps := &applicationmock.Repo{
		CountByUserEmailFn: func(ctx context.Context, email string) (int64, error) {
			return 5, nil
		},
		CountByUserAndStatusFn: func(ctx context.Context, email string, st appDomain.Status) (int64, error) {
			switch st {
			case appDomain.StatusPending:
				return 2, nil
			case appDomain.StatusApproved:
				return 2, nil
			case appDomain.StatusRejected:
				return 1, nil
			}
			return 0, nil
		},
	}
	uc := NewUsecase(users, apps, zap.NewNop())

	u, err := uc.Reconcile(context.Background(), "Drift@Example.com")
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if setApplied != 5 || setPending != 2 || setApproved != 2 || setRejected != 1 {
		t.Fatalf("SetCounters got %d/%d/%d/%d", setApplied, setPending, setApproved, setRejected)
	}
	if u.TotalApplied != 5 || u.TotalPending != 2 || u.TotalApproved != 2 || u.TotalRejected != 1 {
		t.Fatalf("returned user not updated: %+v", u)
	}
}
