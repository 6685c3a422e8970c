package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	appDomain "loanmarket-backend/internal/domain/application"
	archiveDomain "loanmarket-backend/internal/domain/archive"
	userDomain "loanmarket-backend/internal/domain/user"
	"loanmarket-backend/internal/domain/uow"
	"loanmarket-backend/pkg/id"

	"gorm.io/gorm"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	appRepo := NewApplicationRepository(db)
	archRepo := NewArchiveRepository(db)
	userRepo := NewUserRepository(db)

	seedUser(t, userRepo, "alice@example.com")
	a := seedApplication(t, appRepo, "alice@example.com")
	now := time.Now().UTC()
	recordID := id.NewID32()

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		rows, err := r.Applications.Decide(ctx, a.ApplicationID, appDomain.StatusApproved, now)
		if err != nil {
			return err
		}
		if rows != 1 {
			t.Fatalf("decide rows=%d", rows)
		}
		if err := r.Archive.Create(ctx, &archiveDomain.Record{
			RecordID:      recordID,
			ApplicationID: a.ApplicationID,
			UserEmail:     a.UserEmail,
			Status:        "Approved",
			ApprovedAt:    now,
		}); err != nil {
			return err
		}
		return r.Users.AdjustCounters(ctx, a.UserEmail, userDomain.CounterDelta{Pending: -1, Approved: 1})
	})
	if err != nil {
		t.Fatalf("WithinTx commit: %v", err)
	}

	got, err := appRepo.GetByApplicationID(ctx, a.ApplicationID)
	if err != nil {
		t.Fatalf("GetByApplicationID: %v", err)
	}
	if got.Status != appDomain.StatusApproved {
		t.Fatalf("status=%s after commit", got.Status)
	}
	if _, err := archRepo.GetByRecordID(ctx, recordID); err != nil {
		t.Fatalf("archive record not visible after commit: %v", err)
	}
	usr, err := userRepo.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if usr.TotalApproved != 1 || usr.TotalPending != -1 {
		t.Fatalf("counters after commit: %+v", usr)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	appRepo := NewApplicationRepository(db)
	archRepo := NewArchiveRepository(db)

	a := seedApplication(t, appRepo, "bob@example.com")
	now := time.Now().UTC()
	recordID := id.NewID32()
	sentinel := errors.New("boom")

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Applications.Decide(ctx, a.ApplicationID, appDomain.StatusApproved, now); err != nil {
			return err
		}
		if err := r.Archive.Create(ctx, &archiveDomain.Record{
			RecordID:      recordID,
			ApplicationID: a.ApplicationID,
			Status:        "Approved",
			ApprovedAt:    now,
		}); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	got, err := appRepo.GetByApplicationID(ctx, a.ApplicationID)
	if err != nil {
		t.Fatalf("GetByApplicationID: %v", err)
	}
	if got.Status != appDomain.StatusPending {
		t.Fatalf("status=%s, want Pending after rollback", got.Status)
	}
	if _, err := archRepo.GetByRecordID(ctx, recordID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("archive record survived rollback: %v", err)
	}
}
