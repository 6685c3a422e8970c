package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	appDomain "loanmarket-backend/internal/domain/application"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) ListByUserEmail(ctx context.Context, email string) ([]appDomain.Application, error) {
	var out []appDomain.Application
	res := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) ListByStatus(ctx context.Context, st appDomain.Status) ([]appDomain.Application, error) {
	var out []appDomain.Application
	res := r.db.WithContext(ctx).
		Where("status = ?", st).
		Order("date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) ListAll(ctx context.Context) ([]appDomain.Application, error) {
	var out []appDomain.Application
	res := r.db.WithContext(ctx).Order("date DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) MarkPaid(ctx context.Context, applicationID, paymentID string, paidAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Where("application_id = ?", applicationID).
		Updates(map[string]any{
			"fee_status": appDomain.FeePaid,
			"payment_id": paymentID,
			"paid_at":    paidAt,
		})
	return res.RowsAffected, res.Error
}

// Decide is the compare-and-swap transition: the WHERE clause pins the
// current state to Pending so the loser of a concurrent decide fails cleanly.
func (r *ApplicationRepository) Decide(ctx context.Context, applicationID string, st appDomain.Status, at time.Time) (int64, error) {
	cols := map[string]any{"status": st}
	switch st {
	case appDomain.StatusApproved:
		cols["approved_at"] = at
	case appDomain.StatusRejected:
		cols["rejected_at"] = at
	}
	res := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Where("application_id = ? AND status = ?", applicationID, appDomain.StatusPending).
		Updates(cols)
	return res.RowsAffected, res.Error
}

func (r *ApplicationRepository) DeleteUnpaid(ctx context.Context, applicationID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("application_id = ? AND fee_status = ? AND status <> ?",
			applicationID, appDomain.FeeUnpaid, appDomain.StatusRejected).
		Delete(&appDomain.Application{})
	return res.RowsAffected, res.Error
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context, st appDomain.Status) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Where("status = ?", st).Count(&n)
	return n, res.Error
}

func (r *ApplicationRepository) CountByUserEmail(ctx context.Context, email string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Where("user_email = ?", email).Count(&n)
	return n, res.Error
}

func (r *ApplicationRepository) CountByUserAndStatus(ctx context.Context, email string, st appDomain.Status) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Where("user_email = ? AND status = ?", email, st).Count(&n)
	return n, res.Error
}
