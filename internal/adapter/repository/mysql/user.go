package mysql

import (
	"context"

	userDomain "loanmarket-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) Save(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) List(ctx context.Context) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

// AdjustCounters applies signed increments in one UPDATE so concurrent
// adjustments on the same user never lose updates.
func (r *UserRepository) AdjustCounters(ctx context.Context, email string, d userDomain.CounterDelta) error {
	if d.Empty() {
		return nil
	}
	cols := map[string]any{}
	if d.Applied != 0 {
		cols["total_applied"] = gorm.Expr("total_applied + ?", d.Applied)
	}
	if d.Pending != 0 {
		cols["total_pending"] = gorm.Expr("total_pending + ?", d.Pending)
	}
	if d.Approved != 0 {
		cols["total_approved"] = gorm.Expr("total_approved + ?", d.Approved)
	}
	if d.Rejected != 0 {
		cols["total_rejected"] = gorm.Expr("total_rejected + ?", d.Rejected)
	}
	res := r.db.WithContext(ctx).Model(&userDomain.User{}).
		Where("email = ?", email).
		Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) SetCounters(ctx context.Context, email string, applied, pending, approved, rejected int64) error {
	res := r.db.WithContext(ctx).Model(&userDomain.User{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"total_applied":  applied,
			"total_pending":  pending,
			"total_approved": approved,
			"total_rejected": rejected,
		})
	// No RowsAffected check here: MySQL reports 0 affected rows when the
	// stored values already match, which is a legal reconcile outcome.
	return res.Error
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&userDomain.User{}).Count(&n)
	return n, res.Error
}

func (r *UserRepository) CountByRole(ctx context.Context, role userDomain.Role) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&userDomain.User{}).Where("role = ?", role).Count(&n)
	return n, res.Error
}
