package mysql

import (
	"context"

	productDomain "loanmarket-backend/internal/domain/product"

	"gorm.io/gorm"
)

type ProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{db: db} }

func (r *ProductRepository) Create(ctx context.Context, p *productDomain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepository) GetByProductID(ctx context.Context, productID string) (*productDomain.Product, error) {
	var out productDomain.Product
	res := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&out)
	return &out, res.Error
}

func (r *ProductRepository) ListAvailable(ctx context.Context, limit int) ([]productDomain.Product, error) {
	var out []productDomain.Product
	q := r.db.WithContext(ctx).
		Where("availability = ?", productDomain.Available).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	res := q.Find(&out)
	return out, res.Error
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]productDomain.Product, error) {
	var out []productDomain.Product
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *ProductRepository) UpdateFields(ctx context.Context, productID string, patch productDomain.Patch) (int64, error) {
	cols := map[string]any{}
	if patch.Title != nil {
		cols["title"] = *patch.Title
	}
	if patch.Description != nil {
		cols["description"] = *patch.Description
	}
	if patch.Category != nil {
		cols["category"] = *patch.Category
	}
	if patch.InterestRate != nil {
		cols["interest_rate"] = *patch.InterestRate
	}
	if patch.Documents != nil {
		cols["documents"] = *patch.Documents
	}
	if patch.Image != nil {
		cols["image"] = *patch.Image
	}
	if patch.Limit != nil {
		cols["loan_limit"] = *patch.Limit
	}
	if patch.EMI != nil {
		cols["emi"] = *patch.EMI
	}
	if len(cols) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Model(&productDomain.Product{}).
		Where("product_id = ?", productID).
		Updates(cols)
	return res.RowsAffected, res.Error
}

func (r *ProductRepository) SetAvailability(ctx context.Context, productID string, a productDomain.Availability) error {
	return r.db.WithContext(ctx).Model(&productDomain.Product{}).
		Where("product_id = ?", productID).
		Update("availability", a).Error
}

func (r *ProductRepository) Delete(ctx context.Context, productID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&productDomain.Product{})
	return res.RowsAffected, res.Error
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&productDomain.Product{}).Count(&n)
	return n, res.Error
}

func (r *ProductRepository) CountByAvailability(ctx context.Context, a productDomain.Availability) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&productDomain.Product{}).
		Where("availability = ?", a).Count(&n)
	return n, res.Error
}

func (r *ProductRepository) CountByManager(ctx context.Context, managerEmail string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&productDomain.Product{}).
		Where("manager_email = ?", managerEmail).Count(&n)
	return n, res.Error
}
