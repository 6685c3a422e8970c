package mysql

import (
	"context"

	archiveDomain "loanmarket-backend/internal/domain/archive"

	"gorm.io/gorm"
)

type ArchiveRepository struct{ db *gorm.DB }

func NewArchiveRepository(db *gorm.DB) *ArchiveRepository { return &ArchiveRepository{db: db} }

func (r *ArchiveRepository) Create(ctx context.Context, rec *archiveDomain.Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *ArchiveRepository) GetByRecordID(ctx context.Context, recordID string) (*archiveDomain.Record, error) {
	var out archiveDomain.Record
	res := r.db.WithContext(ctx).Where("record_id = ?", recordID).First(&out)
	return &out, res.Error
}

func (r *ArchiveRepository) GetByApplicationID(ctx context.Context, applicationID string) (*archiveDomain.Record, error) {
	var out archiveDomain.Record
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *ArchiveRepository) List(ctx context.Context) ([]archiveDomain.Record, error) {
	var out []archiveDomain.Record
	res := r.db.WithContext(ctx).Order("approved_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *ArchiveRepository) Delete(ctx context.Context, recordID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("record_id = ?", recordID).
		Delete(&archiveDomain.Record{})
	return res.RowsAffected, res.Error
}

func (r *ArchiveRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&archiveDomain.Record{}).Count(&n)
	return n, res.Error
}
