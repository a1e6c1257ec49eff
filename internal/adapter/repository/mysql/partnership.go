package mysql

import (
	"context"

	"gorm.io/gorm"

	pDomain "franchisehub-backend/internal/domain/partnership"
)

type DeactivationRepository struct{ db *gorm.DB }

func NewDeactivationRepository(db *gorm.DB) *DeactivationRepository {
	return &DeactivationRepository{db: db}
}

func (r *DeactivationRepository) Create(ctx context.Context, d *pDomain.Deactivation) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DeactivationRepository) GetLatestByApplicationID(ctx context.Context, applicationID uint64) (*pDomain.Deactivation, error) {
	var out pDomain.Deactivation
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("id DESC").
		First(&out)
	return &out, mapNotFound(res.Error, pDomain.ErrNotFound)
}

func (r *DeactivationRepository) Save(ctx context.Context, d *pDomain.Deactivation) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DeactivationRepository) ListByApplicationID(ctx context.Context, applicationID uint64) ([]pDomain.Deactivation, error) {
	var out []pDomain.Deactivation
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
