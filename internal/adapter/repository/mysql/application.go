package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	appDomain "franchisehub-backend/internal/domain/application"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.FranchiseApplication) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.FranchiseApplication) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*appDomain.FranchiseApplication, error) {
	var out appDomain.FranchiseApplication
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, mapNotFound(res.Error, appDomain.ErrNotFound)
}

func (r *ApplicationRepository) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*appDomain.FranchiseApplication, error) {
	var out appDomain.FranchiseApplication
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("application_id = ?", applicationID).
		First(&out)
	return &out, mapNotFound(res.Error, appDomain.ErrNotFound)
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uint64) (*appDomain.FranchiseApplication, error) {
	var out appDomain.FranchiseApplication
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, mapNotFound(res.Error, appDomain.ErrNotFound)
}

func (r *ApplicationRepository) List(ctx context.Context, f appDomain.Filter) ([]appDomain.FranchiseApplication, error) {
	q := r.db.WithContext(ctx)
	if f.FranchiseID != nil {
		q = q.Where("franchise_id = ?", *f.FranchiseID)
	}
	if f.BusinessOwnerID != nil {
		q = q.Where("business_owner_id = ?", *f.BusinessOwnerID)
	}
	if f.PartnerID != nil {
		q = q.Where("partner_id = ?", *f.PartnerID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	var out []appDomain.FranchiseApplication
	res := q.Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) AppendTimeline(ctx context.Context, e *appDomain.TimelineEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *ApplicationRepository) ListTimeline(ctx context.Context, applicationID uint64) ([]appDomain.TimelineEntry, error) {
	var out []appDomain.TimelineEntry
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

// mapNotFound turns gorm's record-not-found into the domain sentinel; if
// there is no row the pointer result must not be used.
func mapNotFound(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
