package mysql

import (
	"context"

	"gorm.io/gorm"

	"franchisehub-backend/internal/domain/application"
	"franchisehub-backend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Applications:    &ApplicationRepository{db: tx},
		Deactivations:   &DeactivationRepository{db: tx},
		PaymentRequests: &PaymentRequestRepository{db: tx},
		Transactions:    &PaymentTransactionRepository{db: tx},
		Notifications:   &NotificationRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinApplicationTx(ctx context.Context, applicationID string, fn func(r uow.Repos, a *application.FranchiseApplication) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the application row up-front to prevent races
		a, err := r.Applications.GetByApplicationIDForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}
		return fn(r, a)
	})
}
