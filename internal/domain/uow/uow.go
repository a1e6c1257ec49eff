package uow

import (
	"context"

	"franchisehub-backend/internal/domain/application"
	"franchisehub-backend/internal/domain/notification"
	"franchisehub-backend/internal/domain/partnership"
	"franchisehub-backend/internal/domain/payment"
)

type Repos struct {
	Applications    application.Repository
	Deactivations   partnership.Repository
	PaymentRequests payment.RequestRepository
	Transactions    payment.TransactionRepository
	Notifications   notification.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in; serializes
	// all state-changing operations on the same application.
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.FranchiseApplication) error) error
}
