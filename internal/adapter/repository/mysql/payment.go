package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	payDomain "franchisehub-backend/internal/domain/payment"
)

type PaymentRequestRepository struct{ db *gorm.DB }

func NewPaymentRequestRepository(db *gorm.DB) *PaymentRequestRepository {
	return &PaymentRequestRepository{db: db}
}

func (r *PaymentRequestRepository) Create(ctx context.Context, req *payDomain.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *PaymentRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*payDomain.Request, error) {
	var out payDomain.Request
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, mapNotFound(res.Error, payDomain.ErrRequestNotFound)
}

func (r *PaymentRequestRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*payDomain.Request, error) {
	var out payDomain.Request
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ?", requestID).
		First(&out)
	return &out, mapNotFound(res.Error, payDomain.ErrRequestNotFound)
}

func (r *PaymentRequestRepository) Save(ctx context.Context, req *payDomain.Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *PaymentRequestRepository) List(ctx context.Context, f payDomain.RequestFilter) ([]payDomain.Request, error) {
	q := r.db.WithContext(ctx)
	if f.ApplicationID != nil {
		q = q.Where("application_id = ?", *f.ApplicationID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	var out []payDomain.Request
	res := q.Order("id DESC").Find(&out)
	return out, res.Error
}

type PaymentTransactionRepository struct{ db *gorm.DB }

func NewPaymentTransactionRepository(db *gorm.DB) *PaymentTransactionRepository {
	return &PaymentTransactionRepository{db: db}
}

func (r *PaymentTransactionRepository) Create(ctx context.Context, t *payDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *PaymentTransactionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*payDomain.Transaction, error) {
	var out payDomain.Transaction
	res := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&out)
	return &out, mapNotFound(res.Error, payDomain.ErrTransactionNotFound)
}

func (r *PaymentTransactionRepository) Save(ctx context.Context, t *payDomain.Transaction) error {
	return r.db.WithContext(ctx).Save(t).Error
}
