package paymentmock

import (
	"context"

	domain "franchisehub-backend/internal/domain/payment"
)

// RequestRepo is a function-backed mock that satisfies domain.RequestRepository.
type RequestRepo struct {
	CreateFn                  func(ctx context.Context, r *domain.Request) error
	GetByRequestIDFn          func(ctx context.Context, requestID string) (*domain.Request, error)
	GetByRequestIDForUpdateFn func(ctx context.Context, requestID string) (*domain.Request, error)
	SaveFn                    func(ctx context.Context, r *domain.Request) error
	ListFn                    func(ctx context.Context, f domain.RequestFilter) ([]domain.Request, error)
}

var _ domain.RequestRepository = (*RequestRepo)(nil)

func (m *RequestRepo) Create(ctx context.Context, r *domain.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *RequestRepo) GetByRequestID(ctx context.Context, requestID string) (*domain.Request, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, domain.ErrRequestNotFound
}

func (m *RequestRepo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.Request, error) {
	if m.GetByRequestIDForUpdateFn != nil {
		return m.GetByRequestIDForUpdateFn(ctx, requestID)
	}
	return nil, domain.ErrRequestNotFound
}

func (m *RequestRepo) Save(ctx context.Context, r *domain.Request) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *RequestRepo) List(ctx context.Context, f domain.RequestFilter) ([]domain.Request, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

// TransactionRepo is a function-backed mock that satisfies domain.TransactionRepository.
type TransactionRepo struct {
	CreateFn             func(ctx context.Context, t *domain.Transaction) error
	GetByTransactionIDFn func(ctx context.Context, transactionID string) (*domain.Transaction, error)
	SaveFn               func(ctx context.Context, t *domain.Transaction) error
}

var _ domain.TransactionRepository = (*TransactionRepo)(nil)

func (m *TransactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *TransactionRepo) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	if m.GetByTransactionIDFn != nil {
		return m.GetByTransactionIDFn(ctx, transactionID)
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *TransactionRepo) Save(ctx context.Context, t *domain.Transaction) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}
