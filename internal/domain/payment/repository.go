package payment

import "context"

type RequestRepository interface {
	Create(ctx context.Context, r *Request) error
	GetByRequestID(ctx context.Context, requestID string) (*Request, error)
	// GetByRequestIDForUpdate locks the row for the duration of the
	// enclosing transaction.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*Request, error)
	Save(ctx context.Context, r *Request) error
	List(ctx context.Context, f RequestFilter) ([]Request, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, t *Transaction) error
	GetByTransactionID(ctx context.Context, transactionID string) (*Transaction, error)
	Save(ctx context.Context, t *Transaction) error
}
