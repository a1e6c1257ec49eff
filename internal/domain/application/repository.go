package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *FranchiseApplication) error
	GetByApplicationID(ctx context.Context, applicationID string) (*FranchiseApplication, error)
	// GetByID resolves the numeric FK used by payment requests and timeline
	// rows.
	GetByID(ctx context.Context, id uint64) (*FranchiseApplication, error)
	// GetByApplicationIDForUpdate locks the row for the duration of the
	// enclosing transaction.
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*FranchiseApplication, error)
	Save(ctx context.Context, a *FranchiseApplication) error
	List(ctx context.Context, f Filter) ([]FranchiseApplication, error)

	AppendTimeline(ctx context.Context, e *TimelineEntry) error
	ListTimeline(ctx context.Context, applicationID uint64) ([]TimelineEntry, error)
}
