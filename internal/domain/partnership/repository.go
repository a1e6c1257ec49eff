package partnership

import "context"

type Repository interface {
	Create(ctx context.Context, d *Deactivation) error
	// GetLatestByApplicationID returns the most recent deactivation record
	// for the application, including records already reactivated.
	GetLatestByApplicationID(ctx context.Context, applicationID uint64) (*Deactivation, error)
	Save(ctx context.Context, d *Deactivation) error
	ListByApplicationID(ctx context.Context, applicationID uint64) ([]Deactivation, error)
}
