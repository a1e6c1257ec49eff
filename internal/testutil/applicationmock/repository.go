package applicationmock

import (
	"context"

	domain "franchisehub-backend/internal/domain/application"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn                      func(ctx context.Context, a *domain.FranchiseApplication) error
	GetByApplicationIDFn          func(ctx context.Context, applicationID string) (*domain.FranchiseApplication, error)
	GetByIDFn                     func(ctx context.Context, id uint64) (*domain.FranchiseApplication, error)
	GetByApplicationIDForUpdateFn func(ctx context.Context, applicationID string) (*domain.FranchiseApplication, error)
	SaveFn                        func(ctx context.Context, a *domain.FranchiseApplication) error
	ListFn                        func(ctx context.Context, f domain.Filter) ([]domain.FranchiseApplication, error)
	AppendTimelineFn              func(ctx context.Context, e *domain.TimelineEntry) error
	ListTimelineFn                func(ctx context.Context, applicationID uint64) ([]domain.TimelineEntry, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, a *domain.FranchiseApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.FranchiseApplication, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.FranchiseApplication, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*domain.FranchiseApplication, error) {
	if m.GetByApplicationIDForUpdateFn != nil {
		return m.GetByApplicationIDForUpdateFn(ctx, applicationID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, a *domain.FranchiseApplication) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.FranchiseApplication, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) AppendTimeline(ctx context.Context, e *domain.TimelineEntry) error {
	if m.AppendTimelineFn != nil {
		return m.AppendTimelineFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListTimeline(ctx context.Context, applicationID uint64) ([]domain.TimelineEntry, error) {
	if m.ListTimelineFn != nil {
		return m.ListTimelineFn(ctx, applicationID)
	}
	return nil, nil
}
