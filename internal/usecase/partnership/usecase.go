package partnership

import (
	"context"
	"time"

	"franchisehub-backend/internal/auth"
	domainApp "franchisehub-backend/internal/domain/application"
	domain "franchisehub-backend/internal/domain/partnership"
	"franchisehub-backend/internal/domain/uow"
	"franchisehub-backend/internal/event"
	"franchisehub-backend/internal/router"
	"franchisehub-backend/pkg/id"
)

type Usecase struct {
	router *router.Router
	bus    *event.Bus
}

func NewUsecase(r *router.Router, bus *event.Bus) *Usecase {
	return &Usecase{router: r, bus: bus}
}

type DeactivateInput struct {
	ApplicationID string                    `json:"application_id"`
	Reason        domain.DeactivationReason `json:"reason"`
	Notes         string                    `json:"notes,omitempty"`
}

type DeactivationDTO struct {
	DeactivationID string     `json:"deactivation_id"`
	ApplicationID  string     `json:"application_id"`
	Reason         string     `json:"reason"`
	Notes          string     `json:"notes,omitempty"`
	DeactivatedBy  string     `json:"deactivated_by"`
	DeactivatedAt  time.Time  `json:"deactivated_at"`
	ReactivatedAt  *time.Time `json:"reactivated_at,omitempty"`
}

// Deactivate moves an approved application to deactivated and records the
// audit trail. Repeated calls are rejected, not ignored: a second
// deactivation with a different reason would lose audit information.
func (u *Usecase) Deactivate(ctx context.Context, sess auth.Session, in DeactivateInput) (*DeactivationDTO, error) {
	if !domain.ValidReason(in.Reason) {
		return nil, domain.ErrInvalidReason
	}
	var partnerID string
	dto, path, err := router.ExecutePath(ctx, u.router, sess, router.OpDeactivatePartnership,
		func(ctx context.Context, tx uow.UnitOfWork) (*DeactivationDTO, error) {
			var out *DeactivationDTO
			err := tx.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, a *domainApp.FranchiseApplication) error {
				partnerID = a.PartnerID
				if !domainApp.CanTransition(a.Status, domainApp.StatusDeactivated) {
					return domainApp.NewInvalidTransition(a.ApplicationID, a.Status, domainApp.StatusDeactivated)
				}
				now := time.Now().UTC()
				d := &domain.Deactivation{
					DeactivationID: id.NewID32(),
					ApplicationID:  a.ID,
					Reason:         in.Reason,
					Notes:          in.Notes,
					DeactivatedBy:  sess.UserID,
					DeactivatedAt:  now,
				}
				if err := r.Deactivations.Create(ctx, d); err != nil {
					return err
				}
				a.Status = domainApp.StatusDeactivated
				a.StatusUpdatedAt = now
				if err := r.Applications.Save(ctx, a); err != nil {
					return err
				}
				if err := r.Applications.AppendTimeline(ctx, &domainApp.TimelineEntry{
					ApplicationID: a.ID,
					Status:        domainApp.StatusDeactivated,
					Notes:         string(in.Reason),
					PerformedBy:   sess.UserID,
				}); err != nil {
					return err
				}
				out = toDTO(d, a.ApplicationID)
				return nil
			})
			return out, err
		})
	if err != nil {
		return nil, err
	}
	u.bus.Publish(router.WithPath(ctx, path), event.Event{
		Type:          event.PartnershipDeactivated,
		ApplicationID: dto.ApplicationID,
		ActorID:       sess.UserID,
		TargetUserID:  partnerID,
		Message:       string(in.Reason),
	})
	return dto, nil
}

// Reactivate returns a deactivated application to approved. The deactivation
// record is stamped, never erased.
func (u *Usecase) Reactivate(ctx context.Context, sess auth.Session, applicationID string) (*DeactivationDTO, error) {
	var partnerID string
	dto, path, err := router.ExecutePath(ctx, u.router, sess, router.OpReactivatePartnership,
		func(ctx context.Context, tx uow.UnitOfWork) (*DeactivationDTO, error) {
			var out *DeactivationDTO
			err := tx.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domainApp.FranchiseApplication) error {
				partnerID = a.PartnerID
				if !domainApp.CanTransition(a.Status, domainApp.StatusApproved) {
					return domainApp.NewInvalidTransition(a.ApplicationID, a.Status, domainApp.StatusApproved)
				}
				d, err := r.Deactivations.GetLatestByApplicationID(ctx, a.ID)
				if err != nil {
					return err
				}
				now := time.Now().UTC()
				d.ReactivatedAt = &now
				if err := r.Deactivations.Save(ctx, d); err != nil {
					return err
				}
				a.Status = domainApp.StatusApproved
				a.StatusUpdatedAt = now
				if err := r.Applications.Save(ctx, a); err != nil {
					return err
				}
				if err := r.Applications.AppendTimeline(ctx, &domainApp.TimelineEntry{
					ApplicationID: a.ID,
					Status:        domainApp.StatusApproved,
					Notes:         "partnership reactivated",
					PerformedBy:   sess.UserID,
				}); err != nil {
					return err
				}
				out = toDTO(d, a.ApplicationID)
				return nil
			})
			return out, err
		})
	if err != nil {
		return nil, err
	}
	u.bus.Publish(router.WithPath(ctx, path), event.Event{
		Type:          event.PartnershipReactivated,
		ApplicationID: dto.ApplicationID,
		ActorID:       sess.UserID,
		TargetUserID:  partnerID,
	})
	return dto, nil
}

// History returns every deactivation record for the application, including
// reactivated ones.
func (u *Usecase) History(ctx context.Context, sess auth.Session, applicationID string) ([]DeactivationDTO, error) {
	return router.Execute(ctx, u.router, sess, router.OpGetApplication,
		func(ctx context.Context, tx uow.UnitOfWork) ([]DeactivationDTO, error) {
			var out []DeactivationDTO
			err := tx.WithinTx(ctx, func(r uow.Repos) error {
				a, err := r.Applications.GetByApplicationID(ctx, applicationID)
				if err != nil {
					return err
				}
				ds, err := r.Deactivations.ListByApplicationID(ctx, a.ID)
				if err != nil {
					return err
				}
				out = make([]DeactivationDTO, 0, len(ds))
				for i := range ds {
					out = append(out, *toDTO(&ds[i], a.ApplicationID))
				}
				return nil
			})
			return out, err
		})
}

func toDTO(d *domain.Deactivation, applicationID string) *DeactivationDTO {
	return &DeactivationDTO{
		DeactivationID: d.DeactivationID,
		ApplicationID:  applicationID,
		Reason:         string(d.Reason),
		Notes:          d.Notes,
		DeactivatedBy:  d.DeactivatedBy,
		DeactivatedAt:  d.DeactivatedAt,
		ReactivatedAt:  d.ReactivatedAt,
	}
}
