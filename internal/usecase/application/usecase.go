package application

import (
	"context"
	"strings"
	"time"

	"franchisehub-backend/internal/auth"
	domain "franchisehub-backend/internal/domain/application"
	domainPayment "franchisehub-backend/internal/domain/payment"
	"franchisehub-backend/internal/domain/uow"
	"franchisehub-backend/internal/event"
	"franchisehub-backend/internal/feecalc"
	"franchisehub-backend/internal/router"
	"franchisehub-backend/pkg/id"
)

type Usecase struct {
	router *router.Router
	bus    *event.Bus
	// RequireFeePaid gates approval on a completed application fee. Off by
	// default: approval and fee collection are decoupled stages.
	requireFeePaid bool
}

func NewUsecase(r *router.Router, bus *event.Bus, requireFeePaid bool) *Usecase {
	return &Usecase{router: r, bus: bus, requireFeePaid: requireFeePaid}
}

func (u *Usecase) Create(ctx context.Context, sess auth.Session, in CreateInput) (*ApplicationDTO, error) {
	if in.FranchiseID == "" || in.BusinessOwnerID == "" || in.PartnerID == "" {
		return nil, domain.ErrMissingFields
	}
	if !in.ApplicationFee.IsPositive() {
		return nil, feecalc.ErrInvalidAmount
	}
	return router.Execute(ctx, u.router, sess, router.OpCreateApplication,
		func(ctx context.Context, tx uow.UnitOfWork) (*ApplicationDTO, error) {
			a := &domain.FranchiseApplication{
				ApplicationID:   id.NewID32(),
				FranchiseID:     in.FranchiseID,
				BusinessOwnerID: in.BusinessOwnerID,
				PartnerID:       in.PartnerID,
				Status:          domain.StatusDraft,
				PaymentStatus:   domain.PaymentPending,
				ApplicationFee:  in.ApplicationFee,
				StatusUpdatedAt: time.Now().UTC(),
			}
			err := tx.WithinTx(ctx, func(r uow.Repos) error {
				if err := r.Applications.Create(ctx, a); err != nil {
					return err
				}
				return r.Applications.AppendTimeline(ctx, &domain.TimelineEntry{
					ApplicationID: a.ID,
					Status:        domain.StatusDraft,
					PerformedBy:   sess.UserID,
				})
			})
			if err != nil {
				return nil, err
			}
			return toDTO(a), nil
		})
}

func (u *Usecase) Submit(ctx context.Context, sess auth.Session, applicationID string) (*ApplicationDTO, error) {
	return u.transition(ctx, sess, router.OpSubmitApplication, applicationID, domain.StatusSubmitted,
		func(a *domain.FranchiseApplication) error {
			if !a.ReadyForSubmission() {
				return domain.ErrMissingFields
			}
			now := time.Now().UTC()
			a.SubmittedAt = &now
			return nil
		},
		"", event.ApplicationSubmitted, targetOwner)
}

func (u *Usecase) StartReview(ctx context.Context, sess auth.Session, applicationID string) (*ApplicationDTO, error) {
	return u.transition(ctx, sess, router.OpStartReview, applicationID, domain.StatusUnderReview,
		nil, "", event.ApplicationUnderReview, targetPartner)
}

// Approve moves the application to approved and creates the franchise-fee
// payment obligation in the same transaction. It does not require the
// application fee to be paid unless the deployment enables that policy.
func (u *Usecase) Approve(ctx context.Context, sess auth.Session, in ApproveInput) (*ApplicationDTO, error) {
	if strings.TrimSpace(in.ReviewNotes) == "" {
		return nil, domain.ErrMissingOutcome
	}
	var feeRequestID string
	dto, path, err := u.transitionFn(ctx, sess, router.OpApproveApplication, in.ApplicationID, domain.StatusApproved,
		func(ctx context.Context, r uow.Repos, a *domain.FranchiseApplication) error {
			if u.requireFeePaid && a.PaymentStatus != domain.PaymentCompleted {
				return domain.ErrFeeUnpaid
			}
			now := time.Now().UTC()
			a.ReviewNotes = in.ReviewNotes
			a.ReviewedAt = &now
			req := &domainPayment.Request{
				RequestID:     id.NewID32(),
				ApplicationID: a.ID,
				Purpose:       domainPayment.PurposeFranchiseFee,
				Description:   "franchise application fee",
				Amount:        a.ApplicationFee,
				Status:        domainPayment.RequestPending,
				RequestedBy:   a.BusinessOwnerID,
				RequestedAt:   now,
			}
			if err := r.PaymentRequests.Create(ctx, req); err != nil {
				return err
			}
			feeRequestID = req.RequestID
			return nil
		}, in.ReviewNotes)
	if err != nil {
		return nil, err
	}
	evCtx := router.WithPath(ctx, path)
	u.bus.Publish(evCtx, event.Event{
		Type:          event.ApplicationApproved,
		ApplicationID: dto.ApplicationID,
		ActorID:       sess.UserID,
		TargetUserID:  dto.PartnerID,
	})
	u.bus.Publish(evCtx, event.Event{
		Type:          event.PaymentRequested,
		ApplicationID: dto.ApplicationID,
		RequestID:     feeRequestID,
		ActorID:       sess.UserID,
		TargetUserID:  dto.PartnerID,
		Message:       "franchise application fee is due",
	})
	return dto, nil
}

func (u *Usecase) Reject(ctx context.Context, sess auth.Session, in RejectInput) (*ApplicationDTO, error) {
	if strings.TrimSpace(in.RejectionReason) == "" {
		return nil, domain.ErrMissingReason
	}
	return u.transition(ctx, sess, router.OpRejectApplication, in.ApplicationID, domain.StatusRejected,
		func(a *domain.FranchiseApplication) error {
			now := time.Now().UTC()
			a.RejectionReason = in.RejectionReason
			a.ReviewedAt = &now
			return nil
		},
		in.RejectionReason, event.ApplicationRejected, targetPartner)
}

func (u *Usecase) Withdraw(ctx context.Context, sess auth.Session, applicationID string) (*ApplicationDTO, error) {
	return u.transition(ctx, sess, router.OpWithdrawApplication, applicationID, domain.StatusWithdrawn,
		nil, "withdrawn by partner", event.ApplicationWithdrawn, targetOwner)
}

func (u *Usecase) Get(ctx context.Context, sess auth.Session, applicationID string) (*ApplicationDTO, error) {
	return router.Execute(ctx, u.router, sess, router.OpGetApplication,
		func(ctx context.Context, tx uow.UnitOfWork) (*ApplicationDTO, error) {
			var dto *ApplicationDTO
			err := tx.WithinTx(ctx, func(r uow.Repos) error {
				a, err := r.Applications.GetByApplicationID(ctx, applicationID)
				if err != nil {
					return err
				}
				dto = toDTO(a)
				return nil
			})
			return dto, err
		})
}

func (u *Usecase) List(ctx context.Context, sess auth.Session, f domain.Filter) ([]ApplicationDTO, error) {
	return router.Execute(ctx, u.router, sess, router.OpListApplications,
		func(ctx context.Context, tx uow.UnitOfWork) ([]ApplicationDTO, error) {
			var out []ApplicationDTO
			err := tx.WithinTx(ctx, func(r uow.Repos) error {
				apps, err := r.Applications.List(ctx, f)
				if err != nil {
					return err
				}
				out = make([]ApplicationDTO, 0, len(apps))
				for i := range apps {
					out = append(out, *toDTO(&apps[i]))
				}
				return nil
			})
			return out, err
		})
}

func (u *Usecase) Timeline(ctx context.Context, sess auth.Session, applicationID string) ([]TimelineEntryDTO, error) {
	return router.Execute(ctx, u.router, sess, router.OpGetApplication,
		func(ctx context.Context, tx uow.UnitOfWork) ([]TimelineEntryDTO, error) {
			var out []TimelineEntryDTO
			err := tx.WithinTx(ctx, func(r uow.Repos) error {
				a, err := r.Applications.GetByApplicationID(ctx, applicationID)
				if err != nil {
					return err
				}
				entries, err := r.Applications.ListTimeline(ctx, a.ID)
				if err != nil {
					return err
				}
				out = make([]TimelineEntryDTO, 0, len(entries))
				for _, e := range entries {
					out = append(out, TimelineEntryDTO{
						Status:            string(e.Status),
						Notes:             e.Notes,
						PerformedBy:       e.PerformedBy,
						IsSystemGenerated: e.IsSystemGenerated,
						CreatedAt:         e.CreatedAt,
					})
				}
				return nil
			})
			return out, err
		})
}

type notifyTarget int

const (
	targetOwner notifyTarget = iota
	targetPartner
)

// transition is the shared atomic check-then-set: lock the row, verify the
// move against the lifecycle table, run the extra guard, save, append the
// timeline entry. Nothing is mutated when any step fails.
func (u *Usecase) transition(ctx context.Context, sess auth.Session, op router.Operation, applicationID string,
	to domain.Status, guard func(*domain.FranchiseApplication) error, notes string, evType event.Type, target notifyTarget) (*ApplicationDTO, error) {

	dto, path, err := u.transitionFn(ctx, sess, op, applicationID, to,
		func(_ context.Context, _ uow.Repos, a *domain.FranchiseApplication) error {
			if guard != nil {
				return guard(a)
			}
			return nil
		}, notes)
	if err != nil {
		return nil, err
	}
	targetUser := dto.BusinessOwnerID
	if target == targetPartner {
		targetUser = dto.PartnerID
	}
	u.bus.Publish(router.WithPath(ctx, path), event.Event{
		Type:          evType,
		ApplicationID: dto.ApplicationID,
		ActorID:       sess.UserID,
		TargetUserID:  targetUser,
	})
	return dto, nil
}

func (u *Usecase) transitionFn(ctx context.Context, sess auth.Session, op router.Operation, applicationID string,
	to domain.Status, body func(ctx context.Context, r uow.Repos, a *domain.FranchiseApplication) error, notes string) (*ApplicationDTO, router.Path, error) {

	return router.ExecutePath(ctx, u.router, sess, op,
		func(ctx context.Context, tx uow.UnitOfWork) (*ApplicationDTO, error) {
			var dto *ApplicationDTO
			err := tx.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domain.FranchiseApplication) error {
				if !domain.CanTransition(a.Status, to) {
					return domain.NewInvalidTransition(a.ApplicationID, a.Status, to)
				}
				if body != nil {
					if err := body(ctx, r, a); err != nil {
						return err
					}
				}
				a.Status = to
				a.StatusUpdatedAt = time.Now().UTC()
				if err := r.Applications.Save(ctx, a); err != nil {
					return err
				}
				if err := r.Applications.AppendTimeline(ctx, &domain.TimelineEntry{
					ApplicationID: a.ID,
					Status:        to,
					Notes:         notes,
					PerformedBy:   sess.UserID,
				}); err != nil {
					return err
				}
				dto = toDTO(a)
				return nil
			})
			if err != nil {
				return nil, err
			}
			return dto, nil
		})
}
