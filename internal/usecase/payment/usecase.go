package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"franchisehub-backend/internal/auth"
	domainApp "franchisehub-backend/internal/domain/application"
	domain "franchisehub-backend/internal/domain/payment"
	"franchisehub-backend/internal/domain/uow"
	"franchisehub-backend/internal/event"
	"franchisehub-backend/internal/feecalc"
	"franchisehub-backend/internal/gateway"
	"franchisehub-backend/internal/router"
	"franchisehub-backend/pkg/apperr"
	"franchisehub-backend/pkg/id"
)

type Usecase struct {
	router  *router.Router
	bus     *event.Bus
	charger gateway.Charger
}

func NewUsecase(r *router.Router, bus *event.Bus, charger gateway.Charger) *Usecase {
	return &Usecase{router: r, bus: bus, charger: charger}
}

// CreateRequest records a new pending payment request against an approved
// application.
func (u *Usecase) CreateRequest(ctx context.Context, sess auth.Session, in CreateRequestInput) (*RequestDTO, error) {
	if !in.Amount.IsPositive() {
		return nil, feecalc.ErrInvalidAmount
	}
	if !domain.ValidPurpose(in.Purpose) {
		return nil, domain.ErrInvalidPurpose
	}
	var partnerID string
	dto, path, err := router.ExecutePath(ctx, u.router, sess, router.OpCreatePaymentRequest,
		func(ctx context.Context, tx uow.UnitOfWork) (*RequestDTO, error) {
			var out *RequestDTO
			err := tx.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, a *domainApp.FranchiseApplication) error {
				if a.Status != domainApp.StatusApproved {
					return fmt.Errorf("%w: application %s is %s", domain.ErrNotApproved, a.ApplicationID, a.Status)
				}
				partnerID = a.PartnerID
				req := &domain.Request{
					RequestID:     id.NewID32(),
					ApplicationID: a.ID,
					Purpose:       in.Purpose,
					Description:   in.Description,
					Amount:        in.Amount.Round(2),
					Status:        domain.RequestPending,
					RequestedBy:   sess.UserID,
					RequestedAt:   time.Now().UTC(),
					DueDate:       in.DueDate,
				}
				if err := r.PaymentRequests.Create(ctx, req); err != nil {
					return err
				}
				out = toRequestDTO(req, a.ApplicationID)
				return nil
			})
			return out, err
		})
	if err != nil {
		return nil, err
	}
	u.bus.Publish(router.WithPath(ctx, path), event.Event{
		Type:          event.PaymentRequested,
		ApplicationID: dto.ApplicationID,
		RequestID:     dto.RequestID,
		ActorID:       sess.UserID,
		TargetUserID:  partnerID,
		Message:       dto.Description,
	})
	return dto, nil
}

// Settle pays off a batch of pending requests in one transaction. Fees are
// computed once on the aggregate sum so per-request rounding cannot drift.
// Either every request moves to paid and a completed transaction exists, or
// nothing changes; a gateway failure leaves a failed transaction record
// behind, marks a declined franchise fee as failed on the application, and
// no request is touched.
func (u *Usecase) Settle(ctx context.Context, sess auth.Session, in SettleInput) (*TransactionDTO, error) {
	if len(in.RequestIDs) == 0 {
		return nil, domain.ErrEmptySettlement
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = "bank_transfer"
	}

	var ownerID, appPublicID string
	dto, path, err := router.ExecutePath(ctx, u.router, sess, router.OpSettle,
		func(ctx context.Context, tx uow.UnitOfWork) (*TransactionDTO, error) {
			var out *TransactionDTO
			var failed *domain.Transaction
			var feeAppIDs []uint64

			err := tx.WithinTx(ctx, func(r uow.Repos) error {
				reqs := make([]*domain.Request, 0, len(in.RequestIDs))
				seen := make(map[string]bool, len(in.RequestIDs))
				total := decimal.Zero
				payerID := ""
				var firstApp *domainApp.FranchiseApplication

				for _, reqID := range in.RequestIDs {
					if seen[reqID] {
						continue
					}
					seen[reqID] = true
					req, err := r.PaymentRequests.GetByRequestIDForUpdate(ctx, reqID)
					if err != nil {
						if errors.Is(err, domain.ErrRequestNotFound) {
							return fmt.Errorf("%w: %s", domain.ErrRequestNotFound, reqID)
						}
						return err
					}
					if req.Status != domain.RequestPending {
						return domain.NewRequestState(req.RequestID, req.Status, domain.RequestPending)
					}
					a, err := r.Applications.GetByID(ctx, req.ApplicationID)
					if err != nil {
						return err
					}
					if payerID == "" {
						payerID = a.PartnerID
						firstApp = a
					} else if a.PartnerID != payerID {
						return domain.ErrMixedPayers
					}
					if req.Purpose == domain.PurposeFranchiseFee {
						feeAppIDs = append(feeAppIDs, req.ApplicationID)
					}
					total = total.Add(req.Amount)
					reqs = append(reqs, req)
				}

				split, err := feecalc.ComputeSplit(total)
				if err != nil {
					return err
				}

				txn := &domain.Transaction{
					TransactionID:       uuid.NewString(),
					ApplicationID:       firstApp.ID,
					Amount:              split.Amount,
					PlatformFee:         split.PlatformFee,
					BusinessFee:         split.BusinessFee,
					PartnerFee:          split.PartnerFee,
					NetAmountToBusiness: split.NetToBusiness,
					NetAmountToPartner:  split.NetToPartner,
					Status:              domain.TransactionCompleted,
					PaymentMethod:       in.PaymentMethod,
					PaidBy:              payerID,
				}

				receipt, err := u.charger.Charge(ctx, gateway.ChargeInput{
					Amount:        split.Amount,
					PaymentMethod: in.PaymentMethod,
					PayerID:       payerID,
					PayerDetails:  in.PayerDetails,
				})
				if err != nil {
					// Roll back every request mutation; the failed attempt is
					// recorded outside this transaction.
					failed = txn
					failed.Status = domain.TransactionFailed
					failed.FailureReason = err.Error()
					return apperr.External(err)
				}
				txn.GatewayTransactionID = receipt.GatewayTransactionID

				if err := r.Transactions.Create(ctx, txn); err != nil {
					return err
				}
				now := time.Now().UTC()
				settled := make([]string, 0, len(reqs))
				for _, req := range reqs {
					req.Status = domain.RequestPaid
					req.PaidAt = &now
					req.PaymentTransactionID = &txn.TransactionID
					if err := r.PaymentRequests.Save(ctx, req); err != nil {
						return err
					}
					settled = append(settled, req.RequestID)

					if req.Purpose == domain.PurposeFranchiseFee {
						a, err := r.Applications.GetByID(ctx, req.ApplicationID)
						if err != nil {
							return err
						}
						a.PaymentStatus = domainApp.PaymentCompleted
						if err := r.Applications.Save(ctx, a); err != nil {
							return err
						}
					}
				}
				ownerID = firstApp.BusinessOwnerID
				appPublicID = firstApp.ApplicationID
				out = toTransactionDTO(txn, settled)
				return nil
			})
			if err != nil {
				if failed != nil {
					// The settlement itself rolled back; record the failed
					// attempt and flag any franchise-fee application so the
					// payer sees the decline.
					if recErr := tx.WithinTx(ctx, func(r uow.Repos) error {
						if err := r.Transactions.Create(ctx, failed); err != nil {
							return err
						}
						for _, appID := range feeAppIDs {
							a, err := r.Applications.GetByID(ctx, appID)
							if err != nil {
								return err
							}
							a.PaymentStatus = domainApp.PaymentFailed
							if err := r.Applications.Save(ctx, a); err != nil {
								return err
							}
						}
						return nil
					}); recErr != nil {
						err = fmt.Errorf("%w (recording failed transaction: %v)", err, recErr)
					}
				}
				return nil, err
			}
			return out, nil
		})
	if err != nil {
		return nil, err
	}
	u.bus.Publish(router.WithPath(ctx, path), event.Event{
		Type:          event.PaymentReceived,
		ApplicationID: appPublicID,
		RequestID:     dto.TransactionID,
		ActorID:       sess.UserID,
		TargetUserID:  ownerID,
	})
	return dto, nil
}

// MarkOverdue flips a pending request past its due date to overdue. Calling
// it on an already-overdue request is a no-op.
func (u *Usecase) MarkOverdue(ctx context.Context, sess auth.Session, requestID string) (*RequestDTO, error) {
	var partnerID, appPublicID string
	var flipped bool
	dto, path, err := router.ExecutePath(ctx, u.router, sess, router.OpMarkOverdue,
		func(ctx context.Context, tx uow.UnitOfWork) (*RequestDTO, error) {
			var out *RequestDTO
			err := tx.WithinTx(ctx, func(r uow.Repos) error {
				req, err := r.PaymentRequests.GetByRequestIDForUpdate(ctx, requestID)
				if err != nil {
					return err
				}
				a, err := r.Applications.GetByID(ctx, req.ApplicationID)
				if err != nil {
					return err
				}
				if req.Status == domain.RequestOverdue {
					out = toRequestDTO(req, a.ApplicationID)
					return nil
				}
				if req.Status != domain.RequestPending {
					return domain.NewRequestState(req.RequestID, req.Status, domain.RequestPending)
				}
				if req.DueDate == nil || time.Now().UTC().Before(*req.DueDate) {
					return fmt.Errorf("%w: %s", domain.ErrNotDue, req.RequestID)
				}
				req.Status = domain.RequestOverdue
				if err := r.PaymentRequests.Save(ctx, req); err != nil {
					return err
				}
				flipped = true
				partnerID = a.PartnerID
				appPublicID = a.ApplicationID
				out = toRequestDTO(req, a.ApplicationID)
				return nil
			})
			return out, err
		})
	if err != nil {
		return nil, err
	}
	if flipped {
		u.bus.Publish(router.WithPath(ctx, path), event.Event{
			Type:          event.PaymentOverdue,
			ApplicationID: appPublicID,
			RequestID:     dto.RequestID,
			ActorID:       sess.UserID,
			TargetUserID:  partnerID,
		})
	}
	return dto, nil
}

// Cancel withdraws a pending request before settlement.
func (u *Usecase) Cancel(ctx context.Context, sess auth.Session, requestID string) (*RequestDTO, error) {
	return router.Execute(ctx, u.router, sess, router.OpCancelPaymentRequest,
		func(ctx context.Context, tx uow.UnitOfWork) (*RequestDTO, error) {
			var out *RequestDTO
			err := tx.WithinTx(ctx, func(r uow.Repos) error {
				req, err := r.PaymentRequests.GetByRequestIDForUpdate(ctx, requestID)
				if err != nil {
					return err
				}
				if req.Status != domain.RequestPending {
					return domain.NewRequestState(req.RequestID, req.Status, domain.RequestPending)
				}
				req.Status = domain.RequestCancelled
				if err := r.PaymentRequests.Save(ctx, req); err != nil {
					return err
				}
				a, err := r.Applications.GetByID(ctx, req.ApplicationID)
				if err != nil {
					return err
				}
				out = toRequestDTO(req, a.ApplicationID)
				return nil
			})
			return out, err
		})
}

func (u *Usecase) GetRequest(ctx context.Context, sess auth.Session, requestID string) (*RequestDTO, error) {
	return router.Execute(ctx, u.router, sess, router.OpGetPaymentRequest,
		func(ctx context.Context, tx uow.UnitOfWork) (*RequestDTO, error) {
			var out *RequestDTO
			err := tx.WithinTx(ctx, func(r uow.Repos) error {
				req, err := r.PaymentRequests.GetByRequestID(ctx, requestID)
				if err != nil {
					return err
				}
				a, err := r.Applications.GetByID(ctx, req.ApplicationID)
				if err != nil {
					return err
				}
				out = toRequestDTO(req, a.ApplicationID)
				return nil
			})
			return out, err
		})
}

// ListRequests returns the requests for one application, newest first.
func (u *Usecase) ListRequests(ctx context.Context, sess auth.Session, applicationID string, status *domain.RequestStatus) ([]RequestDTO, error) {
	return router.Execute(ctx, u.router, sess, router.OpListPaymentRequests,
		func(ctx context.Context, tx uow.UnitOfWork) ([]RequestDTO, error) {
			var out []RequestDTO
			err := tx.WithinTx(ctx, func(r uow.Repos) error {
				a, err := r.Applications.GetByApplicationID(ctx, applicationID)
				if err != nil {
					return err
				}
				reqs, err := r.PaymentRequests.List(ctx, domain.RequestFilter{ApplicationID: &a.ID, Status: status})
				if err != nil {
					return err
				}
				out = make([]RequestDTO, 0, len(reqs))
				for i := range reqs {
					out = append(out, *toRequestDTO(&reqs[i], a.ApplicationID))
				}
				return nil
			})
			return out, err
		})
}
