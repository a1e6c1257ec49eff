package notification

import (
	"context"

	"go.uber.org/zap"

	domain "franchisehub-backend/internal/domain/notification"
	"franchisehub-backend/internal/domain/uow"
	"franchisehub-backend/internal/event"
	"franchisehub-backend/internal/router"
	"franchisehub-backend/pkg/id"
)

// typeFor maps lifecycle events to user-facing notification types.
var typeFor = map[event.Type]domain.Type{
	event.ApplicationSubmitted:   domain.TypeApplicationSubmitted,
	event.ApplicationUnderReview: domain.TypeApplicationUnderReview,
	event.ApplicationApproved:    domain.TypeApplicationApproved,
	event.ApplicationRejected:    domain.TypeApplicationRejected,
	event.ApplicationWithdrawn:   domain.TypeApplicationWithdrawn,
	event.PaymentRequested:       domain.TypePaymentRequested,
	event.PaymentReceived:        domain.TypePaymentReceived,
	event.PaymentOverdue:         domain.TypePaymentOverdue,
	event.PartnershipDeactivated: domain.TypePartnershipDeactivated,
	event.PartnershipReactivated: domain.TypePartnershipReactivated,
}

var defaultMessage = map[domain.Type]string{
	domain.TypeApplicationSubmitted:   "a franchise application was submitted",
	domain.TypeApplicationUnderReview: "your application is under review",
	domain.TypeApplicationApproved:    "your application was approved",
	domain.TypeApplicationRejected:    "your application was rejected",
	domain.TypeApplicationWithdrawn:   "an application was withdrawn",
	domain.TypePaymentRequested:       "a payment was requested",
	domain.TypePaymentReceived:        "a payment was received",
	domain.TypePaymentOverdue:         "a payment request is overdue",
	domain.TypePartnershipDeactivated: "your partnership was deactivated",
	domain.TypePartnershipReactivated: "your partnership was reactivated",
}

// Dispatcher persists a notification for every lifecycle event, writing to
// the same backend the triggering operation executed against.
type Dispatcher struct {
	sources router.Sources
	log     *zap.Logger
}

func NewDispatcher(sources router.Sources, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{sources: sources, log: log}
}

// Register subscribes the dispatcher to the bus.
func (d *Dispatcher) Register(bus *event.Bus) { bus.Subscribe(d.HandleEvent) }

func (d *Dispatcher) HandleEvent(ctx context.Context, ev event.Event) {
	nt, ok := typeFor[ev.Type]
	if !ok || ev.TargetUserID == "" {
		return
	}
	msg := ev.Message
	if msg == "" {
		msg = defaultMessage[nt]
	}
	tx := d.sources.Simulated
	if router.PathFromContext(ctx) == router.PathReal && d.sources.Real != nil {
		tx = d.sources.Real
	}
	n := &domain.Notification{
		NotificationID: id.NewID32(),
		UserID:         ev.TargetUserID,
		Type:           nt,
		Status:         domain.StatusUnread,
		ApplicationID:  ev.ApplicationID,
		RequestID:      ev.RequestID,
		Message:        msg,
	}
	err := tx.WithinTx(ctx, func(r uow.Repos) error {
		return r.Notifications.Create(ctx, n)
	})
	if err != nil {
		// Notifications are best-effort side effects; the triggering
		// transition has already committed.
		d.log.Error("notification dispatch failed",
			zap.String("event", string(ev.Type)),
			zap.String("user_id", ev.TargetUserID),
			zap.Error(err))
	}
}
