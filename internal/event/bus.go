// Package event is the in-process publish/subscribe channel between the
// lifecycle engine and side-effect consumers such as the notification
// dispatcher.
package event

import (
	"context"
	"sync"
	"time"
)

type Type string

const (
	ApplicationSubmitted   Type = "application.submitted"
	ApplicationUnderReview Type = "application.under_review"
	ApplicationApproved    Type = "application.approved"
	ApplicationRejected    Type = "application.rejected"
	ApplicationWithdrawn   Type = "application.withdrawn"
	PaymentRequested       Type = "payment.requested"
	PaymentReceived        Type = "payment.received"
	PaymentOverdue         Type = "payment.overdue"
	PartnershipDeactivated Type = "partnership.deactivated"
	PartnershipReactivated Type = "partnership.reactivated"
)

type Event struct {
	Type          Type
	ApplicationID string
	RequestID     string
	// ActorID performed the transition; TargetUserID receives the resulting
	// notification.
	ActorID      string
	TargetUserID string
	Message      string
	OccurredAt   time.Time
}

type Handler func(ctx context.Context, ev Event)

// Bus delivers every published event to every subscriber, synchronously and
// in subscription order. Subscribers must not block.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

func NewBus() *Bus { return &Bus{} }

func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

func (b *Bus) Publish(ctx context.Context, ev Event) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	b.mu.RLock()
	hs := make([]Handler, len(b.handlers))
	copy(hs, b.handlers)
	b.mu.RUnlock()
	for _, h := range hs {
		h(ctx, ev)
	}
}
