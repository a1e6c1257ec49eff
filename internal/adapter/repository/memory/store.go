// Package memory is the simulated backend: a deterministic, in-process
// implementation of every repository interface. Demo accounts and anonymous
// sessions run entirely against it.
package memory

import (
	"context"
	"sync"

	"franchisehub-backend/internal/domain/application"
	"franchisehub-backend/internal/domain/notification"
	"franchisehub-backend/internal/domain/partnership"
	"franchisehub-backend/internal/domain/payment"
	"franchisehub-backend/internal/domain/uow"
)

type state struct {
	nextID        uint64
	applications  map[uint64]application.FranchiseApplication
	appByPublic   map[string]uint64
	timeline      []application.TimelineEntry
	deactivations map[uint64]partnership.Deactivation
	requests      map[uint64]payment.Request
	reqByPublic   map[string]uint64
	transactions  map[uint64]payment.Transaction
	txnByPublic   map[string]uint64
	notifications map[uint64]notification.Notification
	notifByPublic map[string]uint64
}

func newState() *state {
	return &state{
		nextID:        1,
		applications:  map[uint64]application.FranchiseApplication{},
		appByPublic:   map[string]uint64{},
		deactivations: map[uint64]partnership.Deactivation{},
		requests:      map[uint64]payment.Request{},
		reqByPublic:   map[string]uint64{},
		transactions:  map[uint64]payment.Transaction{},
		txnByPublic:   map[string]uint64{},
		notifications: map[uint64]notification.Notification{},
		notifByPublic: map[string]uint64{},
	}
}

func (s *state) clone() *state {
	c := newState()
	c.nextID = s.nextID
	for k, v := range s.applications {
		c.applications[k] = v
	}
	for k, v := range s.appByPublic {
		c.appByPublic[k] = v
	}
	c.timeline = append([]application.TimelineEntry(nil), s.timeline...)
	for k, v := range s.deactivations {
		c.deactivations[k] = v
	}
	for k, v := range s.requests {
		c.requests[k] = v
	}
	for k, v := range s.reqByPublic {
		c.reqByPublic[k] = v
	}
	for k, v := range s.transactions {
		c.transactions[k] = v
	}
	for k, v := range s.txnByPublic {
		c.txnByPublic[k] = v
	}
	for k, v := range s.notifications {
		c.notifications[k] = v
	}
	for k, v := range s.notifByPublic {
		c.notifByPublic[k] = v
	}
	return c
}

// Store serializes every transaction behind one mutex, which is stricter than
// the per-application requirement but indistinguishable to callers at demo
// scale. Rollback restores a pre-transaction snapshot, so callers observe
// full success or full failure, never a partial settlement.
type Store struct {
	mu sync.Mutex
	st *state
}

func NewStore() *Store { return &Store{st: newState()} }

func (s *Store) repos() uow.Repos {
	return uow.Repos{
		Applications:    &applicationRepo{s: s},
		Deactivations:   &deactivationRepo{s: s},
		PaymentRequests: &requestRepo{s: s},
		Transactions:    &transactionRepo{s: s},
		Notifications:   &notificationRepo{s: s},
	}
}

func (s *Store) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	snapshot := s.st.clone()
	if err := fn(s.repos()); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func (s *Store) WithinApplicationTx(ctx context.Context, applicationID string, fn func(r uow.Repos, a *application.FranchiseApplication) error) error {
	return s.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Applications.GetByApplicationIDForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}
		return fn(r, a)
	})
}
