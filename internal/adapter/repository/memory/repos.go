package memory

import (
	"context"
	"sort"

	"franchisehub-backend/internal/domain/application"
	"franchisehub-backend/internal/domain/notification"
	"franchisehub-backend/internal/domain/partnership"
	"franchisehub-backend/internal/domain/payment"
)

// The repos below are only ever invoked under the store transaction lock, so
// no extra synchronization is needed here. Entities are stored by value and
// copied on every read, mimicking row semantics.

type applicationRepo struct{ s *Store }

func (r *applicationRepo) Create(_ context.Context, a *application.FranchiseApplication) error {
	st := r.s.st
	a.ID = st.nextID
	st.nextID++
	st.applications[a.ID] = *a
	st.appByPublic[a.ApplicationID] = a.ID
	return nil
}

func (r *applicationRepo) GetByApplicationID(_ context.Context, applicationID string) (*application.FranchiseApplication, error) {
	st := r.s.st
	id, ok := st.appByPublic[applicationID]
	if !ok {
		return nil, application.ErrNotFound
	}
	a := st.applications[id]
	return &a, nil
}

func (r *applicationRepo) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*application.FranchiseApplication, error) {
	return r.GetByApplicationID(ctx, applicationID)
}

func (r *applicationRepo) GetByID(_ context.Context, id uint64) (*application.FranchiseApplication, error) {
	a, ok := r.s.st.applications[id]
	if !ok {
		return nil, application.ErrNotFound
	}
	return &a, nil
}

func (r *applicationRepo) Save(_ context.Context, a *application.FranchiseApplication) error {
	if _, ok := r.s.st.applications[a.ID]; !ok {
		return application.ErrNotFound
	}
	r.s.st.applications[a.ID] = *a
	return nil
}

func (r *applicationRepo) List(_ context.Context, f application.Filter) ([]application.FranchiseApplication, error) {
	st := r.s.st
	out := make([]application.FranchiseApplication, 0, len(st.applications))
	for _, a := range st.applications {
		if f.FranchiseID != nil && a.FranchiseID != *f.FranchiseID {
			continue
		}
		if f.BusinessOwnerID != nil && a.BusinessOwnerID != *f.BusinessOwnerID {
			continue
		}
		if f.PartnerID != nil && a.PartnerID != *f.PartnerID {
			continue
		}
		if f.Status != nil && a.Status != *f.Status {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *applicationRepo) AppendTimeline(_ context.Context, e *application.TimelineEntry) error {
	st := r.s.st
	e.ID = st.nextID
	st.nextID++
	st.timeline = append(st.timeline, *e)
	return nil
}

func (r *applicationRepo) ListTimeline(_ context.Context, applicationID uint64) ([]application.TimelineEntry, error) {
	var out []application.TimelineEntry
	for _, e := range r.s.st.timeline {
		if e.ApplicationID == applicationID {
			out = append(out, e)
		}
	}
	return out, nil
}

type deactivationRepo struct{ s *Store }

func (r *deactivationRepo) Create(_ context.Context, d *partnership.Deactivation) error {
	st := r.s.st
	d.ID = st.nextID
	st.nextID++
	st.deactivations[d.ID] = *d
	return nil
}

func (r *deactivationRepo) GetLatestByApplicationID(_ context.Context, applicationID uint64) (*partnership.Deactivation, error) {
	var latest *partnership.Deactivation
	for _, d := range r.s.st.deactivations {
		if d.ApplicationID != applicationID {
			continue
		}
		if latest == nil || d.ID > latest.ID {
			d := d
			latest = &d
		}
	}
	if latest == nil {
		return nil, partnership.ErrNotFound
	}
	return latest, nil
}

func (r *deactivationRepo) Save(_ context.Context, d *partnership.Deactivation) error {
	if _, ok := r.s.st.deactivations[d.ID]; !ok {
		return partnership.ErrNotFound
	}
	r.s.st.deactivations[d.ID] = *d
	return nil
}

func (r *deactivationRepo) ListByApplicationID(_ context.Context, applicationID uint64) ([]partnership.Deactivation, error) {
	var out []partnership.Deactivation
	for _, d := range r.s.st.deactivations {
		if d.ApplicationID == applicationID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type requestRepo struct{ s *Store }

func (r *requestRepo) Create(_ context.Context, req *payment.Request) error {
	st := r.s.st
	req.ID = st.nextID
	st.nextID++
	st.requests[req.ID] = *req
	st.reqByPublic[req.RequestID] = req.ID
	return nil
}

func (r *requestRepo) GetByRequestID(_ context.Context, requestID string) (*payment.Request, error) {
	st := r.s.st
	id, ok := st.reqByPublic[requestID]
	if !ok {
		return nil, payment.ErrRequestNotFound
	}
	req := st.requests[id]
	return &req, nil
}

func (r *requestRepo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*payment.Request, error) {
	return r.GetByRequestID(ctx, requestID)
}

func (r *requestRepo) Save(_ context.Context, req *payment.Request) error {
	if _, ok := r.s.st.requests[req.ID]; !ok {
		return payment.ErrRequestNotFound
	}
	r.s.st.requests[req.ID] = *req
	return nil
}

func (r *requestRepo) List(_ context.Context, f payment.RequestFilter) ([]payment.Request, error) {
	var out []payment.Request
	for _, req := range r.s.st.requests {
		if f.ApplicationID != nil && req.ApplicationID != *f.ApplicationID {
			continue
		}
		if f.Status != nil && req.Status != *f.Status {
			continue
		}
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type transactionRepo struct{ s *Store }

func (r *transactionRepo) Create(_ context.Context, t *payment.Transaction) error {
	st := r.s.st
	t.ID = st.nextID
	st.nextID++
	st.transactions[t.ID] = *t
	st.txnByPublic[t.TransactionID] = t.ID
	return nil
}

func (r *transactionRepo) GetByTransactionID(_ context.Context, transactionID string) (*payment.Transaction, error) {
	st := r.s.st
	id, ok := st.txnByPublic[transactionID]
	if !ok {
		return nil, payment.ErrTransactionNotFound
	}
	t := st.transactions[id]
	return &t, nil
}

func (r *transactionRepo) Save(_ context.Context, t *payment.Transaction) error {
	if _, ok := r.s.st.transactions[t.ID]; !ok {
		return payment.ErrTransactionNotFound
	}
	r.s.st.transactions[t.ID] = *t
	return nil
}

type notificationRepo struct{ s *Store }

func (r *notificationRepo) Create(_ context.Context, n *notification.Notification) error {
	st := r.s.st
	n.ID = st.nextID
	st.nextID++
	st.notifications[n.ID] = *n
	st.notifByPublic[n.NotificationID] = n.ID
	return nil
}

func (r *notificationRepo) GetByNotificationID(_ context.Context, notificationID string) (*notification.Notification, error) {
	st := r.s.st
	id, ok := st.notifByPublic[notificationID]
	if !ok {
		return nil, notification.ErrNotFound
	}
	n := st.notifications[id]
	return &n, nil
}

func (r *notificationRepo) Save(_ context.Context, n *notification.Notification) error {
	if _, ok := r.s.st.notifications[n.ID]; !ok {
		return notification.ErrNotFound
	}
	r.s.st.notifications[n.ID] = *n
	return nil
}

func (r *notificationRepo) ListByUser(_ context.Context, userID string, unreadOnly bool) ([]notification.Notification, error) {
	var out []notification.Notification
	for _, n := range r.s.st.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Status != notification.StatusUnread {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}
