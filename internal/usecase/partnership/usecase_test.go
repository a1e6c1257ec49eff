package partnership

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"franchisehub-backend/internal/adapter/repository/memory"
	"franchisehub-backend/internal/auth"
	domainApp "franchisehub-backend/internal/domain/application"
	domain "franchisehub-backend/internal/domain/partnership"
	"franchisehub-backend/internal/domain/uow"
	"franchisehub-backend/internal/event"
	"franchisehub-backend/internal/router"
	"franchisehub-backend/pkg/id"
)

func newTestEnv(t *testing.T) (*Usecase, *memory.Store, *event.Bus, auth.Session) {
	t.Helper()
	store := memory.NewStore()
	rt := router.New(router.NewPolicy(nil, false, false), router.Sources{Simulated: store}, nil)
	bus := event.NewBus()
	sess := auth.Session{UserID: id.NewID32(), Email: "owner@example.com", Role: auth.RoleBusinessOwner}
	return NewUsecase(rt, bus), store, bus, sess
}

func seedApplication(t *testing.T, store *memory.Store, status domainApp.Status) *domainApp.FranchiseApplication {
	t.Helper()
	a := &domainApp.FranchiseApplication{
		ApplicationID:   id.NewID32(),
		FranchiseID:     id.NewID32(),
		BusinessOwnerID: id.NewID32(),
		PartnerID:       id.NewID32(),
		Status:          status,
		PaymentStatus:   domainApp.PaymentPending,
		ApplicationFee:  decimal.NewFromInt(5000),
		StatusUpdatedAt: time.Now().UTC(),
	}
	err := store.WithinTx(context.Background(), func(r uow.Repos) error {
		return r.Applications.Create(context.Background(), a)
	})
	if err != nil {
		t.Fatalf("seed application: %v", err)
	}
	return a
}

func appStatus(t *testing.T, store *memory.Store, applicationID string) domainApp.Status {
	t.Helper()
	var st domainApp.Status
	err := store.WithinTx(context.Background(), func(r uow.Repos) error {
		a, err := r.Applications.GetByApplicationID(context.Background(), applicationID)
		if err != nil {
			return err
		}
		st = a.Status
		return nil
	})
	if err != nil {
		t.Fatalf("appStatus: %v", err)
	}
	return st
}

func TestDeactivate(t *testing.T) {
	uc, store, bus, sess := newTestEnv(t)
	app := seedApplication(t, store, domainApp.StatusApproved)

	var events []event.Event
	bus.Subscribe(func(ctx context.Context, ev event.Event) { events = append(events, ev) })

	dto, err := uc.Deactivate(context.Background(), sess, DeactivateInput{
		ApplicationID: app.ApplicationID,
		Reason:        domain.ReasonContractViolation,
		Notes:         "missed royalty payments",
	})
	if err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if dto.Reason != string(domain.ReasonContractViolation) || dto.DeactivatedBy != sess.UserID {
		t.Fatalf("unexpected record: %+v", dto)
	}
	if dto.ReactivatedAt != nil {
		t.Fatalf("fresh deactivation already reactivated")
	}
	if got := appStatus(t, store, app.ApplicationID); got != domainApp.StatusDeactivated {
		t.Fatalf("application status = %s", got)
	}
	if len(events) != 1 || events[0].Type != event.PartnershipDeactivated {
		t.Fatalf("events: %+v", events)
	}
	if events[0].TargetUserID != app.PartnerID {
		t.Fatalf("notification target = %s, want partner %s", events[0].TargetUserID, app.PartnerID)
	}
}

func TestDeactivate_Guards(t *testing.T) {
	uc, store, _, sess := newTestEnv(t)

	app := seedApplication(t, store, domainApp.StatusApproved)
	_, err := uc.Deactivate(context.Background(), sess, DeactivateInput{
		ApplicationID: app.ApplicationID,
		Reason:        domain.DeactivationReason("bored"),
	})
	if !errors.Is(err, domain.ErrInvalidReason) {
		t.Fatalf("want ErrInvalidReason, got %v", err)
	}

	// Only approved applications can be deactivated.
	submitted := seedApplication(t, store, domainApp.StatusSubmitted)
	_, err = uc.Deactivate(context.Background(), sess, DeactivateInput{
		ApplicationID: submitted.ApplicationID,
		Reason:        domain.ReasonOther,
	})
	if !errors.Is(err, domainApp.ErrInvalidTransition) {
		t.Fatalf("submitted: want ErrInvalidTransition, got %v", err)
	}

	// A second deactivation of the same application is rejected.
	if _, err := uc.Deactivate(context.Background(), sess, DeactivateInput{
		ApplicationID: app.ApplicationID,
		Reason:        domain.ReasonOther,
	}); err != nil {
		t.Fatalf("first deactivate: %v", err)
	}
	_, err = uc.Deactivate(context.Background(), sess, DeactivateInput{
		ApplicationID: app.ApplicationID,
		Reason:        domain.ReasonNonPayment,
	})
	if !errors.Is(err, domainApp.ErrInvalidTransition) {
		t.Fatalf("double deactivate: want ErrInvalidTransition, got %v", err)
	}
}

func TestReactivate_PreservesRecord(t *testing.T) {
	uc, store, bus, sess := newTestEnv(t)
	app := seedApplication(t, store, domainApp.StatusApproved)

	if _, err := uc.Deactivate(context.Background(), sess, DeactivateInput{
		ApplicationID: app.ApplicationID,
		Reason:        domain.ReasonBusinessClosure,
	}); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	var events []event.Event
	bus.Subscribe(func(ctx context.Context, ev event.Event) { events = append(events, ev) })

	dto, err := uc.Reactivate(context.Background(), sess, app.ApplicationID)
	if err != nil {
		t.Fatalf("Reactivate: %v", err)
	}
	if dto.ReactivatedAt == nil {
		t.Fatalf("reactivation not stamped: %+v", dto)
	}
	if got := appStatus(t, store, app.ApplicationID); got != domainApp.StatusApproved {
		t.Fatalf("application status = %s", got)
	}
	if len(events) != 1 || events[0].Type != event.PartnershipReactivated {
		t.Fatalf("events: %+v", events)
	}

	// The audit record survives reactivation.
	hist, err := uc.History(context.Background(), sess, app.ApplicationID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(hist) != 1 || hist[0].ReactivatedAt == nil {
		t.Fatalf("history: %+v", hist)
	}

	// Reactivating an active partnership is rejected.
	if _, err := uc.Reactivate(context.Background(), sess, app.ApplicationID); !errors.Is(err, domainApp.ErrInvalidTransition) {
		t.Fatalf("double reactivate: want ErrInvalidTransition, got %v", err)
	}
}

func TestHistory_AccumulatesCycles(t *testing.T) {
	uc, store, _, sess := newTestEnv(t)
	app := seedApplication(t, store, domainApp.StatusApproved)

	reasons := []domain.DeactivationReason{domain.ReasonNonPayment, domain.ReasonMutualAgreement}
	for _, reason := range reasons {
		if _, err := uc.Deactivate(context.Background(), sess, DeactivateInput{
			ApplicationID: app.ApplicationID,
			Reason:        reason,
		}); err != nil {
			t.Fatalf("Deactivate(%s): %v", reason, err)
		}
		if _, err := uc.Reactivate(context.Background(), sess, app.ApplicationID); err != nil {
			t.Fatalf("Reactivate after %s: %v", reason, err)
		}
	}

	hist, err := uc.History(context.Background(), sess, app.ApplicationID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(hist) != len(reasons) {
		t.Fatalf("history length %d, want %d", len(hist), len(reasons))
	}
	for i, reason := range reasons {
		if hist[i].Reason != string(reason) {
			t.Fatalf("record %d reason = %s, want %s", i, hist[i].Reason, reason)
		}
		if hist[i].ReactivatedAt == nil {
			t.Fatalf("record %d not stamped", i)
		}
	}
}
