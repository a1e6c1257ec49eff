package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	appuc "franchisehub-backend/internal/usecase/application"
	payuc "franchisehub-backend/internal/usecase/payment"
	"franchisehub-backend/pkg/id"
)

// approveApplication walks a fresh application to approved and returns it
// together with the franchise-fee request created by the approval.
func approveApplication(t *testing.T, e *echo.Echo, owner string) (appuc.ApplicationDTO, payuc.RequestDTO) {
	t.Helper()
	dto := createApplication(t, e, owner)
	base := "/applications/" + dto.ApplicationID
	wantStatus(t, doJSON(t, e, http.MethodPost, base+"/submit", owner, nil), http.StatusOK)
	wantStatus(t, doJSON(t, e, http.MethodPost, base+"/review", owner, nil), http.StatusOK)
	rec := doJSON(t, e, http.MethodPost, base+"/approve", owner, map[string]any{"review_notes": "ok"})
	wantStatus(t, rec, http.StatusOK)
	approved := decodeBody[appuc.ApplicationDTO](t, rec)

	rec = doJSON(t, e, http.MethodGet, base+"/payment-requests", owner, nil)
	wantStatus(t, rec, http.StatusOK)
	reqs := decodeBody[[]payuc.RequestDTO](t, rec)
	if len(reqs) != 1 || reqs[0].Purpose != "franchise_fee" {
		t.Fatalf("fee request after approval: %+v", reqs)
	}
	return approved, reqs[0]
}

func TestCreatePaymentRequest_RequiresApprovedApplication(t *testing.T) {
	e, _ := newServer(t)
	owner := id.NewID32()
	dto := createApplication(t, e, owner)

	rec := doJSON(t, e, http.MethodPost, "/payment-requests", owner, map[string]any{
		"application_id": dto.ApplicationID,
		"purpose":        "royalty",
		"amount":         100,
	})
	wantStatus(t, rec, http.StatusConflict)
}

func TestSettleOverHTTP(t *testing.T) {
	e, _ := newServer(t)
	owner := id.NewID32()
	app, feeReq := approveApplication(t, e, owner)

	rec := doJSON(t, e, http.MethodPost, "/payments/settle", owner, map[string]any{
		"request_ids":    []string{feeReq.RequestID},
		"payment_method": "bank_transfer",
	})
	wantStatus(t, rec, http.StatusCreated)
	txn := decodeBody[payuc.TransactionDTO](t, rec)
	if txn.Status != "completed" {
		t.Fatalf("transaction status = %s", txn.Status)
	}
	if !txn.Amount.Equal(decimal.NewFromInt(5000)) || !txn.PlatformFee.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("split: amount=%s platform=%s", txn.Amount, txn.PlatformFee)
	}

	rec = doJSON(t, e, http.MethodGet, "/payment-requests/"+feeReq.RequestID, owner, nil)
	wantStatus(t, rec, http.StatusOK)
	if got := decodeBody[payuc.RequestDTO](t, rec); got.Status != "paid" {
		t.Fatalf("request status after settle = %s", got.Status)
	}

	// Franchise fee settles the application's own payment obligation.
	rec = doJSON(t, e, http.MethodGet, "/applications/"+app.ApplicationID, owner, nil)
	wantStatus(t, rec, http.StatusOK)
	if got := decodeBody[appuc.ApplicationDTO](t, rec); got.PaymentStatus != "completed" {
		t.Fatalf("application payment status = %s", got.PaymentStatus)
	}
}

func TestSettle_GatewayDeclineIsBadGateway(t *testing.T) {
	e, charger := newServer(t)
	owner := id.NewID32()
	app, feeReq := approveApplication(t, e, owner)

	charger.FailNextFor(app.PartnerID, "insufficient funds")
	rec := doJSON(t, e, http.MethodPost, "/payments/settle", owner, map[string]any{
		"request_ids": []string{feeReq.RequestID},
	})
	wantStatus(t, rec, http.StatusBadGateway)

	rec = doJSON(t, e, http.MethodGet, "/payment-requests/"+feeReq.RequestID, owner, nil)
	wantStatus(t, rec, http.StatusOK)
	if got := decodeBody[payuc.RequestDTO](t, rec); got.Status != "pending" {
		t.Fatalf("request mutated by failed settlement: %s", got.Status)
	}
}

func TestSettle_EmptyBatchRejected(t *testing.T) {
	e, _ := newServer(t)

	rec := doJSON(t, e, http.MethodPost, "/payments/settle", id.NewID32(), map[string]any{
		"request_ids": []string{},
	})
	wantStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestCancelRequestTwice_Conflict(t *testing.T) {
	e, _ := newServer(t)
	owner := id.NewID32()
	app, _ := approveApplication(t, e, owner)

	due := time.Now().UTC().Add(24 * time.Hour)
	rec := doJSON(t, e, http.MethodPost, "/payment-requests", owner, map[string]any{
		"application_id": app.ApplicationID,
		"purpose":        "royalty",
		"description":    "monthly royalty",
		"amount":         300,
		"due_date":       due.Format(time.RFC3339),
	})
	wantStatus(t, rec, http.StatusCreated)
	created := decodeBody[payuc.RequestDTO](t, rec)

	path := "/payment-requests/" + created.RequestID + "/cancel"
	wantStatus(t, doJSON(t, e, http.MethodPost, path, owner, nil), http.StatusOK)
	wantStatus(t, doJSON(t, e, http.MethodPost, path, owner, nil), http.StatusConflict)
}

func TestMarkOverdue_FutureDueDateRejected(t *testing.T) {
	e, _ := newServer(t)
	owner := id.NewID32()
	app, _ := approveApplication(t, e, owner)

	due := time.Now().UTC().Add(48 * time.Hour)
	rec := doJSON(t, e, http.MethodPost, "/payment-requests", owner, map[string]any{
		"application_id": app.ApplicationID,
		"purpose":        "royalty",
		"amount":         300,
		"due_date":       due.Format(time.RFC3339),
	})
	wantStatus(t, rec, http.StatusCreated)
	created := decodeBody[payuc.RequestDTO](t, rec)

	rec = doJSON(t, e, http.MethodPost, "/payment-requests/"+created.RequestID+"/overdue", owner, nil)
	wantStatus(t, rec, http.StatusBadRequest)
}

func TestGetRequest_NotFound(t *testing.T) {
	e, _ := newServer(t)

	rec := doJSON(t, e, http.MethodGet, "/payment-requests/"+id.NewID32(), id.NewID32(), nil)
	wantStatus(t, rec, http.StatusNotFound)
}
