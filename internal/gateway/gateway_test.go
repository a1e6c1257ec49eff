package gateway

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"franchisehub-backend/pkg/apperr"
)

func TestSimulatedCharger_Approves(t *testing.T) {
	c := NewSimulatedCharger()
	r, err := c.Charge(context.Background(), ChargeInput{
		Amount:  decimal.NewFromInt(100),
		PayerID: "p1",
	})
	if err != nil {
		t.Fatalf("Charge: %v", err)
	}
	if !strings.HasPrefix(r.GatewayTransactionID, "sim_") {
		t.Errorf("unexpected gateway id %q", r.GatewayTransactionID)
	}
}

func TestSimulatedCharger_InjectedDecline(t *testing.T) {
	c := NewSimulatedCharger()
	c.FailNextFor("p1", "insufficient funds")

	_, err := c.Charge(context.Background(), ChargeInput{Amount: decimal.NewFromInt(10), PayerID: "p1"})
	if !apperr.IsExternal(err) {
		t.Fatalf("want external error, got %v", err)
	}
	if !strings.Contains(err.Error(), "insufficient funds") {
		t.Errorf("reason not propagated: %v", err)
	}

	// Other payers are unaffected.
	if _, err := c.Charge(context.Background(), ChargeInput{Amount: decimal.NewFromInt(10), PayerID: "p2"}); err != nil {
		t.Fatalf("unrelated payer declined: %v", err)
	}

	c.Clear("p1")
	if _, err := c.Charge(context.Background(), ChargeInput{Amount: decimal.NewFromInt(10), PayerID: "p1"}); err != nil {
		t.Fatalf("decline not cleared: %v", err)
	}
}

func TestSimulatedCharger_NonPositiveAmount(t *testing.T) {
	c := NewSimulatedCharger()
	_, err := c.Charge(context.Background(), ChargeInput{Amount: decimal.Zero, PayerID: "p1"})
	if !apperr.IsExternal(err) {
		t.Fatalf("want external error, got %v", err)
	}
}
