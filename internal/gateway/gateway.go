// Package gateway is the payment-gateway collaborator boundary used by
// settlement. The real integration lives outside this service; the simulated
// charger is deterministic so demo flows and tests behave identically.
package gateway

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"franchisehub-backend/pkg/apperr"
)

type ChargeInput struct {
	Amount        decimal.Decimal
	PaymentMethod string
	PayerID       string
	PayerDetails  map[string]string
}

type Receipt struct {
	GatewayTransactionID string
}

type Charger interface {
	Charge(ctx context.Context, in ChargeInput) (*Receipt, error)
}

// SimulatedCharger approves every charge unless a failure has been injected
// for the payer. Failures classify as external service errors so the caller
// records a failed transaction instead of retrying business validation.
type SimulatedCharger struct {
	mu      sync.Mutex
	decline map[string]string // payer id -> reason
}

func NewSimulatedCharger() *SimulatedCharger {
	return &SimulatedCharger{decline: make(map[string]string)}
}

// FailNextFor makes every subsequent charge by payerID fail with reason until
// cleared.
func (s *SimulatedCharger) FailNextFor(payerID, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decline[payerID] = reason
}

func (s *SimulatedCharger) Clear(payerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.decline, payerID)
}

func (s *SimulatedCharger) Charge(ctx context.Context, in ChargeInput) (*Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !in.Amount.IsPositive() {
		return nil, apperr.Externalf("gateway rejected non-positive amount %s", in.Amount)
	}
	s.mu.Lock()
	reason := s.decline[in.PayerID]
	s.mu.Unlock()
	if reason != "" {
		return nil, apperr.Externalf("charge declined: %s", reason)
	}
	return &Receipt{GatewayTransactionID: "sim_" + strings.ReplaceAll(uuid.NewString(), "-", "")}, nil
}
