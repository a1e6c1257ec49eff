package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"franchisehub-backend/internal/domain/application"
	"franchisehub-backend/internal/domain/uow"
	"franchisehub-backend/pkg/id"
)

// SeedDemo loads a small deterministic dataset so demo accounts see a
// populated marketplace out of the box.
func (s *Store) SeedDemo() error {
	ctx := context.Background()
	now := time.Now().UTC()

	type row struct {
		franchise string
		owner     string
		partner   string
		fee       string
		status    application.Status
	}
	rows := []row{
		{"fr_coffeehouse_0001", "demo_owner_000000000000000000001", "demo_partner_0000000000000000001", "5000.00", application.StatusApproved},
		{"fr_coffeehouse_0001", "demo_owner_000000000000000000001", "demo_partner_0000000000000000002", "5000.00", application.StatusSubmitted},
		{"fr_fitnesslab_0002", "demo_owner_000000000000000000002", "demo_partner_0000000000000000001", "12000.00", application.StatusDraft},
	}

	return s.WithinTx(ctx, func(r uow.Repos) error {
		for _, row := range rows {
			a := &application.FranchiseApplication{
				ApplicationID:   id.NewID32(),
				FranchiseID:     row.franchise,
				BusinessOwnerID: row.owner,
				PartnerID:       row.partner,
				Status:          row.status,
				PaymentStatus:   application.PaymentPending,
				ApplicationFee:  decimal.RequireFromString(row.fee),
				StatusUpdatedAt: now,
				CreatedAt:       now,
			}
			if row.status != application.StatusDraft {
				a.SubmittedAt = &now
			}
			if err := r.Applications.Create(ctx, a); err != nil {
				return err
			}
			if err := r.Applications.AppendTimeline(ctx, &application.TimelineEntry{
				ApplicationID:     a.ID,
				Status:            row.status,
				PerformedBy:       row.partner,
				IsSystemGenerated: true,
				Notes:             "seeded demo data",
				CreatedAt:         now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}
