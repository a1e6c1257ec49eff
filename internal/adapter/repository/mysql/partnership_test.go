package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "franchisehub-backend/internal/domain/partnership"
	"franchisehub-backend/pkg/id"
)

type deactivationSQLite struct {
	ID             uint64     `gorm:"primaryKey;column:id"`
	DeactivationID string     `gorm:"size:32;column:deactivation_id"`
	ApplicationID  uint64     `gorm:"column:application_id"`
	Reason         string     `gorm:"type:text;column:reason"` // ← no enum
	Notes          string     `gorm:"column:notes"`
	DeactivatedBy  string     `gorm:"size:32;column:deactivated_by"`
	DeactivatedAt  time.Time  `gorm:"column:deactivated_at"`
	ReactivatedAt  *time.Time `gorm:"column:reactivated_at"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
}

func (deactivationSQLite) TableName() string { return "partnership_deactivations" }

func openPartnershipTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&deactivationSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeDeactivation(applicationID uint64, reason domain.DeactivationReason) *domain.Deactivation {
	return &domain.Deactivation{
		DeactivationID: id.NewID32(),
		ApplicationID:  applicationID,
		Reason:         reason,
		DeactivatedBy:  id.NewID32(),
		DeactivatedAt:  time.Now().UTC(),
	}
}

func TestDeactivationCreateAndLatest(t *testing.T) {
	db := openPartnershipTestDB(t)
	repo := NewDeactivationRepository(db)
	ctx := context.Background()

	first := makeDeactivation(4, domain.ReasonNonPayment)
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	second := makeDeactivation(4, domain.ReasonMutualAgreement)
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// unrelated application
	if err := repo.Create(ctx, makeDeactivation(5, domain.ReasonOther)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetLatestByApplicationID(ctx, 4)
	if err != nil {
		t.Fatalf("GetLatestByApplicationID: %v", err)
	}
	if got.DeactivationID != second.DeactivationID {
		t.Fatalf("latest mismatch: want %s, got %s", second.DeactivationID, got.DeactivationID)
	}

	_, err = repo.GetLatestByApplicationID(ctx, 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected domain.ErrNotFound, got %v", err)
	}
}

func TestDeactivationSaveStampsReactivation(t *testing.T) {
	db := openPartnershipTestDB(t)
	repo := NewDeactivationRepository(db)
	ctx := context.Background()

	d := makeDeactivation(8, domain.ReasonBusinessClosure)
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Now().UTC()
	d.ReactivatedAt = &now
	if err := repo.Save(ctx, d); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetLatestByApplicationID(ctx, 8)
	if err != nil {
		t.Fatalf("GetLatestByApplicationID: %v", err)
	}
	if got.ReactivatedAt == nil {
		t.Fatalf("reactivation timestamp not persisted: %+v", got)
	}
}

func TestDeactivationListKeepsHistory(t *testing.T) {
	db := openPartnershipTestDB(t)
	repo := NewDeactivationRepository(db)
	ctx := context.Background()

	reasons := []domain.DeactivationReason{domain.ReasonNonPayment, domain.ReasonOther, domain.ReasonContractViolation}
	for _, r := range reasons {
		if err := repo.Create(ctx, makeDeactivation(6, r)); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListByApplicationID(ctx, 6)
	if err != nil {
		t.Fatalf("ListByApplicationID: %v", err)
	}
	if len(got) != len(reasons) {
		t.Fatalf("want %d records, got %d", len(reasons), len(got))
	}
	for i, r := range reasons {
		if got[i].Reason != r {
			t.Errorf("record %d: want %s, got %s", i, r, got[i].Reason)
		}
	}
}
