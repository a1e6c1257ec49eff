package application

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusDraft       Status = "draft"
	StatusSubmitted   Status = "submitted"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusWithdrawn   Status = "withdrawn"
	StatusDeactivated Status = "deactivated"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

type FranchiseApplication struct {
	ID              uint64          `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID   string          `gorm:"size:32;uniqueIndex:ux_applications_application_id_active" json:"application_id"`
	FranchiseID     string          `gorm:"size:32;index:idx_applications_franchise" json:"franchise_id"`
	BusinessOwnerID string          `gorm:"size:32;index:idx_applications_owner" json:"business_owner_id"`
	PartnerID       string          `gorm:"size:32;index:idx_applications_partner" json:"partner_id"`
	Status          Status          `gorm:"type:enum('draft','submitted','under_review','approved','rejected','withdrawn','deactivated');default:'draft'" json:"status"`
	PaymentStatus   PaymentStatus   `gorm:"type:enum('pending','processing','completed','failed','refunded');default:'pending'" json:"payment_status"`
	ApplicationFee  decimal.Decimal `gorm:"type:decimal(18,2)" json:"application_fee"`
	ReviewNotes     string          `gorm:"type:text" json:"review_notes,omitempty"`
	RejectionReason string          `gorm:"type:text" json:"rejection_reason,omitempty"`
	SubmittedAt     *time.Time      `json:"submitted_at,omitempty"`
	ReviewedAt      *time.Time      `json:"reviewed_at,omitempty"`
	StatusUpdatedAt time.Time       `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (FranchiseApplication) TableName() string { return "franchise_applications" }

// ReadyForSubmission reports whether the required fields are populated for
// the draft -> submitted move.
func (a *FranchiseApplication) ReadyForSubmission() bool {
	return a.FranchiseID != "" && a.BusinessOwnerID != "" && a.PartnerID != "" &&
		a.ApplicationFee.IsPositive()
}

// TimelineEntry is an append-only audit record; rows are never updated or
// deleted once written.
type TimelineEntry struct {
	ID                uint64    `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID     uint64    `gorm:"column:application_id;not null;index" json:"-"`
	Status            Status    `gorm:"size:32;not null" json:"status"`
	Notes             string    `gorm:"type:text" json:"notes,omitempty"`
	PerformedBy       string    `gorm:"size:32" json:"performed_by"`
	IsSystemGenerated bool      `gorm:"not null;default:false" json:"is_system_generated"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TimelineEntry) TableName() string { return "application_timeline" }

// Filter narrows List results; nil fields are ignored.
type Filter struct {
	FranchiseID     *string
	BusinessOwnerID *string
	PartnerID       *string
	Status          *Status
}
