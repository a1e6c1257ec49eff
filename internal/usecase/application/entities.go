package application

import (
	"time"

	"github.com/shopspring/decimal"

	domain "franchisehub-backend/internal/domain/application"
)

type CreateInput struct {
	FranchiseID     string          `json:"franchise_id"`
	BusinessOwnerID string          `json:"business_owner_id"`
	PartnerID       string          `json:"partner_id"`
	ApplicationFee  decimal.Decimal `json:"application_fee"`
}

type ApproveInput struct {
	ApplicationID string `json:"application_id"`
	ReviewNotes   string `json:"review_notes"`
}

type RejectInput struct {
	ApplicationID   string `json:"application_id"`
	RejectionReason string `json:"rejection_reason"`
}

type ApplicationDTO struct {
	ApplicationID   string          `json:"application_id"`
	FranchiseID     string          `json:"franchise_id"`
	BusinessOwnerID string          `json:"business_owner_id"`
	PartnerID       string          `json:"partner_id"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"payment_status"`
	ApplicationFee  decimal.Decimal `json:"application_fee"`
	ReviewNotes     string          `json:"review_notes,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	SubmittedAt     *time.Time      `json:"submitted_at,omitempty"`
	ReviewedAt      *time.Time      `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type TimelineEntryDTO struct {
	Status            string    `json:"status"`
	Notes             string    `json:"notes,omitempty"`
	PerformedBy       string    `json:"performed_by"`
	IsSystemGenerated bool      `json:"is_system_generated"`
	CreatedAt         time.Time `json:"created_at"`
}

func toDTO(a *domain.FranchiseApplication) *ApplicationDTO {
	return &ApplicationDTO{
		ApplicationID:   a.ApplicationID,
		FranchiseID:     a.FranchiseID,
		BusinessOwnerID: a.BusinessOwnerID,
		PartnerID:       a.PartnerID,
		Status:          string(a.Status),
		PaymentStatus:   string(a.PaymentStatus),
		ApplicationFee:  a.ApplicationFee,
		ReviewNotes:     a.ReviewNotes,
		RejectionReason: a.RejectionReason,
		SubmittedAt:     a.SubmittedAt,
		ReviewedAt:      a.ReviewedAt,
		CreatedAt:       a.CreatedAt,
	}
}
