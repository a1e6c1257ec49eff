package partnership

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("deactivation not found")
	ErrInvalidReason = errors.New("unknown deactivation reason")
)

type DeactivationReason string

const (
	ReasonMutualAgreement   DeactivationReason = "mutual_agreement"
	ReasonContractViolation DeactivationReason = "contract_violation"
	ReasonBusinessClosure   DeactivationReason = "business_closure"
	ReasonNonPayment        DeactivationReason = "non_payment"
	ReasonOther             DeactivationReason = "other"
)

func ValidReason(r DeactivationReason) bool {
	switch r {
	case ReasonMutualAgreement, ReasonContractViolation, ReasonBusinessClosure, ReasonNonPayment, ReasonOther:
		return true
	}
	return false
}

// Deactivation is the audit record behind an approved -> deactivated move.
// Reactivation stamps ReactivatedAt; the record itself is never deleted.
type Deactivation struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	DeactivationID string `gorm:"column:deactivation_id;type:char(32);not null;uniqueIndex" json:"deactivation_id"`
	// FK to franchise_applications.id (numeric)
	ApplicationID uint64             `gorm:"column:application_id;not null;index" json:"-"`
	Reason        DeactivationReason `gorm:"column:reason;size:32;not null" json:"reason"`
	Notes         string             `gorm:"column:notes;type:text" json:"notes,omitempty"`
	DeactivatedBy string             `gorm:"column:deactivated_by;type:char(32);not null" json:"deactivated_by"`
	DeactivatedAt time.Time          `gorm:"column:deactivated_at;not null" json:"deactivated_at"`
	ReactivatedAt *time.Time         `gorm:"column:reactivated_at" json:"reactivated_at,omitempty"`
	CreatedAt     time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Deactivation) TableName() string { return "partnership_deactivations" }
