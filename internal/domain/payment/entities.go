package payment

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestPaid      RequestStatus = "paid"
	RequestOverdue   RequestStatus = "overdue"
	RequestCancelled RequestStatus = "cancelled"
)

type Purpose string

const (
	PurposeFranchiseFee Purpose = "franchise_fee"
	PurposeRoyalty      Purpose = "royalty"
	PurposeMarketing    Purpose = "marketing"
	PurposeEquipment    Purpose = "equipment"
	PurposeOther        Purpose = "other"
)

func ValidPurpose(p Purpose) bool {
	switch p {
	case PurposeFranchiseFee, PurposeRoyalty, PurposeMarketing, PurposeEquipment, PurposeOther:
		return true
	}
	return false
}

// Request is a business-owner-initiated demand for a sum from the partner of
// an approved application. paid is terminal and must reference a transaction.
type Request struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"-"`
	RequestID string `gorm:"size:32;uniqueIndex:ux_payment_requests_request_id_active" json:"request_id"`
	// FK to franchise_applications.id (numeric)
	ApplicationID        uint64          `gorm:"column:application_id;not null;index" json:"-"`
	Purpose              Purpose         `gorm:"size:32;not null" json:"purpose"`
	Description          string          `gorm:"type:text" json:"description,omitempty"`
	Amount               decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Status               RequestStatus   `gorm:"type:enum('pending','paid','overdue','cancelled');default:'pending'" json:"status"`
	RequestedBy          string          `gorm:"size:32;not null" json:"requested_by"`
	RequestedAt          time.Time       `gorm:"not null" json:"requested_at"`
	DueDate              *time.Time      `json:"due_date,omitempty"`
	PaidAt               *time.Time      `json:"paid_at,omitempty"`
	PaymentTransactionID *string         `gorm:"size:36" json:"payment_transaction_id,omitempty"`
	CreatedAt            time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt            gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Request) TableName() string { return "payment_requests" }

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionRefunded  TransactionStatus = "refunded"
)

// Transaction is created exactly once per settlement call. Fee fields are
// derived from the aggregate amount; only Status progresses after creation.
type Transaction struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	TransactionID string `gorm:"size:36;uniqueIndex" json:"transaction_id"`
	// FK to franchise_applications.id (numeric)
	ApplicationID        uint64            `gorm:"column:application_id;not null;index" json:"-"`
	Amount               decimal.Decimal   `gorm:"type:decimal(18,2)" json:"amount"`
	PlatformFee          decimal.Decimal   `gorm:"type:decimal(18,2)" json:"platform_fee"`
	BusinessFee          decimal.Decimal   `gorm:"type:decimal(18,2)" json:"business_fee"`
	PartnerFee           decimal.Decimal   `gorm:"type:decimal(18,2)" json:"partner_fee"`
	NetAmountToBusiness  decimal.Decimal   `gorm:"type:decimal(18,2)" json:"net_amount_to_business"`
	NetAmountToPartner   decimal.Decimal   `gorm:"type:decimal(18,2)" json:"net_amount_to_partner"`
	Status               TransactionStatus `gorm:"type:enum('pending','completed','failed','refunded');default:'pending'" json:"status"`
	PaymentMethod        string            `gorm:"size:32" json:"payment_method"`
	GatewayTransactionID string            `gorm:"size:64" json:"gateway_transaction_id,omitempty"`
	PaidBy               string            `gorm:"size:32" json:"paid_by"`
	FailureReason        string            `gorm:"type:text" json:"failure_reason,omitempty"`
	CreatedAt            time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Transaction) TableName() string { return "payment_transactions" }

// RequestFilter narrows request listings; nil fields are ignored.
type RequestFilter struct {
	ApplicationID *uint64
	Status        *RequestStatus
}
