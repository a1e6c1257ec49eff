package payment

import (
	"time"

	"github.com/shopspring/decimal"

	domain "franchisehub-backend/internal/domain/payment"
)

type CreateRequestInput struct {
	ApplicationID string          `json:"application_id"`
	Purpose       domain.Purpose  `json:"purpose"`
	Description   string          `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       *time.Time      `json:"due_date,omitempty"`
}

type SettleInput struct {
	RequestIDs    []string          `json:"request_ids"`
	PaymentMethod string            `json:"payment_method"`
	PayerDetails  map[string]string `json:"payer_details,omitempty"`
}

type RequestDTO struct {
	RequestID            string          `json:"request_id"`
	ApplicationID        string          `json:"application_id"`
	Purpose              string          `json:"purpose"`
	Description          string          `json:"description,omitempty"`
	Amount               decimal.Decimal `json:"amount"`
	Status               string          `json:"status"`
	RequestedBy          string          `json:"requested_by"`
	RequestedAt          time.Time       `json:"requested_at"`
	DueDate              *time.Time      `json:"due_date,omitempty"`
	PaidAt               *time.Time      `json:"paid_at,omitempty"`
	PaymentTransactionID *string         `json:"payment_transaction_id,omitempty"`
}

type TransactionDTO struct {
	TransactionID        string          `json:"transaction_id"`
	Amount               decimal.Decimal `json:"amount"`
	PlatformFee          decimal.Decimal `json:"platform_fee"`
	BusinessFee          decimal.Decimal `json:"business_fee"`
	PartnerFee           decimal.Decimal `json:"partner_fee"`
	NetAmountToBusiness  decimal.Decimal `json:"net_amount_to_business"`
	NetAmountToPartner   decimal.Decimal `json:"net_amount_to_partner"`
	Status               string          `json:"status"`
	PaymentMethod        string          `json:"payment_method"`
	GatewayTransactionID string          `json:"gateway_transaction_id,omitempty"`
	SettledRequestIDs    []string        `json:"settled_request_ids,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
}

func toRequestDTO(r *domain.Request, applicationID string) *RequestDTO {
	return &RequestDTO{
		RequestID:            r.RequestID,
		ApplicationID:        applicationID,
		Purpose:              string(r.Purpose),
		Description:          r.Description,
		Amount:               r.Amount,
		Status:               string(r.Status),
		RequestedBy:          r.RequestedBy,
		RequestedAt:          r.RequestedAt,
		DueDate:              r.DueDate,
		PaidAt:               r.PaidAt,
		PaymentTransactionID: r.PaymentTransactionID,
	}
}

func toTransactionDTO(t *domain.Transaction, settled []string) *TransactionDTO {
	return &TransactionDTO{
		TransactionID:        t.TransactionID,
		Amount:               t.Amount,
		PlatformFee:          t.PlatformFee,
		BusinessFee:          t.BusinessFee,
		PartnerFee:           t.PartnerFee,
		NetAmountToBusiness:  t.NetAmountToBusiness,
		NetAmountToPartner:   t.NetAmountToPartner,
		Status:               string(t.Status),
		PaymentMethod:        t.PaymentMethod,
		GatewayTransactionID: t.GatewayTransactionID,
		SettledRequestIDs:    settled,
		CreatedAt:            t.CreatedAt,
	}
}
