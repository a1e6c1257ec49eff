// Package feecalc computes the marketplace fee split: 5% of every settled
// amount, charged 2.5%/2.5% to the business and partner sides.
package feecalc

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("amount must be positive")

var sideRate = decimal.RequireFromString("0.025")

type Split struct {
	Amount        decimal.Decimal `json:"amount"`
	PlatformFee   decimal.Decimal `json:"platform_fee"`
	BusinessFee   decimal.Decimal `json:"business_fee"`
	PartnerFee    decimal.Decimal `json:"partner_fee"`
	NetToBusiness decimal.Decimal `json:"net_to_business"`
	NetToPartner  decimal.Decimal `json:"net_to_partner"`
}

// ComputeSplit derives the fee breakdown for amount. Invariants:
// PlatformFee = BusinessFee + PartnerFee, and
// NetToBusiness + NetToPartner + PlatformFee == Amount exactly after rounding
// (any rounding remainder is absorbed into PlatformFee).
func ComputeSplit(amount decimal.Decimal) (Split, error) {
	if !amount.IsPositive() {
		return Split{}, ErrInvalidAmount
	}
	amount = amount.Round(2)

	sideFee := amount.Mul(sideRate).Round(2)

	// Split the amount into two exact halves; the odd cent goes to the
	// business side so the halves always sum back to amount.
	halfBusiness := amount.Div(decimal.NewFromInt(2)).RoundUp(2)
	halfPartner := amount.Sub(halfBusiness)

	netBusiness := halfBusiness.Sub(sideFee)
	netPartner := halfPartner.Sub(sideFee)
	platform := amount.Sub(netBusiness).Sub(netPartner)

	return Split{
		Amount:        amount,
		PlatformFee:   platform,
		BusinessFee:   sideFee,
		PartnerFee:    sideFee,
		NetToBusiness: netBusiness,
		NetToPartner:  netPartner,
	}, nil
}
