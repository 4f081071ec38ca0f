package utils

import (
	"github.com/AndreaRizzo/beautyHome-v1/models"
)

// DepositRate is the upfront share of the total under either
// deposit-then-balance mode.
const DepositRate = 0.20

// PaymentSplit is the deposit/balance breakdown of a booking total.
type PaymentSplit struct {
	Deposit float64 `json:"deposit"`
	Balance float64 `json:"balance"`
}

// SplitPayment derives the split for a total under the given mode. Full
// in-app payment charges everything upfront; both deposit modes take 20%
// now and leave the rest as balance.
func SplitPayment(total float64, mode models.PaymentMode) PaymentSplit {
	if mode == models.ModeFullApp {
		return PaymentSplit{Deposit: total, Balance: 0}
	}
	deposit := total * DepositRate
	return PaymentSplit{Deposit: deposit, Balance: total - deposit}
}
