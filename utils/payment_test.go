package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AndreaRizzo/beautyHome-v1/models"
)

func TestSplitPayment(t *testing.T) {
	cases := []struct {
		name    string
		total   float64
		mode    models.PaymentMode
		deposit float64
		balance float64
	}{
		{"full in-app charges everything upfront", 100, models.ModeFullApp, 100, 0},
		{"deposit in-app takes 20 percent", 100, models.ModeDepositBalanceApp, 20, 80},
		{"deposit with cash balance takes 20 percent", 100, models.ModeDepositBalanceCash, 20, 80},
		{"zero total splits to zero", 0, models.ModeDepositBalanceApp, 0, 0},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			split := SplitPayment(tt.total, tt.mode)
			assert.InDelta(t, tt.deposit, split.Deposit, 1e-9)
			assert.InDelta(t, tt.balance, split.Balance, 1e-9)
			assert.InDelta(t, tt.total, split.Deposit+split.Balance, 1e-9)
		})
	}
}
