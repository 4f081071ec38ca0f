package models

import (
	"time"
)

type PaymentMode string

const (
	ModeDepositBalanceApp  PaymentMode = "deposit_balance_app"
	ModeDepositBalanceCash PaymentMode = "deposit_balance_cash"
	ModeFullApp            PaymentMode = "full_app"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Payment is the split record attached to a booking. Amounts are frozen once
// computed; only the status may change afterwards.
type Payment struct {
	ID            string        `json:"id" gorm:"primaryKey"`
	BookingID     string        `json:"booking_id" gorm:"uniqueIndex"`
	Mode          PaymentMode   `json:"mode"`
	DepositAmount float64       `json:"deposit_amount"`
	BalanceAmount float64       `json:"balance_amount"`
	Status        PaymentStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
