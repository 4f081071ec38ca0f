package models

import (
	"time"
)

// AvailabilityWindow is a contiguous interval on a calendar day during which
// an operator accepts bookings. Day is "2006-01-02"; Start and End are
// "HH:MM" in 24h format with Start < End. An operator may declare several
// windows on the same day and they need not be contiguous.
type AvailabilityWindow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OperatorID string    `json:"operator_id" gorm:"index:idx_windows_operator_day"`
	Day        string    `json:"day" gorm:"index:idx_windows_operator_day"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
