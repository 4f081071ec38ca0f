package models

import (
	"time"
)

type GiftCard struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	UserID         string    `json:"user_id" gorm:"index"`
	Amount         float64   `json:"amount"`
	RecipientEmail string    `json:"recipient_email"`
	Message        string    `json:"message,omitempty"`
	Code           string    `json:"code" gorm:"unique"`
	CreatedAt      time.Time `json:"created_at"`
}
