package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is customer feedback for an operator, optionally tied to the
// booking it came from. Operator ratings are aggregated from reviews by a
// nightly job.
type Review struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	OperatorID string    `json:"operator_id" gorm:"index"`
	UserID     string    `json:"user_id"`
	BookingID  *string   `json:"booking_id,omitempty"`
	Rating     float64   `json:"rating" gorm:"type:decimal(2,1);not null"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeforeCreate clamps the rating to the 1.0–5.0 scale.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1.0 {
		r.Rating = 1.0
	} else if r.Rating > 5.0 {
		r.Rating = 5.0
	}
	return nil
}
