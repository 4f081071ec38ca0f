package models

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	StatusPendingPayment      BookingStatus = "pending_payment"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusInProgress          BookingStatus = "in_progress"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByUser     BookingStatus = "cancelled_by_user"
	StatusCancelledByOperator BookingStatus = "cancelled_by_operator"
	StatusNoShow              BookingStatus = "no_show"
)

// BookingEvent is a lifecycle transition request.
type BookingEvent string

const (
	EventConfirm          BookingEvent = "confirm"
	EventStart            BookingEvent = "start"
	EventComplete         BookingEvent = "complete"
	EventCancelByUser     BookingEvent = "cancel_by_user"
	EventCancelByOperator BookingEvent = "cancel_by_operator"
	EventNoShow           BookingEvent = "no_show"
)

// ModificationCutoff is how far in the future a booking must be scheduled
// for the customer to still redirect it back into the draft flow.
const ModificationCutoff = 24 * time.Hour

// BookingItem is a priced line of a booking or draft. Price and duration are
// always unit value times quantity, never edited independently.
type BookingItem struct {
	ID              uint    `json:"-" gorm:"primaryKey"`
	BookingID       string  `json:"-" gorm:"index"`
	TreatmentID     string  `json:"treatment_id"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

// NewBookingItem derives the computed price and duration from the treatment.
func NewBookingItem(t Treatment, quantity int) BookingItem {
	return BookingItem{
		TreatmentID:     t.ID,
		Quantity:        quantity,
		Price:           t.Price * float64(quantity),
		DurationMinutes: t.DurationMinutes * quantity,
	}
}

type Booking struct {
	ID                   string        `json:"id" gorm:"primaryKey"`
	UserID               string        `json:"user_id" gorm:"index"`
	User                 User          `json:"-" gorm:"foreignKey:UserID"`
	OperatorID           *string       `json:"operator_id,omitempty" gorm:"index"`
	Items                []BookingItem `json:"items" gorm:"foreignKey:BookingID"`
	TotalPrice           float64       `json:"total_price"`
	TotalDurationMinutes int           `json:"total_duration_minutes"`
	ScheduledAt          time.Time     `json:"scheduled_at"`
	Address              Address       `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	Status               BookingStatus `json:"status"`
	Payment              *Payment      `json:"payment,omitempty" gorm:"foreignKey:BookingID"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

// transitions maps each event to the statuses it may fire from and the
// status it lands on. Anything not listed here is rejected.
var transitions = map[BookingEvent]struct {
	From []BookingStatus
	To   BookingStatus
}{
	EventConfirm:  {From: []BookingStatus{StatusPendingPayment}, To: StatusConfirmed},
	EventStart:    {From: []BookingStatus{StatusConfirmed}, To: StatusInProgress},
	EventComplete: {From: []BookingStatus{StatusInProgress}, To: StatusCompleted},
	EventCancelByUser: {
		From: []BookingStatus{StatusPendingPayment, StatusConfirmed, StatusInProgress},
		To:   StatusCancelledByUser,
	},
	EventCancelByOperator: {
		From: []BookingStatus{StatusPendingPayment, StatusConfirmed, StatusInProgress},
		To:   StatusCancelledByOperator,
	},
	EventNoShow: {
		From: []BookingStatus{StatusPendingPayment, StatusConfirmed, StatusInProgress},
		To:   StatusNoShow,
	},
}

// ValidTransition reports whether event may fire from the given status, and
// the status it would move to.
func ValidTransition(event BookingEvent, from BookingStatus) (BookingStatus, bool) {
	rule, ok := transitions[event]
	if !ok {
		return "", false
	}
	for _, status := range rule.From {
		if status == from {
			return rule.To, true
		}
	}
	return "", false
}

// ApplyTransition moves the booking through the lifecycle table and stamps
// UpdatedAt. The booking is untouched when the transition is illegal.
func (b *Booking) ApplyTransition(event BookingEvent, now time.Time) error {
	next, ok := ValidTransition(event, b.Status)
	if !ok {
		return fmt.Errorf("invalid transition %s from %s", event, b.Status)
	}
	b.Status = next
	b.UpdatedAt = now
	return nil
}

// RecordPayment attaches the payment to the booking. A paid payment advances
// pending_payment to confirmed; any other payment status is stored without
// moving the booking.
func (b *Booking) RecordPayment(payment *Payment, now time.Time) {
	b.Payment = payment
	if payment.Status == PaymentPaid {
		if next, ok := ValidTransition(EventConfirm, b.Status); ok {
			b.Status = next
		}
	}
	b.UpdatedAt = now
}

// CanModify reports whether the booking may still be redirected into the
// draft flow: only when it is scheduled more than 24 hours from now. This is
// a read-only check, not a transition.
func (b *Booking) CanModify(now time.Time) bool {
	return b.ScheduledAt.Sub(now) > ModificationCutoff
}
