package models

import (
	"testing"
	"time"
)

func TestValidTransition(t *testing.T) {
	cases := []struct {
		event BookingEvent
		from  BookingStatus
		valid bool
	}{
		{EventConfirm, StatusPendingPayment, true},
		{EventConfirm, StatusCompleted, false},
		{EventConfirm, StatusInProgress, false},
		{EventStart, StatusConfirmed, true},
		{EventStart, StatusPendingPayment, false},
		{EventComplete, StatusInProgress, true},
		{EventComplete, StatusConfirmed, false},
		{EventCancelByUser, StatusPendingPayment, true},
		{EventCancelByUser, StatusConfirmed, true},
		{EventCancelByUser, StatusInProgress, true},
		{EventCancelByUser, StatusCompleted, false},
		{EventCancelByUser, StatusCancelledByUser, false},
		{EventCancelByOperator, StatusConfirmed, true},
		{EventCancelByOperator, StatusNoShow, false},
		{EventNoShow, StatusConfirmed, true},
		{EventNoShow, StatusCompleted, false},
		{BookingEvent("unknown"), StatusPendingPayment, false},
	}

	for _, tt := range cases {
		if _, got := ValidTransition(tt.event, tt.from); got != tt.valid {
			t.Fatalf("ValidTransition(%q, %q)=%v, want %v", tt.event, tt.from, got, tt.valid)
		}
	}
}

func TestApplyTransitionStampsUpdatedAt(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	booking := Booking{Status: StatusPendingPayment}

	if err := booking.ApplyTransition(EventConfirm, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != StatusConfirmed {
		t.Fatalf("status = %q, want confirmed", booking.Status)
	}
	if !booking.UpdatedAt.Equal(now) {
		t.Fatalf("UpdatedAt = %v, want %v", booking.UpdatedAt, now)
	}
}

func TestApplyTransitionRejectsIllegalMove(t *testing.T) {
	booking := Booking{Status: StatusCompleted, UpdatedAt: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)}
	before := booking.UpdatedAt

	if err := booking.ApplyTransition(EventConfirm, time.Now()); err == nil {
		t.Fatal("expected error for completed -> confirmed")
	}
	if booking.Status != StatusCompleted {
		t.Fatalf("status changed to %q on rejected transition", booking.Status)
	}
	if !booking.UpdatedAt.Equal(before) {
		t.Fatal("UpdatedAt changed on rejected transition")
	}
}

func TestRecordPayment(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("paid payment confirms the booking", func(t *testing.T) {
		booking := Booking{Status: StatusPendingPayment}
		booking.RecordPayment(&Payment{Status: PaymentPaid}, now)

		if booking.Status != StatusConfirmed {
			t.Fatalf("status = %q, want confirmed", booking.Status)
		}
		if booking.Payment == nil {
			t.Fatal("payment not attached")
		}
	})

	t.Run("failed payment is stored without advancing", func(t *testing.T) {
		booking := Booking{Status: StatusPendingPayment}
		booking.RecordPayment(&Payment{Status: PaymentFailed}, now)

		if booking.Status != StatusPendingPayment {
			t.Fatalf("status = %q, want pending_payment", booking.Status)
		}
		if booking.Payment == nil {
			t.Fatal("payment not attached")
		}
		if !booking.UpdatedAt.Equal(now) {
			t.Fatal("UpdatedAt not stamped")
		}
	})
}

func TestCanModify(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	soon := Booking{ScheduledAt: now.Add(10 * time.Hour)}
	if soon.CanModify(now) {
		t.Fatal("booking 10 hours out must not be modifiable")
	}

	far := Booking{ScheduledAt: now.Add(48 * time.Hour)}
	if !far.CanModify(now) {
		t.Fatal("booking 48 hours out must be modifiable")
	}
}

func TestNewBookingItemDerivesTotals(t *testing.T) {
	treatment := Treatment{ID: "t-gel-mani", DurationMinutes: 60, Price: 38}

	item := NewBookingItem(treatment, 3)
	if item.Price != 38*3 {
		t.Fatalf("price = %v, want %v", item.Price, 38*3)
	}
	if item.DurationMinutes != 180 {
		t.Fatalf("duration = %v, want 180", item.DurationMinutes)
	}
}
