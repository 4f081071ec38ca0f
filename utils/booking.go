package utils

import (
	"github.com/AndreaRizzo/beautyHome-v1/models"
)

// BookingTotals is the reduced view of a list of booking items.
type BookingTotals struct {
	TotalPrice           float64 `json:"total_price"`
	TotalDurationMinutes int     `json:"total_duration_minutes"`
}

// BuildBookingTotals sums item prices and durations. It is recomputed on
// every read so totals can never drift from the items.
func BuildBookingTotals(items []models.BookingItem) BookingTotals {
	var totals BookingTotals
	for _, item := range items {
		totals.TotalPrice += item.Price
		totals.TotalDurationMinutes += item.DurationMinutes
	}
	return totals
}

// RequiredTreatmentIDs returns the distinct treatment ids of the items,
// preserving first-seen order.
func RequiredTreatmentIDs(items []models.BookingItem) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.TreatmentID]; ok {
			continue
		}
		seen[item.TreatmentID] = struct{}{}
		ids = append(ids, item.TreatmentID)
	}
	return ids
}
