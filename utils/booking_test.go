package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AndreaRizzo/beautyHome-v1/models"
)

func TestBuildBookingTotals(t *testing.T) {
	manicure := models.Treatment{ID: "t-mani-classic", DurationMinutes: 45, Price: 28}
	massage := models.Treatment{ID: "t-massage-relax", DurationMinutes: 60, Price: 70}

	items := []models.BookingItem{
		models.NewBookingItem(manicure, 2),
		models.NewBookingItem(massage, 1),
	}

	totals := BuildBookingTotals(items)
	assert.Equal(t, 28.0*2+70.0, totals.TotalPrice)
	assert.Equal(t, 45*2+60, totals.TotalDurationMinutes)
}

func TestBuildBookingTotalsEmpty(t *testing.T) {
	totals := BuildBookingTotals(nil)
	assert.Zero(t, totals.TotalPrice)
	assert.Zero(t, totals.TotalDurationMinutes)
}

func TestRequiredTreatmentIDs(t *testing.T) {
	items := []models.BookingItem{
		{TreatmentID: "t-gel-mani"},
		{TreatmentID: "t-massage-relax"},
		{TreatmentID: "t-gel-mani"},
	}

	ids := RequiredTreatmentIDs(items)
	assert.Equal(t, []string{"t-gel-mani", "t-massage-relax"}, ids)
}
