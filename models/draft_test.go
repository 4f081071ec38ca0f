package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftSelectTreatmentUpdatesInPlace(t *testing.T) {
	manicure := Treatment{ID: "t-mani-classic", DurationMinutes: 45, Price: 28}
	massage := Treatment{ID: "t-massage-relax", DurationMinutes: 60, Price: 70}

	draft := NewBookingDraft()
	draft.SelectTreatment(manicure, 1)
	draft.SelectTreatment(massage, 1)
	draft.SelectTreatment(manicure, 3)

	items := draft.Items()
	require.Len(t, items, 2, "re-selecting a treatment must not add a line")

	// Insertion order survives the in-place update.
	assert.Equal(t, "t-mani-classic", items[0].TreatmentID)
	assert.Equal(t, "t-massage-relax", items[1].TreatmentID)

	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 28.0*3, items[0].Price)
	assert.Equal(t, 45*3, items[0].DurationMinutes)
}

func TestDraftRemoveTreatment(t *testing.T) {
	manicure := Treatment{ID: "t-mani-classic", DurationMinutes: 45, Price: 28}
	massage := Treatment{ID: "t-massage-relax", DurationMinutes: 60, Price: 70}

	draft := NewBookingDraft()
	draft.SelectTreatment(manicure, 1)
	draft.SelectTreatment(massage, 1)

	draft.RemoveTreatment("t-mani-classic")
	items := draft.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "t-massage-relax", items[0].TreatmentID)

	draft.RemoveTreatment("not-there")
	assert.Len(t, draft.Items(), 1)
}

func TestDraftReadyForCheckout(t *testing.T) {
	treatment := Treatment{ID: "t-gel-mani", DurationMinutes: 60, Price: 38}
	scheduled := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)
	address := Address{ID: "address-1", Street: "Via Trinchese", City: "Lecce"}

	draft := NewBookingDraft()
	assert.False(t, draft.ReadyForCheckout(), "empty draft")

	draft.SelectTreatment(treatment, 1)
	draft.ScheduledAt = &scheduled
	assert.False(t, draft.ReadyForCheckout(), "missing address must refuse checkout")

	draft.Address = &address
	assert.True(t, draft.ReadyForCheckout())
}

func TestDraftJSONRoundTripKeepsOrder(t *testing.T) {
	first := Treatment{ID: "t-pedi-classic", DurationMinutes: 50, Price: 34}
	second := Treatment{ID: "t-hair-cut", DurationMinutes: 60, Price: 52}

	draft := NewBookingDraft()
	draft.SelectTreatment(first, 2)
	draft.SelectTreatment(second, 1)
	draft.OperatorID = "op-1"

	data, err := json.Marshal(draft)
	require.NoError(t, err)

	restored := NewBookingDraft()
	require.NoError(t, json.Unmarshal(data, restored))

	items := restored.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "t-pedi-classic", items[0].TreatmentID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "t-hair-cut", items[1].TreatmentID)
	assert.Equal(t, "op-1", restored.OperatorID)
}
