package models

import (
	"encoding/json"
	"time"
)

// BookingDraft is the in-progress booking a user assembles before checkout.
// Items are keyed by treatment id so selecting an already-present treatment
// updates it in place; the insertion order is kept for display. Drafts live
// in Redis, one per user, and are never written to Postgres.
type BookingDraft struct {
	items map[string]BookingItem
	order []string

	OperatorID  string      `json:"operator_id,omitempty"`
	AutoAssign  bool        `json:"auto_assign,omitempty"`
	ScheduledAt *time.Time  `json:"scheduled_at,omitempty"`
	Address     *Address    `json:"address,omitempty"`
	PaymentMode PaymentMode `json:"payment_mode,omitempty"`
}

func NewBookingDraft() *BookingDraft {
	return &BookingDraft{
		items: make(map[string]BookingItem),
	}
}

// SelectTreatment adds the treatment with the given quantity, or updates the
// existing line in place. Price and duration are recomputed from the
// treatment's unit values on every call.
func (d *BookingDraft) SelectTreatment(t Treatment, quantity int) {
	if d.items == nil {
		d.items = make(map[string]BookingItem)
	}
	if _, ok := d.items[t.ID]; !ok {
		d.order = append(d.order, t.ID)
	}
	d.items[t.ID] = NewBookingItem(t, quantity)
}

// RemoveTreatment drops the line for the treatment, if present.
func (d *BookingDraft) RemoveTreatment(treatmentID string) {
	if _, ok := d.items[treatmentID]; !ok {
		return
	}
	delete(d.items, treatmentID)
	for i, id := range d.order {
		if id == treatmentID {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Items returns the lines in insertion order.
func (d *BookingDraft) Items() []BookingItem {
	items := make([]BookingItem, 0, len(d.order))
	for _, id := range d.order {
		items = append(items, d.items[id])
	}
	return items
}

// SetItems replaces the draft's lines, used when reopening a booking for
// modification.
func (d *BookingDraft) SetItems(items []BookingItem) {
	d.items = make(map[string]BookingItem, len(items))
	d.order = d.order[:0]
	for _, item := range items {
		if _, ok := d.items[item.TreatmentID]; !ok {
			d.order = append(d.order, item.TreatmentID)
		}
		d.items[item.TreatmentID] = item
	}
}

// ReadyForCheckout reports whether the draft can become a booking: at least
// one item, a schedule, and an address.
func (d *BookingDraft) ReadyForCheckout() bool {
	return len(d.items) > 0 && d.ScheduledAt != nil && d.Address != nil
}

type draftJSON struct {
	Items       []BookingItem `json:"items"`
	OperatorID  string        `json:"operator_id,omitempty"`
	AutoAssign  bool          `json:"auto_assign,omitempty"`
	ScheduledAt *time.Time    `json:"scheduled_at,omitempty"`
	Address     *Address      `json:"address,omitempty"`
	PaymentMode PaymentMode   `json:"payment_mode,omitempty"`
}

// MarshalJSON serializes the ordered item view.
func (d *BookingDraft) MarshalJSON() ([]byte, error) {
	return json.Marshal(draftJSON{
		Items:       d.Items(),
		OperatorID:  d.OperatorID,
		AutoAssign:  d.AutoAssign,
		ScheduledAt: d.ScheduledAt,
		Address:     d.Address,
		PaymentMode: d.PaymentMode,
	})
}

// UnmarshalJSON rebuilds the id-keyed map from the serialized item list.
func (d *BookingDraft) UnmarshalJSON(data []byte) error {
	var raw draftJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.OperatorID = raw.OperatorID
	d.AutoAssign = raw.AutoAssign
	d.ScheduledAt = raw.ScheduledAt
	d.Address = raw.Address
	d.PaymentMode = raw.PaymentMode
	d.SetItems(raw.Items)
	return nil
}
