package utils

import (
	"fmt"

	"github.com/AndreaRizzo/beautyHome-v1/models"
)

// The bookable day runs from 07:00 to 22:00 inclusive at 30-minute steps,
// regardless of operator. Operator windows only narrow this grid down.
const (
	dayStartHour    = 7
	dayEndHour      = 22
	minutesPerDay   = 24 * 60
	slotStepMinutes = 30
)

// BuildDaySlots returns the canonical grid of bookable start times for any
// day: "07:00", "07:30", ... "22:00".
func BuildDaySlots() []string {
	var slots []string
	for hour := dayStartHour; hour <= dayEndHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
		if hour < dayEndHour {
			slots = append(slots, fmt.Sprintf("%02d:30", hour))
		}
	}
	return slots
}

// ClockToMinutes parses an "HH:MM" mark into minutes since midnight.
func ClockToMinutes(clock string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	return h*60 + m, nil
}

// AddMinutesToTime adds a duration to an "HH:MM" mark. The second return is
// false when the result would cross midnight; services never span days.
func AddMinutesToTime(clock string, minutes int) (string, bool) {
	start, err := ClockToMinutes(clock)
	if err != nil {
		return "", false
	}
	end := start + minutes
	if end >= minutesPerDay {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", end/60, end%60), true
}

// FilterSlotsByWindows keeps the slots where the whole service fits inside
// at least one of the operator's windows: slot >= window start and slot end
// <= window end. No windows means no slots, not the unfiltered grid.
func FilterSlotsByWindows(slots []string, windows []models.AvailabilityWindow, durationMinutes int) []string {
	valid := make([]string, 0, len(slots))
	for _, slot := range slots {
		start, err := ClockToMinutes(slot)
		if err != nil {
			continue
		}
		end := start + durationMinutes
		if end >= minutesPerDay {
			continue
		}
		for _, w := range windows {
			wStart, err := ClockToMinutes(w.Start)
			if err != nil {
				continue
			}
			wEnd, err := ClockToMinutes(w.End)
			if err != nil {
				continue
			}
			if start >= wStart && end <= wEnd {
				valid = append(valid, slot)
				break
			}
		}
	}
	return valid
}

// SlotGroups buckets a day's valid slots for display. Empty buckets are a
// normal result, not an error.
type SlotGroups struct {
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Evening   []string `json:"evening"`
}

// GroupSlots partitions slots by hour: before 12:00 is morning, 12:00–17:59
// is afternoon, 18:00 onwards is evening. Order within a bucket follows the
// input order.
func GroupSlots(slots []string) SlotGroups {
	groups := SlotGroups{
		Morning:   []string{},
		Afternoon: []string{},
		Evening:   []string{},
	}
	for _, slot := range slots {
		minutes, err := ClockToMinutes(slot)
		if err != nil {
			continue
		}
		switch hour := minutes / 60; {
		case hour < 12:
			groups.Morning = append(groups.Morning, slot)
		case hour < 18:
			groups.Afternoon = append(groups.Afternoon, slot)
		default:
			groups.Evening = append(groups.Evening, slot)
		}
	}
	return groups
}
