package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreaRizzo/beautyHome-v1/models"
)

func TestBuildDaySlots(t *testing.T) {
	slots := BuildDaySlots()

	require.Len(t, slots, 31)
	assert.Equal(t, "07:00", slots[0])
	assert.Equal(t, "07:30", slots[1])
	assert.Equal(t, "21:30", slots[29])
	assert.Equal(t, "22:00", slots[30])

	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i], "grid must be strictly ascending")
	}
}

func TestAddMinutesToTime(t *testing.T) {
	cases := []struct {
		clock   string
		minutes int
		want    string
		ok      bool
	}{
		{"09:00", 60, "10:00", true},
		{"09:30", 45, "10:15", true},
		{"12:00", 0, "12:00", true},
		{"22:00", 119, "23:59", true},
		{"22:00", 120, "", false}, // would land exactly on midnight
		{"23:00", 90, "", false},  // crosses midnight
		{"bogus", 30, "", false},
	}

	for _, tt := range cases {
		got, ok := AddMinutesToTime(tt.clock, tt.minutes)
		assert.Equal(t, tt.ok, ok, "AddMinutesToTime(%q, %d)", tt.clock, tt.minutes)
		assert.Equal(t, tt.want, got, "AddMinutesToTime(%q, %d)", tt.clock, tt.minutes)
	}
}

func TestFilterSlotsByWindows(t *testing.T) {
	grid := BuildDaySlots()

	t.Run("no windows means no slots", func(t *testing.T) {
		valid := FilterSlotsByWindows(grid, nil, 60)
		assert.Empty(t, valid)
	})

	t.Run("service must end inside the window", func(t *testing.T) {
		windows := []models.AvailabilityWindow{
			{OperatorID: "op-1", Day: "2026-09-01", Start: "09:00", End: "13:00"},
		}
		valid := FilterSlotsByWindows(grid, windows, 60)

		assert.Contains(t, valid, "09:00")
		assert.Contains(t, valid, "12:00")
		assert.NotContains(t, valid, "12:30", "a 60-minute service from 12:30 ends past 13:00")
		assert.NotContains(t, valid, "08:30")
	})

	t.Run("non-contiguous windows both contribute", func(t *testing.T) {
		windows := []models.AvailabilityWindow{
			{Start: "08:00", End: "10:00"},
			{Start: "18:00", End: "20:00"},
		}
		valid := FilterSlotsByWindows(grid, windows, 30)
		assert.Equal(t, []string{"08:00", "08:30", "09:00", "09:30", "18:00", "18:30", "19:00", "19:30"}, valid)
	})

	t.Run("duration reaching midnight is rejected", func(t *testing.T) {
		windows := []models.AvailabilityWindow{
			{Start: "07:00", End: "23:59"},
		}
		valid := FilterSlotsByWindows(grid, windows, 130)
		assert.NotContains(t, valid, "22:00", "22:00 + 130 min crosses midnight")
		assert.Contains(t, valid, "21:30")
	})
}

func TestGroupSlots(t *testing.T) {
	groups := GroupSlots([]string{"07:00", "11:30", "12:00", "17:30", "18:00", "22:00"})

	assert.Equal(t, []string{"07:00", "11:30"}, groups.Morning)
	assert.Equal(t, []string{"12:00", "17:30"}, groups.Afternoon)
	assert.Equal(t, []string{"18:00", "22:00"}, groups.Evening)
}

func TestGroupSlotsEmptyBucketsAreValid(t *testing.T) {
	groups := GroupSlots(nil)

	assert.NotNil(t, groups.Morning)
	assert.NotNil(t, groups.Afternoon)
	assert.NotNil(t, groups.Evening)
	assert.Empty(t, groups.Morning)
	assert.Empty(t, groups.Afternoon)
	assert.Empty(t, groups.Evening)
}
