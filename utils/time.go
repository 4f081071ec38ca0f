package utils

import (
	"fmt"
	"time"
)

// ToRome converts a timestamp to Italian local time for display and emails.
func ToRome(t time.Time) time.Time {
	rome, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		return t // Fallback to UTC if the zone database is unavailable
	}
	return t.In(rome)
}

// FormatPrice renders an amount the way the app displays money.
func FormatPrice(value float64) string {
	return fmt.Sprintf("€%.2f", value)
}
