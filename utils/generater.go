package utils

import (
	"crypto/rand"
	"fmt"
)

// GenerateID returns a prefixed random identifier, e.g. "booking-3fa9c2e1".
func GenerateID(prefix string) string {
	b := make([]byte, 4)
	rand.Read(b)
	return fmt.Sprintf("%s-%x", prefix, b)
}

// GenerateCode returns a short uppercase redemption code for gift cards.
func GenerateCode() string {
	b := make([]byte, 5)
	rand.Read(b)
	return fmt.Sprintf("%X", b)
}
