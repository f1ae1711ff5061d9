// Package id generates identifiers for catalog records.
// Identifiers are UUIDv7, so they sort by creation time.
package id

import (
	"github.com/google/uuid"
)

// ID is the identifier type shared by every record.
type ID = uuid.UUID

// New returns a fresh UUIDv7.
func New() ID {
	v, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return v
}

// Parse converts a string to ID.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse panics on malformed input. Tests and constants only.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// IsNil checks if ID is zero-value.
func IsNil(v ID) bool {
	return v == uuid.Nil
}
