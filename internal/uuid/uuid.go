// Package uuid supplies identifiers for new records and entry sessions.
package uuid

import (
	"strconv"

	googleuuid "github.com/google/uuid"
)

// Supplier hands out unique identifiers. Services take one so tests can make
// ids predictable.
type Supplier func() string

// New generates a time-ordered UUIDv7, falling back to a random UUIDv4 if the
// clock sequence cannot be produced.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// Sequence returns a Supplier yielding prefix-1, prefix-2, ...
func Sequence(prefix string) Supplier {
	n := 0
	return func() string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
