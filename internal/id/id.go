package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Generator returns a fresh, unique entry identifier.
type Generator func() string

// NewEntryID returns a random (v4) UUID string.
func NewEntryID() string {
	return uuid.NewString()
}

// Short returns the first block of a UUID for display ("3f2a9c1e").
// IDs that are not UUIDs are returned unchanged.
func Short(entryID string) string {
	if _, err := uuid.Parse(entryID); err != nil {
		return entryID
	}
	head, _, _ := strings.Cut(entryID, "-")
	return head
}

// Sequence returns a deterministic Generator yielding prefix-0001, prefix-0002, ...
func Sequence(prefix string) Generator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%04d", prefix, n)
	}
}
