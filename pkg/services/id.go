package services

import "github.com/google/uuid"

// newID mints a time-sortable UUIDv7 string. Creation-order queries rely on
// created_at with the ID as tiebreaker, so IDs sorting like timestamps keeps
// both orderings consistent.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
