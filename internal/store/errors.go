package store

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound means a referenced record does not exist. Wrapped errors
	// name the entity and id.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means a constraint was violated, e.g. a duplicate account
	// code or a delete of a still-referenced record.
	ErrConflict = errors.New("constraint violation")
)

// isUniqueViolation matches sqlite's unique-constraint error text for the
// given "table.column" constraint.
func isUniqueViolation(err error, constraint string) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: "+constraint)
}
