// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrNotFound indicates that a referenced user, recipe or
// reminder does not exist, while ErrConflict signals a duplicate
// unique value on insert (e.g. a second reminder row for a user).
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a referenced record does not exist.
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an insert or update collides with an
// existing unique value. Handlers should translate this into an
// HTTP 409 response.
var ErrConflict = errors.New("conflict")

// isDuplicate reports whether err is a MySQL duplicate-key error (1062).
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}

// isFKViolation reports whether err is a MySQL foreign-key error (1452),
// i.e. the row referenced a user or recipe that does not exist.
func isFKViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1452")
}
