// Package common defines shared sentinel errors used across the
// application layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound    = errors.New("not found")
	ErrDuplicateID = errors.New("duplicate identifier")

	// Session-level errors (form lifecycle flow control).
	ErrNoSession   = errors.New("no active session")
	ErrSessionOpen = errors.New("session already open")

	// Validation errors (blocked submit).
	ErrValidation = errors.New("validation error")

	// Deletion-gate errors.
	ErrNoPendingDelete = errors.New("no pending deletion")
)
