package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemNameExists indicates another item already holds the requested name.
	// The postgres repository re-classifies unique-constraint violations (23505)
	// to this error so a lost check-then-insert race still surfaces as a conflict.
	ErrItemNameExists = errors.New("item name already exists")

	// ErrMalformedItemID indicates an identifier that is not a 24-character hex string.
	// Distinct from ErrItemNotFound: a malformed id never reaches the store.
	ErrMalformedItemID = errors.New("invalid item ID format")

	// ErrEmptyUpdate indicates an update payload with zero fields after validation.
	ErrEmptyUpdate = errors.New("at least one field (name, description, or price) must be provided for update")

	// ErrStoreUnavailable indicates the persistence layer could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// FieldViolation is a single validation failure on one input field.
type FieldViolation struct {
	Field  string
	Reason string
}

// ValidationError carries every violated field, not just the first.
// Check with errors.As.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("%s: %s", v.Field, v.Reason)
	}
	return "Validation Error: " + strings.Join(parts, ", ")
}

// Add appends a violation and returns the receiver for chaining.
func (e *ValidationError) Add(field, reason string) *ValidationError {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Reason: reason})
	return e
}

// OrNil returns nil when no violations were recorded, so callers can write
// `return params, ve.OrNil()`.
func (e *ValidationError) OrNil() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}
