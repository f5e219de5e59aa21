/*
errors.go - Centralized error types for the engine

PURPOSE:
  All error types in one place. Note the asymmetry: the calculator itself
  has NO error path (every degenerate input produces a defined zero or
  default output), so everything here belongs to the surrounding store
  and validation surface.

SEE ALSO:
  - store.go: Store interfaces returning these errors
  - types.go: RateCard.Validate
*/
package engine

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrEntryNotFound is returned when no timesheet entry exists for a date.
	ErrEntryNotFound = errors.New("timesheet entry not found")

	// ErrCrewNotFound is returned when a referenced crew member doesn't exist.
	ErrCrewNotFound = errors.New("crew member not found")

	// ErrInvalidRange is returned when a date range is malformed (end before start).
	ErrInvalidRange = errors.New("invalid range: end before start")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// RateCardError reports a rate-card invariant violation.
type RateCardError struct {
	Field  string
	Reason string
}

func (e *RateCardError) Error() string {
	return fmt.Sprintf("rate card: %s %s", e.Field, e.Reason)
}

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEntryNotFound) ||
		errors.Is(err, ErrCrewNotFound)
}
