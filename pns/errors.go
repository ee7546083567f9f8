package pns

import (
	"errors"
	"fmt"
)

// Sentinel errors for series construction and rounding.
// Callers branch with errors.Is; context is attached by wrapping with %w.
var (
	// ErrUnrecognizedSeries indicates the token string matches no inbuilt series.
	ErrUnrecognizedSeries = errors.New("pns: unrecognized preferred number series token")

	// ErrInvalidSeries indicates a custom series violates its constraints:
	// values must be finite, strictly positive, strictly increasing and
	// confined to one decade (max/min < 10); a function series must be
	// monotonic increasing.
	ErrInvalidSeries = errors.New("pns: invalid preferred number series")

	// ErrNoSolution indicates no integer argument brings the series function
	// near the given input value (e.g. the function range excludes the
	// input's sign). Reported per element, not fatal to the whole call.
	ErrNoSolution = errors.New("pns: no solution found for given preferred number series")

	// ErrInvalidInput indicates an input value is not a finite real number,
	// or is negative where the series admits only positive values.
	ErrInvalidInput = errors.New("pns: invalid input value")
)

// ElementError reports a per-element rounding failure in function-series
// mode. It wraps ErrNoSolution so errors.Is(e, ErrNoSolution) holds.
type ElementError struct {
	Index int     // position of the failed element in the input vector
	Value float64 // the offending input value
	Err   error   // underlying sentinel, normally ErrNoSolution
}

// Error implements the error interface.
func (e *ElementError) Error() string {
	return fmt.Sprintf("element %d (value %g): %v", e.Index, e.Value, e.Err)
}

// Unwrap exposes the underlying sentinel for errors.Is / errors.As.
func (e *ElementError) Unwrap() error { return e.Err }
