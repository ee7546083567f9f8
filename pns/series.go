package pns

import (
	"fmt"
	"math"
)

// oneDecade is the exclusive upper bound on the max/min ratio of a
// decade-repeating series: consecutive decade replicas stay strictly
// increasing iff the ratio is below ten.
const oneDecade = 10.0

// New returns the inbuilt Preferred Number Series selected by token.
//
// Recognized tokens:
//
//	E6 E12 E24 E48 E96 E192         — electronic IEC 60063 series
//	R5 R10 R20 R40 R80              — Renard, three significant digits
//	R'5 R'10 R'20 R'40              — Renard, once rounded
//	R"5 R"10 R"20                   — Renard, twice rounded
//	125                             — 1-2-5, three steps per decade
//
// The Unicode spellings R′5 / R″5 are accepted as aliases. Any other
// token fails with ErrUnrecognizedSeries.
func New(token string) (*Series, error) {
	spec, ok := inbuilt[canonicalToken(token)]
	if !ok {
		return nil, fmt.Errorf("New(%q): %w", token, ErrUnrecognizedSeries)
	}

	// Normalize the stored literals to one decade (Renard tables are
	// published ×100).
	values := make([]float64, len(spec.values))
	for i, v := range spec.values {
		values[i] = v / spec.scale
	}

	return &Series{
		values: values,
		mode:   spec.mode,
		tol:    spec.tol,
		token:  canonicalToken(token),
	}, nil
}

// NewCustom builds a decade-repeating series from an explicit value list.
//
// The values must be finite, strictly positive, strictly increasing and
// confined to one order of magnitude (max/min < 10); otherwise
// ErrInvalidSeries is returned. The default tolerance is zero.
func NewCustom(values []float64) (*Series, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("NewCustom: empty value list: %w", ErrInvalidSeries)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("NewCustom: value %d is not finite: %w", i, ErrInvalidSeries)
		}
		if v <= 0 {
			return nil, fmt.Errorf("NewCustom: value %d (%g) is not strictly positive: %w", i, v, ErrInvalidSeries)
		}
		if i > 0 && v <= values[i-1] {
			return nil, fmt.Errorf("NewCustom: values not strictly increasing at %d: %w", i, ErrInvalidSeries)
		}
	}
	if values[len(values)-1]/values[0] >= oneDecade {
		return nil, fmt.Errorf("NewCustom: values span a full decade or more: %w", ErrInvalidSeries)
	}

	out := make([]float64, len(values))
	copy(out, values)

	return &Series{values: out, mode: ModeBasic, tol: 0}, nil
}

// NewFunc builds a series from a monotonic increasing function solved
// over integer arguments. The function is also evaluated at half-integer
// midpoints to produce bin edges, so it must accept non-integer inputs.
//
// Monotonicity is the caller's responsibility; Round checks it lazily
// through solved comparisons and fails with ErrInvalidSeries when a
// violation surfaces. Panics on a nil function.
func NewFunc(f func(float64) float64) *Series {
	if f == nil {
		// Fail fast: constructors validate and panic on programmer error.
		panic("pns: NewFunc(nil)")
	}

	return &Series{fn: f, mode: ModeBasic, tol: 0}
}
