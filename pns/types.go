// Package pns defines the Series and Result types plus the functional
// options accepted by Round.
package pns

import "math"

// Mode records how an inbuilt series' values were derived. The Renard
// tables exist in three grades: the basic three-significant-digit values,
// the once-rounded R′ variants and the twice-rounded R″ variants. The
// published tables already carry the rounded values, so Mode is
// provenance metadata — Round applies no additional rounding pass.
type Mode int

const (
	// ModeBasic marks series whose values are the exact (or three
	// significant digit) theoretical steps: E-series, 1-2-5, R5..R80,
	// and all custom series.
	ModeBasic Mode = iota

	// ModeRounded marks the once-rounded Renard variants R'5..R'40.
	ModeRounded

	// ModeTwiceRounded marks the twice-rounded Renard variants R"5..R"20.
	ModeTwiceRounded
)

// Series is an immutable Preferred Number Series: either a fixed
// decade-normalized value list intended to repeat every power of ten, or
// a monotonic increasing function solved over integer arguments.
// Construct via New, NewCustom or NewFunc.
type Series struct {
	values []float64               // decade-normalized, strictly increasing; nil in function mode
	fn     func(float64) float64   // non-nil in function mode only
	mode   Mode                    // provenance of inbuilt tables
	tol    float64                 // default selection tolerance
	token  string                  // inbuilt token, empty for custom/function series
}

// Values returns a copy of the decade-normalized series values.
// It returns nil for a function series.
func (s *Series) Values() []float64 {
	if s.values == nil {
		return nil
	}
	out := make([]float64, len(s.values))
	copy(out, s.values)

	return out
}

// Mode reports the provenance grade of the series values.
func (s *Series) Mode() Mode { return s.mode }

// Tolerance reports the default selection tolerance (0.1 = ±10%).
func (s *Series) Tolerance() float64 { return s.tol }

// IsFunc reports whether the series is defined by a function rather than
// a fixed value list.
func (s *Series) IsFunc() bool { return s.fn != nil }

// Token returns the inbuilt token the series was built from, or "" for
// custom and function series.
func (s *Series) Token() string { return s.token }

// Result carries the five outputs of Round for an input vector of length A
// binned against P spanning series values.
type Result struct {
	// Rounded holds each input rounded to its nearest series value
	// (len A). Zero inputs pass through as zero; elements that failed in
	// function mode hold NaN.
	Rounded []float64

	// Series is the minimal spanning series subset covering the non-zero
	// input range (len P). Empty when no input matched.
	Series []float64

	// Edges holds the strictly increasing bin boundaries (len P+1).
	// Bins are half-open lower-inclusive: [Edges[k], Edges[k+1]).
	Edges []float64

	// Counts holds the number of inputs matching each series value
	// (len P). The counts sum to the number of binned elements.
	Counts []int

	// Bins assigns each input its index into Series (len A).
	// Zero inputs and failed elements carry -1.
	Bins []int

	// Failed lists per-element failures in function-series mode.
	// Empty for fixed-list series.
	Failed []ElementError
}

// DefaultMaxSpan bounds the bracket expansion of the function-mode integer
// search: arguments farther than this from the seed are considered out of
// reach and yield ErrNoSolution.
const DefaultMaxSpan = 1 << 40

// roundConfig gathers the resolved Round options.
type roundConfig struct {
	tol     float64 // selection tolerance (fixed-list mode)
	seed    int     // search start (function mode)
	maxSpan int     // bracket bound (function mode)
}

// Option customizes a single Round call.
// Option constructors validate and panic on meaningless values;
// Round itself never panics.
type Option func(*roundConfig)

// WithTolerance overrides the series' default selection tolerance for one
// Round call. The tolerance is a fraction in [0,1): at 1 or above the
// biased edges degenerate and stop increasing. Panics outside that range.
func WithTolerance(t float64) Option {
	if t < 0 || t >= 1 || math.IsNaN(t) {
		panic("pns: WithTolerance requires a fraction in [0,1)")
	}
	return func(c *roundConfig) {
		c.tol = t
	}
}

// WithSeed sets the starting integer argument for the function-mode
// search (default 0). Ignored for fixed-list series.
func WithSeed(x int) Option {
	return func(c *roundConfig) {
		c.seed = x
	}
}

// WithMaxSpan bounds how far from the seed the function-mode search may
// expand before declaring ErrNoSolution. Panics if n < 1.
func WithMaxSpan(n int) Option {
	if n < 1 {
		panic("pns: WithMaxSpan requires n >= 1")
	}
	return func(c *roundConfig) {
		c.maxSpan = n
	}
}
