package pns

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Round rounds every element of values to its nearest member of the
// series s and bins the elements between the series values.
//
// Semantics:
//
//   - Zero inputs round to zero unconditionally and are never matched
//     against the series (zero is a legitimate sentinel for physical
//     quantities, distinct from "very small magnitude").
//   - Fixed-list series admit only finite, non-negative inputs; the
//     one-decade value list is replicated across the decade range of the
//     non-zero inputs, and elements are binned between tolerance-biased
//     edges: edge(v1,v2) = ((1+tol)·v1 + (1-tol)·v2)/2. Bins are
//     half-open lower-inclusive, so a value exactly on an edge joins the
//     bin above it (the histc convention).
//   - Function series admit any finite inputs; each non-zero element is
//     matched by a bounded integer bisection minimizing |f(x)-value|,
//     ties resolving to the lower argument. Elements out of the
//     function's reach are reported in Result.Failed (wrapping
//     ErrNoSolution) without aborting the rest.
//
// Complexity: O(A·log(D·N)) for fixed lists (A inputs, N series values,
// D spanned decades), O(A·log(span)) for function series.
func Round(values []float64, s *Series, opts ...Option) (*Result, error) {
	if s == nil {
		return nil, fmt.Errorf("Round: nil series: %w", ErrInvalidSeries)
	}

	cfg := roundConfig{tol: s.tol, seed: 0, maxSpan: DefaultMaxSpan}
	for _, opt := range opts {
		opt(&cfg)
	}

	if s.IsFunc() {
		return roundFunc(values, s.fn, cfg)
	}

	return roundFixed(values, s.values, cfg)
}

// roundFixed implements fixed-list (decade-repeating) rounding.
func roundFixed(in []float64, norm []float64, cfg roundConfig) (*Result, error) {
	res := newResult(len(in))

	// Validate inputs and locate the non-zero value range.
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, v := range in {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("Round: element %d is not finite: %w", i, ErrInvalidInput)
		}
		if v < 0 {
			return nil, fmt.Errorf("Round: element %d (%g) is negative: %w", i, v, ErrInvalidInput)
		}
		if v > 0 {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		// Nothing to match: all inputs are zero (or the vector is empty).
		return res, nil
	}

	// Replicate the one-decade list across the input magnitude range,
	// padding a full decade on each side so that the outer edges of the
	// spanning subset always have a neighbor to be computed against.
	first, last := norm[0], norm[len(norm)-1]
	emin := int(math.Floor(math.Log10(lo/last))) - 1
	emax := int(math.Ceil(math.Log10(hi/first))) + 1

	n := len(norm)
	cand := make([]float64, 0, (emax-emin+1)*n)
	for e := emin; e <= emax; e++ {
		for _, m := range norm {
			cand = append(cand, decadeScale(m, e))
		}
	}

	// Selection edges between every adjacent candidate pair.
	edges := make([]float64, len(cand)-1)
	for i := range edges {
		edges[i] = ((1+cfg.tol)*cand[i] + (1-cfg.tol)*cand[i+1]) / 2
	}

	// Bin each non-zero input: the smallest k with edges[k] > v names the
	// candidate bin, making bins lower-inclusive.
	assign := make([]int, len(in))
	jmin, jmax := len(cand), -1
	for i, v := range in {
		if v == 0 {
			continue
		}
		j := sort.Search(len(edges), func(k int) bool { return edges[k] > v })
		assign[i] = j
		if j < jmin {
			jmin = j
		}
		if j > jmax {
			jmax = j
		}
	}

	// Minimal spanning subset: the contiguous candidate run between the
	// anchors of the smallest and largest inputs, with its P+1 edges.
	p := jmax - jmin + 1
	res.Series = append(res.Series, cand[jmin:jmax+1]...)
	res.Edges = append(res.Edges, edges[jmin-1:jmax+1]...)
	res.Counts = make([]int, p)

	for i, v := range in {
		if v == 0 {
			continue
		}
		k := assign[i] - jmin
		res.Rounded[i] = cand[assign[i]]
		res.Bins[i] = k
		res.Counts[k]++
	}

	return res, nil
}

// roundFunc implements function-series rounding via integer bisection.
func roundFunc(in []float64, f func(float64) float64, cfg roundConfig) (*Result, error) {
	res := newResult(len(in))

	solved := make([]int, len(in))
	matched := make([]bool, len(in))
	xmin, xmax := math.MaxInt, math.MinInt
	for i, v := range in {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("Round: element %d is not finite: %w", i, ErrInvalidInput)
		}
		if v == 0 {
			continue
		}
		x, err := solveNearest(f, v, cfg.seed, cfg.maxSpan)
		if err != nil {
			if errors.Is(err, ErrInvalidSeries) {
				return nil, err
			}
			res.Rounded[i] = math.NaN()
			res.Failed = append(res.Failed, ElementError{Index: i, Value: v, Err: err})

			continue
		}
		solved[i] = x
		matched[i] = true
		if x < xmin {
			xmin = x
		}
		if x > xmax {
			xmax = x
		}
	}
	if xmax < xmin {
		// No element matched (all zero, empty, or all failed).
		return res, nil
	}

	// Series over every integer argument in [xmin, xmax]; edges at the
	// half-integer midpoints.
	p := xmax - xmin + 1
	res.Series = make([]float64, p)
	res.Counts = make([]int, p)
	res.Edges = make([]float64, p+1)
	for k := 0; k < p; k++ {
		res.Series[k] = f(float64(xmin + k))
		res.Edges[k] = f(float64(xmin+k) - 0.5)
	}
	res.Edges[p] = f(float64(xmax) + 0.5)

	for i := range in {
		if !matched[i] {
			continue
		}
		k := solved[i] - xmin
		res.Rounded[i] = res.Series[k]
		res.Bins[i] = k
		res.Counts[k]++
	}

	return res, nil
}

// solveNearest finds the integer x minimizing |f(x)-v| for a monotonic
// increasing f, by exponential bracket expansion from seed followed by
// bisection. Ties between the two bracketing arguments resolve to the
// lower one. Replaces the original continuous root-finder: monotonicity
// makes a bounded integer search sufficient.
func solveNearest(f func(float64) float64, v float64, seed, maxSpan int) (int, error) {
	lo, hi := seed, seed
	flo, err := evalAt(f, lo)
	if err != nil {
		return 0, err
	}
	fhi := flo

	// Expand downward until f(lo) <= v.
	step := 1
	for flo > v {
		hi, fhi = lo, flo
		if step > maxSpan {
			return 0, fmt.Errorf("no integer argument below %d reaches %g: %w", lo, v, ErrNoSolution)
		}
		lo -= step
		step *= 2
		if flo, err = evalAt(f, lo); err != nil {
			return 0, err
		}
		if flo > fhi {
			return 0, fmt.Errorf("f(%d) > f(%d), series function not monotonic increasing: %w", lo, hi, ErrInvalidSeries)
		}
	}

	// Expand upward until f(hi) >= v.
	step = 1
	for fhi < v {
		lo, flo = hi, fhi
		if step > maxSpan {
			return 0, fmt.Errorf("no integer argument above %d reaches %g: %w", hi, v, ErrNoSolution)
		}
		hi += step
		step *= 2
		if fhi, err = evalAt(f, hi); err != nil {
			return 0, err
		}
		if fhi < flo {
			return 0, fmt.Errorf("f(%d) < f(%d), series function not monotonic increasing: %w", hi, lo, ErrInvalidSeries)
		}
	}

	// Bisect the bracket f(lo) <= v <= f(hi) down to adjacent integers.
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		fm, err := evalAt(f, mid)
		if err != nil {
			return 0, err
		}
		if fm < flo || fm > fhi {
			return 0, fmt.Errorf("f(%d) outside [f(%d), f(%d)], series function not monotonic increasing: %w", mid, lo, hi, ErrInvalidSeries)
		}
		if fm <= v {
			lo, flo = mid, fm
		} else {
			hi, fhi = mid, fm
		}
	}
	if lo == hi || v-flo <= fhi-v {
		return lo, nil
	}

	return hi, nil
}

// evalAt evaluates the series function at an integer argument, rejecting
// NaN results as unsolvable.
func evalAt(f func(float64) float64, x int) (float64, error) {
	y := f(float64(x))
	if math.IsNaN(y) {
		return 0, fmt.Errorf("f(%d) is NaN: %w", x, ErrNoSolution)
	}

	return y, nil
}

// newResult allocates a Result for an input vector of length a, with all
// bins unassigned and the spanning outputs empty but non-nil.
func newResult(a int) *Result {
	res := &Result{
		Rounded: make([]float64, a),
		Series:  []float64{},
		Edges:   []float64{},
		Counts:  []int{},
		Bins:    make([]int, a),
	}
	for i := range res.Bins {
		res.Bins[i] = -1
	}

	return res
}

// decadeScale returns m·10^e, dividing for negative exponents so that
// decade-scaled table values stay exactly representable where possible
// (8.2/10 == 0.82, whereas 8.2*0.1 accumulates a rounding error).
func decadeScale(m float64, e int) float64 {
	if e >= 0 {
		return m * math.Pow10(e)
	}

	return m / math.Pow10(-e)
}
