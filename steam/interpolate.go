package steam

import (
	"fmt"
	"sort"
)

// Interpolate evaluates one or more output columns at the given value of
// the input column, by linear interpolation between the two bracketing
// table rows. The input column must be one of the strictly increasing
// keys (T or P, or any other monotone column the table carries).
//
// Fails with ErrUnknownColumn for an absent column and ErrOutOfRange
// when value falls outside the tabulated span. Exact row matches return
// the tabulated values without interpolation.
//
// Complexity: O(log R + K) for R rows and K requested outputs.
func (t *Table) Interpolate(value float64, input Column, outputs ...Column) ([]float64, error) {
	x, ok := t.cols[input]
	if !ok {
		return nil, fmt.Errorf("Interpolate(%q): %w", input, ErrUnknownColumn)
	}

	// Locate the bracketing rows: first index with x[i] >= value.
	i := sort.SearchFloat64s(x, value)
	switch {
	case i == len(x):
		return nil, fmt.Errorf("Interpolate(%q, %g): above %g: %w", input, value, x[len(x)-1], ErrOutOfRange)
	case i == 0 && value < x[0]:
		return nil, fmt.Errorf("Interpolate(%q, %g): below %g: %w", input, value, x[0], ErrOutOfRange)
	}

	result := make([]float64, len(outputs))
	for k, out := range outputs {
		y, ok := t.cols[out]
		if !ok {
			return nil, fmt.Errorf("Interpolate(%q): %w", out, ErrUnknownColumn)
		}
		if x[i] == value {
			result[k] = y[i]

			continue
		}
		// y = y1 + (y2-y1)/(x2-x1)·(x-x1)
		x1, x2 := x[i-1], x[i]
		y1, y2 := y[i-1], y[i]
		result[k] = y1 + (y2-y1)/(x2-x1)*(value-x1)
	}

	return result, nil
}

// interp1 is the single-output shorthand used by the property helpers.
func (t *Table) interp1(value float64, input, output Column) (float64, error) {
	res, err := t.Interpolate(value, input, output)
	if err != nil {
		return 0, err
	}

	return res[0], nil
}
