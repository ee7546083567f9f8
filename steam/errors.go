package steam

import "errors"

var (
	// ErrBadTable indicates the table source could not be parsed: missing
	// header, unknown layout, non-numeric cell, or a non-monotonic key
	// column (T and P must be strictly increasing).
	ErrBadTable = errors.New("steam: malformed saturation table")

	// ErrUnknownColumn indicates a requested column is not in the table.
	ErrUnknownColumn = errors.New("steam: unknown table column")

	// ErrOutOfRange indicates the lookup value falls outside the
	// tabulated span of the input column.
	ErrOutOfRange = errors.New("steam: value outside tabulated range")

	// ErrQualityRange indicates a vapor quality outside [0,1].
	ErrQualityRange = errors.New("steam: vapor quality must be within [0,1]")
)
