package steam

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"sync"
)

// Column names a saturation-table column. Units follow the reference
// table: °C, kPa, m³/kg (liquid f / vapor g), kJ/kg, kJ/(kg·K).
type Column string

const (
	ColT  Column = "T"  // saturation temperature, °C
	ColP  Column = "P"  // saturation pressure, kPa
	ColVf Column = "Vf" // saturated liquid specific volume, m³/kg
	ColVg Column = "Vg" // saturated vapor specific volume, m³/kg
	ColUf Column = "Uf" // saturated liquid internal energy, kJ/kg
	ColUg Column = "Ug" // saturated vapor internal energy, kJ/kg
	ColHf Column = "Hf" // saturated liquid enthalpy, kJ/kg
	ColHg Column = "Hg" // saturated vapor enthalpy, kJ/kg
	ColSf Column = "Sf" // saturated liquid entropy, kJ/(kg·K)
	ColSg Column = "Sg" // saturated vapor entropy, kJ/(kg·K)
)

// Table is an immutable column-oriented saturation table. Both key
// columns (T, P) are strictly increasing, so either can serve as the
// interpolation input.
type Table struct {
	cols map[Column][]float64
	rows int
}

// Load parses a saturation table from CSV: a header row naming the
// columns, then one numeric row per saturation state. The T and P
// columns are required and must be strictly increasing; extra columns
// are kept and addressable by their header name.
func Load(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTable, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: need a header and at least one row", ErrBadTable)
	}

	header := records[0]
	cols := make(map[Column][]float64, len(header))
	order := make([]Column, len(header))
	for i, name := range header {
		c := Column(name)
		if _, dup := cols[c]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrBadTable, name)
		}
		cols[c] = make([]float64, 0, len(records)-1)
		order[i] = c
	}

	for rn, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadTable, rn+1, len(rec), len(header))
		}
		for i, cell := range rec {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %q: %v", ErrBadTable, rn+1, header[i], err)
			}
			cols[order[i]] = append(cols[order[i]], v)
		}
	}

	t := &Table{cols: cols, rows: len(records) - 1}
	for _, key := range []Column{ColT, ColP} {
		col, ok := cols[key]
		if !ok {
			return nil, fmt.Errorf("%w: missing key column %q", ErrBadTable, key)
		}
		for i := 1; i < len(col); i++ {
			if col[i] <= col[i-1] {
				return nil, fmt.Errorf("%w: key column %q not strictly increasing at row %d", ErrBadTable, key, i+1)
			}
		}
	}

	return t, nil
}

// Rows reports the number of saturation states in the table.
func (t *Table) Rows() int { return t.rows }

// Column returns a copy of the named column, or ErrUnknownColumn.
func (t *Table) Column(c Column) ([]float64, error) {
	col, ok := t.cols[c]
	if !ok {
		return nil, fmt.Errorf("%q: %w", c, ErrUnknownColumn)
	}
	out := make([]float64, len(col))
	copy(out, col)

	return out, nil
}

// Saturated water table B.1.1, Borgnakke & Sonntag, Fundamentals of
// Thermodynamics 8e (0.01..374.14 °C).
//
//go:embed saturated_water.csv
var defaultCSV []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the embedded saturation table, loaded once.
// It panics if the embedded asset is corrupt, which is a build defect,
// not a runtime condition.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Load(bytes.NewReader(defaultCSV))
		if err != nil {
			panic(fmt.Sprintf("steam: embedded table: %v", err))
		}
		defaultTable = t
	})

	return defaultTable
}
