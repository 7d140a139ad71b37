// Package pivot provides the in-memory pivot table every report is
// reshaped into: ordered row and column labels over nullable decimal
// cells.
package pivot

import (
	"sort"

	"github.com/shopspring/decimal"
)

type cellKey struct {
	row string
	col string
}

// Table is a grid of decimal cells addressed by row and column label.
// Missing cells are holes, distinct from zero, like NaN cells in a
// dataframe.
type Table struct {
	rows  []string
	cols  []string
	rowIx map[string]bool
	cells map[cellKey]decimal.Decimal
}

// New creates a table with the given ordered column labels and no rows.
func New(cols []string) *Table {
	t := &Table{
		cols:  append([]string(nil), cols...),
		rowIx: make(map[string]bool),
		cells: make(map[cellKey]decimal.Decimal),
	}
	return t
}

// AddRow ensures a row exists, even if every cell stays a hole.
func (t *Table) AddRow(row string) {
	if !t.rowIx[row] {
		t.rowIx[row] = true
		t.rows = append(t.rows, row)
	}
}

// Set stores a cell value, creating the row if needed. Setting an
// unknown column is a programming error and panics.
func (t *Table) Set(row, col string, v decimal.Decimal) {
	if !t.hasCol(col) {
		panic("pivot: unknown column " + col)
	}
	t.AddRow(row)
	t.cells[cellKey{row, col}] = v
}

// Get returns a cell value; ok is false for holes.
func (t *Table) Get(row, col string) (decimal.Decimal, bool) {
	v, ok := t.cells[cellKey{row, col}]
	return v, ok
}

// Rows returns the row labels in their current order.
func (t *Table) Rows() []string {
	return append([]string(nil), t.rows...)
}

// Cols returns the column labels in order.
func (t *Table) Cols() []string {
	return append([]string(nil), t.cols...)
}

// IsEmpty reports whether no cell has ever been set.
func (t *Table) IsEmpty() bool {
	return len(t.cells) == 0
}

// ForwardFill replaces each hole with the nearest filled cell to its
// left in the same row. Leading holes stay holes.
func (t *Table) ForwardFill() {
	for _, row := range t.rows {
		var last decimal.Decimal
		have := false
		for _, col := range t.cols {
			if v, ok := t.cells[cellKey{row, col}]; ok {
				last, have = v, true
			} else if have {
				t.cells[cellKey{row, col}] = last
			}
		}
	}
}

// DropColsBefore removes columns whose label sorts before min.
// Labels are ISO dates, so lexicographic order is date order.
func (t *Table) DropColsBefore(min string) {
	if min == "" {
		return
	}
	kept := t.cols[:0]
	for _, col := range t.cols {
		if col >= min {
			kept = append(kept, col)
			continue
		}
		for _, row := range t.rows {
			delete(t.cells, cellKey{row, col})
		}
	}
	t.cols = kept
}

// AppendTotalRow appends a row holding the per-column sum of all
// filled cells. Columns with no filled cell stay holes.
func (t *Table) AppendTotalRow(label string) {
	sums := make(map[string]decimal.Decimal, len(t.cols))
	counts := make(map[string]int, len(t.cols))
	for _, row := range t.rows {
		for _, col := range t.cols {
			if v, ok := t.cells[cellKey{row, col}]; ok {
				sums[col] = sums[col].Add(v)
				counts[col]++
			}
		}
	}
	t.AddRow(label)
	for _, col := range t.cols {
		if counts[col] > 0 {
			t.cells[cellKey{label, col}] = sums[col]
		}
	}
}

// SortRows orders rows lexicographically by label.
func (t *Table) SortRows() {
	sort.Strings(t.rows)
}

func (t *Table) hasCol(col string) bool {
	for _, c := range t.cols {
		if c == col {
			return true
		}
	}
	return false
}
