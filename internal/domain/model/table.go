package model

import "slices"

// Table is an immutable, ordered set of rows together with the column names
// they were read with. Transform steps return new tables.
type Table[R any] struct {
	columns []string
	rows    []R
}

// NewTable copies columns and rows into a new Table.
func NewTable[R any](columns []string, rows []R) Table[R] {
	return Table[R]{
		columns: slices.Clone(columns),
		rows:    slices.Clone(rows),
	}
}

// Len returns the number of rows.
func (t Table[R]) Len() int { return len(t.rows) }

// At returns row i.
func (t Table[R]) At(i int) R { return t.rows[i] }

// Rows returns a copy of the rows.
func (t Table[R]) Rows() []R { return slices.Clone(t.rows) }

// Columns returns a copy of the column names.
func (t Table[R]) Columns() []string { return slices.Clone(t.columns) }

// Missing returns the names in cols that the table does not carry.
func (t Table[R]) Missing(cols ...string) []string {
	var missing []string
	for _, c := range cols {
		if !slices.Contains(t.columns, c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// Filter returns a new table with the rows for which keep returns true.
func (t Table[R]) Filter(keep func(R) bool) Table[R] {
	out := make([]R, 0, len(t.rows))
	for _, r := range t.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return Table[R]{columns: slices.Clone(t.columns), rows: out}
}

// Map returns a new table with every row transformed by fn.
func (t Table[R]) Map(fn func(R) R) Table[R] {
	out := make([]R, len(t.rows))
	for i, r := range t.rows {
		out[i] = fn(r)
	}
	return Table[R]{columns: slices.Clone(t.columns), rows: out}
}

// EventTable holds raw athlete events.
type EventTable = Table[EventRecord]

// RegionTable holds the NOC region lookup.
type RegionTable = Table[RegionRecord]

// MergedTable holds events joined with their regions.
type MergedTable = Table[MergedRecord]
