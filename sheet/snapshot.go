package sheet

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

// Column describes one table column. Key is a stable identifier
// independent of display order; Width is the render width in cells.
type Column struct {
	Key   string
	Label string
	Width int
}

// Row is an ordered sequence of cell values addressed by a stable key.
// The key is independent of display content and position.
type Row struct {
	Key   string
	Cells []string
}

// Cursor addresses the selected cell; Row is -1 when the table is empty.
type Cursor struct {
	Row int
	Col int
}

// Snapshot is the visible table model: ordered columns plus rows in
// display order. Every row has exactly one cell per column.
//
// Snapshot is designed for immutable use in bubbletea/Elm architecture:
// mutators return a new Snapshot and clone the slices they touch, so
// older copies remain valid.
type Snapshot struct {
	cols []Column
	rows []Row
}

// NewSnapshot builds a snapshot, rejecting rows whose cell count does
// not match the column count.
func NewSnapshot(cols []Column, rows []Row) (snap Snapshot, err error) {

	for _, row := range rows {
		if len(row.Cells) != len(cols) {
			err = errors.Errorf("row %s has %d cells, want %d", row.Key, len(row.Cells), len(cols))
			return
		}
	}

	snap = Snapshot{
		cols: slices.Clone(cols),
		rows: slices.Clone(rows),
	}
	return
}

// NumRows returns the number of rows.
func (snap Snapshot) NumRows() int {
	return len(snap.rows)
}

// NumCols returns the number of columns.
func (snap Snapshot) NumCols() int {
	return len(snap.cols)
}

// Columns returns the columns in display order.
func (snap Snapshot) Columns() []Column {
	return slices.Clone(snap.cols)
}

// Widths returns the column widths in display order.
func (snap Snapshot) Widths() []int {
	widths := make([]int, len(snap.cols))
	for i, col := range snap.cols {
		widths[i] = col.Width
	}
	return widths
}

// Row returns the row at idx.
func (snap Snapshot) Row(idx int) (row Row, ok bool) {
	if idx < 0 || idx >= len(snap.rows) {
		return
	}
	return snap.rows[idx], true
}

// IndexOf returns the display position of the row with the given key,
// or -1 when absent.
func (snap Snapshot) IndexOf(key string) int {
	return slices.IndexFunc(snap.rows, func(row Row) bool {
		return row.Key == key
	})
}

// Keys returns the row keys in display order.
func (snap Snapshot) Keys() []string {
	keys := make([]string, len(snap.rows))
	for i, row := range snap.rows {
		keys[i] = row.Key
	}
	return keys
}

// Cell returns the value at the given position, or "" out of bounds.
func (snap Snapshot) Cell(rowIdx, colIdx int) string {
	if rowIdx < 0 || rowIdx >= len(snap.rows) {
		return ""
	}
	if colIdx < 0 || colIdx >= len(snap.cols) {
		return ""
	}
	return snap.rows[rowIdx].Cells[colIdx]
}

// Append adds a row at the end.
func (snap Snapshot) Append(row Row) Snapshot {
	snap.mustFit(row)
	rows := make([]Row, 0, len(snap.rows)+1)
	rows = append(rows, snap.rows...)
	snap.rows = append(rows, row)
	return snap
}

// ReplaceAt swaps in a new row at the given position, keeping display
// order. Out-of-bounds positions are ignored.
func (snap Snapshot) ReplaceAt(idx int, row Row) Snapshot {
	if idx < 0 || idx >= len(snap.rows) {
		return snap
	}
	snap.mustFit(row)
	snap.rows = slices.Clone(snap.rows)
	snap.rows[idx] = row
	return snap
}

// SetCell updates a single cell in place. Out-of-bounds positions are
// ignored.
func (snap Snapshot) SetCell(rowIdx, colIdx int, value string) Snapshot {
	if rowIdx < 0 || rowIdx >= len(snap.rows) {
		return snap
	}
	if colIdx < 0 || colIdx >= len(snap.cols) {
		return snap
	}
	snap.rows = slices.Clone(snap.rows)
	row := snap.rows[rowIdx]
	row.Cells = slices.Clone(row.Cells)
	row.Cells[colIdx] = value
	snap.rows[rowIdx] = row
	return snap
}

// Delete removes the row at the given position. Out-of-bounds positions
// are ignored.
func (snap Snapshot) Delete(idx int) Snapshot {
	if idx < 0 || idx >= len(snap.rows) {
		return snap
	}
	rows := make([]Row, 0, len(snap.rows)-1)
	rows = append(rows, snap.rows[:idx]...)
	snap.rows = append(rows, snap.rows[idx+1:]...)
	return snap
}

// unexported

// mustFit asserts row cardinality; a mismatch here is a defect, not a
// recoverable condition.
func (snap Snapshot) mustFit(row Row) {
	if len(row.Cells) != len(snap.cols) {
		panic(fmt.Sprintf("row %s has %d cells, want %d", row.Key, len(row.Cells), len(snap.cols)))
	}
}
