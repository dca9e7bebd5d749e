package sheet

import (
	"slices"
	"strconv"
)

// MemController is an in-memory DataController for tests and demos.
// The zero value approves everything; the Reject flags script
// rejections. Rows holds the backing data, mutated on approval.
type MemController struct {
	Cols         []Column
	Rows         []Row
	NextKey      int
	RejectAdd    bool
	RejectEdit   bool
	RejectDelete bool
}

// Populate returns a copy of the backing rows.
func (mem *MemController) Populate() (rows []Row, err error) {
	return slices.Clone(mem.Rows), nil
}

// RequestAdd assigns the next numeric key unless scripted to reject.
func (mem *MemController) RequestAdd(values []string) (key string, approved bool, err error) {

	if mem.RejectAdd {
		return
	}

	key = strconv.Itoa(mem.NextKey)
	mem.NextKey++
	mem.Rows = append(mem.Rows, Row{Key: key, Cells: slices.Clone(values)})
	return key, true, nil
}

// RequestEdit updates the backing row unless scripted to reject.
func (mem *MemController) RequestEdit(rowKey, colKey, value string) (approved bool, err error) {

	if mem.RejectEdit {
		return
	}

	rowIdx := slices.IndexFunc(mem.Rows, func(row Row) bool { return row.Key == rowKey })
	colIdx := slices.IndexFunc(mem.Cols, func(col Column) bool { return col.Key == colKey })
	if rowIdx < 0 || colIdx < 0 {
		return false, nil
	}

	cells := slices.Clone(mem.Rows[rowIdx].Cells)
	cells[colIdx] = value
	mem.Rows[rowIdx].Cells = cells
	return true, nil
}

// RequestDelete removes the backing row unless scripted to reject.
func (mem *MemController) RequestDelete(rowKey string) (approved bool, err error) {

	if mem.RejectDelete {
		return
	}

	idx := slices.IndexFunc(mem.Rows, func(row Row) bool { return row.Key == rowKey })
	if idx < 0 {
		return false, nil
	}

	mem.Rows = slices.Delete(slices.Clone(mem.Rows), idx, idx+1)
	return true, nil
}
