// Package sheet is an editable-table edit session: a state machine
// coordinating cursor navigation, an inline cell editor, row appension,
// and row deletion over a snapshot of rows, with every mutation
// approved by a DataController before it becomes visible.
package sheet

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

// Mode is the lifecycle state of the session.
type Mode int

const (
	Navigating Mode = iota
	Editing
	Appending
)

// temporary row keys are synthetic and never reach the controller
const tempPrefix = "~append-"

// Sheet is the edit session for one table. It owns the visible
// snapshot and mutates it only after controller approval; a rejected
// request leaves the table exactly as it was.
type Sheet struct {
	snap   Snapshot
	cursor Cursor
	scroll Offset
	mode   Mode
	ctrl   DataController

	// edit context, set while mode == Editing
	editRow string
	editCol string
	editIdx int

	// append context, set while mode == Appending
	buffer  []string
	tempKey string
	tempSeq int
}

// Mount builds a sheet over the controller's initial rows.
func Mount(ctrl DataController, cols []Column) (sht Sheet, err error) {

	rows, err := ctrl.Populate()
	if err != nil {
		err = errors.Wrapf(err, "failed to populate sheet")
		return
	}

	snap, err := NewSnapshot(cols, rows)
	if err != nil {
		return
	}

	sht = Sheet{
		snap:   snap,
		cursor: Cursor{Row: -1},
		ctrl:   ctrl,
	}
	if snap.NumRows() > 0 {
		sht.cursor = Cursor{}
	}
	return
}

// Snapshot returns the visible table model.
func (sht Sheet) Snapshot() Snapshot {
	return sht.snap
}

// Cursor returns the selected cell position; Row is -1 when the table
// is empty.
func (sht Sheet) Cursor() Cursor {
	return sht.cursor
}

// Mode returns the current lifecycle state.
func (sht Sheet) Mode() Mode {
	return sht.mode
}

// SetScroll records the host's scroll position for geometry.
func (sht Sheet) SetScroll(scroll Offset) Sheet {
	sht.scroll = scroll
	return sht
}

// CellRect locates the cell under the cursor on screen, freshly
// computed; ok is false when the cursor is undefined.
func (sht Sheet) CellRect() (rect Rect, ok bool) {
	if sht.cursor.Row < 0 || sht.snap.NumCols() == 0 {
		return
	}
	return Locate(sht.snap.Widths(), sht.scroll, sht.cursor), true
}

// Handle processes one event to completion and returns the updated
// sheet plus notifications for the host UI. Controller rejections are
// normal outcomes and do not set err; err reports controller transport
// failure only, after the session has already unwound to navigation.
func (sht Sheet) Handle(evt Event) (Sheet, []Notification, error) {

	switch sht.mode {
	case Editing:
		return sht.handleEditing(evt)
	case Appending:
		return sht.handleAppending(evt)
	default:
		return sht.handleNavigating(evt)
	}
}

// unexported

func (sht Sheet) handleNavigating(evt Event) (Sheet, []Notification, error) {

	switch evt := evt.(type) {
	case Move:
		return sht.move(evt.Direction), nil, nil
	case StartEdit:
		return sht.startEdit()
	case StartAppend:
		return sht.startAppend()
	case StartDelete:
		return sht.deleteUnderCursor()
	}

	return sht, nil, nil
}

func (sht Sheet) handleEditing(evt Event) (Sheet, []Notification, error) {

	switch evt := evt.(type) {
	case Submit:
		return sht.submitEdit(evt.Value)
	case Abort:
		sht.editRow, sht.editCol, sht.editIdx = "", "", 0
		sht.mode = Navigating
		return sht, []Notification{HideEditor{}}, nil
	}

	// cursor moves and further start events are ignored while the
	// editor is open
	return sht, nil, nil
}

func (sht Sheet) handleAppending(evt Event) (Sheet, []Notification, error) {

	switch evt := evt.(type) {
	case Submit:
		return sht.submitAppend(evt.Value)
	case Abort:
		return sht.abortAppend()
	}

	return sht, nil, nil
}

// startEdit captures the cursor's row key, column key, and value as the
// edit context. A no-op when the table is empty.
func (sht Sheet) startEdit() (Sheet, []Notification, error) {

	row, ok := sht.snap.Row(sht.cursor.Row)
	if !ok {
		return sht, nil, nil
	}

	sht.editRow = row.Key
	sht.editCol = sht.snap.cols[sht.cursor.Col].Key
	sht.editIdx = sht.cursor.Col
	sht.mode = Editing

	rect, _ := sht.CellRect()
	show := ShowEditor{
		Initial: row.Cells[sht.cursor.Col],
		Rect:    rect,
	}
	return sht, []Notification{show}, nil
}

// submitEdit asks the controller to approve the cell change; the
// visible cell is updated only on approval.
func (sht Sheet) submitEdit(value string) (Sheet, []Notification, error) {

	rowKey, colKey, colIdx := sht.editRow, sht.editCol, sht.editIdx
	sht.editRow, sht.editCol, sht.editIdx = "", "", 0
	sht.mode = Navigating

	approved, err := sht.ctrl.RequestEdit(rowKey, colKey, value)
	if err != nil {
		return sht, []Notification{HideEditor{}}, errors.Wrapf(err, "edit request failed")
	}
	if !approved {
		return sht, []Notification{HideEditor{}}, nil
	}

	sht.snap = sht.snap.SetCell(sht.snap.IndexOf(rowKey), colIdx, value)
	return sht, []Notification{TableChanged{}, HideEditor{}}, nil
}

// startAppend inserts a temporary row of empty cells at the end of the
// table and opens the editor on its first column.
func (sht Sheet) startAppend() (Sheet, []Notification, error) {

	if sht.snap.NumCols() == 0 {
		return sht, nil, nil
	}

	sht.tempSeq++
	sht.tempKey = fmt.Sprintf("%s%d", tempPrefix, sht.tempSeq)
	sht.snap = sht.snap.Append(Row{
		Key:   sht.tempKey,
		Cells: make([]string, sht.snap.NumCols()),
	})

	sht.cursor = Cursor{Row: sht.snap.NumRows() - 1, Col: 0}
	sht.buffer = nil
	sht.mode = Appending

	rect, _ := sht.CellRect()
	return sht, []Notification{TableChanged{}, ShowEditor{Rect: rect}}, nil
}

// submitAppend buffers one value, echoing it into the temporary row.
// The buffer completing at the column count triggers the add decision.
func (sht Sheet) submitAppend(value string) (Sheet, []Notification, error) {

	numCols := sht.snap.NumCols()
	if len(sht.buffer) >= numCols {
		panic(fmt.Sprintf("append buffer holds %d values for %d columns", len(sht.buffer), numCols))
	}

	tempIdx := sht.snap.IndexOf(sht.tempKey)
	sht.buffer = append(sht.buffer, value)
	sht.snap = sht.snap.SetCell(tempIdx, len(sht.buffer)-1, value)

	if len(sht.buffer) < numCols {
		sht.cursor.Col = len(sht.buffer)
		rect, _ := sht.CellRect()
		return sht, []Notification{TableChanged{}, ShowEditor{Rect: rect}}, nil
	}

	return sht.commitAppend(tempIdx)
}

// commitAppend sends the completed buffer to the controller. Approval
// swaps the temporary row for one under the permanent key; rejection
// removes it, never leaving the temporary row visible.
func (sht Sheet) commitAppend(tempIdx int) (Sheet, []Notification, error) {

	buffer := sht.buffer
	sht.buffer = nil
	sht.tempKey = ""
	sht.mode = Navigating

	key, approved, err := sht.ctrl.RequestAdd(slices.Clone(buffer))
	if err != nil || !approved {
		sht.snap = sht.snap.Delete(tempIdx)
		sht.cursor = clampCursor(sht.snap, sht.cursor)
		err = errors.Wrapf(err, "add request failed")
		return sht, []Notification{TableChanged{}, HideEditor{}}, err
	}

	sht.snap = sht.snap.ReplaceAt(tempIdx, Row{Key: key, Cells: buffer})
	return sht, []Notification{TableChanged{}, HideEditor{}}, nil
}

// abortAppend discards the buffer and the temporary row without
// consulting the controller.
func (sht Sheet) abortAppend() (Sheet, []Notification, error) {

	sht.buffer = nil
	sht.mode = Navigating

	if idx := sht.snap.IndexOf(sht.tempKey); idx >= 0 {
		sht.snap = sht.snap.Delete(idx)
	}
	sht.tempKey = ""
	sht.cursor = clampCursor(sht.snap, sht.cursor)

	return sht, []Notification{TableChanged{}, HideEditor{}}, nil
}

// deleteUnderCursor targets the row under the cursor at the moment the
// event fires. A no-op when the table is empty.
func (sht Sheet) deleteUnderCursor() (Sheet, []Notification, error) {

	row, ok := sht.snap.Row(sht.cursor.Row)
	if !ok {
		return sht, nil, nil
	}

	approved, err := sht.ctrl.RequestDelete(row.Key)
	if err != nil {
		return sht, nil, errors.Wrapf(err, "delete request failed")
	}
	if !approved {
		return sht, nil, nil
	}

	sht.snap = sht.snap.Delete(sht.cursor.Row)
	sht.cursor = clampCursor(sht.snap, sht.cursor)
	return sht, []Notification{TableChanged{}}, nil
}

func (sht Sheet) move(dir Direction) Sheet {

	if sht.cursor.Row < 0 {
		return sht
	}

	switch dir {
	case Up:
		if sht.cursor.Row > 0 {
			sht.cursor.Row--
		}
	case Down:
		if sht.cursor.Row < sht.snap.NumRows()-1 {
			sht.cursor.Row++
		}
	case Left:
		if sht.cursor.Col > 0 {
			sht.cursor.Col--
		}
	case Right:
		if sht.cursor.Col < sht.snap.NumCols()-1 {
			sht.cursor.Col++
		}
	}
	return sht
}

func clampCursor(snap Snapshot, cur Cursor) Cursor {

	if snap.NumRows() == 0 {
		return Cursor{Row: -1}
	}
	if cur.Row < 0 {
		cur.Row = 0
	}
	if cur.Row >= snap.NumRows() {
		cur.Row = snap.NumRows() - 1
	}
	if cur.Col < 0 {
		cur.Col = 0
	}
	if cur.Col >= snap.NumCols() {
		cur.Col = snap.NumCols() - 1
	}
	return cur
}
