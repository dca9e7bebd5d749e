// Package sheetpanel adapts a sheet edit session to bubbletea: it
// turns key presses into sheet events, renders the snapshot with a
// lipgloss table, and tracks the inline editor overlay the session
// asks for.
package sheetpanel

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2/table"

	nt "kassa/entity"
	"kassa/message"
	"kassa/sheet"
	"kassa/style"
)

const (
	// the lipgloss table draws a separator line under the header, which
	// sheet geometry does not know about
	separatorHeight = 1
)

// Panel hosts one edit session and its editor overlay.
type Panel struct {
	sheet   sheet.Sheet
	editor  editor
	editing bool
	rect    sheet.Rect
	table   *table.Table

	width  int
	height int

	ctx    context.Context
	logger nt.Logger
}

// New mounts a sheet over the controller and prepares the table.
func New(ctx context.Context, ctrl sheet.DataController, cols []sheet.Column, lgr nt.Logger) (pnl Panel, err error) {

	sht, err := sheet.Mount(ctrl, cols)
	if err != nil {
		return
	}

	tbl := table.New()
	style.StyleTable(tbl)

	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = fmt.Sprintf("%-*s", col.Width, col.Label)
	}
	tbl.Headers(headers...)

	pnl = Panel{
		sheet:  sht,
		table:  tbl,
		ctx:    ctx,
		logger: lgr,
	}
	return
}

func (pnl Panel) Init() tea.Cmd {
	return nil
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {

	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		return pnl, nil

	case tea.KeyPressMsg:
		if pnl.editing {
			return pnl.updateEditor(msg)
		}

		switch msg.String() {
		case "up", "k":
			return pnl.dispatch(sheet.Move{Direction: sheet.Up})
		case "down", "j":
			return pnl.dispatch(sheet.Move{Direction: sheet.Down})
		case "left", "h":
			return pnl.dispatch(sheet.Move{Direction: sheet.Left})
		case "right", "l":
			return pnl.dispatch(sheet.Move{Direction: sheet.Right})
		case "a", "ctrl+a":
			return pnl.dispatch(sheet.StartAppend{})
		case "e", "enter":
			return pnl.dispatch(sheet.StartEdit{})
		case "d", "ctrl+d":
			return pnl.dispatch(sheet.StartDelete{})
		}
	}

	return pnl, nil
}

// Render renders the table with the cursor cell highlighted.
func (pnl Panel) Render() string {

	cur := pnl.sheet.Cursor()
	pnl.table.StyleFunc(style.CellStyler(cur.Row, cur.Col))

	snap := pnl.sheet.Snapshot()
	widths := snap.Widths()

	pnl.table.ClearRows()
	for i := range snap.NumRows() {
		cells := make([]string, snap.NumCols())
		for j := range snap.NumCols() {
			cells[j] = fmt.Sprintf("%-*s", widths[j], truncate(snap.Cell(i, j), widths[j]))
		}
		pnl.table.Row(cells...)
	}

	return pnl.table.Render()
}

// EditorVisible reports whether the inline editor overlay is open.
func (pnl Panel) EditorVisible() bool {
	return pnl.editing
}

// EditorPosition returns the overlay position relative to the table's
// top-left corner, adjusted for the header separator line.
func (pnl Panel) EditorPosition() (x, y int) {
	return pnl.rect.X, pnl.rect.Y + separatorHeight
}

// EditorView renders the overlay contents at the cell's width.
func (pnl Panel) EditorView() string {
	return pnl.editor.View()
}

// Position returns the 1-indexed cursor row and the row count for the
// footer; row is 0 when the table is empty.
func (pnl Panel) Position() (row, total int) {
	return pnl.sheet.Cursor().Row + 1, pnl.sheet.Snapshot().NumRows()
}

// unexported

// updateEditor routes keys to the overlay while it is open; enter
// submits and esc aborts.
func (pnl Panel) updateEditor(msg tea.KeyPressMsg) (Panel, tea.Cmd) {

	switch msg.String() {
	case "enter":
		return pnl.dispatch(sheet.Submit{Value: pnl.editor.Value()})
	case "esc":
		return pnl.dispatch(sheet.Abort{})
	default:
		pnl.editor = pnl.editor.Update(msg)
		return pnl, nil
	}
}

// dispatch hands one event to the sheet and applies its notifications.
func (pnl Panel) dispatch(evt sheet.Event) (Panel, tea.Cmd) {

	sht, notes, err := pnl.sheet.Handle(evt)
	pnl.sheet = sht

	for _, note := range notes {
		switch note := note.(type) {
		case sheet.ShowEditor:
			pnl.editing = true
			pnl.rect = note.Rect
			pnl.editor = newEditor(note.Initial, note.Rect.Width)
		case sheet.HideEditor:
			pnl.editing = false
		case sheet.TableChanged:
			// picked up by the next Render
		}
	}

	if err != nil {
		pnl.logger.Error(pnl.ctx, "controller request failed", err)
		return pnl, message.ErrorCmd(err)
	}
	return pnl, nil
}

func truncate(in string, width int) string {

	if len(in) <= width {
		return in
	}

	truncated := in[:width-1]
	ellipsis := style.MutedStyle.Render("…")
	return truncated + ellipsis
}
