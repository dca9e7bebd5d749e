// Demo of the editable sheet over an in-memory controller, no db
// required. Arrows move, "a" appends, "e" edits, "d" deletes.
package main

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "kassa/entity"
	"kassa/sheet"
	"kassa/sheetpanel"
)

type model struct {
	panel  sheetpanel.Panel
	width  int
	height int
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case tea.KeyPressMsg:
		if !m.panel.EditorVisible() {
			switch msg.String() {
			case "ctrl+c", "q", "esc":
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		sizeMsg := sheetpanel.SizeMsg{Width: msg.Width, Height: msg.Height}
		var cmd tea.Cmd
		m.panel, cmd = m.panel.Update(sizeMsg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.panel, cmd = m.panel.Update(msg)
	return m, cmd
}

func (m model) View() tea.View {

	tableLayer := lipgloss.NewLayer("table", m.panel.Render())

	canvas := lipgloss.NewCanvas(m.width, m.height)
	canvas.Compose(tableLayer)

	if m.panel.EditorVisible() {
		x, y := m.panel.EditorPosition()
		canvas.Compose(lipgloss.NewLayer("editor", m.panel.EditorView()).X(x).Y(y))
	}

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}

type demoLogger struct{}

func (demoLogger) Info(ctx context.Context, msg string, kv ...any)             {}
func (demoLogger) Error(ctx context.Context, msg string, err error, kv ...any) {}

func main() {

	ctrl := &sheet.MemController{
		Cols: cols,
		Rows: []sheet.Row{
			{Key: "1", Cells: []string{"Groceries", "weekly shop"}},
			{Key: "2", Cells: []string{"Rent", "first of the month"}},
			{Key: "3", Cells: []string{"Travel", "trains mostly"}},
		},
		NextKey: 4,
	}

	var lgr nt.Logger = demoLogger{}

	panel, err := sheetpanel.New(context.Background(), ctrl, cols, lgr)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model{panel: panel})
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

var cols = []sheet.Column{
	{Key: "name", Label: "Name", Width: 16},
	{Key: "note", Label: "Note", Width: 24},
}
