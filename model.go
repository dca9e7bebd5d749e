package kassa

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"kassa/category"
	nt "kassa/entity"
	"kassa/message"
	"kassa/sheetpanel"
	"kassa/style"
)

const (
	footerHeight   = 2
	tabstripHeight = 2
	categoryWidth  = 24
)

// Model is the bubbletea model for the bookkeeping TUI: one tab per
// editable table, a shared footer, and an editor overlay floated over
// the active table's cursor cell.
type Model struct {
	tabs   []tab
	active int

	storeName   string
	errorString string

	logger nt.Logger
	ctx    context.Context

	width  int
	height int
}

type tab struct {
	title string
	panel sheetpanel.Panel
}

// NewModel mounts a tab over each category kind.
func NewModel(ctx context.Context, svc *category.Service, storeName string, lgr nt.Logger) (model Model, err error) {

	tabs := []tab{}
	for _, kind := range []nt.Kind{nt.Debit, nt.Credit} {

		ctrl := category.NewController(ctx, svc, kind, lgr)

		pnl, perr := sheetpanel.New(ctx, ctrl, category.Columns(categoryWidth), lgr)
		if perr != nil {
			err = perr
			return
		}

		tabs = append(tabs, tab{
			title: titles[kind],
			panel: pnl,
		})
	}

	model = Model{
		tabs:      tabs,
		storeName: storeName,
		logger:    lgr,
		ctx:       ctx,
	}
	return
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case tea.KeyPressMsg:
		if m.errorString != "" {
			m.errorString = ""
		}

		if m.tabs[m.active].panel.EditorVisible() {
			return m.updateActive(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "tab":
			m.active = (m.active + 1) % len(m.tabs)
			return m, nil

		case "shift+tab":
			m.active = (m.active + len(m.tabs) - 1) % len(m.tabs)
			return m, nil
		}

		return m.updateActive(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		adjustedMsg := sheetpanel.SizeMsg{
			Width:  msg.Width,
			Height: msg.Height - tabstripHeight - footerHeight,
		}

		// Broadcast so inactive tabs come back at the right size
		cmds := []tea.Cmd{}
		for i := range m.tabs {
			var cmd tea.Cmd
			m.tabs[i].panel, cmd = m.tabs[i].panel.Update(adjustedMsg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Sequence(cmds...)
	}

	return m, nil
}

func (m Model) View() tea.View {
	if m.width == 0 {
		return tea.NewView("Loading...")
	}

	pnl := m.tabs[m.active].panel

	tabsLayer := lipgloss.NewLayer("tabs", m.renderTabstrip())
	tableLayer := lipgloss.NewLayer("table", pnl.Render()).Y(tabstripHeight)

	current, total := pnl.Position()
	footerContent := RenderFooter(current, total, m.storeName, m.width)
	if m.errorString != "" {
		footerContent = style.WarnStyle.Render(m.errorString)
	}
	footerLayer := lipgloss.NewLayer("footer", footerContent).Y(m.height - footerHeight)

	canvas := lipgloss.NewCanvas(m.width, m.height)
	canvas.Compose(tabsLayer)
	canvas.Compose(tableLayer)
	canvas.Compose(footerLayer)

	if pnl.EditorVisible() {
		x, y := pnl.EditorPosition()
		editorLayer := lipgloss.NewLayer("editor", pnl.EditorView()).X(x).Y(tabstripHeight + y)
		canvas.Compose(editorLayer)
	}

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}

// unexported

var titles = map[nt.Kind]string{
	nt.Debit:  "Debit Categories",
	nt.Credit: "Credit Categories",
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {

	var cmd tea.Cmd
	m.tabs[m.active].panel, cmd = m.tabs[m.active].panel.Update(msg)
	return m, cmd
}

func (m Model) renderTabstrip() string {

	rendered := make([]string, len(m.tabs))
	for i, tb := range m.tabs {
		if i == m.active {
			rendered[i] = style.ActiveTabStyle.Render(tb.title)
			continue
		}
		rendered[i] = style.TabStyle.Render(tb.title)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
