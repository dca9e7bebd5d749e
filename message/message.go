// Package message holds bubbletea messages shared between panels and
// the root model.
package message

import tea "charm.land/bubbletea/v2"

// ErrorMsg contains an error for the root model to surface.
type ErrorMsg struct {
	Err error
}

// ErrorCmd wraps an error as a command.
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}
