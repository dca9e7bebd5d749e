package sheetpanel

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"kassa/style"
)

// editor is the single-line text input overlaid on the selected cell.
type editor struct {
	value  string
	cursor int
	width  int
}

func newEditor(value string, width int) editor {
	return editor{
		value:  value,
		cursor: len(value),
		width:  width,
	}
}

func (ed editor) Update(msg tea.KeyPressMsg) editor {

	switch msg.String() {
	case "backspace":
		if ed.cursor > 0 {
			ed.value = ed.value[:ed.cursor-1] + ed.value[ed.cursor:]
			ed.cursor--
		}
	case "delete":
		if ed.cursor < len(ed.value) {
			ed.value = ed.value[:ed.cursor] + ed.value[ed.cursor+1:]
		}
	case "left":
		if ed.cursor > 0 {
			ed.cursor--
		}
	case "right":
		if ed.cursor < len(ed.value) {
			ed.cursor++
		}
	case "home":
		ed.cursor = 0
	case "end":
		ed.cursor = len(ed.value)
	default:
		if len(msg.String()) == 1 {
			ed.value = ed.value[:ed.cursor] + msg.String() + ed.value[ed.cursor:]
			ed.cursor++
		}
	}
	return ed
}

func (ed editor) Value() string {
	return ed.value
}

// View pads or scrolls the value to the cell width.
func (ed editor) View() string {

	value := ed.value
	if len(value) >= ed.width && ed.width > 0 {
		// keep the cursor's end of the value in view
		value = value[len(value)-ed.width+1:]
	}

	return style.EditorStyle.Render(fmt.Sprintf("%-*s", ed.width, value))
}
