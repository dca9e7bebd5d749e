package kassa

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"kassa/style"
)

// RenderFooter renders a footer with the cursor position and the name
// of the backing database.
func RenderFooter(current, total int, storeName string, width int) string {

	left := fmt.Sprintf("%d/%d", current, total)
	right := storeName

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.MutedStyle.Render(left + strings.Repeat(" ", padding) + right)
}
