package ui

import (
	"fmt"
	"strings"

	"eventbingo/internal/board"
)

// renderDetail draws the detail pane for the selected cell: the full
// question text, the checked status, and the available actions.
func (m Model) renderDetail(c board.Cell) string {
	status := m.styles.MutedText.Render(boxUnchecked + " not checked")
	if c.Checked {
		status = m.styles.SuccessText.Render(boxChecked + " checked")
	}

	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render(fmt.Sprintf("Cell (%d, %d)", m.cursorRow+1, m.cursorCol+1)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Text.Render(c.Question))
	b.WriteString("\n\n")
	b.WriteString(status)
	b.WriteString("\n\n")
	b.WriteString(m.styles.MutedText.Render("Space/enter toggle · esc close"))

	width := clamp(m.width-4, 30, 70)
	return m.styles.Detail.Width(width).Render(b.String())
}
