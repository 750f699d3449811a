package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	g := m.board.Grid()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.searching || m.Query() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	if m.detailOpen {
		b.WriteString(m.renderDetail(g[m.cursorRow][m.cursorCol]))
	} else {
		b.WriteString(m.renderGrid(g))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(m.help.View(m.keys)))
	return b.String()
}

// renderHeader draws the title line, with the win banner whenever any line
// is complete. Win state is recomputed from the grid on every render.
func (m Model) renderHeader() string {
	title := m.styles.Title.Render("Event Bingo")

	checked := 0
	g := m.board.Grid()
	for row := range g {
		for col := range g[row] {
			if g[row][col].Checked {
				checked++
			}
		}
	}
	count := m.styles.MutedText.Render(fmt.Sprintf("%d/25 checked", checked))

	parts := []string{title, "  ", count}
	if m.board.Bingo() {
		parts = append(parts, "  ", m.styles.Banner.Render("★ BINGO ★"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
