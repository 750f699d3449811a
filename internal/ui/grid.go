package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"eventbingo/internal/board"
)

const (
	boxChecked   = "☑"
	boxUnchecked = "☐"

	minCellWidth = 14
	maxCellWidth = 24
	cellHeight   = 3
)

// renderGrid draws the 5×5 board. The cursor cell gets the focus border,
// checked cells the success color, and cells failing the active search
// filter the faint treatment. Filtering is purely visual; the grid passed
// in is never modified.
func (m Model) renderGrid(g board.Grid) string {
	cellWidth := m.cellWidth()

	rows := make([]string, 0, board.Size)
	for row := 0; row < board.Size; row++ {
		cells := make([]string, 0, board.Size)
		for col := 0; col < board.Size; col++ {
			cells = append(cells, m.renderCell(g[row][col], row, col, cellWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCell(c board.Cell, row, col, width int) string {
	style := m.styles.Cell
	visible := board.IsVisible(c, m.Query())

	switch {
	case row == m.cursorRow && col == m.cursorCol:
		style = m.styles.CellCursor
	case !visible:
		style = m.styles.CellFiltered
	case c.Checked:
		style = m.styles.CellChecked
	}

	box := boxUnchecked
	if c.Checked {
		box = boxChecked
	}

	text := c.Question
	if !visible {
		// Keep the cell footprint so the grid never reflows, but drop the
		// text of filtered-out cells.
		text = ""
	}

	return style.
		Width(width).
		Height(cellHeight).
		Render(fmt.Sprintf("%s %s", box, text))
}

// cellWidth fits five bordered cells into the current terminal width.
func (m Model) cellWidth() int {
	if m.width == 0 {
		return minCellWidth
	}
	// Two border columns per cell.
	w := m.width/board.Size - 2
	return clamp(w, minCellWidth, maxCellWidth)
}
