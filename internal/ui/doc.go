// Package ui provides the terminal user interface for the bingo board.
//
// # Overview
//
// The UI is a bubbletea program over the two state stores. The model holds
// presentation state only (cursor position, search query, open panes); the
// board and theme live in their stores and every mutation goes through a
// store method, which persists before returning. Win state and search
// visibility are recomputed from the current grid on every render rather
// than cached.
//
// # Package Structure
//
//   - ui.go: Options and the Run entry point
//   - model.go: the bubbletea model and Update logic
//   - view.go: top-level View and the header/win banner
//   - grid.go: 5×5 grid rendering
//   - detail.go: per-cell detail pane
//   - keys.go: key bindings with bubbles/help integration
//   - theme.go: light/dark palettes and lipgloss styles
//
// # Key Bindings
//
//   - Arrows or hjkl: move the cursor
//   - Space: check/uncheck the cell under the cursor
//   - Enter: open the cell detail pane (space/enter toggles there too)
//   - /: focus the search input; the filter applies as you type
//   - esc: clear the search, or close the detail pane
//   - t: toggle light/dark theme
//   - ?: expand/collapse help
//   - q or Ctrl+C: quit
//
// # Search
//
// The query lives in the textinput for the session only; it is never
// persisted. Cells that fail the filter keep their footprint but render
// empty and faint, so the grid never reflows and checked state is visually
// and actually untouched.
package ui
