package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"eventbingo/internal/board"
	"eventbingo/internal/state"
)

// Model is the bubbletea model for the board. All user interaction funnels
// through Update; the stores own the actual state and the model keeps only
// presentation concerns (cursor, search query, open panes).
type Model struct {
	board *state.BoardStore
	theme *state.ThemeStore

	keys   keyMap
	help   help.Model
	search textinput.Model
	styles Styles

	cursorRow int
	cursorCol int

	searching  bool
	detailOpen bool

	width  int
	height int
}

// NewModel builds the initial model around the two state stores.
func NewModel(boardStore *state.BoardStore, themeStore *state.ThemeStore) Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "filter cells..."
	search.CharLimit = 100

	return Model{
		board:  boardStore,
		theme:  themeStore,
		keys:   defaultKeyMap(),
		help:   help.New(),
		search: search,
		styles: paletteFor(themeStore.Current()).Styles(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		if m.detailOpen {
			return m.updateDetail(msg)
		}
		return m.updateGrid(msg)
	}

	return m, nil
}

// updateSearch handles keys while the search input has focus. The filter
// applies live as the query changes; enter keeps it and returns focus to
// the grid, esc clears it.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.ClearSearch):
		m.searching = false
		m.search.SetValue("")
		m.search.Blur()
		return m, nil
	}
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// updateDetail handles keys while the cell detail pane is open.
func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Confirm):
		m.board.Toggle(m.cursorRow, m.cursorCol)
		return m, nil
	case key.Matches(msg, m.keys.ClearSearch):
		m.detailOpen = false
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.styles = paletteFor(m.theme.Toggle()).Styles()
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// updateGrid handles keys in the main grid view.
func (m Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursorRow = clamp(m.cursorRow-1, 0, board.Size-1)
	case key.Matches(msg, m.keys.Down):
		m.cursorRow = clamp(m.cursorRow+1, 0, board.Size-1)
	case key.Matches(msg, m.keys.Left):
		m.cursorCol = clamp(m.cursorCol-1, 0, board.Size-1)
	case key.Matches(msg, m.keys.Right):
		m.cursorCol = clamp(m.cursorCol+1, 0, board.Size-1)

	case key.Matches(msg, m.keys.Toggle):
		m.board.Toggle(m.cursorRow, m.cursorCol)

	case key.Matches(msg, m.keys.Detail):
		m.detailOpen = true

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.ClearSearch):
		m.search.SetValue("")

	case key.Matches(msg, m.keys.Theme):
		m.styles = paletteFor(m.theme.Toggle()).Styles()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// Query returns the active search query.
func (m Model) Query() string {
	return m.search.Value()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
