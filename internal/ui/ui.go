package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"eventbingo/internal/state"
)

// Options configure the UI runtime.
type Options struct {
	Context context.Context
	Board   *state.BoardStore
	Theme   *state.ThemeStore
}

// Run starts the bubbletea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	if opts.Board == nil || opts.Theme == nil {
		return fmt.Errorf("ui requires board and theme stores")
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}

	p := tea.NewProgram(NewModel(opts.Board, opts.Theme), progOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
