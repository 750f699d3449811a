package state

import (
	"sync"

	"go.uber.org/zap"

	"eventbingo/internal/store"
)

// Theme is the light/dark enumeration. The string form is the persisted
// slot literal.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// valid reports whether a persisted literal names a known theme.
func (t Theme) valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// ThemeStore owns the process-wide theme value. Like the board store it is
// the single writer and persists on every change, to its own slot.
type ThemeStore struct {
	mu     sync.RWMutex
	theme  Theme
	slots  *store.Slots
	logger *zap.Logger
}

// NewThemeStore resolves the initial theme: the persisted slot value if it
// is a valid literal, otherwise the host preference (backgroundIsDark is
// the terminal's reported color scheme, injected so tests stay off the
// tty), otherwise light.
func NewThemeStore(slots *store.Slots, backgroundIsDark bool, logger *zap.Logger) *ThemeStore {
	s := &ThemeStore{slots: slots, logger: logger}

	raw, result := slots.LoadTheme()
	if result == store.DecodeOK && Theme(raw).valid() {
		s.theme = Theme(raw)
		return s
	}

	s.theme = ThemeLight
	if backgroundIsDark {
		s.theme = ThemeDark
	}
	return s
}

// Toggle flips between light and dark and persists the new value. It has
// no parameters and always succeeds.
func (s *ThemeStore) Toggle() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.theme == ThemeLight {
		s.theme = ThemeDark
	} else {
		s.theme = ThemeLight
	}
	if err := s.slots.SaveTheme(string(s.theme)); err != nil {
		s.logger.Debug("theme persist failed", zap.Error(err))
	}
	return s.theme
}

// Current returns the active theme.
func (s *ThemeStore) Current() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}
