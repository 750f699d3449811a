package ui

import (
	"github.com/charmbracelet/lipgloss"

	"eventbingo/internal/state"
)

// Palette defines the colors for one theme.
type Palette struct {
	Name state.Theme

	Text      string
	Muted     string
	Faint     string
	Accent    string
	Success   string
	Highlight string

	Border      string
	BorderFocus string

	BannerText string
	BannerBg   string
}

// paletteFor maps a theme store value onto a palette.
func paletteFor(theme state.Theme) Palette {
	if theme == state.ThemeDark {
		return darkPalette()
	}
	return lightPalette()
}

func lightPalette() Palette {
	// Tailwind slate/sky light tones.
	return Palette{
		Name: state.ThemeLight,

		Text:      "#1e293b", // slate-800
		Muted:     "#64748b", // slate-500
		Faint:     "#cbd5e1", // slate-300
		Accent:    "#0284c7", // sky-600
		Success:   "#16a34a", // green-600
		Highlight: "#e0f2fe", // sky-100

		Border:      "#94a3b8", // slate-400
		BorderFocus: "#0284c7", // sky-600

		BannerText: "#ffffff",
		BannerBg:   "#16a34a", // green-600
	}
}

func darkPalette() Palette {
	// Dracula tones.
	return Palette{
		Name: state.ThemeDark,

		Text:      "#F8F8F2", // Foreground
		Muted:     "#6272A4", // Comment
		Faint:     "#44475A", // Selection
		Accent:    "#BD93F9", // Purple
		Success:   "#50FA7B", // Green
		Highlight: "#44475A", // Selection

		Border:      "#44475A", // Selection
		BorderFocus: "#BD93F9", // Purple

		BannerText: "#282A36", // Background
		BannerBg:   "#50FA7B", // Green
	}
}

// Styles contains the pre-built lipgloss styles for a palette.
type Styles struct {
	Title  lipgloss.Style
	Banner lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style

	Cell         lipgloss.Style
	CellCursor   lipgloss.Style
	CellChecked  lipgloss.Style
	CellFiltered lipgloss.Style

	Detail lipgloss.Style
	Footer lipgloss.Style
}

// Styles builds the style set for this palette.
func (p Palette) Styles() Styles {
	cell := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Border)).
		Foreground(lipgloss.Color(p.Text)).
		Padding(0, 1)

	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)).
			Bold(true),

		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.BannerText)).
			Background(lipgloss.Color(p.BannerBg)).
			Bold(true).
			Padding(0, 1),

		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)),
		MutedText:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		FaintText:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Faint)),
		AccentText:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)),
		SuccessText: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Success)).Bold(true),

		Cell: cell,

		CellCursor: cell.
			BorderForeground(lipgloss.Color(p.BorderFocus)).
			Background(lipgloss.Color(p.Highlight)),

		CellChecked: cell.
			Foreground(lipgloss.Color(p.Success)),

		CellFiltered: cell.
			BorderForeground(lipgloss.Color(p.Faint)).
			Foreground(lipgloss.Color(p.Faint)),

		Detail: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.BorderFocus)).
			Foreground(lipgloss.Color(p.Text)).
			Padding(1, 2),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			Padding(0, 1),
	}
}

// BackgroundIsDark probes the terminal's reported color scheme. This is the
// closest thing a terminal app has to the host's light/dark preference.
func BackgroundIsDark() bool {
	return lipgloss.HasDarkBackground()
}
