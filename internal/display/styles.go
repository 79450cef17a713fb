package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains styling for console output
type Styles struct {
	Title   lipgloss.Style
	Tagline lipgloss.Style
	Heading lipgloss.Style
	Option  lipgloss.Style
	Player  lipgloss.Style
	Money   lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

// NewStyles creates styles bound to w. With color disabled every style
// renders plain text.
func NewStyles(w io.Writer, color bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Tagline: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Heading: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Option: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Player: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Money: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
