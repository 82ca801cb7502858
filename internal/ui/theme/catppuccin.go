package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Overlay0 = lipgloss.Color("#6c7086")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Red      = lipgloss.Color("#f38ba8")
	Peach    = lipgloss.Color("#fab387")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)

	Hour = lipgloss.NewStyle().
		Foreground(Subtext0).
		Width(6).
		Align(lipgloss.Right).
		PaddingRight(1)

	slot = lipgloss.NewStyle().
		Foreground(Base).
		Padding(0, 1)

	Past    = slot.Background(Overlay0)
	Present = slot.Background(Red)
	Future  = slot.Background(Green)

	Cursor = lipgloss.NewStyle().Foreground(Lavender).Bold(true)
)

// Phase picks the slot style for a past/present/future classification.
func Phase(phase string) lipgloss.Style {
	switch phase {
	case "past":
		return Past
	case "present":
		return Present
	default:
		return Future
	}
}
