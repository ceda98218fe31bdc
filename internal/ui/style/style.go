// Package style holds the colors, icons and lipgloss styles shared by the
// launcher's human-facing output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Mist   = lipgloss.Color("#98A2B3")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Arrow   = "→"
)

// Text styles.
var (
	Heading = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Label   = lipgloss.NewStyle().Foreground(Slate)
	Value   = lipgloss.NewStyle()
)

// KeyValue renders "label: value" with the label muted.
func KeyValue(label, value string) string {
	return Label.Render(label+":") + " " + Value.Render(value)
}
