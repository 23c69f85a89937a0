// Package style provides the colors, icons and table styles shared by the
// logger and the CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Table styles.
var (
	Header = lipgloss.NewStyle().Bold(true).Foreground(Iris).PaddingRight(2)
	Cell   = lipgloss.NewStyle().PaddingRight(2)
	Muted  = lipgloss.NewStyle().Foreground(Slate)
	Good   = lipgloss.NewStyle().Foreground(Green)
	Bad    = lipgloss.NewStyle().Foreground(Red)
)

// Status renders a loaded/not-loaded marker.
func Status(ok bool) string {
	if ok {
		return Good.Render(Check)
	}
	return Bad.Render(Cross)
}
