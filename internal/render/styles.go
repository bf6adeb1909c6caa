package render

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for tree output
var (
	NodeColor    = lipgloss.Color("#7D56F4") // Purple - node names
	PropColor    = lipgloss.Color("#43BF6D") // Green - property names
	ValueColor   = lipgloss.Color("#FFFFFF") // White - property values
	MutedColor   = lipgloss.Color("#626262") // Gray - punctuation, sizes
	ProblemColor = lipgloss.Color("#FF5555") // Red - verify findings
)

var (
	// NodeStyle is for node names, including the root "/"
	NodeStyle = lipgloss.NewStyle().
			Foreground(NodeColor).
			Bold(true)

	// PropStyle is for property names
	PropStyle = lipgloss.NewStyle().
			Foreground(PropColor)

	// ValueStyle is for formatted property values
	ValueStyle = lipgloss.NewStyle().
			Foreground(ValueColor)

	// MutedStyle is for structural punctuation and byte counts
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// ProblemStyle is for structural problems reported by verify
	ProblemStyle = lipgloss.NewStyle().
			Foreground(ProblemColor).
			Bold(true)
)

// ColorEnabled resolves a color preference ("auto", "always", "never")
// against the output terminal. Anything unrecognized behaves like "auto".
func ColorEnabled(pref string) bool {
	switch pref {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
