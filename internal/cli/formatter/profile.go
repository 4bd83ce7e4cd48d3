package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ApplyColorProfile sets the colour profile used by every style in this
// package. noColor forces plain output; otherwise the terminal's detected
// capabilities apply.
func ApplyColorProfile(noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}
