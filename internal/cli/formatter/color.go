package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#b16286")
	ColorPink   = lipgloss.Color("#d3869b")
	ColorGray   = lipgloss.Color("#a89984")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StylePink   = lipgloss.NewStyle().Foreground(ColorPink)
	StyleGray   = lipgloss.NewStyle().Foreground(ColorGray)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// depthStyles cycle blue, purple, pink, then gray for everything deeper.
var depthStyles = []lipgloss.Style{StyleBlue, StylePurple, StylePink, StyleGray}

// DepthStyle returns the accent style for a sub-section at the given depth,
// where 0 is a top-level item of a section.
func DepthStyle(depth int) lipgloss.Style {
	if depth < 0 {
		depth = 0
	}
	if depth >= len(depthStyles) {
		depth = len(depthStyles) - 1
	}
	return depthStyles[depth]
}

// ColumnTypeStyle returns the style used for a section's type badge.
func ColumnTypeStyle(t domain.ColumnType) lipgloss.Style {
	switch t {
	case domain.ColumnSession:
		return StyleGreen
	case domain.ColumnBreak, domain.ColumnLunch:
		return StyleYellow
	case domain.ColumnRegistration:
		return StyleBlue
	default:
		return StyleDim
	}
}

// ColumnTypeBadge renders a section type such as "[session]".
func ColumnTypeBadge(t domain.ColumnType) string {
	if t == "" {
		return StyleDim.Render("[--]")
	}
	return ColumnTypeStyle(t).Render(fmt.Sprintf("[%s]", t))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
