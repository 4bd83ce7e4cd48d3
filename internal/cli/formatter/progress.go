package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/alexanderramin/trackflow/internal/scheduler"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderFill renders how much of a section's window its top-level items
// occupy, like [████░░░░] 45%. The bar is green up to a full window and red
// once the items overrun the section's end time.
func RenderFill(used, window, width int) string {
	if width < 2 {
		width = 2
	}
	if window <= 0 {
		return Dim("[" + strings.Repeat(emptyBlock, width) + "]   --")
	}

	pct := float64(used) / float64(window)
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if used > window {
		style = StyleRed
	}
	return fmt.Sprintf("[%s] %s", style.Render(bar), style.Render(fmt.Sprintf("%3.0f%%", pct*100)))
}

// SectionWindow returns the minutes between a section's start and end.
// It reports false when either time is malformed or end precedes start.
func SectionWindow(c domain.Column) (int, bool) {
	start, err := scheduler.ParseClock(c.StartTime)
	if err != nil {
		return 0, false
	}
	end, err := scheduler.ParseClock(c.EndTime)
	if err != nil || end < start {
		return 0, false
	}
	return end - start, true
}

// SectionFill renders RenderFill for c's top-level items.
func SectionFill(c domain.Column, width int) string {
	window, ok := SectionWindow(c)
	if !ok {
		window = 0
	}
	return RenderFill(scheduler.TotalMinutes(c.SubColumns), window, width)
}
