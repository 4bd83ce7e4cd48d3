package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/alexanderramin/trackflow/internal/scheduler"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// RenderPrintMarkdown builds a print-ready markdown document of a track:
// a heading with the track's hours and description, then one table per
// section listing every sub-section with its derived times. Nested items
// are prefixed with one arrow per level.
func RenderPrintMarkdown(track domain.Track, columns []scheduler.TimedColumn) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", mdEscape(track.Name))
	fmt.Fprintf(&b, "**%s**\n", TimeRange(track.StartTime, track.EndTime))
	if track.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", mdEscape(track.Description))
	}

	if len(columns) == 0 {
		b.WriteString("\n_No sections._\n")
		return b.String()
	}

	for _, tc := range columns {
		col := tc.Column
		fmt.Fprintf(&b, "\n## %s\n\n", mdEscape(col.Title))
		fmt.Fprintf(&b, "%s · %s\n", TimeRange(col.StartTime, col.EndTime), col.Type)

		rows := timedRows(tc)
		if len(rows) == 0 {
			continue
		}

		withNotes := false
		for _, r := range rows {
			if r.Notes != "" {
				withNotes = true
				break
			}
		}

		b.WriteString("\n| Time | Title | Speaker | Duration |")
		if withNotes {
			b.WriteString(" Notes |")
		}
		b.WriteString("\n|---|---|---|---:|")
		if withNotes {
			b.WriteString("---|")
		}
		b.WriteString("\n")

		for _, r := range rows {
			title := mdEscape(r.Title)
			if r.Depth > 0 {
				title = strings.Repeat("↳", r.Depth) + " " + title
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |",
				TimeRange(r.Start, r.End), title, mdEscape(r.Speaker), strconv.Itoa(r.Duration)+" min")
			if withNotes {
				fmt.Fprintf(&b, " %s |", mdEscape(r.Notes))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// mdEscape keeps user text from breaking table cells or starting markup.
func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "|", `\|`)
	return s
}

var (
	printRendererMu sync.Mutex
	printRenderers  = map[string]*glamour.TermRenderer{}
)

// RenderPrint renders markdown for the terminal, wrapped at width. Without
// colour support the plain "notty" style is used.
func RenderPrint(md string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	style := "dark"
	if lipgloss.ColorProfile() == termenv.Ascii {
		style = "notty"
	}
	key := style + ":" + strconv.Itoa(width)

	printRendererMu.Lock()
	defer printRendererMu.Unlock()

	r := printRenderers[key]
	if r == nil {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("creating markdown renderer: %w", err)
		}
		printRenderers[key] = r
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
