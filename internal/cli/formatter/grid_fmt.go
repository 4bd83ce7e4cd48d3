package formatter

import (
	"strings"

	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/alexanderramin/trackflow/internal/scheduler"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// GridCardWidth is the inner width of one section card in grid mode.
const GridCardWidth = 34

// FormatGrid renders a track in grid mode: one bordered card per section,
// side by side, wrapping onto new rows when width is exceeded. A width of
// zero or less keeps every card on one row.
func FormatGrid(columns []scheduler.TimedColumn, width int) string {
	if len(columns) == 0 {
		return Dim("No sections yet.") + "\n"
	}

	cards := make([]string, len(columns))
	for i, tc := range columns {
		cards[i] = renderCard(tc)
	}

	perRow := len(cards)
	if width > 0 {
		cardWidth := lipgloss.Width(cards[0]) + 1
		perRow = max(1, (width+1)/cardWidth)
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		var parts []string
		for i, c := range cards[start:end] {
			if i > 0 {
				parts = append(parts, " ")
			}
			parts = append(parts, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return strings.Join(rows, "\n") + "\n"
}

func renderCard(tc scheduler.TimedColumn) string {
	inner := GridCardWidth - 2
	col := tc.Column

	badge := ColumnTypeBadge(col.Type)
	title := Truncate(StyleBold.Render(col.Title), inner-ansi.StringWidth(badge)-1)
	lines := []string{
		fillBetween(title, badge, inner),
		fillBetween(StyleYellow.Render(TimeRange(col.StartTime, col.EndTime)), SectionFill(col, 10), inner),
	}

	if len(col.SubColumns) == 0 {
		lines = append(lines, "", Dim("empty"))
	} else {
		lines = append(lines, "")
	}
	for _, r := range timedRows(tc) {
		start := r.Start
		if start == "" {
			start = "--:--"
		}
		left := strings.Repeat("  ", r.Depth) +
			DepthStyle(r.Depth).Render("▎") +
			Dim(start) + " " +
			DepthStyle(r.Depth).Render(r.Title)
		lines = append(lines, fillBetween(left, Dim(FormatMinutes(r.Duration)), inner))
	}

	for i, l := range lines {
		lines[i] = PadRight(l, inner)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// timedRows flattens every sub-section of tc in document order. Items whose
// times could not be derived keep empty Start and End.
func timedRows(tc scheduler.TimedColumn) []scheduler.Row {
	var rows []scheduler.Row
	var walk func(timed []scheduler.TimedItem, raw []domain.SubColumn, depth int)
	walk = func(timed []scheduler.TimedItem, raw []domain.SubColumn, depth int) {
		for i, s := range raw {
			row := scheduler.Row{
				ColumnID: tc.Column.ID,
				ItemID:   s.ID,
				ParentID: s.ParentID,
				Title:    s.Title,
				Speaker:  s.Speaker,
				Notes:    s.Notes,
				Duration: s.Duration,
				Depth:    depth,
			}
			var children []scheduler.TimedItem
			if i < len(timed) {
				row.Start, row.End = timed[i].Start, timed[i].End
				children = timed[i].Children
			}
			rows = append(rows, row)
			walk(children, s.SubColumns, depth+1)
		}
	}
	walk(tc.Items, tc.Column.SubColumns, 0)
	return rows
}

// fillBetween places left and right at the edges of a width-cell line,
// truncating left when both do not fit.
func fillBetween(left, right string, width int) string {
	rw := ansi.StringWidth(right)
	left = Truncate(left, width-rw-1)
	gap := width - ansi.StringWidth(left) - rw
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// FormatTrackView renders a whole track in the given mode: list mode is
// FormatTimetable, grid mode puts the section cards under the same heading.
func FormatTrackView(mode string, track domain.Track, columns []scheduler.TimedColumn, warnings error, width int) string {
	if mode == "list" {
		return FormatTimetable(track, columns, warnings)
	}
	return FormatTrackSummary(track) + "\n" + FormatGrid(columns, width) + FormatWarnings(warnings)
}
