package formatter

import (
	"strings"

	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/alexanderramin/trackflow/internal/scheduler"
)

// ColumnTree converts a timed section into tree rows: the section itself at
// level 0 and every sub-section one level below its parent.
func ColumnTree(tc scheduler.TimedColumn) []TreeItem {
	col := tc.Column
	items := []TreeItem{{
		Title:  col.Title,
		Time:   TimeRange(col.StartTime, col.EndTime),
		Detail: string(col.Type),
	}}

	var walk func(timed []scheduler.TimedItem, raw []domain.SubColumn, level int)
	walk = func(timed []scheduler.TimedItem, raw []domain.SubColumn, level int) {
		for i, s := range raw {
			start, end := "", ""
			var children []scheduler.TimedItem
			if i < len(timed) {
				start, end = timed[i].Start, timed[i].End
				children = timed[i].Children
			}
			items = append(items, TreeItem{
				Title:  itemTitle(s),
				Level:  level,
				IsLast: i == len(raw)-1,
				Time:   TimeRange(start, end),
				Detail: FormatMinutes(s.Duration),
			})
			walk(children, s.SubColumns, level+1)
		}
	}
	walk(tc.Items, col.SubColumns, 1)
	return items
}

func itemTitle(s domain.SubColumn) string {
	if s.Speaker == "" {
		return s.Title
	}
	return s.Title + " · " + s.Speaker
}

// FormatTimetable renders a track in list mode: the track heading followed
// by each section's tree with derived times. Sections whose times could not
// be derived show placeholders, and warnings are listed at the end.
func FormatTimetable(track domain.Track, columns []scheduler.TimedColumn, warnings error) string {
	var b strings.Builder
	b.WriteString(FormatTrackSummary(track))
	b.WriteString("\n")

	if len(columns) == 0 {
		b.WriteString(Dim("No sections yet.") + "\n")
	}
	for i, tc := range columns {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(RenderTree(ColumnTree(tc)))
	}

	b.WriteString(FormatWarnings(warnings))
	return b.String()
}

// FormatWarnings lists each line of err in yellow. A nil error renders
// nothing.
func FormatWarnings(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	for _, line := range strings.Split(err.Error(), "\n") {
		if line == "" {
			continue
		}
		b.WriteString(StyleYellow.Render("! "+line) + "\n")
	}
	return b.String()
}
