package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/trackflow/internal/domain"
)

// FormatTrackList renders every track as a table. The selected track is
// marked with a green dot; sectionCounts maps track IDs to their number of
// sections.
func FormatTrackList(tracks []domain.Track, selectedID string, sectionCounts map[string]int) string {
	if len(tracks) == 0 {
		return Dim("No tracks yet. Create one with 'trackflow track add'.") + "\n"
	}

	headers := []string{" ", "ID", "NAME", "HOURS", "SECTIONS"}
	rows := make([][]string, 0, len(tracks))
	for _, t := range tracks {
		marker := " "
		if t.ID == selectedID {
			marker = StyleGreen.Render("●")
		}
		rows = append(rows, []string{
			marker,
			TruncID(t.ID),
			t.Name,
			TimeRange(t.StartTime, t.EndTime),
			strconv.Itoa(sectionCounts[t.ID]),
		})
	}
	return RenderTableAligned(headers, rows, map[int]bool{4: true})
}

// FormatTrackSummary renders a one-track heading: name, hours, description
// and the full ID.
func FormatTrackSummary(t domain.Track) string {
	var b strings.Builder
	b.WriteString(Header(t.Name) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleYellow.Render(TimeRange(t.StartTime, t.EndTime)), Dim(t.ID)))
	if t.Description != "" {
		b.WriteString(StyleFg.Render(t.Description) + "\n")
	}
	return b.String()
}

// FormatTrackCreated confirms a new or edited track.
func FormatTrackCreated(verb string, t domain.Track) string {
	return fmt.Sprintf("%s track %s %s (%s)\n",
		verb,
		StyleGreen.Render(ShortID(t.ID)),
		Bold(t.Name),
		TimeRange(t.StartTime, t.EndTime),
	)
}

// FormatColumnCreated confirms a new section.
func FormatColumnCreated(c domain.Column) string {
	return fmt.Sprintf("Created section %s %s %s (%s)\n",
		StyleGreen.Render(ShortID(c.ID)),
		Bold(c.Title),
		ColumnTypeBadge(c.Type),
		TimeRange(c.StartTime, c.EndTime),
	)
}

// FormatSubColumnCreated confirms a new sub-section.
func FormatSubColumnCreated(s domain.SubColumn) string {
	return fmt.Sprintf("Created sub-section %s %s (%s) under %s\n",
		StyleGreen.Render(ShortID(s.ID)),
		Bold(s.Title),
		FormatMinutes(s.Duration),
		Dim(ShortID(s.ParentID)),
	)
}
