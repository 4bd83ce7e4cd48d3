package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/alexanderramin/trackflow/internal/layout"
	"github.com/alexanderramin/trackflow/internal/scheduler"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_PadsToWidestCell(t *testing.T) {
	out := ansi.Strip(RenderTable([]string{"A", "BB"}, [][]string{{"x", "yyy"}}))
	assert.Equal(t, "A  BB\n─  ───\nx  yyy\n", out)
}

func TestRenderTableAligned_RightColumn(t *testing.T) {
	out := ansi.Strip(RenderTableAligned(
		[]string{"N", "V"},
		[][]string{{"a", "1"}, {"bb", "22"}},
		map[int]bool{1: true},
	))
	assert.Equal(t, "N    V\n──  ──\na    1\nbb  22\n", out)
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderTree_ClosedBranchesDropPipes(t *testing.T) {
	out := ansi.Strip(RenderTree([]TreeItem{
		{Title: "root"},
		{Title: "a", Level: 1},
		{Title: "a1", Level: 2, IsLast: true},
		{Title: "b", Level: 1, IsLast: true},
		{Title: "b1", Level: 2, IsLast: true},
		{Title: "b1x", Level: 3, IsLast: true},
	}))
	assert.Equal(t, strings.Join([]string{
		"root",
		"├─ a",
		"│  └─ a1",
		"└─ b",
		"   └─ b1",
		"      └─ b1x",
	}, "\n")+"\n", out)
}

func TestDepthStyle_CyclesThenStaysGray(t *testing.T) {
	assert.Equal(t, ColorBlue, DepthStyle(0).GetForeground())
	assert.Equal(t, ColorPurple, DepthStyle(1).GetForeground())
	assert.Equal(t, ColorPink, DepthStyle(2).GetForeground())
	assert.Equal(t, ColorGray, DepthStyle(3).GetForeground())
	assert.Equal(t, ColorGray, DepthStyle(9).GetForeground())
	assert.Equal(t, ColorBlue, DepthStyle(-1).GetForeground())
}

func TestTimeRange_Placeholders(t *testing.T) {
	assert.Equal(t, "09:00–10:00", TimeRange("09:00", "10:00"))
	assert.Equal(t, "--:--–--:--", TimeRange("", ""))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "2h", FormatMinutes(120))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
}

func TestTruncateAndPadRight(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "hel…", Truncate("hello", 4))
	assert.Equal(t, "", Truncate("hello", 0))
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abc…", PadRight("abcdef", 4))
}

func TestRenderFill(t *testing.T) {
	assert.Equal(t, "[█████░░░░░]  50%", ansi.Strip(RenderFill(45, 90, 10)))
	assert.Equal(t, "[████] 133%", ansi.Strip(RenderFill(120, 90, 4)))
	assert.Equal(t, "[░░░░]   --", ansi.Strip(RenderFill(10, 0, 4)))
}

func TestSectionWindow(t *testing.T) {
	w, ok := SectionWindow(openingColumn())
	require.True(t, ok)
	assert.Equal(t, 90, w)

	_, ok = SectionWindow(domain.Column{StartTime: "9am", EndTime: "10:00"})
	assert.False(t, ok)

	_, ok = SectionWindow(domain.Column{StartTime: "11:00", EndTime: "10:00"})
	assert.False(t, ok)
}

func TestFormatTrackList(t *testing.T) {
	tracks := []domain.Track{
		{ID: "aaaaaaaa-1111", Name: "Main Track", StartTime: "09:00", EndTime: "17:00"},
		{ID: "bbbbbbbb-2222", Name: "Workshops", StartTime: "10:00", EndTime: "16:00"},
	}
	out := ansi.Strip(FormatTrackList(tracks, "bbbbbbbb-2222", map[string]int{"aaaaaaaa-1111": 3}))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[2], "aaaaaaaa")
	assert.Contains(t, lines[2], "Main Track")
	assert.True(t, strings.HasSuffix(lines[2], "3"))
	assert.True(t, strings.HasPrefix(lines[3], "●"))
	assert.True(t, strings.HasSuffix(lines[3], "0"))
}

func TestFormatTrackList_Empty(t *testing.T) {
	assert.Contains(t, FormatTrackList(nil, "", nil), "No tracks yet")
}

func TestFormatTimetable_ListsSectionsAndWarnings(t *testing.T) {
	track := domain.Track{ID: "trk-main", Name: "Main Track", StartTime: "09:00", EndTime: "17:00"}
	broken := domain.Column{ID: "c2", Title: "Broken", StartTime: "nine", Type: domain.ColumnOther,
		SubColumns: []domain.SubColumn{{ID: "x", Title: "Orphan", Duration: 5}}}
	tc, err := scheduler.Timetable(broken)
	require.Error(t, err)

	out := ansi.Strip(FormatTimetable(track, []scheduler.TimedColumn{timedOpening(t), tc}, err))
	assert.Contains(t, out, "MAIN TRACK")
	assert.Contains(t, out, "09:30–10:15  Keynote")
	assert.Contains(t, out, "--:--–--:--  Orphan")
	assert.Contains(t, out, "! column \"Broken\"")
}

func TestFormatWarnings_Nil(t *testing.T) {
	assert.Empty(t, FormatWarnings(nil))
	out := ansi.Strip(FormatWarnings(errors.Join(errors.New("one"), errors.New("two"))))
	assert.Equal(t, "\n! one\n! two\n", out)
}

func TestFormatGrid_WrapsCardsToWidth(t *testing.T) {
	cols := []scheduler.TimedColumn{timedOpening(t), timedOpening(t)}

	oneRow := ansi.Strip(FormatGrid(cols, 0))
	first := strings.SplitN(oneRow, "\n", 2)[0]
	assert.Equal(t, 2, strings.Count(first, "╭"))

	wrapped := ansi.Strip(FormatGrid(cols, 40))
	first = strings.SplitN(wrapped, "\n", 2)[0]
	assert.Equal(t, 1, strings.Count(first, "╭"))
	assert.Equal(t, 2, strings.Count(wrapped, "╭"))
}

func TestFormatGrid_CardContent(t *testing.T) {
	out := ansi.Strip(FormatGrid([]scheduler.TimedColumn{timedOpening(t)}, 120))
	assert.Contains(t, out, "Opening")
	assert.Contains(t, out, "[session]")
	assert.Contains(t, out, "▎09:00 Welcome")
	assert.Contains(t, out, "  ▎09:10 Agenda")
	assert.Contains(t, out, "[████████░░]  83%")

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.Equal(t, GridCardWidth+2, ansi.StringWidth(line), "line %q", line)
	}
}

func TestFormatGrid_Empty(t *testing.T) {
	assert.Contains(t, FormatGrid(nil, 80), "No sections yet")
}

func TestFormatTrackView_ListMode(t *testing.T) {
	track := domain.Track{ID: "trk-main", Name: "Main Track", StartTime: "09:00", EndTime: "17:00"}
	out := ansi.Strip(FormatTrackView("list", track, []scheduler.TimedColumn{timedOpening(t)}, nil, 80))
	assert.Contains(t, out, "MAIN TRACK")
	assert.Contains(t, out, "├─ 09:00–09:30  Welcome · Ada")

	grid := ansi.Strip(FormatTrackView("grid", track, nil, nil, 80))
	assert.Contains(t, grid, "MAIN TRACK")
	assert.Contains(t, grid, "No sections yet")
}

func TestFormatGraph_Summary(t *testing.T) {
	g, err := layout.LayoutTrack([]domain.Column{openingColumn()})
	require.NoError(t, err)

	out := ansi.Strip(FormatGraph(g))
	assert.Contains(t, out, "col-open")
	assert.Contains(t, out, "item/1")
	assert.Contains(t, out, "5 nodes, 4 edges")
	assert.Contains(t, out, "bounds 560x")

	assert.Contains(t, FormatGraph(layout.Graph{}), "Empty graph")
}

func TestRenderPrint_PlainStyle(t *testing.T) {
	md := RenderPrintMarkdown(domain.Track{Name: "Main Track", StartTime: "09:00", EndTime: "17:00"},
		[]scheduler.TimedColumn{timedOpening(t)})
	out, err := RenderPrint(md, 80)
	require.NoError(t, err)
	assert.Contains(t, out, "Main Track")
	assert.Contains(t, out, "Keynote")

	again, err := RenderPrint(md, 80)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestRenderPrintMarkdown_NoSections(t *testing.T) {
	md := RenderPrintMarkdown(domain.Track{Name: "Empty", StartTime: "09:00", EndTime: "10:00"}, nil)
	assert.Contains(t, md, "_No sections._")
	assert.NotContains(t, md, "| Time |")
}
