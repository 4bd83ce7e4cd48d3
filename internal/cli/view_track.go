package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/trackflow/internal/cli/formatter"
	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/alexanderramin/trackflow/internal/scheduler"
	"github.com/alexanderramin/trackflow/internal/service"
	"github.com/alexanderramin/trackflow/internal/viewstate"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// timetableLoadedMsg carries the derived timetable of the active track.
type timetableLoadedMsg struct {
	tt  service.TrackTimetable
	err error
}

// trackTarget is one selectable line of the track view: a section, or a
// sub-section when itemID is set.
type trackTarget struct {
	columnID string
	itemID   string
	title    string
	depth    int
	start    string
	end      string
	duration int
}

// parentID is the id a new sub-section is appended under.
func (t trackTarget) parentID() string {
	if t.itemID != "" {
		return t.itemID
	}
	return t.columnID
}

// trackView shows the sections of the active track in grid or list mode.
type trackView struct {
	state   *SharedState
	tt      service.TrackTimetable
	targets []trackTarget
	cursor  int
	loading bool
	err     error
}

func newTrackView(state *SharedState) *trackView {
	return &trackView{state: state, loading: true}
}

func (v *trackView) ID() ViewID { return ViewTrack }

func (v *trackView) Title() string {
	if v.state.ActiveTrackName != "" {
		return v.state.ActiveTrackName
	}
	return "Track"
}

func (v *trackView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "grid/list")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "section")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sub-section")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "graph")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "print")),
	}
}

func (v *trackView) Init() tea.Cmd {
	return v.loadTimetable()
}

func (v *trackView) loadTimetable() tea.Cmd {
	app := v.state.App
	trackID := v.state.ActiveTrackID
	return func() tea.Msg {
		tt, err := app.Schedule.Timetable(context.Background(), trackID)
		return timetableLoadedMsg{tt: tt, err: err}
	}
}

func (v *trackView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timetableLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err != nil {
			return v, nil
		}
		v.tt = msg.tt
		v.targets = buildTargets(msg.tt.Columns)
		if v.cursor >= len(v.targets) {
			v.cursor = max(len(v.targets)-1, 0)
		}
		v.syncColumn()
		return v, nil

	case refreshViewMsg:
		return v, v.loadTimetable()

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, nil
}

func (v *trackView) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
			v.syncColumn()
		}
	case "down", "j":
		if v.cursor < len(v.targets)-1 {
			v.cursor++
			v.syncColumn()
		}
	case "v":
		v.state.ToggleMode()
	case "c":
		return v, pushView(newColumnFormView(v.state))
	case "s":
		t, ok := v.target()
		if !ok {
			return v, outputCmd(formatter.Dim("Add a section first (c)."))
		}
		return v, pushView(newSubColumnFormView(v.state, t.columnID, t.parentID()))
	case "e":
		return v, pushView(newEditTrackFormView(v.state, v.tt.Track))
	case "g":
		return v, v.graphCmd()
	case "p":
		return v, v.printCmd()
	}
	return v, nil
}

func (v *trackView) target() (trackTarget, bool) {
	if v.cursor < 0 || v.cursor >= len(v.targets) {
		return trackTarget{}, false
	}
	return v.targets[v.cursor], true
}

// syncColumn points the column target at the section under the cursor.
func (v *trackView) syncColumn() {
	if t, ok := v.target(); ok {
		v.state.SetActiveColumn(t.columnID)
	}
}

func (v *trackView) graphCmd() tea.Cmd {
	app := v.state.App
	trackID := v.state.ActiveTrackID
	return func() tea.Msg {
		tg, err := app.Schedule.Graph(context.Background(), trackID)
		if err != nil {
			return formErrorOutput(err)
		}
		return formSuccessOutput(formatter.FormatGraph(tg.Graph) + formatter.FormatWarnings(tg.Warnings))
	}
}

func (v *trackView) printCmd() tea.Cmd {
	track := v.tt.Track
	cols := v.tt.Columns
	width := min(max(v.state.Width-4, 40), 100)
	return func() tea.Msg {
		out, err := formatter.RenderPrint(formatter.RenderPrintMarkdown(track, cols), width)
		if err != nil {
			return formErrorOutput(err)
		}
		return formSuccessOutput(out)
	}
}

// buildTargets lists every section followed by its sub-sections in
// document order. Sub-sections of a section whose times failed to derive
// are listed without times.
func buildTargets(columns []scheduler.TimedColumn) []trackTarget {
	var targets []trackTarget
	for _, tc := range columns {
		c := tc.Column
		targets = append(targets, trackTarget{
			columnID: c.ID,
			title:    c.Title,
			depth:    -1,
			start:    c.StartTime,
			end:      c.EndTime,
		})

		times := make(map[string]scheduler.Row)
		for _, r := range tc.Flatten() {
			times[r.ItemID] = r
		}
		domain.WalkSubColumns(c.SubColumns, func(s *domain.SubColumn, depth int) bool {
			r := times[s.ID]
			targets = append(targets, trackTarget{
				columnID: c.ID,
				itemID:   s.ID,
				title:    s.Title,
				depth:    depth,
				start:    r.Start,
				end:      r.End,
				duration: s.Duration,
			})
			return true
		})
	}
	return targets
}

func (v *trackView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading track...")
	}
	if v.err != nil {
		return "\n  " + shellError(v.err)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.Dim(formatter.TimeRange(v.tt.Track.StartTime, v.tt.Track.EndTime)))
	if v.tt.Track.Description != "" {
		b.WriteString("  " + v.tt.Track.Description)
	}
	b.WriteString("\n\n")

	if len(v.targets) == 0 {
		b.WriteString("  " + formatter.Dim("No sections yet. Press c to add one.") + "\n")
		return b.String()
	}

	if v.state.Mode == viewstate.ModeGrid {
		b.WriteString(formatter.FormatGrid(v.tt.Columns, v.state.Width))
		if t, ok := v.target(); ok {
			b.WriteString("\n" + formatter.StyleGreen.Render("▸ ") + v.renderTarget(t) + "\n")
		}
	} else {
		for i, t := range v.targets {
			cursor := "  "
			if i == v.cursor {
				cursor = formatter.StyleGreen.Render("▸ ")
			}
			b.WriteString(cursor + v.renderTarget(t) + "\n")
		}
	}

	b.WriteString(formatter.FormatWarnings(v.tt.Warnings))
	return b.String()
}

func (v *trackView) renderTarget(t trackTarget) string {
	if t.itemID == "" {
		return fmt.Sprintf("%s  %s",
			formatter.Dim(formatter.TimeRange(t.start, t.end)),
			formatter.StyleBold.Render(t.title))
	}
	indent := strings.Repeat("  ", t.depth+1)
	return fmt.Sprintf("%s  %s%s %s",
		formatter.Dim(formatter.TimeRange(t.start, t.end)),
		indent,
		formatter.DepthStyle(t.depth).Render(t.title),
		formatter.Dim(formatter.FormatMinutes(t.duration)))
}
