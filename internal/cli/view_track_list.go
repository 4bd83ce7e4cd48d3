package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/trackflow/internal/cli/formatter"
	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/alexanderramin/trackflow/internal/store"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// tracksLoadedMsg carries a fresh snapshot for the track list.
type tracksLoadedMsg struct {
	snap store.Snapshot
}

// trackListView shows every track and lets the user open, create or edit one.
type trackListView struct {
	state   *SharedState
	snap    store.Snapshot
	cursor  int
	loading bool

	filtering bool
	filter    string
}

func newTrackListView(state *SharedState) *trackListView {
	return &trackListView{state: state, loading: true}
}

func (v *trackListView) ID() ViewID    { return ViewTrackList }
func (v *trackListView) Title() string { return "Tracks" }

func (v *trackListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	}
}

func (v *trackListView) Init() tea.Cmd {
	return v.loadTracks()
}

func (v *trackListView) loadTracks() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		return tracksLoadedMsg{snap: app.Schedule.Snapshot(context.Background())}
	}
}

func (v *trackListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tracksLoadedMsg:
		v.loading = false
		v.snap = msg.snap
		if n := len(v.visibleTracks()); v.cursor >= n {
			v.cursor = max(n-1, 0)
		}
		return v, nil

	case refreshViewMsg:
		return v, v.loadTracks()

	case tea.KeyMsg:
		if v.filtering {
			return v.updateFilter(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

func (v *trackListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := v.visibleTracks()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(visible)-1 {
			v.cursor++
		}
	case "enter":
		if v.cursor < len(visible) {
			return v, v.openTrack(visible[v.cursor].ID)
		}
	case "n":
		return v, pushView(newCreateTrackFormView(v.state))
	case "e":
		if v.cursor < len(visible) {
			return v, pushView(newEditTrackFormView(v.state, visible[v.cursor]))
		}
	case "/":
		v.filtering = true
		v.filter = ""
	}
	return v, nil
}

// openTrack selects the track in the schedule and pushes its view.
func (v *trackListView) openTrack(id string) tea.Cmd {
	t, ok, err := v.state.App.Schedule.SelectTrack(context.Background(), id)
	if err != nil {
		return outputCmd(shellError(err))
	}
	if !ok {
		return outputCmd(shellError(fmt.Errorf("track %s not found", formatter.ShortID(id))))
	}
	v.state.SetActiveTrackFrom(t)
	return pushView(newTrackView(v.state))
}

func (v *trackListView) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.filtering = false
		v.filter = ""
		v.cursor = 0
	case tea.KeyEnter:
		v.filtering = false
	case tea.KeyBackspace:
		if len(v.filter) > 0 {
			v.filter = v.filter[:len(v.filter)-1]
			v.cursor = 0
		}
	default:
		if len(msg.String()) == 1 {
			v.filter += msg.String()
			v.cursor = 0
		}
	}
	return v, nil
}

func (v *trackListView) visibleTracks() []domain.Track {
	if v.filter == "" {
		return v.snap.Tracks
	}
	lf := strings.ToLower(v.filter)
	var filtered []domain.Track
	for _, t := range v.snap.Tracks {
		if strings.Contains(strings.ToLower(t.Name), lf) || strings.HasPrefix(t.ID, lf) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func (v *trackListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading tracks...")
	}

	visible := v.visibleTracks()
	counts := sectionCounts(v.snap)
	selected := v.snap.SelectedID()

	var b strings.Builder
	b.WriteString("\n")

	if v.filtering {
		b.WriteString("  " + formatter.StyleYellow.Render("/") + " " + v.filter + "█\n\n")
	}

	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("No tracks found. Press n to create one.") + "\n")
		return b.String()
	}

	for i, t := range visible {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}
		marker := " "
		if t.ID == selected {
			marker = formatter.StyleGreen.Render("●")
		}

		b.WriteString(fmt.Sprintf("%s%s %s  %s  %s  %s\n",
			cursor,
			marker,
			formatter.StyleGreen.Render(formatter.ShortID(t.ID)),
			nameStyle.Render(formatter.PadRight(formatter.Truncate(t.Name, 28), 28)),
			formatter.Dim(formatter.TimeRange(t.StartTime, t.EndTime)),
			formatter.Dim(fmt.Sprintf("%d section(s)", counts[t.ID])),
		))
	}

	if v.cursor < len(visible) {
		b.WriteString("\n" + formatter.RenderBox("details", formatter.FormatTrackSummary(visible[v.cursor])) + "\n")
	}

	return b.String()
}
