package cli

import (
	"strings"

	"github.com/alexanderramin/trackflow/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model of the shell. The track list sits at
// the bottom of viewStack; the track view and forms are pushed above it.
type appModel struct {
	state     *SharedState
	viewStack []View
	cmdBar    commandBar
	output    outputPanel
	quitting  bool
}

func newAppModel(app *App) appModel {
	state := newSharedState(app)
	return appModel{
		state:     state,
		cmdBar:    newCommandBar(state),
		output:    newOutputPanel(),
		viewStack: []View{newTrackListView(state)},
	}
}

func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) onForm() bool {
	v := m.activeView()
	return v != nil && v.ID() == ViewForm
}

// forward hands msg to the active view and stores the updated view.
func (m *appModel) forward(msg tea.Msg) tea.Cmd {
	v := m.activeView()
	if v == nil {
		return nil
	}
	updated, cmd := v.Update(msg)
	m.viewStack[len(m.viewStack)-1] = updated.(View)
	return cmd
}

// broadcast hands msg to every view on the stack, so views under a form see
// its mutation.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.viewStack))
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// outputHeight is zero until the terminal size is known.
func (m *appModel) outputHeight() int {
	if m.state.Height == 0 {
		return 0
	}
	return m.state.ContentHeight()
}

func (m *appModel) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width, m.state.Height = msg.Width, msg.Height
		m.cmdBar.SetWidth(msg.Width)
		m.output.Resize(msg.Width, m.outputHeight())
		return m, m.forward(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		if m.output.Active() {
			return m, m.output.Scroll(msg)
		}

	case pushViewMsg:
		m.cmdBar.Blur()
		m.output.Clear()
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case refreshViewMsg:
		return m, m.broadcast(msg)

	case cmdOutputMsg:
		m.output.Show(msg.output, m.state.Width, m.outputHeight())
		return m, nil

	case wizardCompleteMsg:
		if m.onForm() {
			m.dropView()
		}
		m.output.Clear()
		return m, tea.Batch(msg.nextCmd, refreshCmd)

	case quitMsg:
		return m, m.quit()
	}

	if m.cmdBar.Focused() {
		return m, m.cmdBar.UpdateNonKey(msg)
	}
	return m, m.forward(msg)
}

func (m *appModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	if m.cmdBar.Focused() {
		if msg.Type == tea.KeyEnter {
			m.output.Clear()
		}
		return m.cmdBar.Update(msg)
	}

	if m.output.Active() {
		if isScrollKey(msg) {
			return m.output.Scroll(msg)
		}
		m.output.Clear()
	}

	// Forms own every key, esc and q included.
	if m.onForm() {
		return m.forward(msg)
	}

	switch {
	case msg.String() == ":":
		m.cmdBar.Focus()
		return nil
	case msg.String() == "q":
		return m.quit()
	case msg.Type == tea.KeyEsc:
		m.dropView()
		return nil
	}
	return m.forward(msg)
}

// dropView pops the top view, never the track list. Leaving a track view
// clears the track targets.
func (m *appModel) dropView() {
	if len(m.viewStack) <= 1 {
		return
	}
	if m.activeView().ID() == ViewTrack {
		m.state.ClearTrackContext()
	}
	m.viewStack = m.viewStack[:len(m.viewStack)-1]
	m.output.Clear()
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	body := ""
	switch {
	case m.output.Active():
		body = m.output.View()
	case m.activeView() != nil:
		body = m.activeView().View()
	}

	screen := strings.Join([]string{
		m.renderHeader(),
		body,
		m.renderStatusBar(),
		m.cmdBar.View(),
	}, "\n")

	// Fill the alt screen so shorter frames leave no stale lines behind.
	if lines := strings.Count(screen, "\n") + 1; lines < m.state.Height {
		screen += strings.Repeat("\n", m.state.Height-lines)
	}
	return screen
}

func (m *appModel) rule() string {
	return formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
}

// renderHeader shows the breadcrumb of view titles and, inside a track,
// the track name with the timetable mode.
func (m *appModel) renderHeader() string {
	header := formatter.StylePurple.Render("trackflow")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	if len(crumbs) > 0 {
		header += formatter.Dim(" › " + strings.Join(crumbs, " › "))
	}

	if m.state.ActiveTrackID != "" {
		header += "  " + formatter.Dim("[") +
			formatter.StyleGreen.Render(m.state.ActiveTrackName) +
			formatter.Dim(" · "+string(m.state.Mode)+"]")
	}
	return header + "\n" + m.rule()
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	switch {
	case m.output.Active():
		hints = m.output.Hints()
	case m.activeView() != nil:
		for _, b := range m.activeView().ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}

	if !m.cmdBar.Focused() && !m.output.Active() && !m.onForm() {
		if len(m.viewStack) > 1 {
			hints = append(hints, formatter.Dim("esc: back"))
		}
		hints = append(hints, formatter.Dim(": command"))
	}
	return m.rule() + "\n" + strings.Join(hints, "  ")
}
