package teatest

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

type loadedMsg struct{ n int }

// counterModel loads a start value in Init, counts '+' presses, and quits
// on 'x'. 's' starts a Cmd that never returns in time.
type counterModel struct {
	n     int
	width int
	quit  bool
}

func (m counterModel) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return loadedMsg{n: 10} },
		nil,
	)
}

func (m counterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case loadedMsg:
		m.n = msg.n
	case tea.QuitMsg:
		m.quit = true
	case tea.KeyMsg:
		switch msg.String() {
		case "+":
			return m, func() tea.Msg { return loadedMsg{n: m.n + 1} }
		case "x":
			return m, tea.Quit
		case "s":
			return m, func() tea.Msg {
				time.Sleep(200 * time.Millisecond)
				return loadedMsg{n: -1}
			}
		}
	}
	return m, nil
}

func (m counterModel) View() string {
	return lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("count=%d width=%d", m.n, m.width))
}

func TestDriver_DrainsInitBatch(t *testing.T) {
	d := New(t, counterModel{}, WithSize(80, 24))
	d.DrainInit()

	assert.True(t, d.ViewContains("count=10 width=80"))
}

func TestDriver_FollowsReturnedCmds(t *testing.T) {
	d := New(t, counterModel{})
	d.DrainInit()

	d.Type("++")
	assert.Equal(t, 12, d.Model.(counterModel).n)
}

func TestDriver_DropsSlowCmds(t *testing.T) {
	d := New(t, counterModel{})
	d.PressKey('s')

	assert.Equal(t, 1, d.Dropped)
	assert.Equal(t, 0, d.Model.(counterModel).n)
}

func TestDriver_RecordsQuit(t *testing.T) {
	d := New(t, counterModel{})
	d.PressKey('x')

	assert.True(t, d.Quitting)
	assert.True(t, d.Model.(counterModel).quit)

	d.PressKey('+')
	assert.Equal(t, 0, d.Model.(counterModel).n, "nothing is sent after quit")
}

func TestIsCursorBlink(t *testing.T) {
	type initialBlinkMsg struct{}
	assert.True(t, isCursorBlink(initialBlinkMsg{}))
	assert.False(t, isCursorBlink(loadedMsg{}))
}

type orderModel struct{ seen []int }

type stepMsg int

func (m orderModel) Init() tea.Cmd {
	emit := func(n int) tea.Cmd { return func() tea.Msg { return stepMsg(n) } }
	return tea.Batch(emit(1), tea.Batch(emit(2), emit(3)), emit(4))
}

func (m orderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if n, ok := msg.(stepMsg); ok {
		m.seen = append(m.seen, int(n))
		if n == 1 {
			return m, func() tea.Msg { return stepMsg(10) }
		}
	}
	return m, nil
}

func (m orderModel) View() string { return "" }

func TestDriver_SettlesDepthFirstInOrder(t *testing.T) {
	d := New(t, orderModel{})
	d.DrainInit()

	assert.Equal(t, []int{1, 10, 2, 3, 4}, d.Model.(orderModel).seen)
}
