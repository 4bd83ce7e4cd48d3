package cli

import (
	"fmt"

	"github.com/alexanderramin/trackflow/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// outputPanel holds command and form output in place of the active view
// until the next non-scroll key.
type outputPanel struct {
	text string
	vp   viewport.Model
}

func newOutputPanel() outputPanel {
	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return outputPanel{vp: vp}
}

func (p *outputPanel) Active() bool { return p.text != "" }

func (p *outputPanel) Show(text string, width, height int) {
	p.text = text
	p.vp.SetContent(text)
	p.Resize(width, height)
	p.vp.GotoTop()
}

func (p *outputPanel) Clear() { p.text = "" }

func (p *outputPanel) Resize(width, height int) {
	p.vp.Width = width
	p.vp.Height = height
}

func (p *outputPanel) Scroll(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return cmd
}

// scrollable reports whether the text is taller than the panel.
func (p *outputPanel) scrollable() bool {
	return p.vp.Height > 0 && p.vp.TotalLineCount() > p.vp.Height
}

// View renders the viewport once the terminal size is known, the raw text
// before that.
func (p *outputPanel) View() string {
	if p.vp.Height > 0 {
		return p.vp.View()
	}
	return p.text
}

func (p *outputPanel) Hints() []string {
	if !p.scrollable() {
		return nil
	}
	pos := fmt.Sprintf("[%d%%]", int(p.vp.ScrollPercent()*100))
	switch {
	case p.vp.AtTop():
		pos = "[TOP]"
	case p.vp.AtBottom():
		pos = "[END]"
	}
	return []string{
		formatter.Dim(pos),
		formatter.Dim("↑↓ pgup/pgdn: scroll"),
		formatter.Dim("any key: dismiss"),
	}
}

// isScrollKey reports keys that move through the output instead of
// dismissing it.
func isScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}
