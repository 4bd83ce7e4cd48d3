// Package teatest runs bubbletea models in tests without a tea.Program.
//
// A Driver feeds messages to Update itself and settles every Cmd that comes
// back, including batches and the messages those produce, before returning.
// Tests can therefore press a key and inspect the resulting model directly.
//
// Cmds that wait on timers, like the bubbles cursor blink, are abandoned
// after a short deadline and counted in Dropped.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// MaxDrainDepth caps how many Cmd generations one Send may follow.
const MaxDrainDepth = 100

// cmdTimeout is the deadline for a single Cmd. Store reads and message
// factories return well within it; the cursor blink takes about half a
// second.
const cmdTimeout = 10 * time.Millisecond

// Driver wraps a tea.Model for synchronous tests.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting records a tea.QuitMsg. The model still receives it, but
	// nothing is sent afterwards.
	Quitting bool

	// Dropped counts Cmds abandoned at the deadline.
	Dropped int
}

// Option adjusts a Driver before the first message.
type Option func(*Driver)

// New returns a Driver for model. Init is not run until DrainInit.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize delivers a WindowSizeMsg of w x h. Any Cmd it returns is
// discarded.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// DrainInit runs the model's Init Cmd to completion.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.settle(d.Model.Init())
}

// Send delivers msg and settles whatever it triggers.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.settle(cmd)
}

// SendKey delivers a key message.
func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

func (d *Driver) press(k tea.KeyType) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: k})
}

// PressKey types a single rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter()     { d.T.Helper(); d.press(tea.KeyEnter) }
func (d *Driver) PressEsc()       { d.T.Helper(); d.press(tea.KeyEsc) }
func (d *Driver) PressCtrlC()     { d.T.Helper(); d.press(tea.KeyCtrlC) }
func (d *Driver) PressUp()        { d.T.Helper(); d.press(tea.KeyUp) }
func (d *Driver) PressDown()      { d.T.Helper(); d.press(tea.KeyDown) }
func (d *Driver) PressBackspace() { d.T.Helper(); d.press(tea.KeyBackspace) }

// Type types s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// TypeLine types s, then presses Enter.
func (d *Driver) TypeLine(s string) {
	d.T.Helper()
	d.Type(s)
	d.PressEnter()
}

// View is the model's current frame, styling included.
func (d *Driver) View() string {
	return d.Model.View()
}

// PlainView is View without ANSI sequences.
func (d *Driver) PlainView() string {
	return ansi.Strip(d.View())
}

func (d *Driver) ViewContains(s string) bool {
	return strings.Contains(d.PlainView(), s)
}

// pending is a Cmd waiting to run, tagged with how many generations deep
// it sits below the Cmd that settle started from.
type pending struct {
	cmd   tea.Cmd
	depth int
}

// settle runs cmd and everything it leads to, in order. Batches are
// expanded in place so their Cmds run before anything queued after them.
func (d *Driver) settle(cmd tea.Cmd) {
	d.T.Helper()
	queue := []pending{{cmd: cmd}}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next.cmd == nil {
			continue
		}
		if next.depth >= MaxDrainDepth {
			d.T.Logf("teatest: gave up after %d nested Cmds", MaxDrainDepth)
			continue
		}

		msg, ok := runCmd(next.cmd)
		switch {
		case !ok:
			d.Dropped++
			continue
		case msg == nil, isCursorBlink(msg):
			continue
		}

		if batch, ok := msg.(tea.BatchMsg); ok {
			expanded := make([]pending, 0, len(batch)+len(queue))
			for _, c := range batch {
				expanded = append(expanded, pending{cmd: c, depth: next.depth + 1})
			}
			queue = append(expanded, queue...)
			continue
		}

		var follow tea.Cmd
		d.Model, follow = d.Model.Update(msg)
		if _, quit := msg.(tea.QuitMsg); quit {
			d.Quitting = true
			return
		}
		queue = append([]pending{{cmd: follow, depth: next.depth + 1}}, queue...)
	}
}

// runCmd calls cmd on its own goroutine; ok is false when it misses
// cmdTimeout.
func runCmd(cmd tea.Cmd) (msg tea.Msg, ok bool) {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg = <-done:
		return msg, true
	case <-time.After(cmdTimeout):
		return nil, false
	}
}

// isCursorBlink matches the unexported blink messages of bubbles/cursor by
// type name. Feeding them back would start another timer Cmd.
func isCursorBlink(msg tea.Msg) bool {
	name := strings.ToLower(fmt.Sprintf("%T", msg))
	return strings.Contains(name, "blink")
}
