package cli

import (
	"context"
	"sort"
	"strings"

	"github.com/alexanderramin/trackflow/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// commandBar is the persistent text input at the bottom of the TUI.
// It handles command entry, autocomplete suggestions, and history navigation.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	focused bool

	history commandHistory

	commands    []string
	subcommands map[string][]string
}

func newCommandBar(state *SharedState) commandBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	commands, subcommands := commandNames(NewRootCmd(state.App))

	return commandBar{
		input:       ti,
		state:       state,
		commands:    commands,
		subcommands: subcommands,
	}
}

// commandNames lists the names and aliases of root's commands, plus the
// shell built-ins, and each command's subcommand names.
func commandNames(root *cobra.Command) ([]string, map[string][]string) {
	names := []string{"quit", "exit"}
	subs := make(map[string][]string)
	for _, c := range root.Commands() {
		if c.Hidden || c.Name() == "completion" || c.Name() == "shell" {
			continue
		}
		var children []string
		for _, sc := range c.Commands() {
			children = append(children, sc.Name())
		}
		for _, n := range append([]string{c.Name()}, c.Aliases...) {
			names = append(names, n)
			if len(children) > 0 {
				subs[n] = children
			}
		}
	}
	sort.Strings(names)
	return names, subs
}

// Focus gives focus to the command bar.
func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

// Blur removes focus from the command bar.
func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

func (c *commandBar) Focused() bool {
	return c.focused
}

// SetWidth updates the input width for terminal resizing.
func (c *commandBar) SetWidth(w int) {
	_, plain := c.promptPrefix()
	c.input.Width = w - lipgloss.Width(plain) - 1
}

// Update handles key messages when the command bar is focused.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		c.input.SetSuggestions(nil)
		if input == "" {
			return nil
		}
		c.history.add(input)
		return c.executeCommand(input)

	case tea.KeyUp:
		if line, ok := c.history.prev(); ok {
			c.setLine(line)
		}
		return nil

	case tea.KeyDown:
		c.setLine(c.history.next())
		return nil

	case tea.KeyEsc:
		c.Blur()
		return nil

	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		c.updateSuggestions()
		return cmd
	}
}

func (c *commandBar) setLine(line string) {
	c.input.SetValue(line)
	c.input.CursorEnd()
}

// UpdateNonKey handles non-key messages (e.g., cursor blink).
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// executeCommand runs a built-in or hands the line to cobra. Every cobra
// command is followed by a refresh since it may have changed the schedule.
func (c *commandBar) executeCommand(input string) tea.Cmd {
	args, err := splitShellArgs(input)
	if err != nil {
		return outputCmd(shellError(err))
	}
	if len(args) == 0 {
		return nil
	}

	switch strings.ToLower(args[0]) {
	case "quit", "exit":
		return func() tea.Msg { return quitMsg{} }
	}

	app := c.state.App
	activeTrackID := c.state.ActiveTrackID
	out := captureCobraOutput(context.Background(), app, args, activeTrackID)
	return tea.Batch(
		outputCmd(strings.TrimRight(out, "\n")),
		refreshCmd,
	)
}

func (c *commandBar) View() string {
	prompt, _ := c.promptPrefix()
	if !c.focused {
		return prompt + formatter.Dim("press : to type a command")
	}
	return prompt + c.input.View()
}

// promptPrefix renders "trackflow (shortid) ❯ ", dropping the ID outside a
// track. plain is the unstyled form used for width math.
func (c *commandBar) promptPrefix() (styled, plain string) {
	styled, plain = formatter.StylePurple.Render("trackflow"), "trackflow"
	if id := c.state.ActiveTrackID; id != "" {
		short := formatter.ShortID(id)
		styled += formatter.Dim(" (") + formatter.StyleGreen.Render(short) + formatter.Dim(")")
		plain += " (" + short + ")"
	}
	return styled + formatter.Dim(" ❯ "), plain + " ❯ "
}

// commandHistory keeps the lines entered this session, oldest first.
// Repeating the previous line does not add an entry.
type commandHistory struct {
	lines []string
	pos   int // len(lines) when not browsing
}

func (h *commandHistory) add(line string) {
	if n := len(h.lines); n == 0 || h.lines[n-1] != line {
		h.lines = append(h.lines, line)
	}
	h.pos = len(h.lines)
}

// prev steps back and reports the line to show.
func (h *commandHistory) prev() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.lines[h.pos], true
}

// next steps forward; past the newest entry it yields an empty line.
func (h *commandHistory) next() string {
	if h.pos >= len(h.lines)-1 {
		h.pos = len(h.lines)
		return ""
	}
	h.pos++
	return h.lines[h.pos]
}

// ── suggestions ──────────────────────────────────────────────────────────────

// updateSuggestions offers whole-line completions for the first two words.
func (c *commandBar) updateSuggestions() {
	c.input.SetSuggestions(c.suggest(c.input.Value()))
}

func (c *commandBar) suggest(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Fields(text)
	trailingSpace := strings.HasSuffix(text, " ")

	if len(parts) == 1 && !trailingSpace {
		return filterSuggestions(c.commands, "", parts[0])
	}

	if len(parts) == 1 || (len(parts) == 2 && !trailingSpace) {
		prefix := ""
		if len(parts) == 2 {
			prefix = parts[1]
		}
		if subs, ok := c.subcommands[strings.ToLower(parts[0])]; ok {
			return filterSuggestions(subs, parts[0]+" ", prefix)
		}
	}
	return nil
}

// filterSuggestions returns lead+candidate for every candidate starting
// with prefix.
func filterSuggestions(candidates []string, lead, prefix string) []string {
	var out []string
	lp := strings.ToLower(prefix)
	for _, s := range candidates {
		if strings.HasPrefix(s, lp) {
			out = append(out, lead+s)
		}
	}
	return out
}
