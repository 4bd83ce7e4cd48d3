package cli

import tea "github.com/charmbracelet/bubbletea"

// Messages views send to appModel.

type pushViewMsg struct {
	view View
}

// refreshViewMsg makes every view on the stack reload from the service.
type refreshViewMsg struct{}

// cmdOutputMsg replaces the active view with text until the next key.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg closes the open form, then runs nextCmd and a refresh.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

type quitMsg struct{}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func outputCmd(text string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: text} }
}

func refreshCmd() tea.Msg { return refreshViewMsg{} }
