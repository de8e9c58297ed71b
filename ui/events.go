package ui

import tea "github.com/charmbracelet/bubbletea"

// SubmitMsg is emitted when the user submits the input line. The Input
// resets itself before the message is delivered.
type SubmitMsg struct {
	Text string
}

func submitCmd(text string) tea.Cmd {
	return func() tea.Msg { return SubmitMsg{Text: text} }
}
