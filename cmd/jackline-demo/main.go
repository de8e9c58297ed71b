package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/m4lu/jackline/textwrap"
	"github.com/m4lu/jackline/ui"
)

type model struct {
	log   ui.Log
	input ui.Input
	style ui.Style
}

func newModel() model {
	st := ui.DefaultStyle()
	m := model{
		log:   ui.NewLog(80, 22),
		input: ui.NewInput(ui.InputConfig{Prompt: "> ", Style: st}),
		style: st,
	}
	m.log = m.log.Push(textwrap.Fragment{
		Style: st.Notice,
		Text:  "Type a message and press enter. PgUp/PgDn or the mouse wheel scroll. Ctrl+C quits.",
	})
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input = m.input.SetWidth(msg.Width)
		m.log = m.log.SetSize(msg.Width, logHeight(msg.Height))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.log, cmd = m.log.Update(msg)
			return m, cmd
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.log, cmd = m.log.Update(msg)
		return m, cmd

	case ui.SubmitMsg:
		if msg.Text != "" {
			m.log = m.log.Push(textwrap.Fragment{Style: m.style.Sender, Text: "you: " + msg.Text})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.log.View() + "\n" + m.input.View()
}

func logHeight(total int) int {
	h := total - 2
	if h < 0 {
		return 0
	}
	return h
}

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
