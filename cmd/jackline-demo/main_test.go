package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/m4lu/jackline/ui"
)

func TestSubmitAppendsToLog(t *testing.T) {
	m := newModel()
	base := len(m.log.Lines())

	for _, r := range "hi" {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(model)
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(model)
	if cmd == nil {
		t.Fatal("enter should produce a submit command")
	}

	updated, _ = m.Update(cmd())
	m = updated.(model)

	if got := m.input.Value(); got != "" {
		t.Fatalf("input after submit: got %q, want empty", got)
	}
	lines := m.log.Lines()
	if len(lines) != base+1 {
		t.Fatalf("log lines after submit: got %d, want %d", len(lines), base+1)
	}
	if got, want := lines[len(lines)-1].Text, "you: hi"; got != want {
		t.Fatalf("last log line: got %q, want %q", got, want)
	}
}

func TestEmptySubmitIsDropped(t *testing.T) {
	m := newModel()
	base := len(m.log.Lines())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(model)
	if cmd == nil {
		t.Fatal("enter should produce a submit command")
	}
	if msg, ok := cmd().(ui.SubmitMsg); !ok || msg.Text != "" {
		t.Fatalf("submit payload: got %#v, want empty SubmitMsg", cmd())
	}

	updated, _ = m.Update(cmd())
	m = updated.(model)
	if got := len(m.log.Lines()); got != base {
		t.Fatalf("log lines after empty submit: got %d, want %d", got, base)
	}
}
