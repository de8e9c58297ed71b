package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/m4lu/jackline/textwrap"
)

// Log is a scrollback view of styled message fragments, wrapped to its
// width. Pushing a fragment re-wraps and follows the bottom; resizing
// re-wraps everything to the new width.
type Log struct {
	viewport viewport.Model
	frags    []textwrap.Fragment
}

func NewLog(width, height int) Log {
	if width < 1 {
		width = 1
	}
	if height < 0 {
		height = 0
	}
	return Log{viewport: viewport.New(width, height)}
}

// Push appends a fragment to the scrollback.
func (l Log) Push(frag textwrap.Fragment) Log {
	l.frags = append(l.frags, frag)
	l.refresh()
	l.viewport.GotoBottom()
	return l
}

// SetSize re-wraps the scrollback for a new viewport size.
func (l Log) SetSize(width, height int) Log {
	if width < 1 {
		width = 1
	}
	if height < 0 {
		height = 0
	}
	l.viewport.Width = width
	l.viewport.Height = height
	l.refresh()
	l.viewport.GotoBottom()
	return l
}

// Lines returns the wrapped display lines at the current width.
func (l Log) Lines() []textwrap.Line {
	return textwrap.Block(l.frags, l.viewport.Width, true)
}

// Update forwards scrolling input to the viewport.
func (l Log) Update(msg tea.Msg) (Log, tea.Cmd) {
	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return l, cmd
}

func (l Log) View() string { return l.viewport.View() }

func (l *Log) refresh() {
	block := textwrap.Block(l.frags, l.viewport.Width, true)
	rendered := make([]string, 0, len(block))
	for _, line := range block {
		rendered = append(rendered, line.Render())
	}
	l.viewport.SetContent(strings.Join(rendered, "\n"))
}
