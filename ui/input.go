package ui

import (
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/ansi"

	"github.com/m4lu/jackline/buffer"
	"github.com/m4lu/jackline/internal/grapheme"
	"github.com/m4lu/jackline/textwrap"
)

// Input is a single-line text input whose view wraps to the widget width.
// Edit state lives in a buffer.Buffer; every transform goes through the edit
// tables, so hosts see the same bindings the buffer package tests.
type Input struct {
	prompt    string
	style     Style
	keymap    KeyMap
	clipboard Clipboard

	buf     buffer.Buffer
	width   int
	focused bool
}

// NewInput returns a focused Input. Zero-value config fields fall back to
// defaults; the width starts at 80 until a window size arrives.
func NewInput(cfg InputConfig) Input {
	if reflect.DeepEqual(cfg.Style, Style{}) {
		cfg.Style = DefaultStyle()
	}
	if reflect.DeepEqual(cfg.KeyMap, KeyMap{}) {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = SystemClipboard{}
	}
	return Input{
		prompt:    cfg.Prompt,
		style:     cfg.Style,
		keymap:    cfg.KeyMap,
		clipboard: cfg.Clipboard,
		buf:       buffer.New(cfg.Text, ""),
		width:     80,
		focused:   true,
	}
}

func (m Input) Init() tea.Cmd { return nil }

// Buffer returns the current edit state.
func (m Input) Buffer() buffer.Buffer { return m.buf }

// Value returns the full line content.
func (m Input) Value() string { return m.buf.String() }

// SetValue replaces the content, cursor at the end.
func (m Input) SetValue(s string) Input {
	m.buf = buffer.New(s, "")
	return m
}

// Reset clears the input.
func (m Input) Reset() Input {
	m.buf = buffer.New("", "")
	return m
}

// SetWidth sets the total width in cells, prompt included.
func (m Input) SetWidth(w int) Input {
	if w < 1 {
		w = 1
	}
	m.width = w
	return m
}

func (m Input) Focus() Input {
	m.focused = true
	return m
}

func (m Input) Blur() Input {
	m.focused = false
	return m
}

func (m Input) Focused() bool { return m.focused }

func (m Input) Update(msg tea.Msg) (Input, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetWidth(msg.Width), nil

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}

		// Paste events insert literal text and never trigger shortcuts.
		if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
			m.buf = m.buf.InsertText(normalizePaste(string(msg.Runes)))
			return m, nil
		}

		if evs := keyEvents(msg); len(evs) > 0 {
			handled := false
			for _, ev := range evs {
				var ok bool
				m.buf, ok = buffer.Handle(ev, m.buf)
				handled = handled || ok
			}
			if handled {
				return m, nil
			}
		}

		// The edit tables passed; try the widget's own bindings.
		switch {
		case key.Matches(msg, m.keymap.Submit):
			text := m.buf.String()
			m.buf = buffer.New("", "")
			return m, submitCmd(text)
		case key.Matches(msg, m.keymap.Copy):
			m.copyLine()
			return m, nil
		case key.Matches(msg, m.keymap.Cut):
			m.copyLine()
			return m.Reset(), nil
		case key.Matches(msg, m.keymap.Paste):
			if s, err := m.clipboard.ReadText(); err == nil && s != "" {
				m.buf = m.buf.InsertText(normalizePaste(s))
			}
			return m, nil
		}
	}
	return m, nil
}

// View renders the prompt and the wrapped line content. Continuation rows
// indent past the prompt so text columns stay aligned.
func (m Input) View() string {
	prompt := m.style.Prompt.Render(m.prompt)
	promptW := ansi.PrintableRuneWidth(prompt)
	wrapW := m.width - promptW
	if wrapW < 1 {
		wrapW = 1
	}

	// strip=false keeps the wrapped lines an exact partition of the
	// content, so rune offsets map straight onto rows and columns.
	lines := textwrap.Wrap(m.buf.String(), wrapW, false)
	row, col := locateCursor(lines, m.buf.Pos())

	indent := strings.Repeat(" ", promptW)
	var sb strings.Builder
	for i, line := range lines {
		if i == 0 {
			sb.WriteString(prompt)
		} else {
			sb.WriteByte('\n')
			sb.WriteString(indent)
		}
		if m.focused && i == row {
			sb.WriteString(m.lineWithCursor(line, col))
		} else if line != "" {
			sb.WriteString(m.style.Text.Render(line))
		}
	}
	return sb.String()
}

// locateCursor maps a rune offset into wrapped lines to a row and a rune
// column. A cursor sitting exactly on a wrap boundary lands at the start of
// the following row, where the next typed rune would appear; the end of the
// last row keeps it.
func locateCursor(lines []string, pos int) (row, col int) {
	last := len(lines) - 1
	for i, line := range lines {
		n := utf8.RuneCountInString(line)
		if pos < n || (pos == n && i == last) {
			return i, pos
		}
		pos -= n
	}
	return 0, 0
}

// lineWithCursor renders one row with the cursor on the cluster holding
// rune column col, or on a trailing blank cell at end of line.
func (m Input) lineWithCursor(line string, col int) string {
	var before, after strings.Builder
	cursor := ""
	seen := 0
	for _, cluster := range grapheme.Split(line) {
		n := utf8.RuneCountInString(cluster)
		switch {
		case cursor == "" && col < seen+n:
			cursor = cluster
		case cursor == "":
			before.WriteString(cluster)
		default:
			after.WriteString(cluster)
		}
		seen += n
	}
	if cursor == "" {
		cursor = " "
	}

	var sb strings.Builder
	if before.Len() > 0 {
		sb.WriteString(m.style.Text.Render(before.String()))
	}
	sb.WriteString(m.style.Cursor.Render(cursor))
	if after.Len() > 0 {
		sb.WriteString(m.style.Text.Render(after.String()))
	}
	return sb.String()
}

// copyLine puts the whole line on the clipboard. There is no selection, so
// copy and cut act on the full content; empty lines skip the write.
func (m Input) copyLine() {
	if s := m.buf.String(); s != "" {
		_ = m.clipboard.WriteText(s)
	}
}

// normalizePaste flattens newlines from external sources into spaces; the
// input holds a single line.
func normalizePaste(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
