package textwrap

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Fragment is a run of text with the style it renders in. Fragment text may
// span several logical lines.
type Fragment struct {
	Style lipgloss.Style
	Text  string
}

// Line is one display row of a wrapped block.
type Line struct {
	Style lipgloss.Style
	Text  string
}

// Render returns the line's text with its style applied.
func (l Line) Render() string {
	return l.Style.Render(l.Text)
}

// Block wraps every fragment to width and stacks the results in input
// order. Fragment text splits on newlines first; empty logical lines are
// dropped.
func Block(frags []Fragment, width int, strip bool) []Line {
	var out []Line
	for _, f := range frags {
		for _, logical := range strings.Split(f.Text, "\n") {
			logical = strings.TrimSuffix(logical, "\r")
			if logical == "" {
				continue
			}
			for _, text := range Wrap(logical, width, strip) {
				out = append(out, Line{Style: f.Style, Text: text})
			}
		}
	}
	return out
}
