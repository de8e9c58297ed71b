package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/m4lu/jackline/buffer"
)

// specialKeys maps terminal key names to edit-engine events. Ctrl+Home and
// Ctrl+End normalize to plain Home/End: on a single line, document start is
// line start.
var specialKeys = map[string]buffer.KeyEvent{
	"backspace": {Key: buffer.KeyBackspace},
	"delete":    {Key: buffer.KeyDelete},
	"home":      {Key: buffer.KeyHome},
	"end":       {Key: buffer.KeyEnd},
	"left":      {Key: buffer.KeyLeft},
	"right":     {Key: buffer.KeyRight},
	"up":        {Key: buffer.KeyUp},
	"down":      {Key: buffer.KeyDown},
	"enter":     {Key: buffer.KeyEnter},
	"tab":       {Key: buffer.KeyTab},
	"esc":       {Key: buffer.KeyEscape},

	"ctrl+a": {Key: buffer.KeyRune, Rune: 'a', Mod: buffer.ModCtrl},
	"ctrl+b": {Key: buffer.KeyRune, Rune: 'b', Mod: buffer.ModCtrl},
	"ctrl+e": {Key: buffer.KeyRune, Rune: 'e', Mod: buffer.ModCtrl},
	"ctrl+f": {Key: buffer.KeyRune, Rune: 'f', Mod: buffer.ModCtrl},
	"ctrl+k": {Key: buffer.KeyRune, Rune: 'k', Mod: buffer.ModCtrl},
	"ctrl+u": {Key: buffer.KeyRune, Rune: 'u', Mod: buffer.ModCtrl},

	"ctrl+left":  {Key: buffer.KeyLeft, Mod: buffer.ModCtrl},
	"ctrl+right": {Key: buffer.KeyRight, Mod: buffer.ModCtrl},
	"alt+left":   {Key: buffer.KeyLeft, Mod: buffer.ModAlt},
	"alt+right":  {Key: buffer.KeyRight, Mod: buffer.ModAlt},

	"ctrl+home": {Key: buffer.KeyHome},
	"ctrl+end":  {Key: buffer.KeyEnd},
}

// keyEvents translates a terminal key message into edit-engine events. A
// rune message can carry several typed characters at once; each becomes its
// own event. Keys with no translation return nil.
func keyEvents(msg tea.KeyMsg) []buffer.KeyEvent {
	switch msg.Type {
	case tea.KeyRunes:
		evs := make([]buffer.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			ev := buffer.Char(r)
			if msg.Alt {
				ev.Mod = buffer.ModAlt
			}
			evs = append(evs, ev)
		}
		return evs
	case tea.KeySpace:
		ev := buffer.Char(' ')
		if msg.Alt {
			ev.Mod = buffer.ModAlt
		}
		return []buffer.KeyEvent{ev}
	}
	if ev, ok := specialKeys[msg.String()]; ok {
		return []buffer.KeyEvent{ev}
	}
	return nil
}
