package buffer

import "strings"

// Key identifies a physical key.
type Key uint8

const (
	// KeyNone is the zero value and matches no input.
	KeyNone Key = iota

	// KeyRune is a printable character; the character itself travels in
	// KeyEvent.Rune.
	KeyRune

	KeyEnter
	KeyTab
	KeyEscape
	KeyBackspace
	KeyDelete

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyEscape:    "esc",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
}

// String returns the lowercase key name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Modifier is a bitmask of modifier keys held during a key press.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
)

// Has reports whether every modifier in mask is set.
func (m Modifier) Has(mask Modifier) bool { return m&mask == mask }

func (m Modifier) String() string {
	if m == 0 {
		return ""
	}
	parts := make([]string, 0, 3)
	if m.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}

// KeyEvent is a single decoded key press.
type KeyEvent struct {
	Key  Key
	Rune rune // set when Key is KeyRune
	Mod  Modifier
}

// Char returns the event for typing r with no modifiers.
func Char(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// String renders the event in terminal notation ("a", "ctrl+k", "alt+left").
func (e KeyEvent) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	if e.Mod == 0 {
		return name
	}
	return e.Mod.String() + "+" + name
}
