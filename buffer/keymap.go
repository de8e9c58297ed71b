package buffer

// Transform rewrites a Buffer. Transforms are pure; the input Buffer is
// never mutated.
type Transform func(Buffer) Buffer

// Pattern identifies which key events match a binding.
type Pattern struct {
	Key     Key      // specific key, ignored when AnyRune is set
	Rune    rune     // specific character (with Key == KeyRune), or 0
	AnyRune bool     // match any printable character
	Mod     Modifier // the event must carry exactly these modifiers
}

// Matches reports whether ev satisfies the pattern.
func (p Pattern) Matches(ev KeyEvent) bool {
	if ev.Mod != p.Mod {
		return false
	}
	if p.AnyRune {
		return ev.Key == KeyRune
	}
	if ev.Key != p.Key {
		return false
	}
	if p.Key == KeyRune && ev.Rune != p.Rune {
		return false
	}
	return true
}

// Binding pairs a Pattern with the edit it performs. Apply receives the
// event so rune inserts can carry the typed character.
type Binding struct {
	Pattern Pattern
	Apply   func(KeyEvent, Buffer) Buffer
}

// Table is an ordered list of bindings. Dispatch tries them in order; the
// first matching pattern wins.
type Table []Binding

// Lookup returns the transform bound to ev, or ok=false when no binding
// matches. A false result is not an error: the host is expected to try its
// next table or ignore the event.
func (t Table) Lookup(ev KeyEvent) (Transform, bool) {
	for _, b := range t {
		if b.Pattern.Matches(ev) {
			apply := b.Apply
			return func(buf Buffer) Buffer { return apply(ev, buf) }, true
		}
	}
	return nil, false
}

// Apply runs ev against the table. The Buffer comes back unchanged together
// with ok=false when the event is not bound.
func (t Table) Apply(ev KeyEvent, buf Buffer) (Buffer, bool) {
	tr, ok := t.Lookup(ev)
	if !ok {
		return buf, false
	}
	return tr(buf), true
}

func do(t Transform) func(KeyEvent, Buffer) Buffer {
	return func(_ KeyEvent, b Buffer) Buffer { return t(b) }
}

func insertEventRune(ev KeyEvent, b Buffer) Buffer { return b.InsertRune(ev.Rune) }

// BaseTable binds plain navigation and editing: arrows, Home/End,
// Backspace/Delete, and printable character insertion. Modified keys fall
// through so EmacsTable can claim them.
func BaseTable() Table {
	return Table{
		{Pattern: Pattern{Key: KeyBackspace}, Apply: do(Buffer.DeleteBackward)},
		{Pattern: Pattern{Key: KeyDelete}, Apply: do(Buffer.DeleteForward)},
		{Pattern: Pattern{Key: KeyHome}, Apply: do(Buffer.MoveHome)},
		{Pattern: Pattern{Key: KeyEnd}, Apply: do(Buffer.MoveEnd)},
		{Pattern: Pattern{Key: KeyLeft}, Apply: do(Buffer.MoveLeft)},
		{Pattern: Pattern{Key: KeyRight}, Apply: do(Buffer.MoveRight)},
		{Pattern: Pattern{AnyRune: true}, Apply: insertEventRune},
	}
}

// EmacsTable binds the Ctrl-modified readline shortcuts. Word motion also
// answers to alt+arrows; terminals disagree on which modifier arrow
// sequences carry.
func EmacsTable() Table {
	return Table{
		{Pattern: Pattern{Key: KeyRune, Rune: 'a', Mod: ModCtrl}, Apply: do(Buffer.MoveHome)},
		{Pattern: Pattern{Key: KeyRune, Rune: 'e', Mod: ModCtrl}, Apply: do(Buffer.MoveEnd)},
		{Pattern: Pattern{Key: KeyRune, Rune: 'k', Mod: ModCtrl}, Apply: do(Buffer.KillToEnd)},
		{Pattern: Pattern{Key: KeyRune, Rune: 'u', Mod: ModCtrl}, Apply: do(Buffer.KillToStart)},
		{Pattern: Pattern{Key: KeyRune, Rune: 'f', Mod: ModCtrl}, Apply: do(Buffer.MoveRight)},
		{Pattern: Pattern{Key: KeyRune, Rune: 'b', Mod: ModCtrl}, Apply: do(Buffer.MoveLeft)},
		{Pattern: Pattern{Key: KeyLeft, Mod: ModCtrl}, Apply: do(Buffer.MoveWordLeft)},
		{Pattern: Pattern{Key: KeyRight, Mod: ModCtrl}, Apply: do(Buffer.MoveWordRight)},
		{Pattern: Pattern{Key: KeyLeft, Mod: ModAlt}, Apply: do(Buffer.MoveWordLeft)},
		{Pattern: Pattern{Key: KeyRight, Mod: ModAlt}, Apply: do(Buffer.MoveWordRight)},
	}
}

// Handle tries the base table, then the emacs table. ok=false means neither
// recognizes the event; the Buffer comes back unchanged so the host can pass
// the event along.
func Handle(ev KeyEvent, buf Buffer) (Buffer, bool) {
	if next, ok := BaseTable().Apply(ev, buf); ok {
		return next, true
	}
	return EmacsTable().Apply(ev, buf)
}
