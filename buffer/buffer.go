package buffer

// Buffer is the pure edit state: the runes before the cursor and the runes
// after it. The cursor itself is implicit at the split point, so the full
// line content is always Before + After.
//
// Transforms never mutate their receiver. Backing slices are copied whenever
// they grow, so transform results never alias each other's storage.
type Buffer struct {
	before []rune
	after  []rune
}

// New returns a Buffer holding before and after with the cursor between them.
func New(before, after string) Buffer {
	return Buffer{before: []rune(before), after: []rune(after)}
}

// Before returns the text before the cursor.
func (b Buffer) Before() string { return string(b.before) }

// After returns the text after the cursor.
func (b Buffer) After() string { return string(b.after) }

// String returns the full line content.
func (b Buffer) String() string { return string(b.before) + string(b.after) }

// Len returns the total rune count.
func (b Buffer) Len() int { return len(b.before) + len(b.after) }

// Pos returns the cursor position as a rune offset into String.
func (b Buffer) Pos() int { return len(b.before) }

func cloneRunes(rs []rune, extra int) []rune {
	out := make([]rune, len(rs), len(rs)+extra)
	copy(out, rs)
	return out
}
