package buffer

import "unicode"

// MoveLeft moves the cursor one rune left. No-op at the start of the line.
func (b Buffer) MoveLeft() Buffer {
	if len(b.before) == 0 {
		return b
	}
	after := make([]rune, 0, len(b.after)+1)
	after = append(after, b.before[len(b.before)-1])
	after = append(after, b.after...)
	return Buffer{before: b.before[:len(b.before)-1], after: after}
}

// MoveRight moves the cursor one rune right. No-op at the end of the line.
func (b Buffer) MoveRight() Buffer {
	if len(b.after) == 0 {
		return b
	}
	before := cloneRunes(b.before, 1)
	return Buffer{before: append(before, b.after[0]), after: b.after[1:]}
}

// MoveHome moves the cursor to the start of the line.
func (b Buffer) MoveHome() Buffer {
	if len(b.before) == 0 {
		return b
	}
	after := make([]rune, 0, b.Len())
	after = append(after, b.before...)
	after = append(after, b.after...)
	return Buffer{after: after}
}

// MoveEnd moves the cursor to the end of the line.
func (b Buffer) MoveEnd() Buffer {
	if len(b.after) == 0 {
		return b
	}
	before := cloneRunes(b.before, len(b.after))
	return Buffer{before: append(before, b.after...)}
}

// Word motion rules (v0):
// - the rune adjacent to the cursor always moves, whatever its class
// - the scan over the rest stops at the first whitespace rune, which stays
//   on its original side of the split
// - with no whitespace the whole side moves

// MoveWordLeft jumps to the start of the previous word: the cursor lands
// immediately after the whitespace separating it from the word before, or at
// the start of the line when there is none.
func (b Buffer) MoveWordLeft() Buffer {
	if len(b.before) == 0 {
		return b
	}
	i := len(b.before) - 1 // b.before[i:] starts at the anchor rune
	for i > 0 && !unicode.IsSpace(b.before[i-1]) {
		i--
	}
	after := make([]rune, 0, len(b.before)-i+len(b.after))
	after = append(after, b.before[i:]...)
	after = append(after, b.after...)
	return Buffer{before: b.before[:i], after: after}
}

// MoveWordRight is the mirror scan forward over the text after the cursor.
func (b Buffer) MoveWordRight() Buffer {
	if len(b.after) == 0 {
		return b
	}
	i := 1 // b.after[:i] ends just past the anchor rune
	for i < len(b.after) && !unicode.IsSpace(b.after[i]) {
		i++
	}
	before := cloneRunes(b.before, i)
	return Buffer{before: append(before, b.after[:i]...), after: b.after[i:]}
}
