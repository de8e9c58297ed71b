package buffer

// InsertRune inserts r at the cursor.
func (b Buffer) InsertRune(r rune) Buffer {
	before := cloneRunes(b.before, 1)
	return Buffer{before: append(before, r), after: b.after}
}

// InsertText inserts s at the cursor.
func (b Buffer) InsertText(s string) Buffer {
	rs := []rune(s)
	if len(rs) == 0 {
		return b
	}
	before := cloneRunes(b.before, len(rs))
	return Buffer{before: append(before, rs...), after: b.after}
}

// DeleteBackward applies backspace semantics: the rune immediately before
// the cursor is removed. No-op at the start of the line.
func (b Buffer) DeleteBackward() Buffer {
	if len(b.before) == 0 {
		return b
	}
	return Buffer{before: b.before[:len(b.before)-1], after: b.after}
}

// DeleteForward removes the rune immediately after the cursor. No-op at the
// end of the line.
func (b Buffer) DeleteForward() Buffer {
	if len(b.after) == 0 {
		return b
	}
	return Buffer{before: b.before, after: b.after[1:]}
}

// KillToEnd discards everything after the cursor. The killed text is gone;
// there is no kill ring.
func (b Buffer) KillToEnd() Buffer {
	return Buffer{before: b.before}
}

// KillToStart discards everything before the cursor.
func (b Buffer) KillToStart() Buffer {
	return Buffer{after: b.after}
}
