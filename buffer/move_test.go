package buffer

import "testing"

func TestBuffer_MoveLeftRight_BoundsAndOrder(t *testing.T) {
	b := New("ab", "cd")

	b = b.MoveRight()
	assertBuffer(t, b, "abc", "d")

	b = b.MoveLeft().MoveLeft()
	assertBuffer(t, b, "a", "bcd")

	// No-ops at either end of the line.
	b = New("", "x").MoveLeft()
	assertBuffer(t, b, "", "x")
	b = New("x", "").MoveRight()
	assertBuffer(t, b, "x", "")
}

func TestBuffer_MoveHomeEnd(t *testing.T) {
	b := New("abc", "def").MoveHome()
	assertBuffer(t, b, "", "abcdef")

	b = b.MoveEnd()
	assertBuffer(t, b, "abcdef", "")

	// Idempotent at the boundaries.
	assertBuffer(t, b.MoveEnd(), "abcdef", "")
	assertBuffer(t, New("", "x").MoveHome(), "", "x")
}

func TestBuffer_HomeThenEnd_CollectsWholeLine(t *testing.T) {
	cases := []struct {
		before string
		after  string
	}{
		{before: "abc", after: "def"},
		{before: "", after: "xyz"},
		{before: "one two", after: ""},
		{before: "界テ", after: "πê"},
	}

	for _, tc := range cases {
		got := New(tc.before, tc.after).MoveHome().MoveEnd()
		if want := tc.before + tc.after; got.Before() != want || got.After() != "" {
			t.Fatalf("home+end on (%q,%q): got (%q,%q), want (%q,%q)",
				tc.before, tc.after, got.Before(), got.After(), want, "")
		}
	}
}

func TestBuffer_MoveWordLeft_LandsAfterSeparator(t *testing.T) {
	b := New("hello world fo", "o bar").MoveWordLeft()
	assertBuffer(t, b, "hello world ", "foo bar")
}

func TestBuffer_MoveWordLeft_NoWhitespaceMovesAll(t *testing.T) {
	b := New("foo", "bar").MoveWordLeft()
	assertBuffer(t, b, "", "foobar")
}

func TestBuffer_MoveWordLeft_AnchorAlwaysMoves(t *testing.T) {
	// The rune next to the cursor moves even when it is whitespace; the
	// backward scan then stops at the next whitespace it meets.
	b := New("ab  ", "").MoveWordLeft()
	assertBuffer(t, b, "ab ", " ")

	b = New("ab ", "").MoveWordLeft()
	assertBuffer(t, b, "", "ab ")
}

func TestBuffer_MoveWordRight_MirrorScan(t *testing.T) {
	b := New("hello ", "world foo").MoveWordRight()
	assertBuffer(t, b, "hello world", " foo")

	b = New("", "foo").MoveWordRight()
	assertBuffer(t, b, "foo", "")
}

func TestBuffer_WordMotion_EmptySidesAreNoOps(t *testing.T) {
	b := New("", "x").MoveWordLeft()
	assertBuffer(t, b, "", "x")

	b = New("x", "").MoveWordRight()
	assertBuffer(t, b, "x", "")
}
