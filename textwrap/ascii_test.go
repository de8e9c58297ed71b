package textwrap

import (
	"strings"
	"testing"
)

func TestIsPlainASCII(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"foo bar", true},
		{"", true},
		{"~!@# $%", true},
		{"tab\there", false},
		{"newline\n", false},
		{"你好", false},
		{"café", false},
		{"del\x7f", false},
	}

	for _, tc := range cases {
		if got := isPlainASCII(tc.text); got != tc.want {
			t.Fatalf("isPlainASCII(%q)=%v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestSplitASCII_BreaksAtLastSpaceInWindow(t *testing.T) {
	assertLines(t, splitASCII("foo bar baz", 5, true), []string{"foo", "bar", "baz"})
	assertLines(t, splitASCII("foo bar baz", 5, false), []string{"foo", " bar", " baz"})
}

func TestSplitASCII_HardCutWithoutSpace(t *testing.T) {
	assertLines(t, splitASCII("abcdef", 3, false), []string{"abc", "def"})
	assertLines(t, splitASCII("foobar bar baz", 5, true), []string{"fooba", "r bar", "baz"})
}

func TestSplitASCII_SpaceAtWindowStartMakesProgress(t *testing.T) {
	// A space at offset zero is no usable break; cutting there would
	// produce an empty line and loop forever.
	assertLines(t, splitASCII(" abcd", 3, false), []string{" ab", "cd"})
}

func TestSplitASCII_RoundTripWithoutStrip(t *testing.T) {
	inputs := []string{"foo bar baz", "  x yz", "foobar bar baz", "ab   cd "}
	for _, input := range inputs {
		for width := 1; width <= 6; width++ {
			if got := strings.Join(splitASCII(input, width, false), ""); got != input {
				t.Fatalf("splitASCII(%q, %d) concat=%q, want exact round-trip", input, width, got)
			}
		}
	}
}

func TestWrapPaths_BreakAtTheSameSpaces(t *testing.T) {
	// In strip mode the two paths must agree on break positions. They
	// disagree only on which side of a break keeps a surviving space (the
	// general path leaves it trailing), so lines compare after trimming
	// trailing spaces.
	inputs := []string{
		"foo bar baz",
		"foobar bar baz",
		"aaaa b",
		"a bb ccc dddd",
		"ab   cd",
		"one two three four",
	}
	for _, input := range inputs {
		for width := 2; width <= 7; width++ {
			ascii := splitASCII(input, width, true)
			general := splitWords(input, width, true)
			if len(ascii) != len(general) {
				t.Fatalf("input %q width %d: ascii %q, general %q", input, width, ascii, general)
			}
			for i := range ascii {
				a := strings.TrimRight(ascii[i], " ")
				g := strings.TrimRight(general[i], " ")
				if a != g {
					t.Fatalf("input %q width %d line %d: ascii %q, general %q", input, width, i, ascii[i], general[i])
				}
			}
		}
	}
}

func TestWrapPaths_OverlongWordsDivergeMidLine(t *testing.T) {
	// When an overlong word starts mid-line, the general path fills the
	// open line from the word's head while the ASCII path breaks at the
	// window's last space, so the two part ways on break positions. Wrap
	// always routes plain-ASCII text to splitASCII, which keeps the split
	// unobservable from outside; both outputs are pinned here so neither
	// algorithm drifts toward the other.
	const text = "df fgebfdg gabfb hcbce geaceh"

	assertLines(t, splitASCII(text, 3, true),
		[]string{"df", "fge", "bfd", "g", "gab", "fb", "hcb", "ce", "gea", "ceh"})
	assertLines(t, splitWords(text, 3, true),
		[]string{"df ", "fge", "bfd", "g g", "abf", "b h", "cbc", "e g", "eac", "eh"})

	assertLines(t, Wrap(text, 3, true),
		[]string{"df", "fge", "bfd", "g", "gab", "fb", "hcb", "ce", "gea", "ceh"})
}
