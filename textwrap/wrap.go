package textwrap

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/m4lu/jackline/internal/grapheme"
)

// Newlines never survive wrapping. Block splits logical lines off before
// calling Wrap; stray newline bytes in direct calls are dropped here.
var newlineStripper = strings.NewReplacer("\r", "", "\n", "")

// Wrap folds text into lines of at most width cells. Breaks prefer word
// boundaries; a word wider than a whole line is split at grapheme-cluster
// boundaries instead. With strip set, whitespace that would start a wrapped
// line is dropped.
//
// Text that already fits comes back as a single unchanged line. Malformed
// UTF-8 bytes are dropped. The one width violation: a single grapheme
// cluster wider than width sits alone on an overflowing line, because no
// smaller split unit exists.
func Wrap(text string, width int, strip bool) []string {
	if width < 1 {
		width = 1
	}
	text = newlineStripper.Replace(strings.ToValidUTF8(text, ""))
	if displayWidth(text) <= width {
		return []string{text}
	}
	if isPlainASCII(text) {
		return splitASCII(text, width, strip)
	}
	return splitWords(text, width, strip)
}

// splitWords is the general path: segment text into word tokens and fold
// them greedily into lines. Whitespace runs are placed one rune at a time so
// a break can land inside them.
func splitWords(text string, width int, strip bool) []string {
	var lines []string
	var current strings.Builder
	curW := 0

	flush := func() {
		lines = append(lines, current.String())
		current.Reset()
		curW = 0
	}

	place := func(token string, w int, blank bool) {
		switch {
		case curW+w <= width:
			if blank && strip && curW == 0 {
				return
			}
			current.WriteString(token)
			curW += w
		case w > width:
			// The token cannot fit even an empty line; fall back to
			// cluster splitting. closed[0] finishes the current line,
			// the tail fragment keeps accumulating.
			closed, rest := splitClusters(token, width-curW, width)
			if len(closed) > 0 {
				current.WriteString(closed[0])
				flush()
				lines = append(lines, closed[1:]...)
			}
			current.WriteString(rest)
			curW = displayWidth(rest)
		default:
			flush()
			if blank && strip {
				return
			}
			current.WriteString(token)
			curW = w
		}
	}

	state := -1
	var token string
	for len(text) > 0 {
		token, text, state = uniseg.FirstWordInString(text, state)
		if grapheme.IsSpace(token) {
			for _, r := range token {
				place(string(r), grapheme.RuneWidth(r), true)
			}
			continue
		}
		place(token, displayWidth(token), false)
	}
	if current.Len() > 0 {
		flush()
	}
	return lines
}

// splitClusters packs the grapheme clusters of token into closed lines. The
// first closed line gets at most remaining cells so it can finish a
// partially filled line; every later line gets the full width. Whatever is
// left over comes back as rest for the caller to keep filling.
func splitClusters(token string, remaining, width int) (closed []string, rest string) {
	var current strings.Builder
	curW := 0
	limit := remaining

	state := -1
	var cluster string
	for len(token) > 0 {
		cluster, token, _, state = uniseg.FirstGraphemeClusterInString(token, state)
		w := grapheme.Width(cluster)

		if curW+w > limit {
			if curW > 0 || limit < width {
				closed = append(closed, current.String())
				current.Reset()
				curW = 0
				limit = width
			}
			if w > width {
				// Indivisible and wider than a whole line: place it
				// alone and let the line overflow.
				closed = append(closed, cluster)
				continue
			}
		}

		current.WriteString(cluster)
		curW += w
		if curW == limit {
			closed = append(closed, current.String())
			current.Reset()
			curW = 0
			limit = width
		}
	}
	return closed, current.String()
}

// displayWidth sums cell widths per grapheme cluster, so ZWJ sequences and
// combining marks count once.
func displayWidth(text string) int {
	w := 0
	state := -1
	var cluster string
	for len(text) > 0 {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		w += grapheme.Width(cluster)
	}
	return w
}
