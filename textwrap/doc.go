// Package textwrap folds Unicode text into lines that fit a fixed terminal
// width.
//
// Word boundaries are the preferred break points; a word wider than a whole
// line falls back to grapheme-cluster splitting so wide and combining
// characters never tear. Pure printable-ASCII text takes a byte-oriented
// fast path. Block applies the wrapper across styled fragments and stacks
// the results into display lines.
package textwrap
