// Package buffer implements the pure, rune-accurate line-edit model for
// Jackline.
//
// A Buffer is a line of text split at the cursor: the runes before it and the
// runes after it. Every edit and motion is a pure transform returning a new
// Buffer. Key dispatch goes through ordered binding tables with an explicit
// not-handled result, so hosts can chain their own handlers after the
// built-in ones.
package buffer
