// Package ui provides the Bubble Tea widgets of Jackline: a single-line
// Input whose view wraps to the terminal width with a grapheme-accurate
// cursor, and a scrollback Log of styled message fragments.
//
// Input routes key presses through the buffer package's edit tables first;
// whatever those leave unhandled falls to the widget's own bindings (submit,
// copy, cut, paste), and the rest is ignored.
package ui
