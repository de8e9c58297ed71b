package textwrap

import "strings"

// isPlainASCII reports whether every byte of text is printable ASCII: one
// byte, one cell. Control bytes and DEL force the general path.
func isPlainASCII(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < 0x20 || text[i] >= 0x7f {
			return false
		}
	}
	return true
}

// splitASCII wraps printable-ASCII text by byte offset: break at the last
// space at or before the width boundary, or hard-cut at exactly width cells
// when the window holds no usable space.
func splitASCII(text string, width int, strip bool) []string {
	lines := make([]string, 0, 1+len(text)/width)
	for len(text) > 0 {
		if len(text) <= width {
			lines = append(lines, text)
			break
		}
		breakAt := strings.LastIndexByte(text[:width+1], ' ')
		if breakAt <= 0 {
			breakAt = width
		}
		lines = append(lines, text[:breakAt])
		text = text[breakAt:]
		if strip {
			text = strings.TrimLeft(text, " ")
		}
	}
	return lines
}
