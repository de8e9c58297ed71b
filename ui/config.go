package ui

// InputConfig configures an Input.
type InputConfig struct {
	// Prompt is drawn before the text; continuation lines indent past it.
	Prompt string

	// Initial text for the edit buffer, cursor at the end.
	Text string

	// Rendering and binding options. Zero values fall back to
	// DefaultStyle and DefaultKeyMap.
	Style  Style
	KeyMap KeyMap

	// Clipboard backs the paste binding. Defaults to SystemClipboard.
	Clipboard Clipboard
}
