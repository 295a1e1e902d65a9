package renderer

import "github.com/dshills/scribe/internal/renderer/core"

// Theme holds the styles used by the renderer.
type Theme struct {
	LineNumber        core.Style
	CurrentLineNumber core.Style
	Tilde             core.Style
	Text              core.Style
	Selection         core.Style
	StatusBar         core.Style
}

// DefaultTheme returns blue line numbers, a cyan current line number and a
// blue status bar.
func DefaultTheme() Theme {
	return Theme{
		LineNumber:        core.DefaultStyle().WithForeground(core.ColorBlue).Bold(),
		CurrentLineNumber: core.DefaultStyle().WithForeground(core.ColorCyan).Bold(),
		Tilde:             core.DefaultStyle().WithForeground(core.ColorBlue),
		Text:              core.DefaultStyle(),
		Selection:         core.DefaultStyle().Reverse(),
		StatusBar:         core.DefaultStyle().WithBackground(core.ColorBlue),
	}
}
