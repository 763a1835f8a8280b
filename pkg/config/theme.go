package config

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the colors used to paint a frame.
type Theme struct {
	// Text area
	TextForeground tcell.Color
	TextBackground tcell.Color
	// Filler "~" rows and the welcome banner
	FillerForeground tcell.Color

	StatusForeground  tcell.Color
	StatusBackground  tcell.Color
	MessageForeground tcell.Color
	MessageBackground tcell.Color
}

// DefaultTheme returns the builtin theme: dark grey status text on green.
func DefaultTheme() Theme {
	return Theme{
		TextForeground:   tcell.ColorDefault,
		TextBackground:   tcell.ColorDefault,
		FillerForeground: tcell.ColorGray,

		StatusForeground:  tcell.NewRGBColor(63, 63, 63),
		StatusBackground:  tcell.NewRGBColor(0, 255, 0),
		MessageForeground: tcell.ColorDefault,
		MessageBackground: tcell.ColorDefault,
	}
}

// TerminalTheme leaves every color to the terminal palette so the editor
// follows the user's terminal theme.
func TerminalTheme() Theme {
	return Theme{
		TextForeground:   tcell.ColorDefault,
		TextBackground:   tcell.ColorDefault,
		FillerForeground: tcell.ColorDefault,

		StatusForeground:  tcell.ColorDefault,
		StatusBackground:  tcell.ColorGray,
		MessageForeground: tcell.ColorDefault,
		MessageBackground: tcell.ColorDefault,
	}
}

// BuiltinThemes exposes the presets by name.
var BuiltinThemes = map[string]Theme{
	"default":  DefaultTheme(),
	"terminal": TerminalTheme(),
	"dark": {
		TextForeground:   tcell.ColorWhite,
		TextBackground:   tcell.ColorBlack,
		FillerForeground: tcell.ColorSilver,

		StatusForeground:  tcell.ColorWhite,
		StatusBackground:  tcell.ColorGray,
		MessageForeground: tcell.ColorWhite,
		MessageBackground: tcell.ColorBlack,
	},
}

// Text returns the style for buffer rows.
func (t Theme) Text() tcell.Style {
	return tcell.StyleDefault.Foreground(t.TextForeground).Background(t.TextBackground)
}

// Filler returns the style for "~" rows and the welcome banner.
func (t Theme) Filler() tcell.Style {
	return tcell.StyleDefault.Foreground(t.FillerForeground).Background(t.TextBackground)
}

// Status returns the style for the status bar.
func (t Theme) Status() tcell.Style {
	return tcell.StyleDefault.Foreground(t.StatusForeground).Background(t.StatusBackground)
}

// Message returns the style for the message bar.
func (t Theme) Message() tcell.Style {
	return tcell.StyleDefault.Foreground(t.MessageForeground).Background(t.MessageBackground)
}

// ParseColor returns a tcell.Color from a name or hex like "#aabbcc".
// If parsing fails, it returns the provided fallback.
func ParseColor(s string, fallback tcell.Color) tcell.Color {
	if s == "" {
		return fallback
	}
	c := tcell.GetColor(strings.ToLower(s))
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
