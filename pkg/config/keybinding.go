package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrInvalidKeybinding is returned for keybindings ParseKeybinding rejects.
var ErrInvalidKeybinding = errors.New("invalid keybinding")

// Keybinding represents a single key combination.
type Keybinding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// DefaultKeymap provides builtin command bindings.
func DefaultKeymap() map[string]Keybinding {
	return map[string]Keybinding{
		"quit": mustParse("Ctrl+Q"),
		"save": mustParse("Ctrl+S"),
	}
}

// ParseKeybinding converts a textual key description like "Ctrl+S" into a
// Keybinding. Currently only Ctrl+<letter> is supported.
func ParseKeybinding(s string) (Keybinding, error) {
	parts := strings.Split(s, "+")
	if len(parts) != 2 {
		return Keybinding{}, fmt.Errorf("%w: %q", ErrInvalidKeybinding, s)
	}
	if !strings.EqualFold(strings.TrimSpace(parts[0]), "ctrl") {
		return Keybinding{}, fmt.Errorf("%w: bad modifier in %q", ErrInvalidKeybinding, s)
	}
	r := []rune(strings.ToLower(strings.TrimSpace(parts[1])))
	if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
		return Keybinding{}, fmt.Errorf("%w: bad key in %q", ErrInvalidKeybinding, s)
	}
	return Keybinding{Key: tcell.KeyRune, Rune: r[0], Mod: tcell.ModCtrl}, nil
}

func mustParse(s string) Keybinding {
	kb, _ := ParseKeybinding(s)
	return kb
}

// Matches returns true if the binding matches the provided event. Terminals
// report Ctrl+<letter> either as a rune with ModCtrl or as a KeyCtrl* code.
func (k Keybinding) Matches(ev *tcell.EventKey) bool {
	if k.Key == ev.Key() && k.Rune == ev.Rune() && k.Mod == ev.Modifiers() {
		return true
	}
	if k.Key == tcell.KeyRune && k.Mod == tcell.ModCtrl && k.Rune >= 'a' && k.Rune <= 'z' {
		return ev.Key() == tcell.KeyCtrlA+tcell.Key(k.Rune-'a')
	}
	return false
}
