package app

import (
	"errors"

	"example.com/hacksaw/pkg/render"
	"github.com/gdamore/tcell/v2"
)

// ErrInputClosed is returned when the terminal stops delivering events.
var ErrInputClosed = errors.New("terminal input closed")

// Terminal is the boundary between the session and the character terminal.
// It only forwards to tcell; it keeps no state of its own.
type Terminal struct {
	Screen tcell.Screen
}

// NewScreen creates and initializes a tcell screen in raw mode.
func NewScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	return s, nil
}

// Size returns the text area size, two rows short of the terminal height.
func (t Terminal) Size() render.Size {
	w, h := t.Screen.Size()
	return render.ContentSize(w, h)
}

// NextEvent blocks until the next key or resize event.
func (t Terminal) NextEvent() (tcell.Event, error) {
	for {
		ev := t.Screen.PollEvent()
		if ev == nil {
			return nil, ErrInputClosed
		}
		switch ev.(type) {
		case *tcell.EventKey, *tcell.EventResize:
			return ev, nil
		}
	}
}

// Clear blanks the whole screen.
func (t Terminal) Clear() {
	t.Screen.Clear()
}

// HideCursor hides the terminal cursor.
func (t Terminal) HideCursor() {
	t.Screen.HideCursor()
}

// ShowCursor places the terminal cursor at screen cell (x, y).
func (t Terminal) ShowCursor(x, y int) {
	t.Screen.ShowCursor(x, y)
}

// DrawLine writes text on row y and fills the rest of the row with style,
// so background colors span the full width.
func (t Terminal) DrawLine(y int, text string, style tcell.Style) {
	width, _ := t.Screen.Size()
	x := 0
	for _, r := range text {
		if x >= width {
			return
		}
		t.Screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		t.Screen.SetContent(x, y, ' ', nil, style)
	}
}

// Show flushes pending changes to the terminal.
func (t Terminal) Show() {
	t.Screen.Show()
}
