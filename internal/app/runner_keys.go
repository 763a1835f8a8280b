package app

import (
	"unicode"

	"example.com/hacksaw/pkg/buffer"
	"example.com/hacksaw/pkg/nav"
	"github.com/gdamore/tcell/v2"
)

// handleKeyEvent processes one key event according to the session state
// and then brings the viewport back onto the cursor.
func (r *Runner) handleKeyEvent(ev *tcell.EventKey) {
	r.Logger.Event("key", map[string]any{
		"key":       int(ev.Key()),
		"rune":      string(ev.Rune()),
		"modifiers": int(ev.Modifiers()),
		"state":     r.State.String(),
	})
	switch r.State {
	case StatePrompting:
		r.handlePromptKey(ev)
	case StateRunning:
		r.handleEditKey(ev)
	}
	r.scroll()
}

func (r *Runner) handleEditKey(ev *tcell.EventKey) {
	doc := r.doc()
	switch {
	case r.binding("quit").Matches(ev):
		r.State = StateQuitting
		r.Logger.Event("action", map[string]any{"name": "quit", "dirty": doc.Dirty()})
	case r.binding("save").Matches(ev):
		r.save()
	case ev.Key() == tcell.KeyEnter:
		doc.Insert(r.Cursor, '\n')
		r.Cursor = buffer.Position{X: 0, Y: r.Cursor.Y + 1}
	case ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2:
		switch {
		case r.Cursor.X == 0 && r.Cursor.Y > 0:
			// Left lands on the end of the previous row; the join happens at
			// the start of the current one.
			at := r.Cursor
			r.move(nav.Left)
			doc.Delete(at)
		case r.Cursor.X > 0:
			r.move(nav.Left)
			doc.Delete(r.Cursor)
		}
	case isTyped(ev):
		doc.Insert(r.Cursor, ev.Rune())
		r.move(nav.Right)
	default:
		if in := intentFor(ev); in != nav.None {
			r.move(in)
		}
	}
}

func (r *Runner) move(in nav.Intent) {
	r.Cursor = nav.Move(r.Cursor, in, r.doc())
}

// isTyped reports whether ev is a printable character without Ctrl or Alt.
func isTyped(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune {
		return false
	}
	if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
		return false
	}
	return !unicode.IsControl(ev.Rune())
}

func intentFor(ev *tcell.EventKey) nav.Intent {
	switch ev.Key() {
	case tcell.KeyUp:
		return nav.Up
	case tcell.KeyDown:
		return nav.Down
	case tcell.KeyLeft:
		return nav.Left
	case tcell.KeyRight:
		return nav.Right
	default:
		return nav.None
	}
}
