package app

import (
	"example.com/hacksaw/pkg/render"
	"github.com/gdamore/tcell/v2"
)

// frame builds the render snapshot of the current session state.
// An open prompt stays on the message bar regardless of message expiry.
func (r *Runner) frame(size render.Size) render.Frame {
	now := r.now()
	msg := r.Message
	if r.State == StatePrompting && r.Prompt != nil {
		msg = render.NewStatusMessage(r.Prompt.String(), now)
	}
	return render.Build(render.State{
		Doc:     r.doc(),
		Cursor:  r.Cursor,
		Offset:  r.Offset,
		Size:    size,
		Message: msg,
		Now:     now,
		Timeout: r.MessageTimeout,
	})
}

// draw repaints the whole screen. In the quitting state it leaves only the
// termination message behind.
func (r *Runner) draw() {
	if r.Screen == nil {
		return
	}
	t := r.term()
	t.HideCursor()
	t.Clear()
	if r.State == StateQuitting {
		t.DrawLine(0, QuitMessage, tcell.StyleDefault)
		t.Show()
		return
	}

	size := t.Size()
	f := r.frame(size)
	for y, line := range f.Rows {
		t.DrawLine(y, line.Text, r.lineStyle(line.Kind))
	}
	t.DrawLine(size.Height, f.Status, r.Theme.Status())
	t.DrawLine(size.Height+1, f.Message, r.Theme.Message())

	if r.State == StatePrompting && r.Prompt != nil {
		x := len([]rune(r.Prompt.String()))
		t.ShowCursor(min(x, max(size.Width-1, 0)), size.Height+1)
	} else {
		t.ShowCursor(f.Cursor.X, f.Cursor.Y)
	}
	t.Show()
}

func (r *Runner) lineStyle(kind render.LineKind) tcell.Style {
	if kind == render.LineText {
		return r.Theme.Text()
	}
	return r.Theme.Filler()
}
