// Package render turns editor state into the text of one screen frame.
// It knows nothing about the terminal; painting is left to the caller.
package render

import (
	"fmt"
	"strings"
	"time"

	"example.com/hacksaw/pkg/buffer"
)

const (
	// ProgramName is shown in the welcome banner.
	ProgramName = "Hacksaw"
	// NoName stands in for an unset filename on the status bar.
	NoName = "[No Name]"

	maxStatusName = 20
)

// Version is reported by the welcome banner. cmd/hacksaw overrides it.
var Version = "0.1.0"

// Size is a terminal extent in cells. Height counts text rows only; the
// status and message bars are not part of it.
type Size struct {
	Width  int
	Height int
}

// ContentSize converts a full terminal size into the text area size by
// reserving two rows for the status and message bars.
func ContentSize(width, height int) Size {
	return Size{Width: max(width, 0), Height: max(height-2, 0)}
}

// State is everything needed to build a frame.
type State struct {
	Doc     *buffer.Document
	Cursor  buffer.Position
	Offset  buffer.Position
	Size    Size
	Message StatusMessage
	Now     time.Time
	Timeout time.Duration
}

// LineKind tells the painter what produced a text-area row.
type LineKind int

const (
	LineText LineKind = iota
	LineFiller
	LineWelcome
)

// Line is one text-area row of a frame.
type Line struct {
	Text string
	Kind LineKind
}

// Frame is the text of one screen refresh.
type Frame struct {
	Rows    []Line
	Status  string
	Message string
	// Cursor is the screen cell of the buffer cursor.
	Cursor buffer.Position
}

// Build renders st into a Frame.
func Build(st State) Frame {
	doc := st.Doc
	if doc == nil {
		doc = buffer.New()
	}
	timeout := st.Timeout
	if timeout <= 0 {
		timeout = DefaultMessageTimeout
	}
	f := Frame{Rows: make([]Line, 0, st.Size.Height)}
	for r := 0; r < st.Size.Height; r++ {
		f.Rows = append(f.Rows, drawRow(doc, r, st.Offset, st.Size))
	}
	f.Status = StatusLine(doc, st.Cursor, st.Size.Width)
	if st.Message.Visible(st.Now, timeout) {
		f.Message = truncate(st.Message.Text, st.Size.Width)
	}
	f.Cursor = buffer.Position{
		X: satSub(st.Cursor.X, st.Offset.X),
		Y: satSub(st.Cursor.Y, st.Offset.Y),
	}
	return f
}

func drawRow(doc *buffer.Document, r int, off buffer.Position, size Size) Line {
	if row, ok := doc.Row(r + off.Y); ok {
		return Line{Text: row.Render(off.X, off.X+size.Width)}
	}
	if doc.IsEmpty() && r == size.Height/3 {
		return Line{Text: WelcomeLine(size.Width), Kind: LineWelcome}
	}
	return Line{Text: "~", Kind: LineFiller}
}

// WelcomeLine returns the centered banner shown on an empty document.
func WelcomeLine(width int) string {
	msg := fmt.Sprintf("%s -- version %s", ProgramName, Version)
	padding := satSub(width, len([]rune(msg))) / 2
	line := "~" + strings.Repeat(" ", satSub(padding, 1)) + msg
	return truncate(line, width)
}

// StatusLine returns the file/line summary shown below the text area.
func StatusLine(doc *buffer.Document, cur buffer.Position, width int) string {
	name := NoName
	if doc.Filename() != "" {
		name = truncate(doc.Filename(), maxStatusName)
	}
	status := fmt.Sprintf("%s - %d lines", name, doc.Len())
	indicator := fmt.Sprintf("%d of %d", cur.Y+1, doc.Len())
	used := len([]rune(status)) + len([]rune(indicator))
	if width > used {
		status += strings.Repeat(" ", width-used-1)
	}
	return truncate(status+" "+indicator, width)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}

func satSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
