// Package nav implements cursor movement and viewport scrolling over a
// line buffer. Both are pure functions of their inputs.
package nav

import "example.com/hacksaw/pkg/buffer"

// Intent is a navigation request decoded from a key press.
type Intent int

const (
	None Intent = iota
	Up
	Down
	Left
	Right
)

func (i Intent) String() string {
	switch i {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Shape is the part of a document the movement engine looks at.
type Shape interface {
	Len() int
	RowLen(index int) int
}

// Move returns the cursor that results from applying intent to cur.
//
// Down stops at the line just past the last row. Left at column 0 wraps to
// the end of the previous row. Right is never clamped to the row length and
// never wraps, so the cursor may sit past the end of a short row.
func Move(cur buffer.Position, intent Intent, doc Shape) buffer.Position {
	x, y := cur.X, cur.Y
	switch intent {
	case Up:
		if y > 0 {
			y--
		}
	case Down:
		if y < doc.Len() {
			y++
		}
	case Left:
		if x > 0 {
			x--
		} else if y > 0 {
			y--
			x = doc.RowLen(y)
		}
	case Right:
		x++
	}
	return buffer.Position{X: x, Y: y}
}
