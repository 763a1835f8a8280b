package nav

import "example.com/hacksaw/pkg/buffer"

// Scroll returns the viewport offset that keeps cur visible in a window of
// width by height cells, moving off as little as possible. Dimensions below
// one cell are treated as one.
func Scroll(cur, off buffer.Position, width, height int) buffer.Position {
	width = max(width, 1)
	height = max(height, 1)
	off.Y = follow(cur.Y, off.Y, height)
	off.X = follow(cur.X, off.X, width)
	return off
}

// follow applies the scroll rule along one axis.
func follow(pos, off, extent int) int {
	switch {
	case pos < off:
		return pos
	case pos >= off+extent:
		return satSub(pos, extent) + 1
	default:
		return off
	}
}

func satSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
