package nav

import (
	"testing"

	"example.com/hacksaw/pkg/buffer"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestScroll_DownPastWindow(t *testing.T) {
	// height 3, cursor on row 7 of a 10 line document
	got := Scroll(pos(0, 7), pos(0, 0), 80, 3)
	assert.Equal(t, 5, got.Y)
}

func TestScroll_UpAboveWindow(t *testing.T) {
	got := Scroll(pos(0, 2), pos(0, 5), 80, 3)
	assert.Equal(t, 2, got.Y)
}

func TestScroll_InsideWindowUnchanged(t *testing.T) {
	got := Scroll(pos(4, 6), pos(2, 5), 10, 3)
	assert.Equal(t, pos(2, 5), got)
}

func TestScroll_Horizontal(t *testing.T) {
	assert.Equal(t, 11, Scroll(pos(20, 0), pos(0, 0), 10, 3).X)
	assert.Equal(t, 4, Scroll(pos(4, 0), pos(11, 0), 10, 3).X)
}

func TestScroll_ShortBufferKeepsZeroOffset(t *testing.T) {
	assert.Equal(t, pos(0, 0), Scroll(pos(1, 2), pos(0, 0), 80, 24))
}

func TestScroll_DegenerateWindow(t *testing.T) {
	got := Scroll(pos(3, 4), pos(0, 0), 0, 0)
	assert.Equal(t, pos(3, 4), got)
}

func TestScroll_KeepsCursorVisible(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cur := buffer.Position{
			X: rapid.IntRange(0, 500).Draw(t, "cx"),
			Y: rapid.IntRange(0, 500).Draw(t, "cy"),
		}
		off := buffer.Position{
			X: rapid.IntRange(0, 500).Draw(t, "ox"),
			Y: rapid.IntRange(0, 500).Draw(t, "oy"),
		}
		w := rapid.IntRange(1, 200).Draw(t, "w")
		h := rapid.IntRange(1, 100).Draw(t, "h")

		got := Scroll(cur, off, w, h)
		if got.Y > cur.Y || cur.Y >= got.Y+h {
			t.Fatalf("row %d not in [%d,%d)", cur.Y, got.Y, got.Y+h)
		}
		if got.X > cur.X || cur.X >= got.X+w {
			t.Fatalf("column %d not in [%d,%d)", cur.X, got.X, got.X+w)
		}
		if again := Scroll(cur, got, w, h); again != got {
			t.Fatalf("scroll not stable: %+v then %+v", got, again)
		}
	})
}
