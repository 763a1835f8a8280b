package buffer

// Position is a column/row coordinate pair. It is used both for the cursor
// (buffer space: Y is the row index, X the rune offset within that row) and
// for the viewport offset (the top-left buffer coordinate shown on screen).
// Both fields are never negative.
type Position struct {
	X int
	Y int
}
