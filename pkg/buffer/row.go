package buffer

// Row is a single line of text addressed by rune column. A Row never
// contains a newline.
type Row struct {
	runes []rune
}

// NewRow creates a Row from s. The caller guarantees s has no newline.
func NewRow(s string) *Row {
	return &Row{runes: []rune(s)}
}

// Render returns the runes in [start,end) clamped to the row length.
// It never fails: a start past the end yields "".
func (r *Row) Render(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(r.runes) {
		end = len(r.runes)
	}
	if start >= end {
		return ""
	}
	return string(r.runes[start:end])
}

// Len returns the number of runes in the row.
func (r *Row) Len() int {
	return len(r.runes)
}

// Insert puts ch before column at. Columns at or past the end append.
func (r *Row) Insert(at int, ch rune) {
	if at < 0 {
		at = 0
	}
	if at >= len(r.runes) {
		r.runes = append(r.runes, ch)
		return
	}
	r.runes = append(r.runes, 0)
	copy(r.runes[at+1:], r.runes[at:])
	r.runes[at] = ch
}

// Delete removes the rune at column at. Out of range columns are ignored.
func (r *Row) Delete(at int) {
	if at < 0 || at >= len(r.runes) {
		return
	}
	r.runes = append(r.runes[:at], r.runes[at+1:]...)
}

// Split truncates the row at column at and returns the tail as a new Row.
func (r *Row) Split(at int) *Row {
	if at < 0 {
		at = 0
	}
	if at > len(r.runes) {
		at = len(r.runes)
	}
	tail := make([]rune, len(r.runes)-at)
	copy(tail, r.runes[at:])
	r.runes = r.runes[:at]
	return &Row{runes: tail}
}

// Append concatenates other onto the end of r.
func (r *Row) Append(other *Row) {
	if other == nil {
		return
	}
	r.runes = append(r.runes, other.runes...)
}

// Bytes returns the UTF-8 encoding of the row without a line terminator.
func (r *Row) Bytes() []byte {
	return []byte(string(r.runes))
}

func (r *Row) String() string {
	return string(r.runes)
}
