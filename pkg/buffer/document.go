// Package buffer holds the in-memory line buffer edited by a session: a
// Document made of Rows, addressed by Position.
package buffer

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Document is an ordered sequence of rows plus an optional filename.
// Row index i is valid for 0 <= i < Len(); a Document may have no rows.
type Document struct {
	rows     []*Row
	filename string
	dirty    bool
}

// New returns an empty, unnamed Document.
func New() *Document {
	return &Document{}
}

// NewFromLines builds an unnamed Document with one row per entry.
func NewFromLines(lines ...string) *Document {
	d := &Document{rows: make([]*Row, 0, len(lines))}
	for _, l := range lines {
		d.rows = append(d.rows, NewRow(l))
	}
	return d
}

// Open reads path and returns a Document with one row per line. A trailing
// newline does not add an empty row and CRLF endings are normalized.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if len(data) == 0 {
		return &Document{filename: path}, nil
	}
	d := NewFromLines(strings.Split(text, "\n")...)
	d.filename = path
	return d, nil
}

// Save truncates or creates the file named by the Document and writes every
// row followed by a single newline. An unnamed Document is not saved.
func (d *Document) Save() error {
	if d.filename == "" {
		return nil
	}
	f, err := os.Create(d.filename)
	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, row := range d.rows {
		if _, err := w.Write(row.Bytes()); err != nil {
			_ = f.Close()
			return fmt.Errorf("saving document: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			_ = f.Close()
			return fmt.Errorf("saving document: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("saving document: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	d.dirty = false
	return nil
}

// Filename returns the associated filename, or "" when unset.
func (d *Document) Filename() string { return d.filename }

// SetFilename associates the Document with a file for subsequent saves.
func (d *Document) SetFilename(name string) { d.filename = name }

// Dirty reports whether the Document changed since it was opened or saved.
func (d *Document) Dirty() bool { return d.dirty }

// Len returns the number of rows.
func (d *Document) Len() int { return len(d.rows) }

// IsEmpty reports whether the Document has no rows.
func (d *Document) IsEmpty() bool { return len(d.rows) == 0 }

// Row returns the row at index, or false when index is out of range.
func (d *Document) Row(index int) (*Row, bool) {
	if index < 0 || index >= len(d.rows) {
		return nil, false
	}
	return d.rows[index], true
}

// RowLen returns the rune length of the row at index, or 0 when absent.
func (d *Document) RowLen(index int) int {
	if row, ok := d.Row(index); ok {
		return row.Len()
	}
	return 0
}

// Insert puts ch at pos. A newline splits the row at pos.X instead of being
// stored. Inserting on the line just past the last row creates that row.
func (d *Document) Insert(pos Position, ch rune) {
	if pos.Y > len(d.rows) || pos.Y < 0 {
		return
	}
	if ch == '\n' {
		d.insertNewline(pos)
		return
	}
	if pos.Y == len(d.rows) {
		d.rows = append(d.rows, &Row{})
	}
	d.rows[pos.Y].Insert(pos.X, ch)
	d.dirty = true
}

func (d *Document) insertNewline(pos Position) {
	if pos.Y == len(d.rows) {
		d.rows = append(d.rows, &Row{})
		d.dirty = true
		return
	}
	tail := d.rows[pos.Y].Split(pos.X)
	d.rows = append(d.rows, nil)
	copy(d.rows[pos.Y+2:], d.rows[pos.Y+1:])
	d.rows[pos.Y+1] = tail
	d.dirty = true
}

// Delete removes the rune at pos. At column 0 of any row but the first, the
// row is joined onto the end of the previous row instead. Columns past the
// end of the row are ignored.
func (d *Document) Delete(pos Position) {
	row, ok := d.Row(pos.Y)
	if !ok {
		return
	}
	if pos.X == 0 && pos.Y > 0 {
		d.rows[pos.Y-1].Append(row)
		d.rows = append(d.rows[:pos.Y], d.rows[pos.Y+1:]...)
		d.dirty = true
		return
	}
	if pos.X >= row.Len() {
		return
	}
	row.Delete(pos.X)
	d.dirty = true
}
