package buffer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linesOf(d *Document) []string {
	out := make([]string, 0, d.Len())
	for i := 0; i < d.Len(); i++ {
		row, _ := d.Row(i)
		out = append(out, row.String())
	}
	return out
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestOpen_SplitsLines(t *testing.T) {
	path := writeTemp(t, "one\ntwo\nthree\n")
	d, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, linesOf(d))
	assert.Equal(t, path, d.Filename())
	assert.False(t, d.Dirty())
}

func TestOpen_Variants(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", []string{}},
		{"single newline", "\n", []string{""}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"blank line kept", "a\n\n", []string{"a", ""}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Open(writeTemp(t, tc.content))
			require.NoError(t, err)
			assert.Equal(t, tc.want, linesOf(d))
		})
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestSave_RoundTrip(t *testing.T) {
	original := "package main\n\nfunc main() {\n\tprintln(\"hé\")\n}\n"
	path := writeTemp(t, original)
	d, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, d.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestSave_AppendsFinalNewline(t *testing.T) {
	path := writeTemp(t, "a\nb")
	d, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, d.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))
}

func TestSave_UnnamedIsNoop(t *testing.T) {
	d := NewFromLines("x")
	d.Insert(Position{X: 1}, 'y')
	require.NoError(t, d.Save())
	assert.True(t, d.Dirty())
}

func TestSave_ClearsDirty(t *testing.T) {
	d := NewFromLines("x")
	d.SetFilename(filepath.Join(t.TempDir(), "out.txt"))
	d.Insert(Position{X: 1}, 'y')
	require.True(t, d.Dirty())
	require.NoError(t, d.Save())
	assert.False(t, d.Dirty())
}

func TestSave_ReportsError(t *testing.T) {
	d := NewFromLines("x")
	d.SetFilename(filepath.Join(t.TempDir(), "missing", "dir", "out.txt"))
	err := d.Save()
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestInsert_CharacterAndNewline(t *testing.T) {
	d := NewFromLines("hello", "world")

	d.Insert(Position{X: 6, Y: 0}, '!')
	assert.Equal(t, []string{"hello!", "world"}, linesOf(d))

	d = NewFromLines("hello", "world")
	d.Insert(Position{X: 6, Y: 0}, '\n')
	assert.Equal(t, []string{"hello", "", "world"}, linesOf(d))

	d = NewFromLines("hello", "world")
	d.Insert(Position{X: 2, Y: 1}, '\n')
	assert.Equal(t, []string{"hello", "wo", "rld"}, linesOf(d))
}

func TestInsert_PastLastRow(t *testing.T) {
	d := New()
	d.Insert(Position{}, 'a')
	assert.Equal(t, []string{"a"}, linesOf(d))

	d.Insert(Position{Y: 1}, '\n')
	assert.Equal(t, []string{"a", ""}, linesOf(d))

	d.Insert(Position{Y: 5}, 'z')
	assert.Equal(t, 2, d.Len())
}

func TestDelete_WithinRow(t *testing.T) {
	d := NewFromLines("abc")
	d.Delete(Position{X: 1})
	assert.Equal(t, []string{"ac"}, linesOf(d))
	d.Delete(Position{X: 0, Y: 3})
	assert.Equal(t, []string{"ac"}, linesOf(d))
}

func TestDelete_AtLineStartJoinsPreviousRow(t *testing.T) {
	d := NewFromLines("foo", "bar", "baz")
	d.Delete(Position{X: 0, Y: 1})
	assert.Equal(t, []string{"foobar", "baz"}, linesOf(d))
	assert.True(t, d.Dirty())

	// the first row has nothing to join onto
	d.Delete(Position{X: 0, Y: 0})
	assert.Equal(t, []string{"oobar", "baz"}, linesOf(d))
}

func TestDelete_PastRowEndIsNoop(t *testing.T) {
	d := NewFromLines("ab", "cd", "ef")
	d.Delete(Position{X: 2, Y: 0})
	d.Delete(Position{X: 7, Y: 1})
	assert.Equal(t, []string{"ab", "cd", "ef"}, linesOf(d))
	assert.False(t, d.Dirty())

	// the line just past the last row has no row to join
	d.Delete(Position{X: 0, Y: 3})
	assert.Equal(t, 3, d.Len())
}

func TestRow_Lookup(t *testing.T) {
	d := NewFromLines("a", "bb")
	row, ok := d.Row(1)
	require.True(t, ok)
	assert.Equal(t, "bb", row.String())
	_, ok = d.Row(2)
	assert.False(t, ok)
	_, ok = d.Row(-1)
	assert.False(t, ok)
	assert.Equal(t, 0, d.RowLen(7))
	assert.True(t, New().IsEmpty())
}
