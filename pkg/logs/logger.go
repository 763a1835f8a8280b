// Package logs writes editor events as JSON lines for debugging sessions
// that own the terminal and cannot print.
package logs

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultFile is used when logging is enabled without a file name.
const DefaultFile = "hacksaw.log"

// Logger writes JSON lines with a timestamp and event fields.
// A nil or disabled Logger discards everything.
type Logger struct {
	mu      sync.Mutex
	w       *bufio.Writer
	f       *os.File
	enabled bool
	now     func() time.Time
}

// New returns a logger appending to path. An empty path means ./hacksaw.log.
// If the file cannot be opened a disabled logger is returned with the error.
func New(path string) (*Logger, error) {
	if path == "" {
		path = filepath.Join(".", DefaultFile)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return Disabled(), err
	}
	return &Logger{w: bufio.NewWriter(f), f: f, enabled: true, now: time.Now}, nil
}

// Disabled returns a logger that writes nothing.
func Disabled() *Logger {
	return &Logger{}
}

// Enabled reports whether events are written.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Close flushes and closes the underlying file if enabled.
func (l *Logger) Close() {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.w.Flush()
	_ = l.f.Close()
	l.enabled = false
}

// Event writes a JSON line with the event name and fields.
// Common fields: key, rune, modifiers, action, cursor, rows, file, error.
func (l *Logger) Event(event string, fields map[string]any) {
	if !l.Enabled() {
		return
	}
	rec := map[string]any{
		"time":  l.now().Format(time.RFC3339Nano),
		"event": event,
	}
	for k, v := range fields {
		rec[k] = v
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	enc := json.NewEncoder(l.w)
	_ = enc.Encode(rec)
	_ = l.w.Flush()
}
