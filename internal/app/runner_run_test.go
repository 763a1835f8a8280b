package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func runAsync(r *Runner) chan error {
	done := make(chan error, 1)
	go func() { done <- r.Run() }()
	// Give the loop a moment to start
	time.Sleep(10 * time.Millisecond)
	return done
}

// post retries while the simulation event queue is full.
func post(t *testing.T, s tcell.Screen, ev tcell.Event) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for s.PostEvent(ev) != nil {
		if time.Now().After(deadline) {
			t.Fatalf("event queue stayed full")
		}
		time.Sleep(time.Millisecond)
	}
}

func waitRun(t *testing.T, done chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for runner to return")
		return nil
	}
}

// TestRun_TypingSaveQuit_Simulation types into an unnamed document, names it
// through the save prompt and quits.
func TestRun_TypingSaveQuit_Simulation(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	path := filepath.Join(t.TempDir(), "typed.txt")

	r := newTestRunner(t)
	r.Screen = s
	done := runAsync(r)

	for _, ch := range "ab" {
		post(t, s, tcell.NewEventKey(tcell.KeyRune, ch, 0))
	}
	post(t, s, tcell.NewEventKey(tcell.KeyEnter, 0, 0))
	post(t, s, tcell.NewEventKey(tcell.KeyRune, 'c', 0))
	// Save via Ctrl+S, answer the prompt, then quit via Ctrl+Q
	post(t, s, tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModCtrl))
	for _, ch := range path {
		post(t, s, tcell.NewEventKey(tcell.KeyRune, ch, 0))
	}
	post(t, s, tcell.NewEventKey(tcell.KeyEnter, 0, 0))
	post(t, s, tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModCtrl))

	if err := waitRun(t, done); err != nil {
		t.Fatalf("runner returned error: %v", err)
	}
	if r.State != StateQuitting {
		t.Fatalf("expected quitting state, got %v", r.State)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "ab\nc\n" {
		t.Fatalf("expected saved content 'ab\\nc\\n', got %q", string(data))
	}
	if got := rowText(s, 0); got != QuitMessage {
		t.Fatalf("expected termination message on screen, got %q", got)
	}
}

func TestRun_OpenEditSaveRoundTrip(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("foo\nbar\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	r := newTestRunner(t)
	if err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	r.Screen = s
	done := runAsync(r)

	// join "bar" onto "foo" with backspace at the start of row 1
	post(t, s, tcell.NewEventKey(tcell.KeyDown, 0, 0))
	post(t, s, tcell.NewEventKey(tcell.KeyBackspace2, 0, 0))
	post(t, s, tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	post(t, s, tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl))

	if err := waitRun(t, done); err != nil {
		t.Fatalf("runner returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "foobar\n" {
		t.Fatalf("expected 'foobar\\n', got %q", string(data))
	}
}

func TestRun_InputClosedIsFatal(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("initializing simulation screen failed: %v", err)
	}
	r := newTestRunner(t, "x")
	r.Screen = s
	done := runAsync(r)

	s.Fini()
	err := waitRun(t, done)
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}

func TestRun_ResizeRescrolls(t *testing.T) {
	s := newSimScreen(t, 20, 12)
	rows := make([]string, 20)
	for i := range rows {
		rows[i] = "row"
	}
	r := newTestRunner(t, rows...)
	r.Screen = s
	r.Cursor.Y = 8
	done := runAsync(r)

	s.SetSize(20, 5)
	post(t, s, tcell.NewEventResize(20, 5))
	post(t, s, tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl))

	if err := waitRun(t, done); err != nil {
		t.Fatalf("runner returned error: %v", err)
	}
	if r.Offset.Y != 6 {
		t.Fatalf("expected offset row 6 after shrinking to 3 text rows, got %d", r.Offset.Y)
	}
}
