package app

import (
	"fmt"
	"time"

	"example.com/hacksaw/pkg/buffer"
	"example.com/hacksaw/pkg/config"
	"example.com/hacksaw/pkg/logs"
	"example.com/hacksaw/pkg/nav"
	"example.com/hacksaw/pkg/render"
	"github.com/gdamore/tcell/v2"
)

// State is the session loop state.
type State int

const (
	StateRunning State = iota
	StatePrompting
	StateQuitting
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePrompting:
		return "prompting"
	case StateQuitting:
		return "quitting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

const helpMessage = "HELP: Ctrl-Q = quit | Ctrl-S = save"

// QuitMessage is painted when the session ends. The alternate screen is gone
// once the terminal is restored, so callers echo it to stdout as well.
const QuitMessage = "Terminated " + render.ProgramName

// Runner owns one editing session: the document, cursor, viewport and the
// terminal it draws on. All state is mutated from the Run goroutine only.
type Runner struct {
	Screen  tcell.Screen
	Doc     *buffer.Document
	Cursor  buffer.Position
	Offset  buffer.Position
	State   State
	Prompt  *Prompt
	Message render.StatusMessage

	Keymap         map[string]config.Keybinding
	Theme          config.Theme
	MessageTimeout time.Duration
	Logger         *logs.Logger
	// Now is the clock used for status message expiry.
	Now func() time.Time
}

// New creates a Runner with an empty document configured from cfg.
// A nil cfg means the defaults.
func New(cfg *config.Config) (*Runner, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	km, err := cfg.Keybindings()
	if err != nil {
		return nil, err
	}
	r := &Runner{
		Doc:            buffer.New(),
		Keymap:         km,
		Theme:          cfg.ResolveTheme(),
		MessageTimeout: cfg.MessageTimeout,
		Now:            time.Now,
	}
	r.setStatus(helpMessage)
	return r, nil
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *Runner) doc() *buffer.Document {
	if r.Doc == nil {
		r.Doc = buffer.New()
	}
	return r.Doc
}

func (r *Runner) binding(name string) config.Keybinding {
	if kb, ok := r.Keymap[name]; ok {
		return kb
	}
	return config.DefaultKeymap()[name]
}

func (r *Runner) setStatus(text string) {
	r.Message = render.NewStatusMessage(text, r.now())
}

// LoadFile replaces the document with the contents of path. On failure the
// session keeps an empty, unnamed document and reports the problem on the
// message bar; the error is returned for the caller to log.
func (r *Runner) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	r.Logger.Event("open.attempt", map[string]any{"file": path})
	doc, err := buffer.Open(path)
	if err != nil {
		r.Logger.Event("open.error", map[string]any{"file": path, "error": err.Error()})
		r.Doc = buffer.New()
		r.setStatus(fmt.Sprintf("ERROR: Could not open '%s'", path))
		return err
	}
	r.Doc = doc
	r.Cursor = buffer.Position{}
	r.Offset = buffer.Position{}
	r.Logger.Event("open.success", map[string]any{"file": path, "rows": doc.Len()})
	return nil
}

// InitScreen initializes a tcell screen if one is not already set.
func (r *Runner) InitScreen() error {
	if r.Screen != nil {
		return nil
	}
	s, err := NewScreen()
	if err != nil {
		return err
	}
	r.Screen = s
	return nil
}

// Fini restores the terminal and closes the logger.
func (r *Runner) Fini() {
	if r.Screen != nil {
		r.Screen.Fini()
		r.Screen = nil
	}
	r.Logger.Close()
}

func (r *Runner) term() Terminal {
	return Terminal{Screen: r.Screen}
}

// Run starts the event loop. It will initialize the screen if needed and
// return nil once the user quits. A terminal input failure is fatal and is
// returned as an error. The screen is restored on every exit path, panics
// included, when Run created it.
func (r *Runner) Run() error {
	if r.Screen == nil {
		if err := r.InitScreen(); err != nil {
			return fmt.Errorf("initializing terminal: %w", err)
		}
		// deferred calls also run while panicking
		defer r.Fini()
	}
	if r.Logger == nil {
		r.Logger = logs.Disabled()
	}
	r.doc()
	r.Logger.Event("run.start", map[string]any{"file": r.Doc.Filename()})
	defer func() {
		r.Logger.Event("run.end", map[string]any{"file": r.Doc.Filename(), "state": r.State.String()})
	}()

	for {
		r.draw()
		if r.State == StateQuitting {
			return nil
		}
		ev, err := r.term().NextEvent()
		if err != nil {
			r.Logger.Event("fatal", map[string]any{"error": err.Error()})
			return fmt.Errorf("reading input: %w", err)
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			r.handleKeyEvent(ev)
		case *tcell.EventResize:
			r.Screen.Sync()
			r.scroll()
		}
	}
}

// scroll keeps the cursor inside the viewport.
func (r *Runner) scroll() {
	if r.Screen == nil {
		return
	}
	size := r.term().Size()
	r.Offset = nav.Scroll(r.Cursor, r.Offset, size.Width, size.Height)
}
