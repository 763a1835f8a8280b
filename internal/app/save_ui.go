package app

import (
	"github.com/gdamore/tcell/v2"
)

const (
	savePrompt   = "Save as: "
	savedMessage = "File saved successfully"
	abortMessage = "Save aborted"
)

// Prompt is an in-progress single line input shown on the message bar.
type Prompt struct {
	Text  string
	Input []rune
	// Cancel is shown when the prompt is dismissed with Esc or empty input.
	Cancel string

	done func(r *Runner, input string)
}

func (p *Prompt) String() string {
	return p.Text + string(p.Input)
}

// startPrompt switches the session to prompting. done runs with the
// accumulated input once Enter is pressed on non-empty input.
func (r *Runner) startPrompt(text, cancel string, done func(r *Runner, input string)) {
	r.Prompt = &Prompt{Text: text, Cancel: cancel, done: done}
	r.State = StatePrompting
	r.setStatus(r.Prompt.String())
}

func (r *Runner) endPrompt() *Prompt {
	p := r.Prompt
	r.Prompt = nil
	r.State = StateRunning
	return p
}

// handlePromptKey edits the prompt input. Esc cancels; Enter completes.
func (r *Runner) handlePromptKey(ev *tcell.EventKey) {
	if r.Prompt == nil {
		r.State = StateRunning
		return
	}
	switch {
	case ev.Key() == tcell.KeyEsc:
		p := r.endPrompt()
		r.setStatus(p.Cancel)
		r.Logger.Event("action", map[string]any{"name": "prompt.cancel", "prompt": p.Text})
		return
	case ev.Key() == tcell.KeyEnter:
		p := r.endPrompt()
		r.setStatus("")
		if len(p.Input) == 0 {
			r.setStatus(p.Cancel)
			r.Logger.Event("action", map[string]any{"name": "prompt.cancel", "prompt": p.Text})
			return
		}
		if p.done != nil {
			p.done(r, string(p.Input))
		}
		return
	case ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2:
		if n := len(r.Prompt.Input); n > 0 {
			r.Prompt.Input = r.Prompt.Input[:n-1]
		}
	case isTyped(ev):
		r.Prompt.Input = append(r.Prompt.Input, ev.Rune())
	}
	r.setStatus(r.Prompt.String())
}

// save writes the document, prompting for a file name first when the
// document has none.
func (r *Runner) save() {
	if r.doc().Filename() == "" {
		r.startPrompt(savePrompt, abortMessage, func(r *Runner, name string) {
			r.Doc.SetFilename(name)
			if !r.saveDocument() {
				// forget the name so the next save prompts again
				r.Doc.SetFilename("")
			}
		})
		return
	}
	r.saveDocument()
}

func (r *Runner) saveDocument() bool {
	r.Logger.Event("action", map[string]any{"name": "save", "file": r.Doc.Filename()})
	if err := r.Doc.Save(); err != nil {
		r.Logger.Event("save.error", map[string]any{"file": r.Doc.Filename(), "error": err.Error()})
		r.setStatus("Error saving file: " + err.Error())
		return false
	}
	r.Logger.Event("save.success", map[string]any{"file": r.Doc.Filename(), "rows": r.Doc.Len()})
	r.setStatus(savedMessage)
	return true
}
