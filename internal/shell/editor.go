package shell

import (
	"github.com/contin-os/kernel/internal/console"
	"github.com/contin-os/kernel/internal/keyboard"
)

// Editor is the line-editor stub: a keyboard.Consumer placeholder for a
// not-yet-implemented text editor. Grounded on editor.rs, which is itself
// a stub ("[EDITOR] not implemented") that exits on the first Enter.
type Editor struct {
	term   *console.Terminal
	onExit func()
}

// NewEditor creates an Editor writing to term. onExit is invoked when the
// stub exits (on the first Enter) — normally keyboard.SetActive(shell),
// which lives outside this package to avoid a shell<->keyboard import
// cycle.
func NewEditor(term *console.Terminal, onExit func()) *Editor {
	return &Editor{term: term, onExit: onExit}
}

// Start announces the editor is not implemented. Callers are expected to
// follow this with keyboard.SetActive(editor) to route events to it.
func (e *Editor) Start() {
	e.term.WriteLine("[EDITOR] not implemented")
}

// HandleKey implements keyboard.Consumer. The stub exits on Enter.
func (e *Editor) HandleKey(event keyboard.Event) {
	if event.HasASCII && event.ASCII == '\n' && e.onExit != nil {
		e.onExit()
	}
}
