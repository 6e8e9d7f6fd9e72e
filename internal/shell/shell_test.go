package shell

import (
	"testing"

	"github.com/contin-os/kernel/internal/console"
	"github.com/contin-os/kernel/internal/keyboard"
)

func newTestShell() (*Shell, *console.Terminal) {
	term := console.New(make([]uint16, console.Width*console.Height), nil)
	term.Initialize()
	return New(term), term
}

func typeLine(s *Shell, line string) {
	for _, c := range line {
		s.HandleKey(keyboard.Event{ASCII: byte(c), HasASCII: true})
	}
	s.HandleKey(keyboard.Event{ASCII: '\n', HasASCII: true})
}

func TestInitPrintsWelcomeAndPrompt(t *testing.T) {
	buf := make([]uint16, console.Width*console.Height)
	term := console.New(buf, nil)
	term.Initialize()
	s := New(term)
	s.Init()
	if s.index != 0 {
		t.Fatalf("index = %d, want 0", s.index)
	}
	for i := 0; i < len(welcome); i++ {
		if got := byte(buf[i]); got != welcome[i] {
			t.Fatalf("row 0 col %d = %q, want %q (welcome)", i, got, welcome[i])
		}
	}
	for i := 0; i < len(prompt); i++ {
		if got := byte(buf[console.Width+i]); got != prompt[i] {
			t.Fatalf("row 1 col %d = %q, want %q (prompt)", i, got, prompt[i])
		}
	}
}

func TestHelpCommandResetsLineBuffer(t *testing.T) {
	s, _ := newTestShell()
	s.Init()
	typeLine(s, "help")
	if s.index != 0 {
		t.Fatalf("index after help = %d, want 0 (buffer reset)", s.index)
	}
}

func TestUnknownCommandStillResetsAndReprompts(t *testing.T) {
	s, _ := newTestShell()
	s.Init()
	typeLine(s, "bogus")
	if s.index != 0 {
		t.Fatalf("index after unknown command = %d, want 0", s.index)
	}
}

func TestEventsWithoutASCIIAreIgnored(t *testing.T) {
	s, _ := newTestShell()
	s.Init()
	s.HandleKey(keyboard.Event{Scancode: 0x2A, HasASCII: false})
	if s.index != 0 {
		t.Fatalf("index = %d, want 0 after a non-ASCII event", s.index)
	}
}

func TestLineBufferStopsGrowingAtCapacity(t *testing.T) {
	s, _ := newTestShell()
	s.Init()
	for i := 0; i < bufferSize+10; i++ {
		s.HandleKey(keyboard.Event{ASCII: 'x', HasASCII: true})
	}
	if s.index != bufferSize-1 {
		t.Fatalf("index = %d, want %d (capped)", s.index, bufferSize-1)
	}
}

// TestScancodeRoutingWhileShellActive: scancode 0x1E produces 'a' on the
// console and in the shell's buffer, scancode 0x1C (Enter) clears the
// line and re-emits the prompt.
func TestScancodeRoutingWhileShellActive(t *testing.T) {
	s, _ := newTestShell()
	s.Init()

	aEvent := keyboard.Event{Scancode: 0x1E, ASCII: 'a', HasASCII: true}
	s.HandleKey(aEvent)
	if s.index != 1 || s.buffer[0] != 'a' {
		t.Fatalf("buffer = %q, index = %d, want \"a\", 1", s.buffer[:s.index], s.index)
	}

	enterEvent := keyboard.Event{Scancode: 0x1C, ASCII: '\n', HasASCII: true}
	s.HandleKey(enterEvent)
	if s.index != 0 {
		t.Fatalf("index after Enter = %d, want 0", s.index)
	}
}

func TestEditorStartAnnouncesNotImplemented(t *testing.T) {
	term := console.New(make([]uint16, console.Width*console.Height), nil)
	term.Initialize()
	exited := false
	e := NewEditor(term, func() { exited = true })
	e.Start()
	if exited {
		t.Fatal("onExit should not fire from Start")
	}
}

func TestEditorExitsOnEnter(t *testing.T) {
	term := console.New(make([]uint16, console.Width*console.Height), nil)
	term.Initialize()
	exited := false
	e := NewEditor(term, func() { exited = true })
	e.HandleKey(keyboard.Event{ASCII: 'x', HasASCII: true})
	if exited {
		t.Fatal("onExit fired on a non-Enter key")
	}
	e.HandleKey(keyboard.Event{ASCII: '\n', HasASCII: true})
	if !exited {
		t.Fatal("onExit did not fire on Enter")
	}
}

func TestEditorHandleKeyWithoutOnExitDoesNotPanic(t *testing.T) {
	term := console.New(make([]uint16, console.Width*console.Height), nil)
	term.Initialize()
	e := NewEditor(term, nil)
	e.HandleKey(keyboard.Event{ASCII: '\n', HasASCII: true})
}
