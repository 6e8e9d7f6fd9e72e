// Package shell is a line-oriented command shell: it buffers keystrokes
// until Enter, then dispatches the completed line. Grounded on shell.rs.
// Peripheral to the kernel core, described only through the
// keyboard.Consumer interface it implements.
package shell

import (
	"github.com/contin-os/kernel/internal/console"
	"github.com/contin-os/kernel/internal/keyboard"
)

const (
	welcome = "Welcome to ContinuumOS shell"
	prompt  = "nutshell> "

	bufferSize = 256
)

// Shell is a keyboard.Consumer that echoes input and runs its one
// built-in command, help.
type Shell struct {
	term   *console.Terminal
	buffer [bufferSize]byte
	index  int
}

// New creates a Shell writing to term.
func New(term *console.Terminal) *Shell {
	return &Shell{term: term}
}

// Init prints the welcome banner and the initial prompt.
func (s *Shell) Init() {
	s.term.WriteLine(welcome)
	s.term.PutString(prompt)
}

// HandleKey implements keyboard.Consumer.
func (s *Shell) HandleKey(event keyboard.Event) {
	if !event.HasASCII {
		return
	}
	c := event.ASCII

	if c == '\n' {
		line := string(s.buffer[:s.index])
		s.term.WriteLine("")
		if line == "help" {
			s.term.WriteLine("Available commands: help")
		}
		s.index = 0
		s.term.PutString(prompt)
		return
	}

	if s.index < bufferSize-1 {
		s.buffer[s.index] = c
		s.index++
		s.term.PutChar(c)
	}
}
