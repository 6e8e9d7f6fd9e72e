// Package keyboard decodes PS/2 scancode-set-1 make codes into ASCII and
// routes the resulting events to whichever line consumer is currently
// active. Grounded on keyboard.rs's scancode_to_ascii table and
// editor::is_active() routing, generalized into a Consumer interface
// rather than a pair of free functions plus a global boolean.
package keyboard

import (
	"github.com/contin-os/kernel/internal/ioport"
	"github.com/contin-os/kernel/internal/isr"
	"github.com/contin-os/kernel/internal/pic"
)

const dataPort = 0x60

// Vector is the IDT vector IRQ 1 is wired to.
const Vector = pic.VectorBase + 1

// Event is a single decoded key event: the raw scancode, and the ASCII
// byte it translates to, if any. Break codes and unrecognized scancodes
// produce no ASCII.
type Event struct {
	Scancode byte
	ASCII    byte
	HasASCII bool
}

// Consumer receives keyboard events. Exactly one consumer is active at a
// time, selected by whatever last called SetActive.
type Consumer interface {
	HandleKey(Event)
}

var active Consumer

// SetActive installs c as the consumer that future keyboard events route
// to, replacing whatever was previously active.
func SetActive(c Consumer) {
	active = c
}

// scancodeToASCII translates a scancode-set-1 make code to ASCII. Only
// digits, '-' and '=', the top/home/bottom letter rows, space, enter, tab,
// and backspace are recognized, matching keyboard.rs's deliberately partial
// table. Backspace reports ASCII 0x00.
func scancodeToASCII(scancode byte) (byte, bool) {
	switch scancode {
	case 2:
		return '1', true
	case 3:
		return '2', true
	case 4:
		return '3', true
	case 5:
		return '4', true
	case 6:
		return '5', true
	case 7:
		return '6', true
	case 8:
		return '7', true
	case 9:
		return '8', true
	case 10:
		return '9', true
	case 11:
		return '0', true
	case 12:
		return '-', true
	case 13:
		return '=', true
	case 14:
		return 0, true // backspace
	case 15:
		return '\t', true
	case 16:
		return 'q', true
	case 17:
		return 'w', true
	case 18:
		return 'e', true
	case 19:
		return 'r', true
	case 20:
		return 't', true
	case 21:
		return 'y', true
	case 22:
		return 'u', true
	case 23:
		return 'i', true
	case 24:
		return 'o', true
	case 25:
		return 'p', true
	case 28:
		return '\n', true
	case 30:
		return 'a', true
	case 31:
		return 's', true
	case 32:
		return 'd', true
	case 33:
		return 'f', true
	case 34:
		return 'g', true
	case 35:
		return 'h', true
	case 36:
		return 'j', true
	case 37:
		return 'k', true
	case 38:
		return 'l', true
	case 44:
		return 'z', true
	case 45:
		return 'x', true
	case 46:
		return 'c', true
	case 47:
		return 'v', true
	case 48:
		return 'b', true
	case 49:
		return 'n', true
	case 50:
		return 'm', true
	case 57:
		return ' ', true
	default:
		return 0, false
	}
}

func interrupt(*isr.Registers) {
	scancode := ioport.In8(dataPort)
	ascii, ok := scancodeToASCII(scancode)
	event := Event{Scancode: scancode, ASCII: ascii, HasASCII: ok}
	if active != nil {
		active.HandleKey(event)
	}
}

// Install registers the IRQ 1 handler and unmasks the line. Must run
// after the active consumer (shell, normally) is installed with
// SetActive.
func Install() {
	isr.Register(Vector, interrupt)
	pic.UnmaskIRQ(1)
}
