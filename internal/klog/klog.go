// Package klog provides the kernel's four prefixed logging helpers,
// writing through whatever console.Terminal is installed. Grounded on
// log.rs's debug!/success!/error!/test! macros, and on the pervasive
// uartPuts("...: ") + value + uartPuts("\r\n") narration throughout
// kernel.go/gic_qemu.go/timer_qemu.go — this package plays the same role
// over a VGA terminal instead of a UART.
package klog

import (
	"fmt"

	"github.com/contin-os/kernel/internal/console"
)

var term *console.Terminal

// SetTerminal installs the terminal klog writes through. Must be called
// once during boot, before the first log call.
func SetTerminal(t *console.Terminal) {
	term = t
}

func write(prefix string, format string, args ...interface{}) {
	if term == nil {
		return
	}
	term.PutString(prefix)
	term.PutString(fmt.Sprintf(format, args...))
	term.WriteLine("")
}

// Debug logs an informational line prefixed "[DEBUG] ".
func Debug(format string, args ...interface{}) {
	write("[DEBUG] ", format, args...)
}

// Success logs a line prefixed "[SUCCESS] ", used throughout boot to
// narrate each subsystem coming up.
func Success(format string, args ...interface{}) {
	write("[SUCCESS] ", format, args...)
}

// Error logs a line prefixed "[ERROR] ".
func Error(format string, args ...interface{}) {
	write("[ERROR] ", format, args...)
}

// Test logs a line prefixed "[TEST] ", used by the boot-time self-tests.
func Test(format string, args ...interface{}) {
	write("[TEST] ", format, args...)
}
