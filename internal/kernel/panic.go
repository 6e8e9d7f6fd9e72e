package kernel

import (
	"fmt"

	"github.com/contin-os/kernel/internal/console"
)

// Panic is the kernel's unrecoverable-error path, grounded on lib.rs's
// #[panic_handler] (black-on-red ":(", banner, message, halt) and on
// exceptions.go's ExceptionHandler/handleException idiom of logging once
// then spinning forever. It disables interrupts first and writes
// directly through the terminal Boot installed rather than calling back
// into klog or any mainline console helper that might be mid-write when
// the panic happened.
func Panic(msg string) {
	disableInterrupts()

	if active == nil || active.Term == nil {
		for {
		}
	}
	term := active.Term
	term.SetScheme(console.Scheme{Foreground: console.Black, Background: console.Red})
	term.Clear()
	term.WriteLine(":(")
	term.WriteLine("========== KERNEL PANIC ==========")
	term.WriteLine(msg)
	term.WriteLine("==================================")

	for {
	}
}

// Panicf formats its arguments like fmt.Sprintf and panics with the
// result.
func Panicf(format string, args ...interface{}) {
	Panic(fmt.Sprintf(format, args...))
}
