package kernel

// Implemented in interrupts_386.s. Enabling interrupts is the last step
// of boot order; nothing before paging/keyboard install may run with IF
// set.

//go:nosplit
func sti()

//go:nosplit
func cli()

// enableInterrupts sets IF, letting the PIT and keyboard IRQs fire.
func enableInterrupts() {
	sti()
}

// disableInterrupts clears IF. Used by Panic to keep the halt loop from
// being preempted by a handler that might touch the console mid-write.
func disableInterrupts() {
	cli()
}
