// Package isr is the common interrupt dispatcher: a fixed-size registry of
// handler callbacks and one dispatch entry point that every assembly
// interrupt stub transfers control to. It mirrors isr.rs's HANDLERS array
// and isr_handler, generalized in the shape of gic_qemu.go's
// interruptHandlers/gicHandleInterrupt pair — a fixed handler-slot array
// plus one dispatch function, only over IDT vector numbers instead of GIC
// interrupt IDs.
package isr

// Registers is the interrupt frame the assembly stub builds before
// transferring to Dispatch: the pushed data segment, the general-purpose
// registers (edi..eax, pusha order), the synthesized interrupt number and
// error code, then the CPU-pushed eip/cs/eflags/useresp/ss. Handlers may
// mutate these; the stub restores them with iret.
type Registers struct {
	DS uint32

	EDI, ESI, EBP, ESP uint32
	EBX, EDX, ECX, EAX uint32

	IntNo   uint32
	ErrCode uint32

	EIP    uint32
	CS     uint32
	EFlags uint32
	UserESP uint32
	SS     uint32
}

// Handler is an interrupt callback. It is invoked with a mutable pointer
// to the frame the common stub built.
type Handler func(*Registers)

const numVectors = 256

var handlers [numVectors]Handler

// SendEOI is installed by internal/pic at boot; Dispatch calls it for any
// vector in the IRQ range so internal/isr never imports internal/pic
// directly (pic, in turn, doesn't need to know about isr).
var SendEOI func(irq uint8)

// Register installs handler for vector n, overwriting whatever was there.
// There is no deregistration; last writer wins. Registration is not
// synchronized against interrupt delivery — callers must register before
// unmasking the corresponding IRQ.
func Register(n uint8, handler Handler) {
	handlers[n] = handler
}

// Dispatch is the single entry point every assembly interrupt stub calls
// after building a Registers frame. If a handler is registered for
// regs.IntNo it is invoked; for any vector >= 32 (the IRQ range), EOI is
// sent afterward regardless of whether a handler ran — a spurious
// interrupt with no registered handler is still acknowledged.
func Dispatch(regs *Registers) {
	if h := handlers[regs.IntNo]; h != nil {
		h(regs)
	}
	if regs.IntNo >= 32 && SendEOI != nil {
		SendEOI(uint8(regs.IntNo - 32))
	}
}
