// Package timer programs PIT channel 0 and maintains the kernel's
// monotonic tick counter. Grounded on timer.rs for the divisor arithmetic
// and on timer_qemu.go for the init-then-install-then-unmask sequencing.
package timer

import (
	"github.com/contin-os/kernel/internal/ioport"
	"github.com/contin-os/kernel/internal/isr"
	"github.com/contin-os/kernel/internal/pic"
)

const (
	pitCommandPort = 0x43
	pitChannel0    = 0x40
	pitBaseFreq    = 1193180

	// TickVector is the IDT vector the timer's IRQ 0 is wired to.
	TickVector = pic.VectorBase
)

var ticks uint32

func tick(*isr.Registers) {
	ticks++
}

// Ticks returns the monotonic tick counter. It wraps at 2^32; consumers
// must use modular arithmetic for deltas.
func Ticks() uint32 {
	return ticks
}

// Init programs PIT channel 0 in mode 3 (square wave) with divisor
// 1193180/freqHz, registers the tick handler on vector 32, and unmasks
// IRQ 0. Must run after isr.Register is safe to call and before interrupts
// are globally enabled.
func Init(freqHz uint32) {
	divisor := pitBaseFreq / freqHz
	ioport.Out8(pitCommandPort, 0x36)
	ioport.Out8(pitChannel0, uint8(divisor&0xFF))
	ioport.Out8(pitChannel0, uint8((divisor>>8)&0xFF))

	isr.Register(TickVector, tick)
	pic.UnmaskIRQ(0)
}
