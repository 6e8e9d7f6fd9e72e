// Package pic drives the two cascaded 8259A programmable interrupt
// controllers: remapping their vectors off the CPU-exception range,
// unmasking individual IRQ lines, and acknowledging serviced interrupts.
// There is no operation to mask a line again once it is unmasked. Grounded on pic.rs, generalizing the
// gicEnableInterrupt/gicDisableInterrupt/gicEndOfInterrupt trio
// (gic_qemu.go) from a single GIC distributor to the master/slave 8259A
// pair.
package pic

import "github.com/contin-os/kernel/internal/ioport"

const (
	master        = 0x20
	masterCommand = master
	masterData    = master + 1
	slave         = 0xA0
	slaveCommand  = slave
	slaveData     = slave + 1

	eoi = 0x20
)

// VectorBase is the IDT vector the master PIC's IRQ 0 is remapped to;
// slave IRQs (8..15) land at VectorBase+8.
const VectorBase = 0x20

// Remap reprograms both controllers so IRQs 0..15 land on vectors
// 0x20..0x2F instead of colliding with the CPU's own exception vectors
// 0..15. The prior interrupt mask register values are preserved across the
// remap.
func Remap() {
	a1 := ioport.In8(masterData)
	a2 := ioport.In8(slaveData)

	ioport.Out8(masterCommand, 0x11)
	ioport.Wait()
	ioport.Out8(slaveCommand, 0x11)
	ioport.Wait()
	ioport.Out8(masterData, 0x20)
	ioport.Wait()
	ioport.Out8(slaveData, 0x28)
	ioport.Wait()
	ioport.Out8(masterData, 0x04)
	ioport.Wait()
	ioport.Out8(slaveData, 0x02)
	ioport.Wait()
	ioport.Out8(masterData, 0x01)
	ioport.Wait()
	ioport.Out8(slaveData, 0x01)
	ioport.Wait()

	ioport.Out8(masterData, a1)
	ioport.Wait()
	ioport.Out8(slaveData, a2)
	ioport.Wait()
}

// SendEOI acknowledges IRQ irq (0..15). IRQs >= 8 also need an EOI on the
// slave controller before the master's, since the slave cascades through
// the master's IRQ 2 line.
func SendEOI(irq uint8) {
	if irq >= 8 {
		ioport.Out8(slaveCommand, eoi)
		ioport.Wait()
	}
	ioport.Out8(masterCommand, eoi)
	ioport.Wait()
}

// UnmaskIRQ clears the mask bit for irq in the relevant controller's
// interrupt mask register, allowing that line to raise interrupts.
func UnmaskIRQ(irq uint8) {
	port := uint16(masterData)
	bit := irq
	if irq >= 8 {
		port = slaveData
		bit = irq - 8
	}
	value := ioport.In8(port)
	value &^= 1 << bit
	ioport.Out8(port, value)
	ioport.Wait()
}
