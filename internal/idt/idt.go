// Package idt installs the kernel's Interrupt Descriptor Table: 256 gate
// descriptors, each either pointing at an interrupt stub or left
// not-present.
package idt

import (
	"unsafe"

	"github.com/contin-os/kernel/internal/bitfield"
)

// gateFields is the CPU-consumed, bit-exact layout of one 8-byte IDT
// entry, tagged for internal/bitfield.
type gateFields struct {
	OffsetLow  uint16 `bitfield:",16"`
	Selector   uint16 `bitfield:",16"`
	Zero       uint8  `bitfield:",8"`
	TypeAttr   uint8  `bitfield:",8"`
	OffsetHigh uint16 `bitfield:",16"`
}

const NumEntries = 256

// table holds the packed 8-byte gates LIDT reads directly; each slot is
// produced by bitfield.Pack over gateFields.
var table [NumEntries]uint64

type ptr struct {
	limit uint16
	base  uint32
}

// load installs the IDT pointer via LIDT. Implemented in idt_386.s.
//
//go:nosplit
func load(p *ptr)

// SetGate installs a handler for vector num. flags is ORed with the
// present bit (0x80) — callers never need to set it themselves, matching
// idt_set_gate's own flag handling. There is no deregistration; last
// writer wins, and nothing prevents calling this twice for the same
// vector.
func SetGate(num uint8, offset uint32, selector uint16, flags uint8) {
	fields := gateFields{
		OffsetLow:  uint16(offset & 0xFFFF),
		Selector:   selector,
		Zero:       0,
		TypeAttr:   flags | 0x80,
		OffsetHigh: uint16((offset >> 16) & 0xFFFF),
	}
	packed, err := bitfield.Pack(fields, &bitfield.Config{NumBits: 64})
	if err != nil {
		panic(err)
	}
	table[num] = packed
}

// Init zero-fills all 256 gates (each not-present, offset/selector zero)
// and loads the IDT pointer. Registration (SetGate) is what sets the
// present bit; Init itself must leave every gate not-present.
func Init() {
	table = [NumEntries]uint64{}

	p := ptr{
		limit: uint16(unsafe.Sizeof(table)) - 1,
		base:  uint32(uintptr(unsafe.Pointer(&table[0]))),
	}
	load(&p)
}
