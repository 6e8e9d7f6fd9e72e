// Package gdt installs the kernel's flat Global Descriptor Table: five
// descriptors (null, ring-0 code/data, ring-3 code/data) spanning the full
// 4 GiB address space, then reloads every segment register so the CPU
// actually uses them.
package gdt

import (
	"unsafe"

	"github.com/contin-os/kernel/internal/bitfield"
)

// descriptorFields is the CPU-consumed, bit-exact layout of one 8-byte GDT
// descriptor, tagged for internal/bitfield: LimitHigh and Flags are the
// two nibbles of what a hand-packed implementation would call the single
// "granLimit" byte.
type descriptorFields struct {
	LimitLow  uint16 `bitfield:",16"`
	BaseLow   uint16 `bitfield:",16"`
	BaseMid   uint8  `bitfield:",8"`
	Access    uint8  `bitfield:",8"`
	LimitHigh uint8  `bitfield:",4"`
	Flags     uint8  `bitfield:",4"`
	BaseHigh  uint8  `bitfield:",8"`
}

// Selector values for the five flat descriptors this kernel installs.
const (
	SelectorNull    = 0x00
	SelectorKCode   = 0x08
	SelectorKData   = 0x10
	SelectorUCode   = 0x18
	SelectorUData   = 0x20
)

const numEntries = 5

// table holds the packed 8-byte descriptors LGDT reads directly; each
// slot is produced by bitfield.Pack over descriptorFields rather than
// built up field-by-field in place.
var table [numEntries]uint64

// ptr is the CPU-consumed descriptor passed to LGDT: table size minus one,
// and the table's linear address.
type ptr struct {
	limit uint16
	base  uint32
}

func setEntry(i int, base, limit uint32, access, gran uint8) {
	fields := descriptorFields{
		LimitLow:  uint16(limit & 0xFFFF),
		BaseLow:   uint16(base & 0xFFFF),
		BaseMid:   uint8((base >> 16) & 0xFF),
		Access:    access,
		LimitHigh: uint8((limit >> 16) & 0x0F),
		Flags:     uint8((gran >> 4) & 0x0F),
		BaseHigh:  uint8((base >> 24) & 0xFF),
	}
	packed, err := bitfield.Pack(fields, &bitfield.Config{NumBits: 64})
	if err != nil {
		panic(err)
	}
	table[i] = packed
}

// load installs the GDT pointer via LGDT and reloads every segment
// register. Implemented in gdt_386.s.
//
//go:nosplit
func load(p *ptr)

// Init fills the five flat descriptors (null; ring-0 code 0x9A/0xCF;
// ring-0 data 0x92/0xCF; ring-3 code 0xFA/0xCF; ring-3 data 0xF2/0xCF),
// loads the table, and performs the mandatory far jump to reload CS —
// without it CS keeps the bootloader's selector.
func Init() {
	setEntry(0, 0, 0, 0, 0)
	setEntry(1, 0, 0xFFFFF, 0x9A, 0xCF)
	setEntry(2, 0, 0xFFFFF, 0x92, 0xCF)
	setEntry(3, 0, 0xFFFFF, 0xFA, 0xCF)
	setEntry(4, 0, 0xFFFFF, 0xF2, 0xCF)

	p := ptr{
		limit: uint16(unsafe.Sizeof(table)) - 1,
		base:  uint32(uintptr(unsafe.Pointer(&table[0]))),
	}
	load(&p)
}
