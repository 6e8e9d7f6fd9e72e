// Package vmm maintains the kernel's static page directory and page
// tables: an identity map of the first 16 MiB, plus the Map/Unmap
// operations used to add further mappings. Grounded on paging.rs for the
// PDE/PTE arithmetic; PTE/PDE flags are packed via internal/bitfield
// following page.go's (bitfield.PageFlags) idiom of a typed flags struct
// over raw constants.
package vmm

import (
	"fmt"

	"github.com/contin-os/kernel/internal/bitfield"
)

const (
	pageSize       = 4096
	entries        = 1024
	identityTables = 4
)

// Directory is a 1024-entry page directory plus the four statically
// allocated page tables that identity-map [0, 16 MiB).
type Directory struct {
	pd     [entries]uint32
	tables [identityTables][entries]uint32
}

// New builds a Directory with the low four tables fully populated and
// present+writable flags set, but does not load it into the CPU — that's
// a separate, assembly-backed step (Enable) kept out of this portable
// package's test surface.
func New() *Directory {
	d := &Directory{}
	for table := 0; table < identityTables; table++ {
		for i := 0; i < entries; i++ {
			addr := uint32(table)*0x400000 + uint32(i)*pageSize
			flags, _ := bitfield.PackPageFlags(bitfield.PageFlags{Present: true, Write: true})
			d.tables[table][i] = (addr & 0xFFFFF000) | flags
		}
		pdFlags, _ := bitfield.PackPageFlags(bitfield.PageFlags{Present: true, Write: true})
		// The directory entry's frame field is filled in by the caller once
		// the tables' final linear addresses are known (Enable, in the
		// hardware-facing build); PhysAddr below computes it for a given
		// table's in-memory location.
		d.pd[table] = pdFlags
	}
	return d
}

// PhysAddr returns the page-directory entry for table with its frame
// field set to tableAddr, the table's physical address. Hardware-facing
// code calls this once it knows &d.tables[table]'s linear address (which,
// before paging is enabled, equals its physical address under the
// identity map).
func (d *Directory) PhysAddr(table int, tableAddr uint32) uint32 {
	d.pd[table] = (tableAddr & 0xFFFFF000) | (d.pd[table] & 0xFFF)
	return d.pd[table]
}

// Map updates the page-table entry selected by vaddr[31:22]/vaddr[21:12]
// to point at paddr&0xFFFFF000 with the present (and, if writable,
// writable) flag. The directory entry for vaddr's PD index must already
// be present; mapping through an unpopulated directory slot panics rather
// than silently corrupting an adjacent table. The caller is responsible
// for flushing the TLB (invlpg) for vaddr afterward — that step lives in
// the hardware-facing build since it's a single instruction with no
// portable equivalent.
func (d *Directory) Map(vaddr, paddr uint32, writable bool) {
	pdIndex := vaddr >> 22
	ptIndex := (vaddr >> 12) & 0x3FF

	if d.pd[pdIndex]&0x1 == 0 {
		panic(fmt.Sprintf("vmm: Map(0x%x): page directory slot %d is not present", vaddr, pdIndex))
	}

	flags, _ := bitfield.PackPageFlags(bitfield.PageFlags{Present: true, Write: writable})
	d.tables[pdIndex][ptIndex] = (paddr & 0xFFFFF000) | flags
}

// Unmap clears the present bit for vaddr's mapping, unlike calling
// Map(vaddr, 0, true) (which leaves present set and only zeros the frame
// field — a known rough edge retained for behavioral parity with
// paging.rs). Unmap clears the present bit instead, giving callers an
// explicit unmap path that paging.rs itself never provided.
func (d *Directory) Unmap(vaddr uint32) {
	pdIndex := vaddr >> 22
	ptIndex := (vaddr >> 12) & 0x3FF
	d.tables[pdIndex][ptIndex] &^= 0x1
}

// Translate returns the PTE currently installed for vaddr, for tests and
// diagnostics.
func (d *Directory) Translate(vaddr uint32) uint32 {
	pdIndex := vaddr >> 22
	ptIndex := (vaddr >> 12) & 0x3FF
	return d.tables[pdIndex][ptIndex]
}
