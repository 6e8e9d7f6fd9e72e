package vmm

import "unsafe"

// Enable finalizes the directory's physical frame addresses (valid here
// because paging isn't active yet, so linear == physical) and loads CR3 /
// sets CR0.PG. After this call returns, every kernel memory reference goes
// through the page tables — identical to the old addresses for anything
// inside the identity-mapped range.
func (d *Directory) Enable() {
	for table := 0; table < identityTables; table++ {
		tableAddr := uint32(uintptr(unsafe.Pointer(&d.tables[table][0])))
		d.PhysAddr(table, tableAddr)
	}
	load(uint32(uintptr(unsafe.Pointer(&d.pd[0]))))
}

// load sets CR3 to pdAddr and CR0.PG. Implemented in vmm_386.s.
//
//go:nosplit
func load(pdAddr uint32)

// Invlpg flushes the single TLB entry for vaddr after a Map/Unmap call
// changes its mapping. Implemented in vmm_386.s.
//
//go:nosplit
func Invlpg(vaddr uint32)
