package vmm

import "testing"

// TestMapThenZeroLeavesPresentSet mirrors pagetest.rs: map a frame into
// vaddr 0x400000, then "unmap" it via Map(vaddr, 0, true), which must
// leave the present bit set — the documented rough edge kept for
// behavioral parity with paging.rs.
func TestMapThenZeroLeavesPresentSet(t *testing.T) {
	d := New()
	const vaddr = 0x400000
	const frame = 0x500000

	d.Map(vaddr, frame, true)
	pte := d.Translate(vaddr)
	if pte&0x1 == 0 {
		t.Fatalf("Map: present bit not set, pte=0x%x", pte)
	}
	if pte&0xFFFFF000 != frame {
		t.Fatalf("Map: frame field = 0x%x, want 0x%x", pte&0xFFFFF000, frame)
	}

	d.Map(vaddr, 0, true)
	pte = d.Translate(vaddr)
	if pte&0x1 == 0 {
		t.Errorf("Map(vaddr, 0, true): present bit cleared, want set (behavioral parity)")
	}
	if pte&0xFFFFF000 != 0 {
		t.Errorf("Map(vaddr, 0, true): frame field = 0x%x, want 0", pte&0xFFFFF000)
	}
}

func TestUnmapClearsPresentBit(t *testing.T) {
	d := New()
	const vaddr = 0x400000

	d.Map(vaddr, 0x500000, true)
	d.Unmap(vaddr)

	if pte := d.Translate(vaddr); pte&0x1 != 0 {
		t.Errorf("Unmap: present bit still set, pte=0x%x", pte)
	}
}

func TestMapIntoUnpopulatedDirectorySlotPanics(t *testing.T) {
	d := New()
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic mapping into an unpopulated PD slot")
		}
	}()
	// Table index 10 was never populated by New (only 0..3 are).
	d.Map(10*0x400000, 0x1000, true)
}

func TestIdentityMapCoversLow16MiB(t *testing.T) {
	d := New()
	for _, vaddr := range []uint32{0, 0x1000, 0x3FF000, 0x400000, 0xFFF000} {
		pte := d.Translate(vaddr)
		if pte&0x1 == 0 {
			t.Errorf("vaddr 0x%x: not present in static identity map", vaddr)
		}
		if pte&0xFFFFF000 != vaddr&0xFFFFF000 {
			t.Errorf("vaddr 0x%x: mapped to 0x%x, want identity", vaddr, pte&0xFFFFF000)
		}
	}
}
