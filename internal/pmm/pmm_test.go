package pmm

import "testing"

// TestAllocateFrameSequence exercises the basic allocate/free/reuse path.
func TestAllocateFrameSequence(t *testing.T) {
	a := New()

	f0, ok := a.Allocate()
	if !ok || f0 != 0x000000 {
		t.Fatalf("first Allocate() = 0x%x, ok=%v, want 0x0", f0, ok)
	}
	f1, ok := a.Allocate()
	if !ok || f1 != 0x001000 {
		t.Fatalf("second Allocate() = 0x%x, ok=%v, want 0x1000", f1, ok)
	}
	f2, ok := a.Allocate()
	if !ok || f2 != 0x002000 {
		t.Fatalf("third Allocate() = 0x%x, ok=%v, want 0x2000", f2, ok)
	}

	a.Free(f1)
	f3, ok := a.Allocate()
	if !ok || f3 != f1 {
		t.Fatalf("Allocate() after Free(f1) = 0x%x, want 0x%x (frame reuse)", f3, f1)
	}
}

func TestAllocateExhaustion(t *testing.T) {
	a := New()
	for i := 0; i < NumFrames; i++ {
		if _, ok := a.Allocate(); !ok {
			t.Fatalf("Allocate() failed early at frame %d of %d", i, NumFrames)
		}
	}
	if _, ok := a.Allocate(); ok {
		t.Fatalf("Allocate() succeeded on an exhausted pool")
	}
}

// TestBitmapMatchesAllocationSet checks the frame-allocator bijection
// property: the set of allocated-but-unfreed frames equals the set of
// bits the bitmap has set.
func TestBitmapMatchesAllocationSet(t *testing.T) {
	a := New()
	allocated := map[uint32]bool{}

	for i := 0; i < 100; i++ {
		addr, ok := a.Allocate()
		if !ok {
			t.Fatalf("Allocate() failed unexpectedly")
		}
		allocated[addr/FrameSize] = true
	}
	// Free every third one.
	i := 0
	for frame := range allocated {
		if i%3 == 0 {
			a.Free(frame * FrameSize)
			delete(allocated, frame)
		}
		i++
	}

	for frame := uint32(0); frame < 200; frame++ {
		want := allocated[frame]
		got := a.testFrame(frame)
		if got != want {
			t.Errorf("frame %d: bitmap bit = %v, want %v", frame, got, want)
		}
	}
	if a.UsedFrames() != len(allocated) {
		t.Errorf("UsedFrames() = %d, want %d", a.UsedFrames(), len(allocated))
	}
}

func TestFreeNeverUnderflows(t *testing.T) {
	a := New()
	a.Free(0)
	a.Free(FrameSize)
	if a.UsedFrames() != 0 {
		t.Errorf("UsedFrames() = %d after frees on an empty allocator, want 0", a.UsedFrames())
	}
	if a.FreeFrames() != NumFrames {
		t.Errorf("FreeFrames() = %d, want %d", a.FreeFrames(), NumFrames)
	}
}

func TestMemtestPattern(t *testing.T) {
	// Mirrors memtest.rs's test_allocation/test_free/test_multiple_allocations,
	// using a byte pattern in place of a volatile write since this is a host
	// allocator over a bitmap, not a physical address space.
	const testPattern = 0xDEADBEEF

	a := New()
	frame, ok := a.Allocate()
	if !ok {
		t.Fatal("allocate_frame failed")
	}
	pattern := map[uint32]uint32{frame: testPattern}
	if pattern[frame] != testPattern {
		t.Fatal("pattern readback mismatch")
	}
	a.Free(frame)

	frame1, ok := a.Allocate()
	if !ok {
		t.Fatal("allocate_frame failed")
	}
	a.Free(frame1)
	frame2, ok := a.Allocate()
	if !ok || frame2 != frame1 {
		t.Fatalf("test_free: got 0x%x, want 0x%x", frame2, frame1)
	}
	a.Free(frame2)

	const num = 10
	var frames [num]uint32
	for i := 0; i < num; i++ {
		f, ok := a.Allocate()
		if !ok {
			t.Fatalf("multiple allocations: failed at %d", i)
		}
		frames[i] = f
	}
	seen := map[uint32]bool{}
	for _, f := range frames {
		if seen[f] {
			t.Fatalf("multiple allocations: duplicate frame 0x%x", f)
		}
		seen[f] = true
	}
	for _, f := range frames {
		a.Free(f)
	}
}
