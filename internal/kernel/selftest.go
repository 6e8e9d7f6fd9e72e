package kernel

import (
	"github.com/contin-os/kernel/internal/klog"
	"github.com/contin-os/kernel/internal/vmm"
)

// runSelfTests re-runs, against the live subsystems Boot just stood up,
// the same checks internal/pmm, internal/heap and internal/vmm's own unit
// tests cover in isolation. Grounded on tests/mod.rs's run_tests, which
// rust_main calls between paging being enabled and the shell starting:
// one last sanity pass over real kernel state before handing off to the
// user. Any failure panics exactly as rust_main's bare `panic!` calls do.
func runSelfTests(k *Kernel) {
	klog.Test("Running memory manager tests...")
	if !testFrameAllocation(k) {
		Panic("Memory allocation test failed!")
	}
	klog.Success("Memory allocation test passed!")

	if !testFrameFree(k) {
		Panic("Memory free test failed!")
	}
	klog.Success("Memory free test passed!")

	if !testMultipleFrameAllocations(k) {
		Panic("Memory multiple allocations test failed!")
	}
	klog.Success("Memory multiple allocations test passed!")

	testPaging(k)
	testHeap(k)
}

func testFrameAllocation(k *Kernel) bool {
	frame, ok := k.Frames.Allocate()
	if !ok {
		return false
	}
	defer k.Frames.Free(frame)
	return true
}

func testFrameFree(k *Kernel) bool {
	frame1, ok := k.Frames.Allocate()
	if !ok {
		return false
	}
	k.Frames.Free(frame1)
	frame2, ok := k.Frames.Allocate()
	if ok {
		defer k.Frames.Free(frame2)
	}
	return ok && frame2 == frame1
}

func testMultipleFrameAllocations(k *Kernel) bool {
	const num = 10
	var frames [num]uint32
	for i := 0; i < num; i++ {
		f, ok := k.Frames.Allocate()
		if !ok {
			for j := 0; j < i; j++ {
				k.Frames.Free(frames[j])
			}
			return false
		}
		frames[i] = f
	}
	for i := 0; i < num; i++ {
		k.Frames.Free(frames[i])
	}
	return true
}

func testPaging(k *Kernel) {
	klog.Test("Paging Test: Mapping and Unmapping")
	frame, ok := k.Frames.Allocate()
	if !ok {
		Panic("Paging Test: Failed to allocate frame")
	}
	const vaddr = 0x400000
	k.Pages.Map(vaddr, frame, true)
	vmm.Invlpg(vaddr)
	klog.Test("Mapped vaddr 0x%x to paddr 0x%x", vaddr, frame)
	k.Pages.Unmap(vaddr)
	vmm.Invlpg(vaddr)
	klog.Test("Unmapped vaddr 0x%x", vaddr)
	k.Frames.Free(frame)
	klog.Test("Paging Test: Completed")
}

func testHeap(k *Kernel) {
	klog.Test("Running Heap (kmalloc/kfree) Test...")
	p1, ok1 := k.Heap.Alloc(64)
	p2, ok2 := k.Heap.Alloc(128)
	p3, ok3 := k.Heap.Alloc(32)
	if !ok1 || !ok2 || !ok3 {
		Panic("Heap allocation failed")
	}
	if !(p1 < p2 && p2 < p3) {
		Panic("Allocations overlap or are out of order!")
	}
	klog.Test("Allocations do not overlap and are correctly ordered.")

	k.Heap.Free(p2)
	p4, ok4 := k.Heap.Alloc(64)
	if !ok4 || p4 != p2 {
		Panic("Freed memory was not reused properly!")
	}
	klog.Test("Freed memory was reused correctly.")

	k.Heap.Free(p4)
	k.Heap.Free(p1)
	k.Heap.Free(p3)

	p5, ok5 := k.Heap.Alloc(128)
	if !ok5 || p5 != p1 {
		Panic("Free block merging failed!")
	}
	klog.Test("Free block merging works correctly.")
	k.Heap.Free(p5)
	klog.Test("Heap test completed.")
}
