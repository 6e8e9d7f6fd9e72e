// Package pmm is the physical frame allocator: a bitmap over a fixed
// 16 MiB pool of 4 KiB frames. Grounded on memory.rs, wrapped in an
// Allocator struct instead of memory.rs's module-level statics.
package pmm

const (
	// FrameSize is the size in bytes of one physical frame.
	FrameSize = 4096
	// PoolSize is the total size of the managed physical pool.
	PoolSize = 16 * 1024 * 1024
	// NumFrames is the number of frames in the pool.
	NumFrames = PoolSize / FrameSize

	bitmapWords = NumFrames / 32
)

// Allocator is a bitmap-based first-fit physical frame allocator over a
// fixed NumFrames-frame pool.
type Allocator struct {
	bitmap     [bitmapWords]uint32
	usedFrames int
}

// New returns a freshly zeroed Allocator: no frames allocated.
func New() *Allocator {
	return &Allocator{}
}

// Allocate finds the lowest-numbered free frame (bit-scan first-fit:
// skip all-ones words, then find the lowest clear bit in the first
// non-full word), marks it used, and returns its physical base address.
// ok is false if the pool is exhausted.
func (a *Allocator) Allocate() (addr uint32, ok bool) {
	frame := a.firstFree()
	if frame == ^uint32(0) {
		return 0, false
	}
	a.setFrame(frame)
	a.usedFrames++
	return frame * FrameSize, true
}

// Free releases the frame containing addr. USED count saturates at zero
// on underflow as a defense; a correct caller never underflows it.
func (a *Allocator) Free(addr uint32) {
	a.clearFrame(addr / FrameSize)
	if a.usedFrames > 0 {
		a.usedFrames--
	}
}

// FreeFrames returns the number of frames not currently allocated.
func (a *Allocator) FreeFrames() int {
	return NumFrames - a.usedFrames
}

// UsedFrames returns the number of frames currently allocated.
func (a *Allocator) UsedFrames() int {
	return a.usedFrames
}

func (a *Allocator) setFrame(frame uint32) {
	a.bitmap[frame/32] |= 1 << (frame % 32)
}

func (a *Allocator) clearFrame(frame uint32) {
	a.bitmap[frame/32] &^= 1 << (frame % 32)
}

// testFrame reports whether frame is currently allocated.
func (a *Allocator) testFrame(frame uint32) bool {
	return a.bitmap[frame/32]&(1<<(frame%32)) != 0
}

func (a *Allocator) firstFree() uint32 {
	for i, word := range a.bitmap {
		if word == 0xFFFFFFFF {
			continue
		}
		for j := uint32(0); j < 32; j++ {
			if word&(1<<j) == 0 {
				frame := uint32(i)*32 + j
				if frame < NumFrames {
					return frame
				}
			}
		}
	}
	return ^uint32(0)
}
