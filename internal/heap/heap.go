// Package heap is the kernel's free-list allocator: a single
// address-ordered intrusive free list, first-fit allocation with
// splitting, and forward-only coalesce on free. Grounded on heap.rs for
// the exact algorithm — deliberately not heap.go's own best-fit,
// bidirectional-coalesce design (see DESIGN.md) — while keeping its
// header-before-payload layout (each block reserves headerSize bytes of
// arena ahead of its payload; the header itself is kept out of band,
// keyed by that offset) and kmalloc/kfree naming.
package heap

// blockHeader precedes every allocation in the arena. The free list is a
// single forward chain; because splits only ever insert a new block
// between the current block and its existing next, the list stays
// address-ordered for the lifetime of the heap.
type blockHeader struct {
	size uint32 // payload bytes, not including this header
	next int32  // byte offset of the next block's header in the arena, or -1
	free bool
}

const headerSize = 12 // size(4) + next(4) + free(1), padded to 4-byte alignment

// Heap is an arena-backed free-list allocator. The zero value is not
// usable; call New.
type Heap struct {
	arena   []byte
	headers map[int32]*blockHeader
	root    int32
}

// New creates a Heap over a byte arena of size bytes. The initial free
// list is a single block covering the whole arena, matching init_heap.
func New(size uint32) *Heap {
	h := &Heap{
		arena:   make([]byte, size),
		headers: make(map[int32]*blockHeader),
		root:    0,
	}
	h.headers[0] = &blockHeader{
		size: size - headerSize,
		next: -1,
		free: true,
	}
	return h
}

func align16(size uint32) uint32 {
	return (size + 15) &^ 15
}

// Alloc returns the byte offset (within the heap's arena) of a payload of
// at least n bytes, and true on success. Addresses are not guaranteed to
// be 16-byte aligned — only sizes are rounded to a 16-byte multiple.
// Ordering: with no intervening free, successive Allocs return strictly
// ascending offsets (first-fit walks an address-ordered list from the
// front).
func (h *Heap) Alloc(n uint32) (offset int32, ok bool) {
	if n == 0 {
		return 0, false
	}
	n = align16(n)

	cur := h.root
	for cur != -1 {
		hdr := h.headers[cur]
		if hdr.free && hdr.size >= n {
			break
		}
		cur = hdr.next
	}
	if cur == -1 {
		return 0, false
	}

	hdr := h.headers[cur]
	if hdr.size >= n+headerSize+16 {
		newOffset := cur + headerSize + int32(n)
		h.headers[newOffset] = &blockHeader{
			size: hdr.size - n - headerSize,
			next: hdr.next,
			free: true,
		}
		hdr.size = n
		hdr.next = newOffset
	}
	hdr.free = false

	return cur + headerSize, true
}

// Free marks the block backing the payload at offset as free, and merges
// it with its forward neighbor if that neighbor is also free. There is no
// backward coalesce.
func (h *Heap) Free(offset int32) {
	headerOffset := offset - headerSize
	hdr, ok := h.headers[headerOffset]
	if !ok {
		return
	}
	hdr.free = true

	if hdr.next != -1 {
		if next := h.headers[hdr.next]; next.free {
			hdr.size += next.size + headerSize
			delete(h.headers, hdr.next)
			hdr.next = next.next
		}
	}
}

// Size returns the arena capacity in bytes.
func (h *Heap) Size() uint32 {
	return uint32(len(h.arena))
}

// Arena exposes the backing byte slice so payload offsets returned by
// Alloc can be read/written directly — the arena itself holds only
// payload bytes; headers are tracked out-of-band by offset (see Heap.headers)
// rather than overlaid on the arena bytes, which keeps the allocator free of
// unsafe pointer arithmetic.
func (h *Heap) Arena() []byte {
	return h.arena
}
