package arena

import "unsafe"

// Alloc returns an Alignment-aligned pointer to size bytes, or nil if arena
// is nil, size is zero, or a new region is required and cannot be mapped.
func (a *Arena) Alloc(size uintptr) unsafe.Pointer {
	if a == nil || size == 0 || size > maxAllocSize {
		return nil
	}

	a.checkOwner()

	slot := alignUp(size, Alignment)

	last := a.tail

	for r := a.tail; r != nil; r = r.next {
		if r.freeSpace() >= slot {
			return a.allocIn(r, size)
		}

		last = r
	}

	r, err := a.newRegion(size)
	if err != nil {
		return nil
	}

	if last == nil {
		a.head = r
	} else {
		last.next = r
	}

	return a.allocIn(r, size)
}

// allocIn writes the header and bumps r.used, assuming the caller already
// verified r.freeSpace() >= alignUp(size, Alignment). Bumping by the
// aligned slot size, not the raw request, is what keeps r.used — and so
// every subsequent header and payload in the region — a multiple of
// Alignment; bumping by the raw size would misalign every allocation
// after the first in a region.
func (a *Arena) allocIn(r *region, size uintptr) unsafe.Pointer {
	hdr := unsafe.Pointer(&r.mem[r.start+r.used])
	*(*uint64)(hdr) = uint64(size)

	payload := unsafe.Add(hdr, headerSize)

	r.used += alignUp(size, Alignment) + headerSize
	r.lastAlloc = uintptr(payload)
	r.allocCnt++
	a.tail = r

	return payload
}

// newRegion maps a fresh region sized for at least `size` bytes of payload,
// per §4.2 step 3: max(default_size, size) + per-region overhead, rounded
// up to a whole number of pages.
func (a *Arena) newRegion(size uintptr) (*region, error) {
	target := a.defaultSize
	if size > target {
		target = size
	}

	if target > maxAllocSize-headerSize {
		return nil, errSizeOverflow("arena.newRegion")
	}

	need := alignUp(target, Alignment) + headerSize

	mapSize := roundUpPages(need, a.pagesize)

	mem, err := mapAnonymous(mapSize)
	if err != nil {
		return nil, errMapFailed(mapSize, err)
	}

	return &region{mem: mem, capacity: uintptr(len(mem))}, nil
}

// headerPtr returns the address of the size header immediately preceding
// a payload pointer returned by Alloc/Realloc/Strdup/... family calls.
func headerPtr(payload unsafe.Pointer) unsafe.Pointer {
	return unsafe.Add(payload, -int(headerSize))
}

func readHeader(payload unsafe.Pointer) uintptr {
	return uintptr(*(*uint64)(headerPtr(payload)))
}

func writeHeader(payload unsafe.Pointer, size uintptr) {
	*(*uint64)(headerPtr(payload)) = uint64(size)
}
