package arena

import "unsafe"

// Realloc implements §4.3: a nil ptr behaves as Alloc; a zero new size (or a
// nil arena) fails; shrinking always happens in place; growing reuses the
// region in place only when ptr is that region's most recent allocation and
// there is room immediately after it; otherwise a fresh allocation is made
// and the old bytes are copied. The old allocation is never reclaimed by a
// grow-by-copy — it is abandoned until Reset or Destroy.
func (a *Arena) Realloc(ptr unsafe.Pointer, newSize uintptr) unsafe.Pointer {
	if ptr == nil {
		return a.Alloc(newSize)
	}

	if a == nil || newSize == 0 || newSize > maxAllocSize {
		return nil
	}

	a.checkOwner()

	oldSize := readHeader(ptr)

	if newSize <= oldSize {
		writeHeader(ptr, newSize)
		return ptr
	}

	// Grow-in-place must bump r.used by the same aligned unit allocIn uses,
	// or the region's used/header chain drifts off Alignment.
	delta := alignUp(newSize, Alignment) - alignUp(oldSize, Alignment)

	for r := a.head; r != nil; r = r.next {
		if r.lastAlloc != uintptr(ptr) {
			continue
		}

		// Re-read used/capacity here rather than trusting a value captured
		// earlier in the call, matching the original's re-check before
		// committing to grow-in-place.
		if r.freeSpace() < delta {
			break
		}

		r.used += delta
		writeHeader(ptr, newSize)

		return ptr
	}

	newPtr := a.Alloc(newSize)
	if newPtr == nil {
		return nil
	}

	src := unsafe.Slice((*byte)(ptr), oldSize)
	dst := unsafe.Slice((*byte)(newPtr), oldSize)
	copy(dst, src)

	return newPtr
}
