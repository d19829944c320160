package arena

import (
	"testing"
	"unsafe"
)

func TestAllocAlignment(t *testing.T) {
	a, err := New(4096, WithPageSize(4096))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Destroy()

	sizes := []uintptr{1, 3, 7, 15, 16, 17, 100, 257}
	for _, s := range sizes {
		p := a.Alloc(s)
		if p == nil {
			t.Fatalf("Alloc(%d) failed", s)
		}

		if uintptr(p)%Alignment != 0 {
			t.Fatalf("Alloc(%d) = %p, not %d-aligned", s, p, Alignment)
		}
	}
}

func TestAllocHeaderMatchesRequestedSize(t *testing.T) {
	a, err := New(4096, WithPageSize(4096))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Destroy()

	for _, s := range []uintptr{1, 12, 64, 513} {
		p := a.Alloc(s)
		if p == nil {
			t.Fatalf("Alloc(%d) failed", s)
		}

		if got := a.Memsize(p); got != s {
			t.Fatalf("Memsize after Alloc(%d) = %d, want %d", s, got, s)
		}
	}
}

func TestAllocZeroOrNilFails(t *testing.T) {
	a, err := New(4096)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Destroy()

	if p := a.Alloc(0); p != nil {
		t.Fatal("Alloc(0) should return nil")
	}

	var nilArena *Arena
	if p := nilArena.Alloc(16); p != nil {
		t.Fatal("Alloc on a nil arena should return nil")
	}
}

func TestAllocCreatesNewRegionWhenFull(t *testing.T) {
	const pageSize = 4096

	a, err := New(pageSize, WithPageSize(pageSize))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Destroy()

	chunk := uintptr(pageSize / 4)

	var last unsafe.Pointer
	for i := 0; i < 64 && a.head.next == nil; i++ {
		last = a.Alloc(chunk)
		if last == nil {
			t.Fatal("Alloc failed before a second region was forced")
		}
	}

	if a.head.next == nil {
		t.Fatal("expected a second region to have been created")
	}
}
