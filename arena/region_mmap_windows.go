//go:build windows

package arena

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func platformPageSize() uintptr {
	var si windows.SystemInfo
	windows.GetSystemInfo(&si)

	return uintptr(si.PageSize)
}

// mapAnonymous reserves and commits size bytes via VirtualAlloc.
func mapAnonymous(size uintptr) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, size, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func unmapRegion(mem []byte) error {
	if mem == nil {
		return nil
	}

	addr := uintptr(unsafe.Pointer(&mem[0]))

	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}
