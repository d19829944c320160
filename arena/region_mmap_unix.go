//go:build unix

package arena

import "golang.org/x/sys/unix"

func platformPageSize() uintptr {
	return uintptr(unix.Getpagesize())
}

// mapAnonymous reserves and commits size bytes of zero-filled, anonymous,
// process-private memory via mmap.
func mapAnonymous(size uintptr) ([]byte, error) {
	return unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func unmapRegion(mem []byte) error {
	if mem == nil {
		return nil
	}

	return unix.Munmap(mem)
}
