package arena

import "github.com/orizon-lang/memarena/internal/arenaerr"

// errSizeOverflow and errMapFailed adapt internal/arenaerr constructors to
// the plain `error` return type used by this package's construction path.
// Every other public operation reports failure by returning nil/no-op per
// §7 of the allocator's error taxonomy; New and NewEmbed are the exception,
// since construction failure is the one case worth a caller-inspectable
// reason (bad size arithmetic vs. a refused mapping).
func errSizeOverflow(context string) error {
	return arenaerr.SizeOverflow(context)
}

func errMapFailed(size uintptr, cause error) error {
	return arenaerr.MapFailed(size, cause)
}
