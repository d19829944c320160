//go:build arenadebug

package arena

import (
	"fmt"

	"github.com/timandy/routine"
)

// recordOwner tags the arena with the goroutine that created it.
func (a *Arena) recordOwner() {
	a.ownerGoid = routine.Goid()
}

// checkOwner panics if the arena is being used from a goroutine other than
// the one that created it. Arena was never meant to be shared; this tag
// turns a silent data race into a loud failure under the arenadebug tag.
func (a *Arena) checkOwner() {
	if goid := routine.Goid(); goid != a.ownerGoid {
		panic(fmt.Sprintf("arena: used from goroutine %d, owned by goroutine %d", goid, a.ownerGoid))
	}
}
