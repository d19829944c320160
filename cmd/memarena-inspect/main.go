// Command memarena-inspect exercises an arena workload and writes (or
// validates) a structured snapshot of its region list, gated by the
// snapshot package's semantic format version and checksum.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/orizon-lang/memarena/arena"
	"github.com/orizon-lang/memarena/internal/clilog"
	"github.com/orizon-lang/memarena/internal/snapshot"
)

func main() {
	var (
		out      string
		validate string
		allocs   int
	)

	flag.StringVar(&out, "out", "", "write a snapshot of a sample workload to this path")
	flag.StringVar(&validate, "validate", "", "validate an existing snapshot file instead of generating one")
	flag.IntVar(&allocs, "allocs", 64, "number of sample allocations before snapshotting")
	flag.Parse()

	log := clilog.New(true)

	if validate != "" {
		if err := validateSnapshot(validate); err != nil {
			clilog.ExitWithError("%v", err)
		}

		log.Info("snapshot %s is valid", validate)

		return
	}

	if out == "" {
		clilog.ExitWithError("either -out or -validate is required")
	}

	if err := writeSnapshot(out, allocs); err != nil {
		clilog.ExitWithError("%v", err)
	}

	log.Info("wrote snapshot to %s", out)
}

func writeSnapshot(path string, allocs int) error {
	a, err := arena.New(0)
	if err != nil {
		return fmt.Errorf("arena.New: %w", err)
	}
	defer a.Destroy()

	for i := 0; i < allocs; i++ {
		if a.Alloc(uintptr(8+i%64)) == nil {
			return fmt.Errorf("alloc %d failed", i)
		}
	}

	doc := snapshot.Document{
		PageSize:    uint64(a.PageSize()),
		DefaultSize: uint64(a.DefaultSize()),
	}

	for i, r := range a.Regions() {
		doc.Regions = append(doc.Regions, snapshot.Region{
			Index:     i,
			Used:      uint64(r.Used),
			Capacity:  uint64(r.Capacity),
			Free:      uint64(r.Free),
			AllocCnt:  r.AllocCnt,
			LastAlloc: uint64(r.LastAlloc),
			IsTail:    r.IsTail,
		})
	}

	data, err := snapshot.New(doc).Marshal()
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

func validateSnapshot(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	_, err = snapshot.Parse(data)

	return err
}
