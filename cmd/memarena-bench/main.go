// Command memarena-bench runs a synthetic alloc/realloc/free workload
// against an arena, with occasional resets, and reports timing and region
// statistics. With -watch it re-runs the workload whenever the watched file
// changes.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"
	"unsafe"

	"github.com/orizon-lang/memarena/arena"
	"github.com/orizon-lang/memarena/internal/clilog"
	"github.com/orizon-lang/memarena/internal/vfswatch"
)

func main() {
	var (
		regionSize uintptr
		iterations int
		seed       int64
		watchPath  string
		verbose    bool
	)

	flag.Func("region-size", "initial region size in bytes (default=page size)", func(s string) error {
		n, err := parseUintptr(s)
		if err != nil {
			return err
		}
		regionSize = n
		return nil
	})
	flag.IntVar(&iterations, "iterations", 10000, "number of alloc/realloc/free cycles")
	flag.Int64Var(&seed, "seed", 1, "workload random seed")
	flag.StringVar(&watchPath, "watch", "", "re-run the workload whenever this file changes")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.Parse()

	log := clilog.New(verbose)

	run := func() {
		if err := runWorkload(regionSize, iterations, seed, log); err != nil {
			clilog.ExitWithError("%v", err)
		}
	}

	run()

	if watchPath == "" {
		return
	}

	w, err := vfswatch.New(watchPath, 500*time.Millisecond)
	if err != nil {
		clilog.ExitWithError("watch %s: %v", watchPath, err)
	}
	defer w.Close()

	log.Info("watching %s for changes", watchPath)

	for {
		select {
		case ev := <-w.Events():
			log.Info("%s changed, re-running workload", ev.Path)
			run()
		case err := <-w.Errors():
			log.Warn("watch error: %v", err)
		}
	}
}

func runWorkload(regionSize uintptr, iterations int, seed int64, log *clilog.Logger) error {
	a, err := arena.New(regionSize)
	if err != nil {
		return fmt.Errorf("arena.New: %w", err)
	}
	defer a.Destroy()

	rng := rand.New(rand.NewSource(seed))

	start := time.Now()

	var live []unsafe.Pointer

	for i := 0; i < iterations; i++ {
		switch rng.Intn(4) {
		case 0:
			size := uintptr(rng.Intn(256) + 1)
			if p := a.Alloc(size); p != nil {
				live = append(live, p)
			}
		case 1:
			if len(live) == 0 {
				continue
			}
			idx := rng.Intn(len(live))
			a.Free(live[idx])
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
		case 2:
			if len(live) == 0 {
				continue
			}
			idx := rng.Intn(len(live))
			if p := a.Realloc(live[idx], uintptr(rng.Intn(512)+1)); p != nil {
				live[idx] = p
			}
		default:
			a.Reset()
			live = live[:0]
		}
	}

	elapsed := time.Since(start)

	log.Info("workload completed in %s", elapsed)

	a.Dump(os.Stdout)

	return nil
}

func parseUintptr(s string) (uintptr, error) {
	var n uint64
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}

	return uintptr(n), nil
}
