// Command dequefill times filling a queue to capacity.
//
// Usage:
//
//	go run ./cmd/dequefill -n 8388608 -impl all
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/eapache/queue"
	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	ring "github.com/randomizedcoder/go-lock-free-ring"
	"golang.org/x/sys/cpu"

	"github.com/lucasgdosr/ringdeque"
)

// fixedCap bounds the implementations whose capacity is fixed at compile
// time: the array deque and the lock-free ring.
const fixedCap = 8 << 20

type fixedSize struct{}

func (fixedSize) Size() int { return fixedCap }

// A filler sets up a fresh queue for n elements and returns the pushes to
// time, which report how many elements they pushed, and a cleanup func. Only
// push is timed.
type filler func(n int) (push func() (int, error), done func(), err error)

var fillers = map[string]filler{
	"slice":   fillSlice,
	"array":   fillArray,
	"eapache": fillEapache,
	"lfring":  fillLockFreeRing,
}

func nop() {}

func fillSlice(n int) (func() (int, error), func(), error) {
	d, err := ringdeque.Borrow(make([]uint64, n))
	if err != nil {
		return nil, nil, err
	}
	push := func() (int, error) {
		for i := range d.Cap() {
			if err := d.PushBack(uint64(i)); err != nil {
				return i, err
			}
		}
		return d.Len(), nil
	}
	return push, func() { d.Release() }, nil
}

func fillArray(n int) (func() (int, error), func(), error) {
	d := ringdeque.MakeArray[uint64, fixedSize]()
	n = min(n, d.Cap())
	push := func() (int, error) {
		for i := range n {
			if err := d.PushBack(uint64(i)); err != nil {
				return i, err
			}
		}
		return d.Len(), nil
	}
	return push, nop, nil
}

func fillEapache(n int) (func() (int, error), func(), error) {
	q := queue.New()
	push := func() (int, error) {
		for i := range n {
			q.Add(uint64(i))
		}
		return q.Length(), nil
	}
	return push, nop, nil
}

func fillLockFreeRing(n int) (func() (int, error), func(), error) {
	r, err := ring.NewShardedRing(fixedCap, 1)
	if err != nil {
		return nil, nil, err
	}
	n = min(n, fixedCap)
	push := func() (int, error) {
		for i := range n {
			if !r.Write(0, i) {
				return i, errors.New("lock-free ring is full")
			}
		}
		return n, nil
	}
	return push, nop, nil
}

// timeFill sets up the named queue, then times only its pushes.
func timeFill(fill filler, n int) (int, time.Duration, error) {
	push, done, err := fill(n)
	if err != nil {
		return 0, 0, err
	}
	defer done()

	start := time.Now()
	filled, err := push()
	return filled, time.Since(start), err
}

func run(logger logr.Logger, out io.Writer, impl string, n int) error {
	if n < 0 {
		return fmt.Errorf("invalid element count %d", n)
	}

	names := []string{impl}
	if impl == "all" {
		names = []string{"slice", "array", "eapache", "lfring"}
	}

	fmt.Fprintf(out, "Filling queues (%d elements)\n", n)
	fmt.Fprintln(out, "─────────────────────────────────────────────────")

	for _, name := range names {
		fill, ok := fillers[name]
		if !ok {
			return fmt.Errorf("unknown implementation %q", name)
		}
		filled, elapsed, err := timeFill(fill, n)
		if err != nil {
			return fmt.Errorf("%s: filled %d of %d: %w", name, filled, n, err)
		}
		if filled != n {
			logger.Info("capacity is fixed, fill was capped", "impl", name, "filled", filled, "requested", n)
		}

		perElem := 0.0
		if filled > 0 {
			perElem = float64(elapsed.Nanoseconds()) / float64(filled)
		}
		fmt.Fprintf(out, "  %-8s %12dµs  (%.2f ns/elem)\n", name, elapsed.Microseconds(), perElem)
		logger.V(1).Info("filled", "impl", name, "elements", filled, "elapsed", elapsed)
	}
	return nil
}

func main() {
	n := flag.Int("n", 8<<20, "number of elements to push")
	impl := flag.String("impl", "all", "queue to fill: slice, array, eapache, lfring or all")
	verbosity := flag.Int("v", 0, "log verbosity")
	flag.Parse()

	stdr.SetVerbosity(*verbosity)
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithName("dequefill")

	logger.V(1).Info("cpu features",
		"avx2", cpu.X86.HasAVX2,
		"avx512f", cpu.X86.HasAVX512F,
		"asimd", cpu.ARM64.HasASIMD,
		"impls", slices.Sorted(maps.Keys(fillers)),
	)

	if err := run(logger, os.Stdout, *impl, *n); err != nil {
		logger.Error(err, "fill failed")
		os.Exit(1)
	}
}
