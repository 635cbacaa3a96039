package ringdeque

import (
	"context"
	"errors"
	"sync"
	"unsafe"

	"github.com/google/btree"
	"github.com/looplab/fsm"
)

const (
	stateBorrowed = "borrowed"
	stateReleased = "released"
	eventRelease  = "release"
)

// span is the byte range [start, end) of a borrowed buffer. base keeps the
// buffer reachable while the span is registered, so its addresses cannot be
// handed out again to a new allocation.
type span struct {
	start, end uintptr
	base       unsafe.Pointer
}

// borrowed holds the spans of every buffer currently held by a SliceDeque,
// ordered by start address. Live spans never overlap.
var borrowed = struct {
	sync.Mutex
	spans *btree.BTreeG[span]
}{spans: btree.NewG(8, func(a, b span) bool { return a.start < b.start })}

// spanOf returns the memory covered by buf. Buffers that occupy no memory,
// because they are empty or their elements have size zero, have no span:
// deques over them cannot write anything another deque could observe.
func spanOf[T any](buf []T) (span, bool) {
	var zero T
	size := unsafe.Sizeof(zero)
	if len(buf) == 0 || size == 0 {
		return span{}, false
	}
	base := unsafe.Pointer(unsafe.SliceData(buf))
	start := uintptr(base)
	return span{start: start, end: start + uintptr(len(buf))*size, base: base}, true
}

// lease is a SliceDeque's exclusive hold on a caller's buffer. It moves from
// borrowed to released exactly once.
type lease struct {
	span       span
	registered bool
	fsm        *fsm.FSM
	released   bool
}

func acquire[T any](buf []T) (*lease, error) {
	l := &lease{}
	if s, ok := spanOf(buf); ok {
		if !register(s) {
			return nil, ErrAlreadyBorrowed
		}
		l.span, l.registered = s, true
	}
	l.fsm = fsm.NewFSM(
		stateBorrowed,
		fsm.Events{
			{Name: eventRelease, Src: []string{stateBorrowed}, Dst: stateReleased},
		},
		fsm.Callbacks{
			"enter_" + stateReleased: func(_ context.Context, _ *fsm.Event) {
				l.released = true
				if l.registered {
					unregister(l.span)
				}
			},
		},
	)
	return l, nil
}

// register adds s unless it overlaps a live span. Since live spans are
// disjoint, only the nearest span on each side can overlap s.
func register(s span) bool {
	borrowed.Lock()
	defer borrowed.Unlock()

	overlaps := false
	borrowed.spans.DescendLessOrEqual(s, func(prev span) bool {
		overlaps = prev.end > s.start
		return false
	})
	if !overlaps {
		borrowed.spans.AscendGreaterOrEqual(s, func(next span) bool {
			overlaps = next.start < s.end
			return false
		})
	}
	if overlaps {
		return false
	}
	borrowed.spans.ReplaceOrInsert(s)
	return true
}

func unregister(s span) {
	borrowed.Lock()
	borrowed.spans.Delete(s)
	borrowed.Unlock()
}

// check panics if the lease has ended. A nil lease belongs to a zero-value
// SliceDeque and never ends.
func (l *lease) check() {
	if l != nil && l.released {
		panic(ErrReleased)
	}
}

func (l *lease) release() error {
	if l == nil {
		return nil
	}
	err := l.fsm.Event(context.Background(), eventRelease)
	var invalid fsm.InvalidEventError
	if errors.As(err, &invalid) {
		return ErrReleased
	}
	return err
}
