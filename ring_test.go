package ringdeque

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

// checkRing verifies the layout of r: indices in range, views matching the
// logical order, and zero values in every free slot. Tests store only
// non-zero values so that a stale slot shows up.
func checkRing(t *testing.T, r *ring[int]) {
	t.Helper()
	if r.n < 0 || r.n > len(r.buf) {
		t.Fatalf("len %d outside [0, %d]", r.n, len(r.buf))
	}
	if len(r.buf) > 0 && (r.head < 0 || r.head >= len(r.buf)) {
		t.Fatalf("head %d outside [0, %d)", r.head, len(r.buf))
	}
	a, b := r.slices()
	if len(a)+len(b) != r.n {
		t.Fatalf("views hold %d elements, len is %d", len(a)+len(b), r.n)
	}
	if r.n > 0 && len(a) == 0 {
		t.Fatalf("first view empty with len %d", r.n)
	}
	occupied := make([]bool, len(r.buf))
	for i := range r.n {
		occupied[r.phys(i)] = true
	}
	for j, used := range occupied {
		if !used && r.buf[j] != 0 {
			t.Fatalf("free slot %d holds %d", j, r.buf[j])
		}
	}
}

func TestSlicesSplit(t *testing.T) {
	for c := 0; c <= 8; c++ {
		for head := range max(c, 1) {
			for n := 0; n <= c; n++ {
				r := makeRing(make([]int, c))
				r.head = head
				want := make([]int, n)
				for i := range want {
					want[i] = i + 1
				}
				if err := r.pushBack(want); err != nil {
					t.Fatalf("cap %d head %d: push %d: %v", c, head, n, err)
				}
				checkRing(t, &r)

				a, b := r.slices()
				if got := slices.Concat(a, b); !slices.Equal(got, want) {
					t.Fatalf("cap %d head %d len %d: got %v, want %v", c, head, n, got, want)
				}
				if head+n <= c && b != nil {
					t.Fatalf("cap %d head %d len %d: unwrapped content split as %v %v", c, head, n, a, b)
				}
				if cap(a) != len(a) || cap(b) != len(b) {
					t.Fatalf("cap %d head %d len %d: views reach past their length", c, head, n)
				}
			}
		}
	}
}

func TestWraparound(t *testing.T) {
	r := makeRing(make([]int, 4))
	if err := r.pushBack([]int{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}
	r.popFront()
	r.popFront()
	if err := r.pushBack([]int{5, 6}); err != nil {
		t.Fatal(err)
	}
	checkRing(t, &r)

	a, b := r.slices()
	if got := fmt.Sprint(a, b); got != "[3 4] [5 6]" {
		t.Fatalf("slices = %s, want [3 4] [5 6]", got)
	}
	for i, want := range []int{3, 4, 5, 6} {
		if got := r.at(i); got != want {
			t.Fatalf("at(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestZeroCapacity(t *testing.T) {
	r := makeRing[int](nil)
	if !r.full() {
		t.Fatal("capacity 0 ring is not full")
	}
	if err := r.pushBack([]int{1}); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("pushBack = %v, want ErrCapacityExceeded", err)
	}
	if err := r.pushFront([]int{1}); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("pushFront = %v, want ErrCapacityExceeded", err)
	}
	if err := r.pushBack(nil); err != nil {
		t.Fatalf("pushing nothing: %v", err)
	}
	if _, ok := r.popFront(); ok {
		t.Fatal("popFront on empty ring succeeded")
	}
	if _, ok := r.peekBack(); ok {
		t.Fatal("peekBack on empty ring succeeded")
	}
	if a, b := r.slices(); a != nil || b != nil {
		t.Fatalf("slices = %v %v, want nil nil", a, b)
	}
	r.truncate(3)
	r.reset()
	checkRing(t, &r)
}

func TestPushFrontOrder(t *testing.T) {
	r := makeRing(make([]int, 5))
	r.pushBack([]int{4})
	if err := r.pushFront([]int{3, 2, 1}); err != nil {
		t.Fatal(err)
	}
	checkRing(t, &r)
	if got := fmt.Sprint(r.makeSliceCopy()); got != "[1 2 3 4]" {
		t.Fatalf("got %s, want [1 2 3 4]", got)
	}
	if r.head != 2 {
		t.Fatalf("head = %d, want 2", r.head)
	}
}

func TestPushIsAtomic(t *testing.T) {
	r := makeRing(make([]int, 4))
	r.pushBack([]int{1, 2, 3})

	err := r.pushBack([]int{4, 5})
	var ce *CapacityError[int]
	if !errors.As(err, &ce) {
		t.Fatalf("pushBack = %v, want *CapacityError", err)
	}
	if fmt.Sprint(ce.Items) != "[4 5]" || ce.Capacity != 4 || ce.Len != 3 {
		t.Fatalf("unexpected error contents: %+v", ce)
	}
	if err := r.pushFront([]int{0, 0}); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("pushFront = %v, want ErrCapacityExceeded", err)
	}
	checkRing(t, &r)
	if got := fmt.Sprint(r.makeSliceCopy()); got != "[1 2 3]" {
		t.Fatalf("failed push changed the ring: %s", got)
	}
}

func TestPopZeroesSlots(t *testing.T) {
	r := makeRing(make([]int, 3))
	r.pushBack([]int{1, 2, 3})
	if v, _ := r.popFront(); v != 1 {
		t.Fatalf("popFront = %d, want 1", v)
	}
	if v, _ := r.popBack(); v != 3 {
		t.Fatalf("popBack = %d, want 3", v)
	}
	checkRing(t, &r)
	if v, _ := r.popBack(); v != 2 {
		t.Fatalf("popBack = %d, want 2", v)
	}
	if r.head != 1 {
		t.Fatalf("emptying the ring moved head to %d", r.head)
	}
	if _, ok := r.popBack(); ok {
		t.Fatal("popBack on empty ring succeeded")
	}
	checkRing(t, &r)
}

func TestTruncate(t *testing.T) {
	for _, tc := range []struct {
		k    int
		want string
	}{
		{-1, "[]"},
		{0, "[]"},
		{2, "[1 2]"},
		{4, "[1 2 3 4]"},
		{9, "[1 2 3 4]"},
	} {
		r := makeRing(make([]int, 5))
		r.head = 3
		r.pushBack([]int{1, 2, 3, 4})
		r.truncate(tc.k)
		checkRing(t, &r)
		if got := fmt.Sprint(r.makeSliceCopy()); got != tc.want {
			t.Fatalf("truncate(%d) = %s, want %s", tc.k, got, tc.want)
		}

		head, n, buf := r.head, r.n, slices.Clone(r.buf)
		r.truncate(tc.k)
		checkRing(t, &r)
		if r.head != head || r.n != n || !slices.Equal(r.buf, buf) {
			t.Fatalf("second truncate(%d) changed the ring", tc.k)
		}
	}
}

func TestTruncateZeroIsClear(t *testing.T) {
	for head := range 5 {
		x, y := makeRing(make([]int, 5)), makeRing(make([]int, 5))
		x.head, y.head = head, head
		x.pushBack([]int{1, 2, 3, 4})
		y.pushBack([]int{1, 2, 3, 4})

		x.truncate(0)
		y.reset()
		checkRing(t, &x)
		checkRing(t, &y)
		if x.head != y.head || x.n != y.n || !slices.Equal(x.buf, y.buf) {
			t.Fatalf("head %d: truncate(0) left %v head %d, reset left %v head %d", head, x.buf, x.head, y.buf, y.head)
		}
	}
}

func TestDrop(t *testing.T) {
	r := makeRing(make([]int, 6))
	r.head = 4
	r.pushBack([]int{1, 2, 3, 4, 5})

	r.dropFront(2)
	r.dropBack(1)
	r.dropFront(-3)
	checkRing(t, &r)
	if got := fmt.Sprint(r.makeSliceCopy()); got != "[3 4]" {
		t.Fatalf("got %s, want [3 4]", got)
	}
	r.dropBack(10)
	checkRing(t, &r)
	if r.n != 0 {
		t.Fatalf("len = %d after dropping everything", r.n)
	}
}

func TestDrain(t *testing.T) {
	r := makeRing(make([]int, 6))
	r.head = 4
	r.pushBack([]int{1, 2, 3, 4, 5})

	if _, ok := r.drainFront(6); ok {
		t.Fatal("draining more than len succeeded")
	}
	if _, ok := r.drainBack(-1); ok {
		t.Fatal("draining a negative count succeeded")
	}

	seq, ok := r.drainFront(3)
	if !ok {
		t.Fatal("drainFront(3) failed")
	}
	checkRing(t, &r)
	if got := fmt.Sprint(r.makeSliceCopy()); got != "[4 5]" {
		t.Fatalf("after drainFront(3) the ring holds %s, want [4 5]", got)
	}

	// The freed slots may be reused before the sequence is consumed.
	r.pushFront([]int{7})
	var got []int
	for v := range seq {
		got = append(got, v)
		break
	}
	for v := range seq {
		got = append(got, v)
	}
	if fmt.Sprint(got) != "[1]" {
		t.Fatalf("drained %v, want [1] with the rest discarded", got)
	}
	if got := fmt.Sprint(r.makeSliceCopy()); got != "[7 4 5]" {
		t.Fatalf("ranging the drain changed the ring to %s", got)
	}

	seq, _ = r.drainBack(2)
	if got := fmt.Sprint(slices.Collect(seq)); got != "[5 4]" {
		t.Fatalf("drainBack = %s, want [5 4]", got)
	}
	if got := slices.Collect(seq); len(got) != 0 {
		t.Fatalf("second range yielded %v", got)
	}
	checkRing(t, &r)

	// Elements leave even if the sequence is never ranged.
	r.drainFront(1)
	if r.n != 0 {
		t.Fatalf("len = %d, want 0", r.n)
	}
	checkRing(t, &r)
}

func TestIndexing(t *testing.T) {
	r := makeRing(make([]int, 4))
	r.head = 3
	r.pushBack([]int{10, 20, 30})

	if v, ok := r.get(2); !ok || v != 30 {
		t.Fatalf("get(2) = %d, %v", v, ok)
	}
	if _, ok := r.get(3); ok {
		t.Fatal("get(3) succeeded with len 3")
	}
	*r.atPtr(1) = 21
	r.set(0, 11)
	r.swap(0, 2)
	if got := fmt.Sprint(r.makeSliceCopy()); got != "[30 21 11]" {
		t.Fatalf("got %s, want [30 21 11]", got)
	}
	*r.frontPtr() = 31
	*r.backPtr() = 12
	if f, _ := r.peekFront(); f != 31 {
		t.Fatalf("front = %d, want 31", f)
	}
	if b, _ := r.peekBack(); b != 12 {
		t.Fatalf("back = %d, want 12", b)
	}
}

func TestAtPanicsOnOutOfRange(t *testing.T) {
	r := makeRing(make([]int, 2))
	r.pushBack([]int{1})
	for _, i := range []int{-1, 1, 2} {
		func() {
			defer func() {
				err, _ := recover().(error)
				if !errors.Is(err, ErrIndexOutOfBounds) {
					t.Fatalf("at(%d) panicked with %v, want ErrIndexOutOfBounds", i, err)
				}
			}()
			r.at(i)
		}()
	}
}

func TestCopySlice(t *testing.T) {
	r := makeRing(make([]int, 5))
	r.head = 3
	r.pushBack([]int{1, 2, 3, 4, 5})

	for start, want := range []string{"[1 2 3]", "[2 3 4]", "[3 4 5]", "[4 5 0]", "[5 0 0]"} {
		buf := make([]int, 3)
		n := r.copySlice(start, buf)
		if got := fmt.Sprint(buf); got != want {
			t.Fatalf("copySlice(%d) = %s, want %s", start, got, want)
		}
		if n != min(3, 5-start) {
			t.Fatalf("copySlice(%d) copied %d", start, n)
		}
	}
}

func TestIteration(t *testing.T) {
	r := makeRing(make([]int, 4))
	r.head = 2
	r.pushBack([]int{1, 2, 3, 4})

	var fwd, bwd []string
	for i, v := range r.all() {
		fwd = append(fwd, fmt.Sprintf("%d:%d", i, v))
	}
	for i, v := range r.backward() {
		bwd = append(bwd, fmt.Sprintf("%d:%d", i, v))
	}
	if got := fmt.Sprint(fwd); got != "[0:1 1:2 2:3 3:4]" {
		t.Fatalf("all = %s", got)
	}
	if got := fmt.Sprint(bwd); got != "[3:4 2:3 1:2 0:1]" {
		t.Fatalf("backward = %s", got)
	}

	var seen []int
	r.forEach(func(v int) bool {
		seen = append(seen, v)
		return v < 3
	})
	if fmt.Sprint(seen) != "[1 2 3]" {
		t.Fatalf("forEach visited %v", seen)
	}
	if i := r.indexFunc(func(v int) bool { return v == 4 }); i != 3 {
		t.Fatalf("indexFunc = %d, want 3", i)
	}
	if i := r.indexFunc(func(v int) bool { return v == 9 }); i != -1 {
		t.Fatalf("indexFunc = %d, want -1", i)
	}
}
