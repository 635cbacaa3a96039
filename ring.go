package ringdeque

import (
	"iter"
	"slices"
)

// ring holds the bookkeeping shared by ArrayDeque and SliceDeque. The storage
// is a slice whose length is the capacity; logical element i lives at
// buf[(head+i) % len(buf)]. Slots outside the logical range hold the zero
// value of T.
//
// n is tracked explicitly, so a full ring and an empty ring never look alike.
// head is left where it is when the ring empties.
type ring[T any] struct {
	buf  []T
	head int
	n    int
}

// makeRing wraps buf without reading it. The capacity is clipped to len(buf)
// so that views handed out by slices can never reach past the ring.
func makeRing[T any](buf []T) ring[T] {
	return ring[T]{buf: buf[:len(buf):len(buf)]}
}

func (r *ring[T]) len() int   { return r.n }
func (r *ring[T]) cap() int   { return len(r.buf) }
func (r *ring[T]) full() bool { return r.n == len(r.buf) }

// phys maps the logical index i, 0 <= i < len(buf), to its slot.
func (r *ring[T]) phys(i int) int {
	j := r.head + i
	if j >= len(r.buf) {
		j -= len(r.buf)
	}
	return j
}

func (r *ring[T]) next(j int) int {
	j++
	if j == len(r.buf) {
		return 0
	}
	return j
}

func (r *ring[T]) prev(j int) int {
	if j == 0 {
		return len(r.buf) - 1
	}
	return j - 1
}

/*****************************************************************************
 * PUSH / PEEK / POP
 *****************************************************************************/

// pushBack stores every element of ts or none of them.
func (r *ring[T]) pushBack(ts []T) error {
	if len(ts) > len(r.buf)-r.n {
		return r.capacityError(ts)
	}
	for _, t := range ts {
		r.buf[r.phys(r.n)] = t
		r.n++
	}
	return nil
}

// pushFront stores every element of ts or none of them. The last element
// ends up at the front.
func (r *ring[T]) pushFront(ts []T) error {
	if len(ts) > len(r.buf)-r.n {
		return r.capacityError(ts)
	}
	for _, t := range ts {
		r.head = r.prev(r.head)
		r.buf[r.head] = t
		r.n++
	}
	return nil
}

// capacityError copies ts so that the variadic slice of a push does not
// escape on the success path.
func (r *ring[T]) capacityError(ts []T) error {
	items := make([]T, len(ts))
	copy(items, ts)
	return &CapacityError[T]{Items: items, Capacity: len(r.buf), Len: r.n}
}

func (r *ring[T]) peekFront() (t T, ok bool) {
	if r.n == 0 {
		return
	}
	return r.buf[r.head], true
}

func (r *ring[T]) peekBack() (t T, ok bool) {
	if r.n == 0 {
		return
	}
	return r.buf[r.phys(r.n-1)], true
}

func (r *ring[T]) frontPtr() *T {
	if r.n == 0 {
		return nil
	}
	return &r.buf[r.head]
}

func (r *ring[T]) backPtr() *T {
	if r.n == 0 {
		return nil
	}
	return &r.buf[r.phys(r.n-1)]
}

func (r *ring[T]) popFront() (t T, ok bool) {
	if r.n == 0 {
		return
	}
	var zero T
	t, r.buf[r.head] = r.buf[r.head], zero
	r.head = r.next(r.head)
	r.n--
	return t, true
}

func (r *ring[T]) popBack() (t T, ok bool) {
	if r.n == 0 {
		return
	}
	var zero T
	r.n--
	j := r.phys(r.n)
	t, r.buf[j] = r.buf[j], zero
	return t, true
}

/*****************************************************************************
 * INDEXING
 *****************************************************************************/

func (r *ring[T]) checkBounds(i int) {
	if i < 0 || i >= r.n {
		panic(outOfBounds(i, r.n))
	}
}

func (r *ring[T]) at(i int) T {
	r.checkBounds(i)
	return r.buf[r.phys(i)]
}

func (r *ring[T]) atPtr(i int) *T {
	r.checkBounds(i)
	return &r.buf[r.phys(i)]
}

func (r *ring[T]) get(i int) (t T, ok bool) {
	if i < 0 || i >= r.n {
		return
	}
	return r.buf[r.phys(i)], true
}

func (r *ring[T]) set(i int, t T) {
	r.checkBounds(i)
	r.buf[r.phys(i)] = t
}

func (r *ring[T]) swap(i, j int) {
	r.checkBounds(i)
	r.checkBounds(j)
	pi, pj := r.phys(i), r.phys(j)
	r.buf[pi], r.buf[pj] = r.buf[pj], r.buf[pi]
}

/*****************************************************************************
 * REMOVAL
 *****************************************************************************/

// reset zeroes every occupied slot. head stays put.
func (r *ring[T]) reset() {
	a, b := r.slices()
	clear(a)
	clear(b)
	r.n = 0
}

// truncate keeps the first k elements. It only touches the removed slots.
func (r *ring[T]) truncate(k int) {
	k = max(k, 0)
	if k >= r.n {
		return
	}
	r.dropBack(r.n - k)
}

func (r *ring[T]) dropFront(k int) {
	if k <= 0 {
		return
	}
	k = min(k, r.n)
	var zero T
	for range k {
		r.buf[r.head] = zero
		r.head = r.next(r.head)
	}
	r.n -= k
}

func (r *ring[T]) dropBack(k int) {
	if k <= 0 {
		return
	}
	k = min(k, r.n)
	var zero T
	for i := r.n - k; i < r.n; i++ {
		r.buf[r.phys(i)] = zero
	}
	r.n -= k
}

// drainFront removes the first k elements at once, zeroing their slots, and
// returns them front to back as a single-use sequence.
func (r *ring[T]) drainFront(k int) (iter.Seq[T], bool) {
	if k < 0 || k > r.n {
		return nil, false
	}
	items := make([]T, k)
	r.copySlice(0, items)
	r.dropFront(k)
	return drained(items), true
}

// drainBack removes the last k elements at once and returns them back to
// front.
func (r *ring[T]) drainBack(k int) (iter.Seq[T], bool) {
	if k < 0 || k > r.n {
		return nil, false
	}
	items := make([]T, k)
	r.copySlice(r.n-k, items)
	r.dropBack(k)
	slices.Reverse(items)
	return drained(items), true
}

// drained yields items in order, releasing each one as it goes. Items left
// when the consumer stops are discarded, and a second range yields nothing.
func drained[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for len(items) > 0 {
			var zero T
			t := items[0]
			items[0] = zero
			items = items[1:]
			if !yield(t) {
				clear(items)
				items = nil
				return
			}
		}
	}
}

/*****************************************************************************
 * VIEWS
 *****************************************************************************/

// slices returns the logical sequence as at most two views of buf. The
// second view is non-empty only when the content wraps past the end of buf.
// Each view's capacity equals its length, so appending to one reallocates
// instead of overwriting the other or a free slot.
func (r *ring[T]) slices() (a, b []T) {
	if r.n == 0 {
		return nil, nil
	}
	end := r.head + r.n
	if end <= len(r.buf) {
		return r.buf[r.head:end:end], nil
	}
	end -= len(r.buf)
	return r.buf[r.head:len(r.buf):len(r.buf)], r.buf[:end:end]
}

func (r *ring[T]) copySlice(start int, buf []T) int {
	a, b := r.slices()
	if start < len(a) {
		n := copy(buf, a[start:])
		return n + copy(buf[n:], b)
	}
	return copy(buf, b[start-len(a):])
}

func (r *ring[T]) makeSliceCopy() []T {
	a, b := r.slices()
	s := make([]T, 0, r.n)
	s = append(s, a...)
	return append(s, b...)
}

/*****************************************************************************
 * ITERATION AND SEARCH
 *****************************************************************************/

func (r *ring[T]) all() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		a, b := r.slices()
		for i, t := range a {
			if !yield(i, t) {
				return
			}
		}
		for i, t := range b {
			if !yield(len(a)+i, t) {
				return
			}
		}
	}
}

func (r *ring[T]) backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		a, b := r.slices()
		for i := len(b) - 1; i >= 0; i-- {
			if !yield(len(a)+i, b[i]) {
				return
			}
		}
		for i := len(a) - 1; i >= 0; i-- {
			if !yield(i, a[i]) {
				return
			}
		}
	}
}

func (r *ring[T]) values() iter.Seq[T] {
	return func(yield func(T) bool) {
		a, b := r.slices()
		for _, t := range a {
			if !yield(t) {
				return
			}
		}
		for _, t := range b {
			if !yield(t) {
				return
			}
		}
	}
}

func (r *ring[T]) forEach(f func(T) bool) {
	for t := range r.values() {
		if !f(t) {
			return
		}
	}
}

func (r *ring[T]) indexFunc(f func(T) bool) int {
	a, b := r.slices()
	if i := slices.IndexFunc(a, f); i != -1 {
		return i
	}
	if i := slices.IndexFunc(b, f); i != -1 {
		return i + len(a)
	}
	return -1
}
