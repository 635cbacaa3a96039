package ringdeque

import "iter"

// ArrayDeque is a fixed-capacity double-ended queue that owns its storage.
// Its capacity is N.Size(), fixed by the type:
//
//	var tasks ringdeque.ArrayDeque[Task, ringdeque.N8] // capacity 8
//
// The zero value is an empty deque ready to use. Storage is allocated once,
// on first use, and every slot starts as the zero value of T. After that an
// ArrayDeque never allocates: pushing onto a full deque returns an error
// wrapping ErrCapacityExceeded instead of growing.
//
// An ArrayDeque must not be copied after first use, since the copy would share
// its storage. Use Clone instead. ArrayDeque is not safe for concurrent use.
type ArrayDeque[T any, N Size] struct {
	r ring[T]
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// MakeArray returns an empty ArrayDeque with its storage allocated.
func MakeArray[T any, N Size]() *ArrayDeque[T, N] {
	d := new(ArrayDeque[T, N])
	d.core()
	return d
}

// CopySliceToArray returns an ArrayDeque holding a copy of s, front to back.
// It returns an error wrapping ErrCapacityExceeded if len(s) > N.Size().
func CopySliceToArray[T any, N Size](s []T) (*ArrayDeque[T, N], error) {
	d := MakeArray[T, N]()
	if err := d.r.pushBack(s); err != nil {
		return nil, err
	}
	return d, nil
}

// core returns the ring, allocating its storage on first use.
func (d *ArrayDeque[T, N]) core() *ring[T] {
	if d.r.buf == nil {
		d.r = makeRing(make([]T, sizeOf[N]()))
	}
	return &d.r
}

// Clone returns a deep copy of the deque holding the same elements in the same
// order.
func (d *ArrayDeque[T, N]) Clone() *ArrayDeque[T, N] {
	c := MakeArray[T, N]()
	c.r.n = d.core().copySlice(0, c.r.buf)
	return c
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the deque, or 0 if d is nil.
func (d *ArrayDeque[T, N]) Len() int {
	if d == nil {
		return 0
	}
	return d.r.n
}

// Cap returns the capacity, N.Size(). It never changes.
func (d *ArrayDeque[T, N]) Cap() int { return sizeOf[N]() }

// Empty returns whether the deque is empty.
func (d *ArrayDeque[T, N]) Empty() bool { return d.r.n == 0 }

// Full returns whether the deque is full. Pushing onto a full deque fails.
func (d *ArrayDeque[T, N]) Full() bool { return d.r.n == d.Cap() }

// PushBack puts ts at the back of the deque, in order, so the last argument
// becomes the new back. Either every element is stored or, if they don't all
// fit, none is and a *CapacityError[T] holding ts is returned.
func (d *ArrayDeque[T, N]) PushBack(ts ...T) error { return d.core().pushBack(ts) }

// PushFront puts ts at the front of the deque, one after the other, so the
// last argument becomes the new front. Either every element is stored or, if
// they don't all fit, none is and a *CapacityError[T] holding ts is returned.
func (d *ArrayDeque[T, N]) PushFront(ts ...T) error { return d.core().pushFront(ts) }

// PeekFront returns the first element. If the deque is empty, it returns
// false.
func (d *ArrayDeque[T, N]) PeekFront() (T, bool) { return d.core().peekFront() }

// PeekBack returns the last element. If the deque is empty, it returns false.
func (d *ArrayDeque[T, N]) PeekBack() (T, bool) { return d.core().peekBack() }

// PeekFrontPtr returns a pointer to the first element, or nil if the deque is
// empty. The pointer is only valid until the next mutation of d.
func (d *ArrayDeque[T, N]) PeekFrontPtr() *T { return d.core().frontPtr() }

// PeekBackPtr returns a pointer to the last element, or nil if the deque is
// empty. The pointer is only valid until the next mutation of d.
func (d *ArrayDeque[T, N]) PeekBackPtr() *T { return d.core().backPtr() }

// PopFront removes the first element and returns it. If the deque is empty,
// it returns false. The freed slot is zeroed, so the deque keeps no
// references to popped elements.
func (d *ArrayDeque[T, N]) PopFront() (T, bool) { return d.core().popFront() }

// PopBack removes the last element and returns it. If the deque is empty, it
// returns false. The freed slot is zeroed.
func (d *ArrayDeque[T, N]) PopBack() (T, bool) { return d.core().popBack() }

// DropFront removes and zeroes the first n elements in O(n). If the deque has
// fewer than n elements, it drops every element. If n is negative, nothing is
// dropped.
func (d *ArrayDeque[T, N]) DropFront(n int) { d.core().dropFront(n) }

// DropBack removes and zeroes the last n elements in O(n). If the deque has
// fewer than n elements, it drops every element. If n is negative, nothing is
// dropped.
func (d *ArrayDeque[T, N]) DropBack(n int) { d.core().dropBack(n) }

// DrainFront removes the first n elements and returns them, front to back, as
// a single-use sequence. The elements leave the deque immediately, whether or
// not the sequence is ranged over; those not consumed when the range stops
// are discarded. It returns false, and does nothing, if n is negative or
// greater than Len. It allocates a slice of n elements.
func (d *ArrayDeque[T, N]) DrainFront(n int) (iter.Seq[T], bool) { return d.core().drainFront(n) }

// DrainBack is like DrainFront but removes the last n elements, which come
// out back to front.
func (d *ArrayDeque[T, N]) DrainBack(n int) (iter.Seq[T], bool) { return d.core().drainBack(n) }

// Clear empties the deque in O(Len()), zeroing every element. Capacity is
// unchanged.
func (d *ArrayDeque[T, N]) Clear() { d.core().reset() }

// Truncate keeps the first n elements and drops the rest in O(Len()-n). It
// does nothing if n >= Len(). A negative n is treated as 0, so Truncate(0) is
// the same as Clear.
func (d *ArrayDeque[T, N]) Truncate(n int) { d.core().truncate(n) }

/*****************************************************************************
 * SLICE API
 *****************************************************************************/

// Slices returns the contents of the deque as two views of its storage.
// Concatenating a and b gives the elements front to back. b is empty unless
// the contents wrap around the end of the storage. Both are nil for an empty
// deque.
//
// The views alias the deque: writes through them are visible in the deque
// and they are only valid until the next push or pop. They never share a
// slot, and since each has cap == len, appending to one copies instead of
// overwriting the deque.
func (d *ArrayDeque[T, N]) Slices() (a, b []T) { return d.core().slices() }

// MakeSliceCopy allocates a slice holding every element front to back.
// Prefer CopySlice with a reused buffer to avoid the allocation.
func (d *ArrayDeque[T, N]) MakeSliceCopy() []T { return d.core().makeSliceCopy() }

// CopySlice has the same semantics as the copy built-in. It copies elements
// starting at index start until buf is full or the deque is over, and returns
// the number of elements copied. It panics if start > Len().
func (d *ArrayDeque[T, N]) CopySlice(start int, buf []T) int {
	return d.core().copySlice(start, buf)
}

// At returns the i-th element. Panics with an error wrapping
// ErrIndexOutOfBounds if i is not in [0, Len()).
func (d *ArrayDeque[T, N]) At(i int) T { return d.core().at(i) }

// AtPtr returns a pointer to the i-th element. It panics like At. The pointer
// is only valid until the next mutation of d.
func (d *ArrayDeque[T, N]) AtPtr(i int) *T { return d.core().atPtr(i) }

// Get returns the i-th element, or false if i is not in [0, Len()).
func (d *ArrayDeque[T, N]) Get(i int) (T, bool) { return d.core().get(i) }

// Set writes t to the i-th position. It panics like At.
func (d *ArrayDeque[T, N]) Set(i int, t T) { d.core().set(i, t) }

// Swap swaps the elements at indexes i and j. It panics like At.
func (d *ArrayDeque[T, N]) Swap(i, j int) { d.core().swap(i, j) }

// IndexFunc returns the index of the first element satisfying f, or -1 if
// none does.
func (d *ArrayDeque[T, N]) IndexFunc(f func(T) bool) int { return d.core().indexFunc(f) }

// ContainsFunc returns whether an element satisfying f is in the deque.
func (d *ArrayDeque[T, N]) ContainsFunc(f func(T) bool) bool { return d.core().indexFunc(f) != -1 }

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// ForEach calls f on every element front to back, until f returns false.
func (d *ArrayDeque[T, N]) ForEach(f func(T) bool) { d.core().forEach(f) }

// All returns an iterator over index-value pairs front to back.
func (d *ArrayDeque[T, N]) All() iter.Seq2[int, T] { return d.core().all() }

// Backward returns an iterator over index-value pairs back to front.
func (d *ArrayDeque[T, N]) Backward() iter.Seq2[int, T] { return d.core().backward() }

// Iter returns an iterator over the elements front to back.
func (d *ArrayDeque[T, N]) Iter() iter.Seq[T] { return d.core().values() }
