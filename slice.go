package ringdeque

import "iter"

// SliceDeque is a fixed-capacity double-ended queue over a buffer it borrows
// from the caller. Its capacity is the length of that buffer.
//
//	buf := make([]Event, 1024)
//	q, err := ringdeque.Borrow(buf)
//	if err != nil {
//		return err
//	}
//	defer q.Release()
//
// The deque holds the buffer exclusively until Release, which hands it back.
// The caller must not touch the buffer while it is borrowed. Borrowing any
// part of a buffer that is already borrowed fails with ErrAlreadyBorrowed,
// and calling any method other than Len or Released after Release panics
// with ErrReleased.
//
// The zero value is an empty deque with capacity 0. SliceDeque is not safe
// for concurrent use.
type SliceDeque[T any] struct {
	r     ring[T]
	lease *lease
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// Borrow returns an empty SliceDeque that stores its elements in buf. The
// existing contents of buf are ignored and will be overwritten. It returns
// ErrAlreadyBorrowed if any element of buf is held by another SliceDeque that
// has not been released. Disjoint windows of one array may be borrowed at the
// same time.
func Borrow[T any](buf []T) (*SliceDeque[T], error) {
	l, err := acquire(buf)
	if err != nil {
		return nil, err
	}
	return &SliceDeque[T]{r: makeRing(buf), lease: l}, nil
}

// Release ends the borrow and returns the buffer. Slots that never held an
// element, or whose element was removed, hold whatever the buffer had before
// or the zero value of T respectively. Any later call other than Len or
// Released panics.
func (d *SliceDeque[T]) Release() []T {
	if err := d.lease.release(); err != nil {
		panic(err)
	}
	buf := d.r.buf
	d.r = ring[T]{}
	return buf
}

// Released returns whether Release has been called.
func (d *SliceDeque[T]) Released() bool {
	return d.lease != nil && d.lease.released
}

func (d *SliceDeque[T]) core() *ring[T] {
	d.lease.check()
	return &d.r
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the deque, or 0 if d is nil or
// released.
func (d *SliceDeque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.r.n
}

// Cap returns the capacity, the length of the borrowed buffer.
func (d *SliceDeque[T]) Cap() int { return d.core().cap() }

// Empty returns whether the deque is empty.
func (d *SliceDeque[T]) Empty() bool { return d.core().n == 0 }

// Full returns whether the deque is full. Pushing onto a full deque fails.
func (d *SliceDeque[T]) Full() bool { return d.core().full() }

// PushBack puts ts at the back of the deque, in order. Either every element
// is stored or none is and a *CapacityError[T] holding ts is returned.
func (d *SliceDeque[T]) PushBack(ts ...T) error { return d.core().pushBack(ts) }

// PushFront puts ts at the front of the deque, one after the other, so the
// last argument becomes the new front. Either every element is stored or none
// is and a *CapacityError[T] holding ts is returned.
func (d *SliceDeque[T]) PushFront(ts ...T) error { return d.core().pushFront(ts) }

// PeekFront returns the first element, or false if the deque is empty.
func (d *SliceDeque[T]) PeekFront() (T, bool) { return d.core().peekFront() }

// PeekBack returns the last element, or false if the deque is empty.
func (d *SliceDeque[T]) PeekBack() (T, bool) { return d.core().peekBack() }

// PeekFrontPtr returns a pointer into the buffer at the first element, or nil
// if the deque is empty.
func (d *SliceDeque[T]) PeekFrontPtr() *T { return d.core().frontPtr() }

// PeekBackPtr returns a pointer into the buffer at the last element, or nil
// if the deque is empty.
func (d *SliceDeque[T]) PeekBackPtr() *T { return d.core().backPtr() }

// PopFront removes the first element and returns it, or false if the deque is
// empty. The freed slot of the buffer is zeroed.
func (d *SliceDeque[T]) PopFront() (T, bool) { return d.core().popFront() }

// PopBack removes the last element and returns it, or false if the deque is
// empty. The freed slot of the buffer is zeroed.
func (d *SliceDeque[T]) PopBack() (T, bool) { return d.core().popBack() }

// DropFront removes and zeroes up to n elements from the front.
func (d *SliceDeque[T]) DropFront(n int) { d.core().dropFront(n) }

// DropBack removes and zeroes up to n elements from the back.
func (d *SliceDeque[T]) DropBack(n int) { d.core().dropBack(n) }

// DrainFront removes the first n elements and returns them as a single-use
// sequence, or false if n is negative or greater than Len. See
// ArrayDeque.DrainFront.
func (d *SliceDeque[T]) DrainFront(n int) (iter.Seq[T], bool) { return d.core().drainFront(n) }

// DrainBack removes the last n elements and returns them back to front as a
// single-use sequence, or false if n is negative or greater than Len.
func (d *SliceDeque[T]) DrainBack(n int) (iter.Seq[T], bool) { return d.core().drainBack(n) }

// Clear empties the deque, zeroing every occupied slot of the buffer.
func (d *SliceDeque[T]) Clear() { d.core().reset() }

// Truncate keeps the first n elements and zeroes the rest. It does nothing if
// n >= Len(). A negative n is treated as 0.
func (d *SliceDeque[T]) Truncate(n int) { d.core().truncate(n) }

/*****************************************************************************
 * SLICE API
 *****************************************************************************/

// Slices returns the contents as two views of the borrowed buffer, front to
// back. See ArrayDeque.Slices.
func (d *SliceDeque[T]) Slices() (a, b []T) { return d.core().slices() }

// MakeSliceCopy allocates a slice holding every element front to back.
func (d *SliceDeque[T]) MakeSliceCopy() []T { return d.core().makeSliceCopy() }

// CopySlice copies elements starting at index start into buf and returns how
// many were copied.
func (d *SliceDeque[T]) CopySlice(start int, buf []T) int { return d.core().copySlice(start, buf) }

// At returns the i-th element. Panics with an error wrapping
// ErrIndexOutOfBounds if i is not in [0, Len()).
func (d *SliceDeque[T]) At(i int) T { return d.core().at(i) }

// AtPtr returns a pointer into the buffer at the i-th element. It panics like
// At.
func (d *SliceDeque[T]) AtPtr(i int) *T { return d.core().atPtr(i) }

// Get returns the i-th element, or false if i is not in [0, Len()).
func (d *SliceDeque[T]) Get(i int) (T, bool) { return d.core().get(i) }

// Set writes t to the i-th position. It panics like At.
func (d *SliceDeque[T]) Set(i int, t T) { d.core().set(i, t) }

// Swap swaps the elements at indexes i and j. It panics like At.
func (d *SliceDeque[T]) Swap(i, j int) { d.core().swap(i, j) }

// IndexFunc returns the index of the first element satisfying f, or -1.
func (d *SliceDeque[T]) IndexFunc(f func(T) bool) int { return d.core().indexFunc(f) }

// ContainsFunc returns whether an element satisfying f is in the deque.
func (d *SliceDeque[T]) ContainsFunc(f func(T) bool) bool { return d.core().indexFunc(f) != -1 }

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// ForEach calls f on every element front to back, until f returns false.
func (d *SliceDeque[T]) ForEach(f func(T) bool) { d.core().forEach(f) }

// All returns an iterator over index-value pairs front to back.
func (d *SliceDeque[T]) All() iter.Seq2[int, T] { return d.core().all() }

// Backward returns an iterator over index-value pairs back to front.
func (d *SliceDeque[T]) Backward() iter.Seq2[int, T] { return d.core().backward() }

// Iter returns an iterator over the elements front to back.
func (d *SliceDeque[T]) Iter() iter.Seq[T] { return d.core().values() }
