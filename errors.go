package ringdeque

import (
	"errors"
	"fmt"
)

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrCapacityExceeded is returned when an operation would need to store more
// elements than the deque's capacity. The deque is left unchanged.
var ErrCapacityExceeded = errors.New("deque capacity exceeded")

// ErrIndexOutOfBounds is wrapped by the panic value of indexed accessors such
// as At and Set when the index is not in [0, Len()).
var ErrIndexOutOfBounds = errors.New("deque index out of bounds")

// ErrAlreadyBorrowed is returned by Borrow when the buffer is already held by
// a SliceDeque that has not been released.
var ErrAlreadyBorrowed = errors.New("buffer is already borrowed")

// ErrReleased is wrapped by the panic value of any SliceDeque method called
// after Release.
var ErrReleased = errors.New("deque used after release")

/*****************************************************************************
 * CAPACITY ERROR
 *****************************************************************************/

// CapacityError is the concrete error returned when items don't fit. It hands
// the rejected items back to the caller, so nothing is lost on failure.
//
//	var ce *ringdeque.CapacityError[Task]
//	if errors.As(err, &ce) {
//		retry(ce.Items)
//	}
type CapacityError[T any] struct {
	// Items holds the items that were rejected, in the order they were passed.
	Items []T
	// Capacity and Len describe the deque at the time of the failure.
	Capacity int
	Len      int
}

func (e *CapacityError[T]) Error() string {
	return fmt.Sprintf("%s: %d items, %d of %d slots free",
		ErrCapacityExceeded, len(e.Items), e.Capacity-e.Len, e.Capacity)
}

// Is reports whether target is ErrCapacityExceeded.
func (e *CapacityError[T]) Is(target error) bool {
	return target == ErrCapacityExceeded
}

func outOfBounds(i, length int) error {
	return fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfBounds, i, length)
}
