// Package ringdeque provides fixed-capacity double-ended queues backed by a
// ring buffer.
//
// ArrayDeque owns its storage and takes its capacity from a type parameter:
//
//	var q ringdeque.ArrayDeque[Task, ringdeque.N8]
//	if err := q.PushBack(task); errors.Is(err, ringdeque.ErrCapacityExceeded) {
//		// q is full and unchanged
//	}
//
// SliceDeque borrows a buffer supplied by the caller, and its capacity is the
// buffer's length:
//
//	q, err := ringdeque.Borrow(buf)
//	...
//	buf = q.Release()
//
// Both types have the same queue semantics. Neither ever grows, and neither
// allocates after construction, except for the methods that say they do.
// Elements are pushed and popped at either end in O(1), indexed from the
// front, and exposed as at most two contiguous views with Slices.
//
// # Build tags
//
// By default the deques implement fmt.Stringer, json.Marshaler and, for
// ArrayDeque, json.Unmarshaler, through the codec subpackage. Building with
// -tags ringdeque_minimal drops those methods and the reflection-based codec
// for constrained environments. Queue behavior does not change.
package ringdeque
