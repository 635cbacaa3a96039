//go:build !ringdeque_minimal

package ringdeque

import (
	"bytes"
	"fmt"

	"github.com/lucasgdosr/ringdeque/codec"
)

// Conveniences that assume a full Go runtime: fmt formatting and JSON through
// the reflection-based codec. Build with -tags ringdeque_minimal to leave them
// out; deque behavior is the same either way.

// String formats the elements front to back, like a slice: [1 2 3].
func (d *ArrayDeque[T, N]) String() string { return fmt.Sprint(d.MakeSliceCopy()) }

// String formats the elements front to back, like a slice: [1 2 3].
func (d *SliceDeque[T]) String() string { return fmt.Sprint(d.MakeSliceCopy()) }

// MarshalJSON encodes the deque as a JSON array, front to back.
func (d *ArrayDeque[T, N]) MarshalJSON() ([]byte, error) {
	return codec.Encode[T](codec.JSON{}, d)
}

// UnmarshalJSON replaces the contents of the deque with a JSON array. If the
// array is longer than the capacity, it returns an error wrapping
// ErrCapacityExceeded and leaves the deque unchanged. Like encoding/json,
// null is a no-op.
func (d *ArrayDeque[T, N]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var fresh ArrayDeque[T, N]
	if err := codec.Decode[T](codec.JSON{}, data, &fresh); err != nil {
		return err
	}
	*d = fresh
	return nil
}

// MarshalJSON encodes the deque as a JSON array, front to back.
func (d *SliceDeque[T]) MarshalJSON() ([]byte, error) {
	return codec.Encode[T](codec.JSON{}, d)
}
