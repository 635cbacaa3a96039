// Package codec serializes deques as the plain sequence of their elements,
// front to back. A codec never sees how the elements are laid out in the
// deque's storage, only the logical order.
package codec

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/sugawarayuuta/sonnet"
)

// Codec turns values into bytes and back. Implementations must round-trip a
// []T for any T they support.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Sequence is what a codec needs from a deque. Both ringdeque.ArrayDeque and
// ringdeque.SliceDeque implement it.
type Sequence[T any] interface {
	Len() int
	Cap() int
	Iter() iter.Seq[T]
	// PushBack must store all of ts or none of them.
	PushBack(ts ...T) error
}

// Encode returns the encoding of the elements of s, front to back. An empty
// deque encodes as an empty sequence.
func Encode[T any](c Codec, s Sequence[T]) ([]byte, error) {
	items := make([]T, 0, s.Len())
	for t := range s.Iter() {
		items = append(items, t)
	}
	data, err := c.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("%s: encode deque: %w", c.Name(), err)
	}
	return data, nil
}

// Decode appends the sequence encoded in data to the back of s. If the
// sequence does not fit in the free space of s, the error returned by
// s.PushBack is passed through and s is left unchanged; for ringdeque types
// it wraps ringdeque.ErrCapacityExceeded.
func Decode[T any](c Codec, data []byte, s Sequence[T]) error {
	var items []T
	if err := c.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%s: decode deque: %w", c.Name(), err)
	}
	return s.PushBack(items...)
}

// JSON encodes sequences as JSON arrays using sonnet, a drop-in replacement
// for encoding/json.
type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Marshal(v any) ([]byte, error) {
	return sonnet.Marshal(v)
}

func (JSON) Unmarshal(data []byte, v any) error {
	return sonnet.NewDecoder(bytes.NewReader(data)).Decode(v)
}
