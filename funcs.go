package ringdeque

import (
	"cmp"
	"slices"
)

// View is the read side shared by ArrayDeque and SliceDeque. The functions
// below take Views so they work across both types.
type View[T any] interface {
	Len() int
	Slices() (a, b []T)
}

var (
	_ View[int] = (*ArrayDeque[int, N8])(nil)
	_ View[int] = (*SliceDeque[int])(nil)
)

// Equal returns whether both deques hold the same elements in the same order.
// Capacity and physical layout are not compared. It must not be a method,
// otherwise deques would be constrained to comparable elements.
func Equal[T comparable](x, y View[T]) bool {
	return EqualFunc(x, y, func(a, b T) bool { return a == b })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U any](x View[T], y View[U], eq func(T, U) bool) bool {
	if x.Len() != y.Len() {
		return false
	}
	x1, x2 := x.Slices()
	y1, y2 := y.Slices()
	for i := range x.Len() {
		if !eq(pick(x1, x2, i), pick(y1, y2, i)) {
			return false
		}
	}
	return true
}

// Index returns the index of the first occurrence of t, or -1 if absent. It
// has the same semantics as slices.Index.
func Index[T comparable](v View[T], t T) int {
	a, b := v.Slices()
	if i := slices.Index(a, t); i != -1 {
		return i
	}
	if i := slices.Index(b, t); i != -1 {
		return i + len(a)
	}
	return -1
}

// Contains returns whether t is in the deque.
func Contains[T comparable](v View[T], t T) bool {
	return Index(v, t) != -1
}

// Max returns the largest element. Like slices.Max, it panics on an empty
// deque.
func Max[T cmp.Ordered](v View[T]) T {
	a, b := v.Slices()
	m := slices.Max(a)
	if len(b) > 0 {
		m = max(m, slices.Max(b))
	}
	return m
}

// MaxFunc is like Max but orders elements with cmp. If several elements are
// maximal it returns the first one.
func MaxFunc[T any](v View[T], cmp func(T, T) int) T {
	a, b := v.Slices()
	m := slices.MaxFunc(a, cmp)
	if len(b) > 0 {
		if mb := slices.MaxFunc(b, cmp); cmp(mb, m) > 0 {
			m = mb
		}
	}
	return m
}

// Min returns the smallest element. Like slices.Min, it panics on an empty
// deque.
func Min[T cmp.Ordered](v View[T]) T {
	a, b := v.Slices()
	m := slices.Min(a)
	if len(b) > 0 {
		m = min(m, slices.Min(b))
	}
	return m
}

// MinFunc is like Min but orders elements with cmp. If several elements are
// minimal it returns the first one.
func MinFunc[T any](v View[T], cmp func(T, T) int) T {
	a, b := v.Slices()
	m := slices.MinFunc(a, cmp)
	if len(b) > 0 {
		if mb := slices.MinFunc(b, cmp); cmp(mb, m) < 0 {
			m = mb
		}
	}
	return m
}

func pick[T any](a, b []T, i int) T {
	if i < len(a) {
		return a[i]
	}
	return b[i-len(a)]
}
