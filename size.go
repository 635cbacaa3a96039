package ringdeque

// Size fixes the capacity of an ArrayDeque at the type level. Implementations
// are expected to be zero-sized types whose Size method returns a constant:
//
//	type Tasks struct{}
//
//	func (Tasks) Size() int { return 24 }
//
//	var q ringdeque.ArrayDeque[Task, Tasks]
type Size interface {
	Size() int
}

// Common sizes.
type (
	N0    struct{}
	N1    struct{}
	N2    struct{}
	N4    struct{}
	N8    struct{}
	N16   struct{}
	N32   struct{}
	N64   struct{}
	N128  struct{}
	N256  struct{}
	N512  struct{}
	N1024 struct{}
	N2048 struct{}
	N4096 struct{}
)

func (N0) Size() int    { return 0 }
func (N1) Size() int    { return 1 }
func (N2) Size() int    { return 2 }
func (N4) Size() int    { return 4 }
func (N8) Size() int    { return 8 }
func (N16) Size() int   { return 16 }
func (N32) Size() int   { return 32 }
func (N64) Size() int   { return 64 }
func (N128) Size() int  { return 128 }
func (N256) Size() int  { return 256 }
func (N512) Size() int  { return 512 }
func (N1024) Size() int { return 1024 }
func (N2048) Size() int { return 2048 }
func (N4096) Size() int { return 4096 }

func sizeOf[N Size]() int {
	var n N
	size := n.Size()
	if size < 0 {
		panic("ringdeque: negative Size")
	}
	return size
}
