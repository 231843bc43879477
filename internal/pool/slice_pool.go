package pool

import "sync"

// SlicePool reuses scratch slices of T between decode calls.
type SlicePool[T any] struct {
	pool sync.Pool
}

// NewSlicePool creates an empty SlicePool.
func NewSlicePool[T any]() *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() any { return &[]T{} },
		},
	}
}

// Get retrieves a zero-length slice with capacity of at least size.
//
// The caller must call the returned cleanup function to return the slice to
// the pool, and must not retain the slice afterwards.
//
// Example:
//
//	stitches, cleanup := scratch.Get(16)
//	defer cleanup()
//	stitches = append(stitches, s)
func (sp *SlicePool[T]) Get(size int) ([]T, func()) {
	ptr, _ := sp.pool.Get().(*[]T)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]T, 0, size)
	}

	return slice, func() {
		*ptr = slice[:0]
		sp.pool.Put(ptr)
	}
}
