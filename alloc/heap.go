package alloc

import (
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v2"
)

// Heap is an Allocator backed by the Go heap. It never fails.
type Heap struct {
	seq   atomic.Uint64
	bytes *xsync.Counter
}

var _ Allocator = &Heap{}

// NewHeap creates a heap allocator.
func NewHeap() *Heap {
	return &Heap{
		bytes: xsync.NewCounter(),
	}
}

// Allocate a block of size bytes.
func (h *Heap) Allocate(size int) (Block, error) {
	h.bytes.Add(int64(size))
	return Block{id: h.seq.Add(1), size: size}, nil
}

// Release a block.
func (h *Heap) Release(b Block) {
	h.bytes.Add(-int64(b.size))
}

// InUse returns the number of allocated bytes not yet released.
func (h *Heap) InUse() int64 {
	return h.bytes.Value()
}
