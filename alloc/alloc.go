/*
Package alloc provides the allocators that account for queue element storage.

An Allocator hands out Blocks and takes them back. Allocation failure is an
ordinary error result, every caller must be prepared to handle it.
*/
package alloc

import (
	"errors"
	"strings"

	"github.com/hlandau/xlog"
)

var log, Log = xlog.New("queue.alloc")

// ErrOutOfMemory indicates an allocation could not be satisfied.
var ErrOutOfMemory = errors.New("alloc: out of memory")

// Block is an allocated region of memory.
type Block struct {
	id   uint64
	size int
}

// ID returns the allocation identifier, unique per allocator.
func (b Block) ID() uint64 {
	return b.id
}

// Size returns the requested size of the block.
func (b Block) Size() int {
	return b.size
}

// Allocator allocates and releases blocks.
type Allocator interface {
	Allocate(size int) (Block, error)
	Release(b Block)
}

// Duplicate copies s into storage allocated from a.
// The block accounts for the string bytes and a terminator.
func Duplicate(a Allocator, s string) (string, Block, error) {
	b, err := a.Allocate(len(s) + 1)
	if err != nil {
		return "", Block{}, err
	}

	return strings.Clone(s), b, nil
}
