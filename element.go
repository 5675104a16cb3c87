package queue

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/mgnsk/queue/alloc"
	"github.com/mgnsk/queue/list"
)

// recordSize is the accounted size of an element record.
const recordSize = int(unsafe.Sizeof(list.Element[*Element]{}))

// Element is a queue element owning a copy of its value.
//
// An element removed from a queue is detached. The caller owns it
// and must call Release exactly once.
type Element struct {
	Value     string
	record    alloc.Block
	payload   alloc.Block
	allocator alloc.Allocator
}

// newElement allocates an element record and a copy of s.
// Nothing stays allocated when it fails.
func newElement(a alloc.Allocator, s string) (*Element, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, ErrInvalidValue
	}

	record, err := a.Allocate(recordSize)
	if err != nil {
		log.Debugf("allocating element record: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	value, payload, err := alloc.Duplicate(a, s)
	if err != nil {
		a.Release(record)
		log.Debugf("duplicating %d-byte value: %v", len(s), err)
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	return &Element{
		Value:     value,
		record:    record,
		payload:   payload,
		allocator: a,
	}, nil
}

// Release the storage of a detached element.
// It panics when called twice.
func (e *Element) Release() {
	if e.allocator == nil {
		panic("queue: element released twice")
	}

	e.allocator.Release(e.payload)
	e.allocator.Release(e.record)
	e.allocator = nil
	e.Value = ""
}

// CopyTo copies the value into buf followed by a NUL terminator,
// truncating it to len(buf)-1 bytes. It returns the number of value bytes copied.
// Nothing is written to an empty buf.
func (e *Element) CopyTo(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}

	n := copy(buf[:len(buf)-1], e.Value)
	buf[n] = 0

	return n
}
