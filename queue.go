/*
Package queue implements a queue of strings on a circular doubly linked list.

Elements can be inserted and removed at both ends. The queue can be reordered
in place (reverse, pairwise swap, block reverse, stable merge sort) and pruned
by content (middle element, runs of duplicates, dominated elements).

A Queue is not safe for concurrent use.
*/
package queue

import (
	"strings"

	"github.com/hlandau/xlog"
	"github.com/mgnsk/queue/alloc"
	"github.com/mgnsk/queue/list"
)

var log, Log = xlog.New("queue")

// Queue is a queue of strings.
type Queue struct {
	items     list.List[*Element]
	allocator alloc.Allocator
}

// New creates an empty queue.
func New(opts ...Option) *Queue {
	o := newDefaultQueueOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	q := &Queue{
		allocator: o.allocator,
	}
	q.items.Init()

	return q
}

// Free releases every element of the queue, leaving it empty.
func (q *Queue) Free() {
	if q == nil {
		return
	}

	q.items.Do(func(e *list.Element[*Element]) bool {
		e.Value.Release()
		return true
	})

	q.items.Init()
}

// InsertHead inserts a copy of s at the head of the queue.
func (q *Queue) InsertHead(s string) error {
	if q == nil {
		return ErrNilQueue
	}

	e, err := newElement(q.allocator, s)
	if err != nil {
		return err
	}

	q.items.PushFront(e)

	return nil
}

// InsertTail inserts a copy of s at the tail of the queue.
func (q *Queue) InsertTail(s string) error {
	if q == nil {
		return ErrNilQueue
	}

	e, err := newElement(q.allocator, s)
	if err != nil {
		return err
	}

	q.items.PushBack(e)

	return nil
}

// RemoveHead detaches the element at the head of the queue.
// If buf is not empty, the value is copied into it as by Element.CopyTo.
// The caller owns the returned element and must Release it.
func (q *Queue) RemoveHead(buf []byte) (*Element, error) {
	if q == nil {
		return nil, ErrNilQueue
	}

	return q.remove(q.items.Front(), buf)
}

// RemoveTail detaches the element at the tail of the queue.
// If buf is not empty, the value is copied into it as by Element.CopyTo.
// The caller owns the returned element and must Release it.
func (q *Queue) RemoveTail(buf []byte) (*Element, error) {
	if q == nil {
		return nil, ErrNilQueue
	}

	return q.remove(q.items.Back(), buf)
}

func (q *Queue) remove(node *list.Element[*Element], buf []byte) (*Element, error) {
	if node == nil {
		return nil, ErrEmpty
	}

	e := q.items.Remove(node)
	e.CopyTo(buf)

	return e, nil
}

// Size returns the number of elements in the queue.
// The complexity is O(n).
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}

	return q.items.Len()
}

// Empty reports whether the queue has no elements.
func (q *Queue) Empty() bool {
	return q == nil || q.items.Empty()
}

// Do calls f for each value in the queue from head to tail.
// If f returns false, Do stops the iteration.
func (q *Queue) Do(f func(value string) bool) {
	if q == nil {
		return
	}

	q.items.Do(func(e *list.Element[*Element]) bool {
		return f(e.Value.Value)
	})
}

// Values returns the values in the queue from head to tail.
func (q *Queue) Values() []string {
	var values []string

	q.Do(func(value string) bool {
		values = append(values, value)
		return true
	})

	return values
}

// DeleteMid deletes the middle element of the queue.
// For an even size n the element at 0-based index n/2 is deleted.
func (q *Queue) DeleteMid() error {
	if q == nil {
		return ErrNilQueue
	}

	mid := q.items.Middle()
	if mid == nil {
		return ErrEmpty
	}

	q.items.Remove(mid).Release()

	return nil
}

// DeleteDup deletes every value that occurs in a run of two or more
// adjacent equal values, keeping only values that occur once.
// The queue must be sorted for all duplicates to be adjacent.
func (q *Queue) DeleteDup() error {
	if q == nil {
		return ErrNilQueue
	}

	if q.items.Empty() {
		return ErrEmpty
	}

	q.items.RemoveDuplicateRuns(equalValues, release)

	return nil
}

// Ascend deletes every element that has a strictly smaller value anywhere
// after it, leaving the queue in non-decreasing order.
// It returns the resulting size.
func (q *Queue) Ascend() int {
	if q == nil {
		return 0
	}

	q.items.RemoveDominated(compareValues(false), release)

	return q.items.Len()
}

// Descend deletes every element that has a strictly greater value anywhere
// after it, leaving the queue in non-increasing order.
// It returns the resulting size.
func (q *Queue) Descend() int {
	if q == nil {
		return 0
	}

	q.items.RemoveDominated(compareValues(true), release)

	return q.items.Len()
}

// Swap swaps every two adjacent elements.
func (q *Queue) Swap() {
	if q == nil {
		return
	}

	q.items.SwapPairs()
}

// Reverse reverses the order of elements.
func (q *Queue) Reverse() {
	if q == nil {
		return
	}

	q.items.Reverse()
}

// ReverseK reverses each consecutive block of k elements from the head.
// A trailing block of fewer than k elements is left as is.
func (q *Queue) ReverseK(k int) {
	if q == nil {
		return
	}

	q.items.ReverseK(k)
}

// Sort sorts the queue by value in ascending or descending lexicographic order.
// The sort is stable.
func (q *Queue) Sort(descend bool) {
	if q == nil {
		return
	}

	q.items.Sort(compareValues(descend))
}

func compareValues(descend bool) func(a, b *Element) int {
	if descend {
		return func(a, b *Element) int {
			return strings.Compare(b.Value, a.Value)
		}
	}

	return func(a, b *Element) int {
		return strings.Compare(a.Value, b.Value)
	}
}

func equalValues(a, b *Element) bool {
	return a.Value == b.Value
}

func release(e *Element) {
	e.Release()
}
