/*
Package list implements a circular doubly linked list anchored by a sentinel element.

Every restructuring operation works on the links in place and never allocates.
The list keeps no element counter, Len walks the list.
*/
package list

// List is a circular doubly linked list.
//
// The zero value is a ready to use empty list. A List must not be copied after first use.
type List[V any] struct {
	root Element[V]
}

// New returns an initialized empty list.
func New[V any]() *List[V] {
	return new(List[V]).Init()
}

// Init initializes or clears list l.
// Elements linked into l before Init are abandoned in place.
func (l *List[V]) Init() *List[V] {
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

func (l *List[V]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

// Empty reports whether the list has no elements.
func (l *List[V]) Empty() bool {
	return l.root.next == nil || l.root.next == &l.root
}

// Len returns the number of elements in the list.
// The complexity is O(n).
func (l *List[V]) Len() int {
	if l.Empty() {
		return 0
	}

	n := 0
	for e := l.root.next; e != &l.root; e = e.next {
		n++
	}

	return n
}

// Front returns the first element of the list or nil.
func (l *List[V]) Front() *Element[V] {
	if l.Empty() {
		return nil
	}
	return l.root.next
}

// Back returns the last element of the list or nil.
func (l *List[V]) Back() *Element[V] {
	if l.Empty() {
		return nil
	}
	return l.root.prev
}

// Next returns the element after e or nil if e is the last element of l.
func (l *List[V]) Next(e *Element[V]) *Element[V] {
	if e.next == &l.root {
		return nil
	}
	return e.next
}

// Prev returns the element before e or nil if e is the first element of l.
func (l *List[V]) Prev(e *Element[V]) *Element[V] {
	if e.prev == &l.root {
		return nil
	}
	return e.prev
}

// PushFront inserts a value at the front of list l and returns the new element.
func (l *List[V]) PushFront(value V) *Element[V] {
	l.lazyInit()
	e := NewElement(value)
	l.root.link(e)
	return e
}

// PushBack inserts a value at the back of list l and returns the new element.
func (l *List[V]) PushBack(value V) *Element[V] {
	l.lazyInit()
	e := NewElement(value)
	l.root.prev.link(e)
	return e
}

// InsertAfter inserts a value immediately after mark and returns the new element.
func (l *List[V]) InsertAfter(value V, mark *Element[V]) *Element[V] {
	e := NewElement(value)
	mark.link(e)
	return e
}

// InsertBefore inserts a value immediately before mark and returns the new element.
func (l *List[V]) InsertBefore(value V, mark *Element[V]) *Element[V] {
	e := NewElement(value)
	mark.prev.link(e)
	return e
}

// Remove an element from the list and return its value.
func (l *List[V]) Remove(e *Element[V]) V {
	e.unlink()
	return e.Value
}

// MoveAfter moves an element to its new position after mark.
// If mark == l.Back(), e becomes the new back element.
func (l *List[V]) MoveAfter(e, mark *Element[V]) {
	if e == mark {
		return
	}

	e.unlink()
	mark.link(e)
}

// MoveBefore moves an element to its new position before mark.
// If mark == l.Front(), e becomes the new front element.
func (l *List[V]) MoveBefore(e, mark *Element[V]) {
	if e == mark {
		return
	}

	e.unlink()
	mark.prev.link(e)
}

// MoveToFront moves the element to the front of list l.
func (l *List[V]) MoveToFront(e *Element[V]) {
	l.MoveAfter(e, &l.root)
}

// MoveToBack moves the element to the back of list l.
func (l *List[V]) MoveToBack(e *Element[V]) {
	l.MoveBefore(e, &l.root)
}

// SpliceFront moves all elements of src to the front of l, leaving src empty.
func (l *List[V]) SpliceFront(src *List[V]) {
	l.lazyInit()
	splice(src, &l.root)
}

// SpliceBack moves all elements of src to the back of l, leaving src empty.
func (l *List[V]) SpliceBack(src *List[V]) {
	l.lazyInit()
	splice(src, l.root.prev)
}

// SpliceAfter moves all elements of src to just after mark, leaving src empty.
func (l *List[V]) SpliceAfter(src *List[V], mark *Element[V]) {
	splice(src, mark)
}

// CutTo detaches the closed range [from, to] of l into dst.
// from must not come after to. Any elements previously in dst are abandoned.
func (l *List[V]) CutTo(dst *List[V], from, to *Element[V]) {
	cut(dst, from, to)
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(e *Element[V]) bool) {
	if l.Empty() {
		return
	}

	for e := l.root.next; e != &l.root; e = e.next {
		if !f(e) {
			return
		}
	}
}

// DoReverse is like Do but iterates in backward order.
func (l *List[V]) DoReverse(f func(e *Element[V]) bool) {
	if l.Empty() {
		return
	}

	for e := l.root.prev; e != &l.root; e = e.prev {
		if !f(e) {
			return
		}
	}
}

func splice[V any](src *List[V], at *Element[V]) {
	if src.Empty() {
		return
	}

	first := src.root.next
	last := src.root.prev
	next := at.next

	at.next = first
	first.prev = at
	last.next = next
	next.prev = last

	src.Init()
}

func cut[V any](dst *List[V], from, to *Element[V]) {
	before := from.prev
	after := to.next

	before.next = after
	after.prev = before

	dst.root.next = from
	from.prev = &dst.root
	dst.root.prev = to
	to.next = &dst.root
}
