package list

// Middle returns the middle element of l or nil if l is empty.
//
// Two cursors walk towards each other from both ends. For an even number
// of elements n the element at index n/2 is returned, so [1 2 3 4] yields 3.
func (l *List[V]) Middle() *Element[V] {
	if l.Empty() {
		return nil
	}

	left, right := l.root.prev, l.root.next
	for right != left && right.next != left {
		left = left.prev
		right = right.next
	}

	return left
}

// RemoveDuplicateRuns removes every run of two or more adjacent elements
// with equal values. The whole run is removed, not only the repeats.
// removed is called with the value of each removed element.
// It returns the number of removed elements.
//
// Only adjacent duplicates are detected, sort l first to remove all duplicates.
func (l *List[V]) RemoveDuplicateRuns(equal func(a, b V) bool, removed func(v V)) int {
	if l.Empty() {
		return 0
	}

	n := 0

	for e := l.root.next; e != &l.root; {
		end := e.next
		for end != &l.root && equal(e.Value, end.Value) {
			end = end.next
		}

		if end == e.next {
			e = end
			continue
		}

		for e != end {
			next := e.next
			e.unlink()
			removed(e.Value)
			n++
			e = next
		}
	}

	return n
}

// RemoveDominated removes every element that has an element comparing
// strictly less than it anywhere to its right. The remaining elements are
// in non-decreasing order by cmp.
// removed is called with the value of each removed element.
// It returns the number of removed elements.
func (l *List[V]) RemoveDominated(cmp func(a, b V) int, removed func(v V)) int {
	if l.Empty() {
		return 0
	}

	n := 0
	low := l.root.prev

	for e := low.prev; e != &l.root; {
		prev := e.prev
		if cmp(e.Value, low.Value) > 0 {
			e.unlink()
			removed(e.Value)
			n++
		} else {
			low = e
		}
		e = prev
	}

	return n
}

// Merge merges the elements of other into l, leaving other empty.
// Both lists must already be sorted by cmp. On ties elements of l come first.
func (l *List[V]) Merge(other *List[V], cmp func(a, b V) int) {
	if other.Empty() {
		return
	}

	l.lazyInit()

	e := l.root.next
	for !other.Empty() {
		o := other.root.next
		for e != &l.root && cmp(e.Value, o.Value) <= 0 {
			e = e.next
		}

		if e == &l.root {
			splice(other, l.root.prev)
			return
		}

		o.unlink()
		e.prev.link(o)
	}
}
