package list

// Sort sorts the list in place in the order defined by cmp.
// The sort is stable: elements comparing equal keep their relative order.
//
// cmp(a, b) should return a negative number when a < b, a positive number
// when a > b and zero when a == b.
//
// Sort is a bottom-up merge sort. Sorted runs wait in a pending stack
// linked through prev, and the stack is merged like a binary counter is
// incremented so that merged runs always have equal length.
func (l *List[V]) Sort(cmp func(a, b V) int) {
	if l.Empty() || l.root.next == l.root.prev {
		return
	}

	var pending *Element[V]

	list := l.root.next
	l.root.prev.next = nil

	for count := 0; list != nil; count++ {
		tail := &pending

		// Find the lowest clear bit of count, skipping one pending run per set bit.
		bits := count
		for ; bits&1 != 0; bits >>= 1 {
			tail = &(*tail).prev
		}

		// Merge the two runs below the clear bit unless count is 2^k - 1.
		if bits != 0 {
			a := *tail
			b := a.prev

			a = merge(cmp, b, a)
			a.prev = b.prev
			*tail = a
		}

		// Push the next element as a run of length one.
		list.prev = pending
		pending = list
		list = list.next
		pending.next = nil
	}

	list = pending
	pending = pending.prev

	for {
		next := pending.prev
		if next == nil {
			break
		}

		list = merge(cmp, pending, list)
		pending = next
	}

	mergeFinal(cmp, &l.root, pending, list)
}

// merge merges two nil-terminated runs linked through next.
// On ties elements of a come first.
func merge[V any](cmp func(a, b V) int, a, b *Element[V]) *Element[V] {
	var head *Element[V]

	tail := &head
	for {
		if cmp(a.Value, b.Value) <= 0 {
			*tail = a
			tail = &a.next
			if a = a.next; a == nil {
				*tail = b
				return head
			}
		} else {
			*tail = b
			tail = &b.next
			if b = b.next; b == nil {
				*tail = a
				return head
			}
		}
	}
}

// mergeFinal merges a and b behind root and restores the circular
// doubly linked structure.
func mergeFinal[V any](cmp func(a, b V) int, root, a, b *Element[V]) {
	tail := root

	for {
		if cmp(a.Value, b.Value) <= 0 {
			tail.next = a
			a.prev = tail
			tail = a
			if a = a.next; a == nil {
				break
			}
		} else {
			tail.next = b
			b.prev = tail
			tail = b
			if b = b.next; b == nil {
				b = a
				break
			}
		}
	}

	// b holds the remaining run, fix its prev links.
	tail.next = b
	for ; b != nil; b = b.next {
		b.prev = tail
		tail = b
	}

	tail.next = root
	root.prev = tail
}
