package list

// Reverse reverses the order of the elements in l.
// Reversing twice restores the original order.
func (l *List[V]) Reverse() {
	if l.Empty() {
		return
	}

	e := &l.root
	for {
		next := e.next
		e.next, e.prev = e.prev, e.next
		if e = next; e == &l.root {
			return
		}
	}
}

// SwapPairs swaps every two adjacent elements.
// With an odd number of elements the last one stays in place.
func (l *List[V]) SwapPairs() {
	if l.Empty() {
		return
	}

	// After each move e sits behind its old successor, so e.next starts the next pair.
	for e := l.root.next; e != &l.root && e.next != &l.root; e = e.next {
		l.MoveAfter(e, e.next)
	}
}

// ReverseK reverses the elements of l k at a time, starting from the front.
// A trailing block with fewer than k elements keeps its order.
// ReverseK is a no-op for k <= 1.
func (l *List[V]) ReverseK(k int) {
	if k <= 1 || l.Empty() {
		return
	}

	var block List[V]

	mark := &l.root
	for {
		last := mark
		for i := 0; i < k; i++ {
			if last = last.next; last == &l.root {
				return
			}
		}

		first := mark.next

		cut(&block, first, last)
		block.Reverse()
		splice(&block, mark)

		mark = first
	}
}
