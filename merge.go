package queue

// Merge merges all queues into the first one and returns its size.
//
// Every queue must already be sorted in the order selected by descend.
// The other queues are left empty. Equal values keep the order of the
// queues they came from. A queue must not be passed more than once.
func Merge(descend bool, queues ...*Queue) (int, error) {
	if len(queues) == 0 {
		return 0, nil
	}

	for _, q := range queues {
		if q == nil {
			return 0, ErrNilQueue
		}
	}

	cmp := compareValues(descend)

	// Merge neighbouring queues pairwise so that ties stay in queue order.
	for step := 1; step < len(queues); step *= 2 {
		for i := 0; i+step < len(queues); i += 2 * step {
			queues[i].items.Merge(&queues[i+step].items, cmp)
		}
	}

	return queues[0].Size(), nil
}
