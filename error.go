package queue

import "errors"

var (
	// ErrNilQueue indicates an operation was called on a nil queue.
	ErrNilQueue = errors.New("queue: nil queue")

	// ErrInvalidValue indicates a value contains a NUL byte.
	ErrInvalidValue = errors.New("queue: value contains NUL byte")

	// ErrAllocation indicates element storage could not be allocated.
	ErrAllocation = errors.New("queue: allocation failed")

	// ErrEmpty indicates the queue has no elements.
	ErrEmpty = errors.New("queue: empty queue")
)
