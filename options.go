package queue

import (
	"github.com/mgnsk/queue/alloc"
)

// Option is a queue configuration option.
type Option interface {
	apply(*queueOptions)
}

type queueOptions struct {
	allocator alloc.Allocator
}

func newDefaultQueueOptions() queueOptions {
	return queueOptions{
		allocator: alloc.NewHeap(),
	}
}

// WithAllocator option configures the queue to allocate element storage from a.
//
// The default is a heap allocator that never fails.
func WithAllocator(a alloc.Allocator) Option {
	return funcOption(func(opts *queueOptions) {
		if a == nil {
			panic("queue: nil allocator")
		}
		opts.allocator = a
	})
}

type funcOption func(*queueOptions)

func (o funcOption) apply(opts *queueOptions) {
	o(opts)
}
