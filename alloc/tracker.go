package alloc

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/puzpuzpuz/xsync/v2"
)

// Tracker is an Allocator that records every live block.
// It detects leaks and double frees and can inject allocation failures.
type Tracker struct {
	live        *xsync.MapOf[uint64, Block]
	allocs      *xsync.Counter
	releases    *xsync.Counter
	doubleFrees *xsync.Counter
	failOn      map[int]bool
	failAfter   int
	seq         uint64
}

var _ Allocator = &Tracker{}

// NewTracker creates a tracking allocator.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{
		live:        xsync.NewTypedMapOf[uint64, Block](hashID),
		allocs:      xsync.NewCounter(),
		releases:    xsync.NewCounter(),
		doubleFrees: xsync.NewCounter(),
		failOn:      map[int]bool{},
	}

	for _, opt := range opts {
		opt.apply(t)
	}

	return t
}

// Allocate a block of size bytes.
func (t *Tracker) Allocate(size int) (Block, error) {
	t.seq++

	n := int(t.seq)
	if t.failOn[n] || t.failAfter > 0 && n > t.failAfter {
		log.Debugf("injected failure of allocation %d (%d bytes)", n, size)
		return Block{}, ErrOutOfMemory
	}

	b := Block{id: t.seq, size: size}
	t.live.Store(b.id, b)
	t.allocs.Inc()

	return b, nil
}

// Release a block. Releasing a block that is not live counts as a double free.
func (t *Tracker) Release(b Block) {
	if _, ok := t.live.LoadAndDelete(b.id); !ok {
		log.Errorf("double free of block %d (%d bytes)", b.id, b.size)
		t.doubleFrees.Inc()
		return
	}

	t.releases.Inc()
}

// Live returns the number of blocks allocated and not yet released.
func (t *Tracker) Live() int {
	return t.live.Size()
}

// LiveBytes returns the total size of live blocks.
func (t *Tracker) LiveBytes() int {
	total := 0
	t.live.Range(func(_ uint64, b Block) bool {
		total += b.size
		return true
	})
	return total
}

// Allocations returns the number of successful allocations.
func (t *Tracker) Allocations() int64 {
	return t.allocs.Value()
}

// Releases returns the number of successful releases.
func (t *Tracker) Releases() int64 {
	return t.releases.Value()
}

// DoubleFrees returns the number of releases of blocks that were not live.
func (t *Tracker) DoubleFrees() int64 {
	return t.doubleFrees.Value()
}

// TrackerOption is a tracker configuration option.
type TrackerOption interface {
	apply(*Tracker)
}

// FailOn option makes the allocations with the given 1-based ordinals fail.
func FailOn(ordinals ...int) TrackerOption {
	return funcOption(func(t *Tracker) {
		for _, n := range ordinals {
			t.failOn[n] = true
		}
	})
}

// FailAfter option makes every allocation after the first n fail.
//
// The zero value disables the limit.
func FailAfter(n int) TrackerOption {
	return funcOption(func(t *Tracker) {
		if n < 0 {
			panic("alloc: negative allocation limit")
		}
		t.failAfter = n
	})
}

type funcOption func(*Tracker)

func (o funcOption) apply(t *Tracker) {
	o(t)
}

func hashID(seed maphash.Seed, id uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], id)

	var h maphash.Hash
	h.SetSeed(seed)
	_, _ = h.Write(buf[:])

	return h.Sum64()
}
