// File: core/alloc/recycle.go
// Author: momentics <momentics@gmail.com>
//
// Free-list recycler: caches released blocks per exact size class so the
// doubling growth pattern of vec reuses its own previous buffers.
//
// NOT thread-safe. The recycler shares the single-exclusive-owner contract
// of the containers it serves; wrap it externally if allocations must
// cross goroutines.

package alloc

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-vec/api"
)

const defaultClassCapacity = 64

// Recycler wraps an inner allocator with per-size free lists.
type Recycler struct {
	counters
	inner    api.Allocator
	classes  map[int]*queue.Queue
	classCap int
}

// NewRecycler builds a recycler over inner. A nil inner uses the process
// default heap allocator.
func NewRecycler(inner api.Allocator) *Recycler {
	if inner == nil {
		inner = Default()
	}
	return &Recycler{
		inner:    inner,
		classes:  make(map[int]*queue.Queue),
		classCap: defaultClassCapacity,
	}
}

func (r *Recycler) Alloc(size int) []byte {
	checkBlockSize(size)
	if q, ok := r.classes[size]; ok && q.Length() > 0 {
		block := q.Remove().([]byte)
		clear(block)
		r.recordAlloc(size)
		return block
	}
	block := r.inner.Alloc(size)
	r.recordAlloc(size)
	return block
}

func (r *Recycler) Free(block []byte) {
	if len(block) == 0 {
		return
	}
	size := len(block)
	q, ok := r.classes[size]
	if !ok {
		q = queue.New()
		r.classes[size] = q
	}
	if q.Length() >= r.classCap {
		// Class full, release for real.
		r.inner.Free(block)
	} else {
		q.Add(block)
	}
	r.recordFree(size)
}

func (r *Recycler) Stats() api.AllocStats { return r.snapshot() }

// Drain releases every cached block to the inner allocator.
func (r *Recycler) Drain() {
	for size, q := range r.classes {
		for q.Length() > 0 {
			r.inner.Free(q.Remove().([]byte))
		}
		delete(r.classes, size)
	}
}

var _ api.Allocator = (*Recycler)(nil)
