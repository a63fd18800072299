// File: core/alloc/heap.go
// Author: momentics <momentics@gmail.com>
//
// Portable allocator over the Go heap. Blocks remain visible to the
// garbage collector for as long as the caller retains them; Free only
// updates accounting and drops the allocator's interest in the block.

package alloc

import (
	"sync"

	"github.com/momentics/hioload-vec/api"
)

type heapAllocator struct {
	counters
}

// NewHeap returns an allocator backed by ordinary Go heap slices.
// Suitable for any element layout; the default for the library.
func NewHeap() api.Allocator {
	return &heapAllocator{}
}

func (a *heapAllocator) Alloc(size int) []byte {
	checkBlockSize(size)
	// A make this large that cannot be satisfied throws in the runtime,
	// which matches the fatal allocation-failure contract.
	block := make([]byte, size)
	a.recordAlloc(size)
	return block
}

func (a *heapAllocator) Free(block []byte) {
	if len(block) == 0 {
		return
	}
	a.recordFree(len(block))
}

func (a *heapAllocator) Stats() api.AllocStats { return a.snapshot() }

var _ api.Allocator = (*heapAllocator)(nil)

var (
	defaultOnce  sync.Once
	defaultAlloc api.Allocator
)

// Default returns a process-wide heap allocator so all containers share
// one accounting surface instead of fragmenting stats.
func Default() api.Allocator {
	defaultOnce.Do(func() {
		defaultAlloc = NewHeap()
	})
	return defaultAlloc
}
