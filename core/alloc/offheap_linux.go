// File: core/alloc/offheap_linux.go
//go:build linux

// Package alloc: Linux off-heap allocator over anonymous mmap, with
// optional 2 MiB hugepage backing and Go-heap fallback when hugepages
// are unavailable.
//
// Off-heap blocks are invisible to the garbage collector. Callers must
// only store pointer-free element layouts in them; the vec package
// enforces this by routing pointer-bearing element types to GC-visible
// storage instead.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc

import (
	"github.com/momentics/hioload-vec/api"
	"golang.org/x/sys/unix"
)

const hugePageSize = 2 << 20

type mmapAllocator struct {
	counters
	hugepages bool
}

// NewOffHeap returns an mmap-backed allocator. With hugepages set, blocks
// are rounded to the 2 MiB hugepage boundary and mapped with MAP_HUGETLB,
// falling back to regular pages when the system has none configured.
func NewOffHeap(hugepages bool) api.Allocator {
	return &mmapAllocator{hugepages: hugepages}
}

func (a *mmapAllocator) Alloc(size int) []byte {
	checkBlockSize(size)
	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_ANONYMOUS | unix.MAP_PRIVATE

	if a.hugepages {
		length := ((size + hugePageSize - 1) / hugePageSize) * hugePageSize
		data, err := unix.Mmap(-1, 0, length, prot, flags|unix.MAP_HUGETLB)
		if err == nil {
			a.recordAlloc(size)
			return data[:size]
		}
		// No hugepages configured; fall through to regular pages.
	}

	data, err := unix.Mmap(-1, 0, size, prot, flags)
	if err != nil {
		fatal("out of memory: mmap of %d bytes: %v", size, err)
	}
	a.recordAlloc(size)
	return data
}

func (a *mmapAllocator) Free(block []byte) {
	if len(block) == 0 {
		return
	}
	size := len(block)
	if err := unix.Munmap(block); err != nil {
		fatal("munmap of %d bytes: %v", size, err)
	}
	a.recordFree(size)
}

func (a *mmapAllocator) Stats() api.AllocStats { return a.snapshot() }

var _ api.Allocator = (*mmapAllocator)(nil)
