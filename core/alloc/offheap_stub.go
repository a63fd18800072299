// File: core/alloc/offheap_stub.go
//go:build !linux && !windows

// Package alloc: off-heap fallback for platforms without a dedicated
// mapping path. Blocks come from the Go heap.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc

import "github.com/momentics/hioload-vec/api"

// NewOffHeap has no platform mapping here and returns a heap allocator.
func NewOffHeap(hugepages bool) api.Allocator {
	return NewHeap()
}
