// File: api/alloc.go
// Author: momentics <momentics@gmail.com>
//
// Raw memory allocator abstraction for manually managed buffers.
//
// Blocks may be Go-heap backed, mmap-backed, or recycled from a free list.
// Blocks are opaque byte regions: callers lay out their own element storage
// inside them and must never retain a block past Free.

package api

// Allocator hands out raw byte blocks for manually managed storage.
//
// Allocation failure is fatal by contract: implementations terminate the
// process instead of returning nil or an error, because a partially grown
// buffer cannot be repaired locally. Alloc never returns a short block.
type Allocator interface {
	// Alloc returns a block of exactly size bytes, zeroed.
	// size must be positive and within the platform's maximum signed
	// size (core/alloc.MaxAllocBytes); violations are fatal.
	Alloc(size int) []byte

	// Free returns a block to the allocator. The block must be exactly the
	// slice returned by Alloc, and must not be used afterwards.
	Free(block []byte)

	// Stats exposes allocation accounting for observability.
	Stats() AllocStats
}

// AllocStats aggregates allocator accounting.
type AllocStats struct {
	TotalAlloc int64 // blocks handed out
	TotalFree  int64 // blocks returned
	InUse      int64 // TotalAlloc - TotalFree
	BytesAlloc int64 // cumulative bytes handed out
	BytesFree  int64 // cumulative bytes returned
}
