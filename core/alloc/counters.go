// File: core/alloc/counters.go
// Author: momentics <momentics@gmail.com>
//
// Shared allocation accounting embedded by every allocator implementation.

package alloc

import (
	"sync/atomic"

	"github.com/momentics/hioload-vec/api"
)

type counters struct {
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	bytesAlloc atomic.Int64
	bytesFree  atomic.Int64
}

func (c *counters) recordAlloc(size int) {
	c.totalAlloc.Add(1)
	c.bytesAlloc.Add(int64(size))
}

func (c *counters) recordFree(size int) {
	c.totalFree.Add(1)
	c.bytesFree.Add(int64(size))
}

func (c *counters) snapshot() api.AllocStats {
	totalAlloc := c.totalAlloc.Load()
	totalFree := c.totalFree.Load()
	return api.AllocStats{
		TotalAlloc: totalAlloc,
		TotalFree:  totalFree,
		InUse:      totalAlloc - totalFree,
		BytesAlloc: c.bytesAlloc.Load(),
		BytesFree:  c.bytesFree.Load(),
	}
}
