// File: core/alloc/fatal.go
// Author: momentics <momentics@gmail.com>
//
// Fatal termination path for unrecoverable allocation conditions.
// A failed or oversized allocation leaves no buffer state that can be
// repaired locally, so the process is terminated instead of surfacing a
// catchable error value.

package alloc

import (
	"fmt"
	"math"
	"os"
)

// MaxAllocBytes is the largest block size any allocator will hand out:
// the platform's maximum representable signed size. Requests beyond it
// would permit pointer-arithmetic overflow and are rejected fatally.
const MaxAllocBytes = math.MaxInt

// exit is swapped out in tests that exercise the fatal path.
var exit func(code int) = os.Exit

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "hioload-vec: fatal: "+format+"\n", args...)
	exit(2)
}

// ArrayBytes returns the byte size of a block holding elems slots of
// elemSize bytes each. Aborts the process if the product overflows or
// exceeds MaxAllocBytes.
func ArrayBytes(elems int, elemSize uintptr) int {
	size, ok := arrayBytes(elems, elemSize)
	if !ok {
		fatal("allocation too large: %d elements of %d bytes", elems, elemSize)
	}
	return size
}

func arrayBytes(elems int, elemSize uintptr) (int, bool) {
	if elems < 0 || elemSize == 0 {
		return 0, false
	}
	if elems == 0 {
		return 0, true
	}
	if uintptr(elems) > MaxAllocBytes/elemSize {
		return 0, false
	}
	return elems * int(elemSize), true
}

// checkBlockSize validates a single Alloc request. MaxAllocBytes is the
// int ceiling, so a positive int size can never exceed it; only
// non-positive requests are malformed.
func checkBlockSize(size int) {
	if size <= 0 {
		fatal("invalid allocation size %d", size)
	}
}
