// Package vec
// Author: momentics <momentics@gmail.com>
//
// Growable, contiguous, ordered container with manually managed backing
// storage, and a consuming double-ended iterator over it.
//
// Vec is not internally synchronized. It assumes a single exclusive owner:
// concurrent mutation from multiple goroutines without external
// synchronization is a contract violation with undefined behavior. Callers
// needing shared access must wrap the container behind a mutex or hand
// ownership between goroutines over a channel; see examples/guarded.
//
// Storage placement is decided once per container from the element layout:
// element types carrying Go pointers live in collector-visible slabs, while
// pointer-free layouts use raw blocks from core/alloc and may be placed
// off-heap. In both modes the length counter is the sole authority for
// which slots hold live values; slots past the length are dead storage and
// are never read, torn down, or exposed.
package vec
