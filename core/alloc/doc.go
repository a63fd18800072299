// Package alloc
// Author: momentics <momentics@gmail.com>
//
// Raw block allocators for hioload-vec.
// Implements the api.Allocator contract over the Go heap, over anonymous
// mmap regions (Linux, optionally hugepage-backed), over VirtualAlloc
// (Windows), and a free-list recycler that caches released blocks per size
// class. Allocation failure and size overflow abort the process; see
// fatal.go for the termination contract.
package alloc
