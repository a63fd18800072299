// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts for hioload-vec: raw allocator abstraction, allocation
// statistics, element teardown capability, and structured error types.
// Implementations live in core/alloc; the container itself lives in vec.
package api
