// File: vec/intoiter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Consuming double-ended iterator. Produced only by Vec.IntoIter, which
// transfers buffer ownership: once built, the iterator is solely
// responsible for tearing down unyielded elements and releasing the buffer.

package vec

import (
	"unsafe"

	"github.com/momentics/hioload-vec/api"
)

// IntoIter yields the elements of a consumed Vec from either end.
// The region [start, end) holds exactly the not-yet-yielded live elements,
// with start <= end at all times. Not internally synchronized.
type IntoIter[T any] struct {
	raw   []byte
	ref   []T
	base  unsafe.Pointer
	cap   int
	esize uintptr
	gc    bool
	start unsafe.Pointer
	end   unsafe.Pointer
	drop  func(*T)
	al    api.Allocator
}

// IntoIter consumes the Vec, transferring buffer ownership to the returned
// iterator. The Vec is left logically empty with no allocation: further use
// sees an empty container and its Close becomes a no-op. The iterator's
// Close must run for the buffer to be released.
func (v *Vec[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{
		raw:   v.raw,
		ref:   v.ref,
		base:  v.ptr,
		cap:   v.cap,
		esize: v.esize,
		gc:    v.gc,
		start: v.ptr,
		end:   v.ptr,
		drop:  v.drop,
		al:    v.al,
	}
	if v.cap != 0 {
		it.end = unsafe.Add(v.ptr, uintptr(v.len)*v.esize)
	}
	// The Vec forgets the buffer; exactly one owner performs teardown.
	v.ptr = nil
	v.raw = nil
	v.ref = nil
	v.len = 0
	v.cap = 0
	return it
}

// Next moves the front element out to the caller, or returns (zero, false)
// once the iterator is exhausted.
func (it *IntoIter[T]) Next() (T, bool) {
	var zero T
	if it.start == it.end {
		return zero, false
	}
	p := (*T)(it.start)
	out := *p
	*p = zero
	it.start = unsafe.Add(it.start, it.esize)
	return out, true
}

// NextBack moves the back element out to the caller. Front and back
// consumption interleave freely; no element is ever yielded twice.
func (it *IntoIter[T]) NextBack() (T, bool) {
	var zero T
	if it.start == it.end {
		return zero, false
	}
	it.end = unsafe.Add(it.end, -int(it.esize))
	p := (*T)(it.end)
	out := *p
	*p = zero
	return out, true
}

// Remaining returns the exact number of elements not yet yielded.
func (it *IntoIter[T]) Remaining() int {
	return int((uintptr(it.end) - uintptr(it.start)) / it.esize)
}

// Close tears down every element still in [start, end) — iteration
// abandoned early is still cleaned up — then releases the buffer.
// Idempotent.
func (it *IntoIter[T]) Close() {
	if it.cap == 0 {
		it.start = nil
		it.end = nil
		return
	}
	var zero T
	for it.start != it.end {
		p := (*T)(it.start)
		if it.drop != nil {
			it.drop(p)
		}
		*p = zero
		it.start = unsafe.Add(it.start, it.esize)
	}
	if !it.gc {
		it.al.Free(it.raw)
		it.raw = nil
	}
	it.ref = nil
	it.base = nil
	it.start = nil
	it.end = nil
	it.cap = 0
}
