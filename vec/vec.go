// File: vec/vec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Vec core: construction, growth, push/pop, positional insert/remove,
// slice views, and teardown.

package vec

import (
	"reflect"
	"unsafe"

	"github.com/momentics/hioload-vec/api"
	"github.com/momentics/hioload-vec/core/alloc"
)

// Vec is a growable contiguous container over manually managed storage.
//
// The zero state holds no allocation: capacity 0 and a nil base pointer.
// Capacity only ever grows, doubling from 1. Exactly one of raw/ref backs
// the storage once allocated, fixed by the element layout at construction.
type Vec[T any] struct {
	ptr   unsafe.Pointer // first element slot; nil while capacity is 0
	raw   []byte         // raw-block backing (pointer-free elements)
	ref   []T            // collector-visible backing (pointer-bearing elements)
	len   int
	cap   int
	esize uintptr
	gc    bool
	drop  func(*T)
	al    api.Allocator
}

// Option configures a Vec at construction.
type Option[T any] func(*Vec[T])

// WithAllocator routes raw-block storage through a. Containers of
// pointer-bearing element types ignore it: their slabs must stay visible
// to the garbage collector.
func WithAllocator[T any](a api.Allocator) Option[T] {
	return func(v *Vec[T]) {
		if a != nil {
			v.al = a
		}
	}
}

// WithDrop installs fn as the per-element teardown hook, replacing the
// default api.Releasable dispatch. fn runs once for every live element
// discarded during container or iterator teardown.
func WithDrop[T any](fn func(*T)) Option[T] {
	return func(v *Vec[T]) { v.drop = fn }
}

// New constructs an empty Vec with no allocation.
//
// Panics if T is a zero-sized type: a container of no-storage elements has
// no meaningful capacity and is rejected as a hard precondition.
func New[T any](opts ...Option[T]) *Vec[T] {
	var zero T
	esize := unsafe.Sizeof(zero)
	if esize == 0 {
		panic("vec: zero-sized element types are not supported")
	}
	v := &Vec[T]{
		esize: esize,
		gc:    typeHasPointers(reflect.TypeOf((*T)(nil)).Elem()),
		al:    alloc.Default(),
	}
	if _, ok := any(zero).(api.Releasable); ok {
		v.drop = func(p *T) { any(*p).(api.Releasable).Release() }
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int { return v.len }

// Cap returns the number of allocated element slots.
func (v *Vec[T]) Cap() int { return v.cap }

func (v *Vec[T]) slot(i int) *T {
	return (*T)(unsafe.Add(v.ptr, uintptr(i)*v.esize))
}

// Push appends elem, growing the buffer first when full.
func (v *Vec[T]) Push(elem T) {
	if v.len == v.cap {
		v.grow()
	}
	// The slot holds no live value; a plain write, nothing to tear down.
	*v.slot(v.len) = elem
	v.len++
}

// Pop removes and returns the last element, or (zero, false) when empty.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if v.len == 0 {
		return zero, false
	}
	v.len--
	p := v.slot(v.len)
	out := *p
	// The vacated slot is dead storage again and must not pin the moved
	// value, nor be torn down later.
	*p = zero
	return out, true
}

// Insert places elem at index, shifting [index, len) one slot right.
// index may equal Len, which appends.
func (v *Vec[T]) Insert(index int, elem T) error {
	if index < 0 || index > v.len {
		return api.NewError(api.ErrCodeOutOfRange, "insert index out of bounds").
			WithContext("index", index).
			WithContext("len", v.len)
	}
	if v.len == v.cap {
		v.grow()
	}
	if n := v.len - index; n > 0 {
		// Overlapping ranges; copy carries memmove semantics.
		copy(unsafe.Slice(v.slot(index+1), n), unsafe.Slice(v.slot(index), n))
	}
	*v.slot(index) = elem
	v.len++
	return nil
}

// Remove deletes and returns the element at index, shifting [index+1, len)
// one slot left. index must be strictly below Len.
func (v *Vec[T]) Remove(index int) (T, error) {
	var zero T
	if index < 0 || index >= v.len {
		return zero, api.NewError(api.ErrCodeOutOfRange, "remove index out of bounds").
			WithContext("index", index).
			WithContext("len", v.len)
	}
	out := *v.slot(index)
	if n := v.len - index - 1; n > 0 {
		copy(unsafe.Slice(v.slot(index), n), unsafe.Slice(v.slot(index+1), n))
	}
	v.len--
	*v.slot(v.len) = zero
	return out, nil
}

// Get returns the element at index without removing it.
func (v *Vec[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= v.len {
		return zero, api.NewError(api.ErrCodeOutOfRange, "index out of bounds").
			WithContext("index", index).
			WithContext("len", v.len)
	}
	return *v.slot(index), nil
}

// Set overwrites the element at index. The previous value is replaced
// without teardown; ownership of it is considered transferred away.
func (v *Vec[T]) Set(index int, elem T) error {
	if index < 0 || index >= v.len {
		return api.NewError(api.ErrCodeOutOfRange, "index out of bounds").
			WithContext("index", index).
			WithContext("len", v.len)
	}
	*v.slot(index) = elem
	return nil
}

// Slice exposes the live elements [0, len) as a read-write view without
// transferring ownership. The view is valid only until the next mutating
// call on the Vec; growth relocates the buffer under it.
func (v *Vec[T]) Slice() []T {
	if v.len == 0 {
		return nil
	}
	return unsafe.Slice((*T)(v.ptr), v.len)
}

// grow doubles capacity (from 1 on the first allocation). Size overflow
// and allocation failure terminate the process; see core/alloc.
func (v *Vec[T]) grow() {
	newCap := 1
	if v.cap != 0 {
		newCap = 2 * v.cap
	}
	size := alloc.ArrayBytes(newCap, v.esize)
	if v.gc {
		slab := make([]T, newCap)
		copy(slab, v.ref[:v.len])
		v.ref = slab
		v.ptr = unsafe.Pointer(&slab[0])
	} else {
		block := v.al.Alloc(size)
		if v.cap != 0 {
			copy(block, v.raw[:uintptr(v.len)*v.esize])
			v.al.Free(v.raw)
		}
		v.raw = block
		v.ptr = unsafe.Pointer(&block[0])
	}
	v.cap = newCap
}

// Close tears the container down: every live element is dropped in
// forward order, then the buffer is released. Idempotent, and a no-op
// after IntoIter has taken ownership of the buffer.
func (v *Vec[T]) Close() {
	if v.cap == 0 {
		v.len = 0
		v.ptr = nil
		return
	}
	var zero T
	for i := 0; i < v.len; i++ {
		p := v.slot(i)
		if v.drop != nil {
			v.drop(p)
		}
		*p = zero
	}
	v.len = 0
	if !v.gc {
		v.al.Free(v.raw)
		v.raw = nil
	}
	v.ref = nil
	v.ptr = nil
	v.cap = 0
}

// typeHasPointers reports whether values of t embed Go pointers anywhere
// in their layout and therefore must stay visible to the collector.
func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
