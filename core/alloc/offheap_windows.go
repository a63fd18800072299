// File: core/alloc/offheap_windows.go
//go:build windows

// Package alloc: Windows off-heap allocator over VirtualAlloc/VirtualFree.
// Falls back to the Go heap when VirtualAlloc declines the request; the
// base-address registry keeps track of which blocks need VirtualFree.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc

import (
	"sync"
	"unsafe"

	"github.com/momentics/hioload-vec/api"
	"golang.org/x/sys/windows"
)

var (
	kern32           = windows.NewLazySystemDLL("kernel32.dll")
	procVirtualAlloc = kern32.NewProc("VirtualAlloc")
	procVirtualFree  = kern32.NewProc("VirtualFree")
)

type virtualAllocator struct {
	counters
	mu    sync.Mutex
	bases map[uintptr]struct{} // VirtualAlloc'd base addresses
}

// NewOffHeap returns a VirtualAlloc-backed allocator. The hugepages flag
// is accepted for constructor parity with the Linux build and ignored;
// large-page support on Windows requires a privilege grant this library
// does not negotiate.
func NewOffHeap(hugepages bool) api.Allocator {
	return &virtualAllocator{bases: make(map[uintptr]struct{})}
}

func (a *virtualAllocator) Alloc(size int) []byte {
	checkBlockSize(size)
	addr, _, _ := procVirtualAlloc.Call(
		0, uintptr(size),
		uintptr(windows.MEM_RESERVE|windows.MEM_COMMIT),
		uintptr(windows.PAGE_READWRITE),
	)
	if addr == 0 {
		// Commit failed; the Go heap is the fallback. An unsatisfiable
		// make throws in the runtime, matching the fatal contract.
		block := make([]byte, size)
		a.recordAlloc(size)
		return block
	}
	a.mu.Lock()
	a.bases[addr] = struct{}{}
	a.mu.Unlock()
	a.recordAlloc(size)
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
}

func (a *virtualAllocator) Free(block []byte) {
	if len(block) == 0 {
		return
	}
	size := len(block)
	base := uintptr(unsafe.Pointer(&block[0]))
	a.mu.Lock()
	_, offHeap := a.bases[base]
	delete(a.bases, base)
	a.mu.Unlock()
	if offHeap {
		procVirtualFree.Call(base, 0, uintptr(windows.MEM_RELEASE))
	}
	a.recordFree(size)
}

func (a *virtualAllocator) Stats() api.AllocStats { return a.snapshot() }

var _ api.Allocator = (*virtualAllocator)(nil)
