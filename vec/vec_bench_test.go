// File: vec/vec_bench_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vec_test

import (
	"testing"

	"github.com/momentics/hioload-vec/core/alloc"
	"github.com/momentics/hioload-vec/vec"
)

func BenchmarkVec_Push(b *testing.B) {
	v := vec.New[int]()
	defer v.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Push(i)
	}
}

func BenchmarkVec_PushPop(b *testing.B) {
	v := vec.New[int]()
	defer v.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Push(i)
		v.Pop()
	}
}

func BenchmarkVec_PushRecycler(b *testing.B) {
	al := alloc.NewRecycler(nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := vec.New[int](vec.WithAllocator[int](al))
		for j := 0; j < 64; j++ {
			v.Push(j)
		}
		v.Close()
	}
}

func BenchmarkVec_IntoIterDrain(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v := vec.New[int]()
		for j := 0; j < 256; j++ {
			v.Push(j)
		}
		it := v.IntoIter()
		for {
			if _, ok := it.Next(); !ok {
				break
			}
		}
		it.Close()
	}
}
