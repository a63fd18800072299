// File: vec/intoiter_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vec_test

import (
	"testing"

	"github.com/momentics/hioload-vec/vec"
)

func TestIntoIter_ForwardOrderEqualsInsertionOrder(t *testing.T) {
	v := vec.New[int]()
	const n = 10
	for i := 0; i < n; i++ {
		v.Push(i)
	}
	it := v.IntoIter()
	defer it.Close()

	for i := 0; i < n; i++ {
		got, ok := it.Next()
		if !ok {
			t.Fatalf("iterator exhausted early at %d", i)
		}
		if got != i {
			t.Errorf("position %d: expected %d, got %d", i, i, got)
		}
	}
	if _, ok := it.Next(); ok {
		t.Error("exhausted iterator must report false")
	}
}

func TestIntoIter_InterleavedFrontBack(t *testing.T) {
	v := vec.New[string]()
	for _, s := range []string{"A", "B", "C", "D"} {
		v.Push(s)
	}
	it := v.IntoIter()
	defer it.Close()

	steps := []struct {
		back bool
		want string
	}{
		{false, "A"},
		{true, "D"},
		{false, "B"},
		{true, "C"},
	}
	for i, step := range steps {
		var got string
		var ok bool
		if step.back {
			got, ok = it.NextBack()
		} else {
			got, ok = it.Next()
		}
		if !ok || got != step.want {
			t.Errorf("step %d: expected %q, got %q ok=%v", i, step.want, got, ok)
		}
	}
	if _, ok := it.Next(); ok {
		t.Error("expected exhaustion from the front")
	}
	if _, ok := it.NextBack(); ok {
		t.Error("expected exhaustion from the back")
	}
}

func TestIntoIter_RemainingIsExact(t *testing.T) {
	v := vec.New[int]()
	for i := 0; i < 6; i++ {
		v.Push(i)
	}
	it := v.IntoIter()
	defer it.Close()

	want := 6
	if it.Remaining() != want {
		t.Fatalf("expected %d remaining, got %d", want, it.Remaining())
	}
	it.Next()
	it.NextBack()
	if it.Remaining() != want-2 {
		t.Errorf("expected %d remaining, got %d", want-2, it.Remaining())
	}
	for {
		if _, ok := it.Next(); !ok {
			break
		}
	}
	if it.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", it.Remaining())
	}
}

func TestIntoIter_EmptyAndZeroCapacity(t *testing.T) {
	it := vec.New[int]().IntoIter()
	defer it.Close()
	if _, ok := it.Next(); ok {
		t.Error("iterator over empty container must be exhausted")
	}
	if it.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", it.Remaining())
	}
}

func TestIntoIter_ConsumedVecIsInert(t *testing.T) {
	v := vec.New[int]()
	v.Push(1)
	v.Push(2)
	it := v.IntoIter()
	defer it.Close()

	// Ownership moved: the source container is logically empty and its
	// teardown must not touch the transferred buffer.
	if v.Len() != 0 || v.Cap() != 0 {
		t.Errorf("consumed container must be empty: len %d cap %d", v.Len(), v.Cap())
	}
	v.Close()
	got, ok := it.Next()
	if !ok || got != 1 {
		t.Errorf("expected 1 after source close, got %d ok=%v", got, ok)
	}
}

func TestIntoIter_PartialDrainDropsRemainder(t *testing.T) {
	drops := 0
	v := vec.New[tracked]()
	for i := 0; i < 6; i++ {
		v.Push(tracked{id: i, drops: &drops})
	}
	it := v.IntoIter()
	it.Next()
	it.NextBack()
	// Abandon iteration with four elements unyielded.
	it.Close()
	if drops != 4 {
		t.Errorf("expected 4 teardowns for unyielded elements, got %d", drops)
	}
	it.Close()
	if drops != 4 {
		t.Errorf("second close must not re-drop: got %d", drops)
	}
}

func TestIntoIter_FullDrainDropsNothing(t *testing.T) {
	drops := 0
	v := vec.New[tracked]()
	for i := 0; i < 3; i++ {
		v.Push(tracked{id: i, drops: &drops})
	}
	it := v.IntoIter()
	for {
		if _, ok := it.Next(); !ok {
			break
		}
	}
	it.Close()
	if drops != 0 {
		t.Errorf("fully drained iterator owns no elements, got %d teardowns", drops)
	}
}
