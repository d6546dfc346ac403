package rope

import (
	"math/rand"
	"testing"
)

func buildRope(values []int) Rope[int] {
	var r Rope[int]
	for _, v := range values {
		r = r.PushBack(v)
	}
	return r
}

// TestRopeSplitMergeRoundTrip is property P6: split(k) followed by merge
// reproduces the original rope element-wise, for every k.
func TestRopeSplitMergeRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		n := r.Intn(40)
		values := make([]int, n)
		for i := range values {
			values[i] = r.Intn(1000)
		}
		original := buildRope(values)

		k := r.Intn(n + 1)
		left, right := original.Split(k)
		merged := left.Merge(right)

		if merged.Len() != n {
			t.Fatalf("trial %d: Len() after split/merge = %d; want %d", trial, merged.Len(), n)
		}
		for i, want := range values {
			got, ok := merged.Get(i)
			if !ok || got != want {
				t.Fatalf("trial %d: Get(%d) = %v,%v; want %v,true", trial, i, got, ok, want)
			}
		}
	}
}

// TestRopeReverseReverseIsIdentity is property P6's reverse clause.
func TestRopeReverseReverseIsIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for trial := 0; trial < 200; trial++ {
		n := r.Intn(40)
		values := make([]int, n)
		for i := range values {
			values[i] = r.Intn(1000)
		}
		original := buildRope(values)

		twice := original.Reverse().Reverse()
		if twice.Len() != n {
			t.Fatalf("trial %d: Len() after reverse-reverse = %d; want %d", trial, twice.Len(), n)
		}
		for i, want := range values {
			got, ok := twice.Get(i)
			if !ok || got != want {
				t.Fatalf("trial %d: Get(%d) = %v,%v; want %v,true", trial, i, got, ok, want)
			}
		}
	}
}

// TestRopeInsertRemoveRoundTrip is property P6's insert/remove clause.
func TestRopeInsertRemoveRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 200; trial++ {
		n := r.Intn(40)
		values := make([]int, n)
		for i := range values {
			values[i] = r.Intn(1000)
		}
		original := buildRope(values)

		pos := r.Intn(n + 1)
		x := r.Intn(1000)
		inserted := original.Insert(pos, x)

		removed, got, ok := inserted.Remove(pos)
		if !ok || got != x {
			t.Fatalf("trial %d: Remove(%d) = %v,%v; want %v,true", trial, pos, got, ok, x)
		}
		if removed.Len() != n {
			t.Fatalf("trial %d: Len() after insert/remove = %d; want %d", trial, removed.Len(), n)
		}
		for i, want := range values {
			v, ok := removed.Get(i)
			if !ok || v != want {
				t.Fatalf("trial %d: Get(%d) after round trip = %v,%v; want %v,true", trial, i, v, ok, want)
			}
		}
	}
}
