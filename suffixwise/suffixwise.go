/*
Package suffixwise attaches per-suffix-length data to every state of a
generalized suffix automaton (package sam): for a sam state representing
substrings whose lengths span [minSufLen, maxSufLen], a Data[T] holds
exactly one T per length in that interval, stored in a rope.Rope[T] so
that splicing in a specific length's value, and forwarding a whole
state's data on to every transition target, are both cheap, persistent
operations.

Entries are assembled in sam.SAM.TopoAndSufLenSortedNodeIDs order: by
the time a node is processed, every predecessor reachable via a
transition has already forward-merged its own rope into this node's, so
this node's rope already has exactly maxSufLen-minSufLen+1 entries
before its own explicit initFor values are spliced in.
*/
package suffixwise

import (
	"github.com/Zubayear/gensam/rope"
	"github.com/Zubayear/gensam/sam"
)

// Data holds, for one sam state, a value for every suffix length the
// state represents.
type Data[T any] struct {
	values    rope.Rope[T]
	minSufLen int
	maxSufLen int
}

// Get returns the value recorded for sufLen, or false if sufLen is
// outside the state's suffix-length interval, or is 0 (the empty
// suffix never carries suffixwise data).
func (d Data[T]) Get(sufLen int) (T, bool) {
	var zero T
	if d.values.IsEmpty() || d.maxSufLen == 0 || d.minSufLen == 0 ||
		sufLen < d.minSufLen || sufLen > d.maxSufLen {
		return zero, false
	}
	v, ok := d.values.Get(sufLen - d.minSufLen)
	if !ok {
		return zero, false
	}
	return v, true
}

// MinSuffixLen and MaxSuffixLen report the inclusive suffix-length
// interval the state's Data covers.
func (d Data[T]) MinSuffixLen() int { return d.minSufLen }
func (d Data[T]) MaxSuffixLen() int { return d.maxSufLen }

// LenValue pairs a suffix length with the value to record at it.
type LenValue[T any] struct {
	Len   int
	Value T
}

// Build computes a Data[T] for every node of s. initFor(id) supplies the
// (length, value) pairs to splice into node id's own data before it is
// forwarded on to id's transition targets; most callers only have
// entries to contribute at a handful of nodes; the others simply return
// nil.
func Build[K comparable, T any](s *sam.SAM[K], initFor func(id sam.NodeID) []LenValue[T]) []Data[T] {
	res := make([]Data[T], s.NumNodes())

	for _, id := range s.TopoAndSufLenSortedNodeIDs() {
		nd := &res[id]
		nd.maxSufLen = s.MaxSuffixLen(id)

		if id == sam.Root {
			nd.minSufLen = 0
			var zero T
			nd.values = rope.New(zero)
		} else {
			parent := s.SuffixParentID(id)
			nd.minSufLen = s.MaxSuffixLen(parent) + 1
		}

		for _, lv := range initFor(id) {
			pos := lv.Len - nd.minSufLen
			left, right := nd.values.Split(pos)
			_, right = right.Split(1)
			nd.values = left.Merge(rope.New(lv.Value)).Merge(right)
		}

		for _, target := range s.Transitions(id) {
			res[target].values = res[target].values.Merge(nd.values)
		}
	}

	return res
}
