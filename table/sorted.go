package table

import (
	"golang.org/x/exp/constraints"

	"github.com/Zubayear/gensam/priorityqueue"
)

// SortedTable is a read-optimized transition table backed by a slice
// sorted by key and searched with binary search. It has no Set method:
// it is assembled once, from a snapshot of another backend's entries,
// after a node's transitions are fully known, and is meant to replace
// a write-oriented backend (HashTable, OrderedTable) for the remaining
// lifetime of a read-heavy automaton.
//
// Construction sorts the snapshot with a binary heap from package
// priorityqueue rather than calling into the standard sort package:
// entries are pushed onto a min-ordered heap and polled back off in
// ascending key order, an O(n log n) heapsort.
type SortedTable[K constraints.Ordered] struct {
	entries []Entry[K]
}

// NewSortedTable builds a SortedTable from a snapshot of entries,
// heap-sorting them by key.
func NewSortedTable[K constraints.Ordered](entries []Entry[K]) *SortedTable[K] {
	heap := priorityqueue.NewBinaryHeapWithComparator(func(a, b Entry[K]) bool {
		return a.Key < b.Key
	})
	for _, e := range entries {
		heap.Add(e)
	}
	sorted := make([]Entry[K], 0, len(entries))
	for !heap.IsEmpty() {
		e, err := heap.Poll()
		if err != nil {
			break
		}
		sorted = append(sorted, e)
	}
	return &SortedTable[K]{entries: sorted}
}

// NewSortedTableFromTable snapshots src's entries into a new SortedTable.
// This is the typical way to call sam.SAM.AlterTransitionTable with a
// read-optimized backend once construction of a node's transitions is done.
func NewSortedTableFromTable[K constraints.Ordered](src Table[K]) Table[K] {
	return NewSortedTable(src.Entries())
}

func (s *SortedTable[K]) bisect(key K) (int, bool) {
	lo, hi := 0, len(s.entries)
	for hi-lo > 0 {
		mid := (lo + hi) / 2
		switch {
		case s.entries[mid].Key == key:
			return mid, true
		case s.entries[mid].Key < key:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}

func (s *SortedTable[K]) Get(key K) (NodeID, bool) {
	if i, ok := s.bisect(key); ok {
		return s.entries[i].Target, true
	}
	return 0, false
}

func (s *SortedTable[K]) Contains(key K) bool {
	_, ok := s.bisect(key)
	return ok
}

func (s *SortedTable[K]) Len() int {
	return len(s.entries)
}

func (s *SortedTable[K]) Entries() []Entry[K] {
	result := make([]Entry[K], len(s.entries))
	copy(result, s.entries)
	return result
}
