package table

import (
	"golang.org/x/exp/constraints"

	"github.com/Zubayear/gensam/treemap"
)

// OrderedTable is a transition table backed by a red-black tree
// (treemap.TreeMap). Get/Set cost O(log n); in exchange, Entries
// walks transitions in ascending key order. SortedTable still
// heap-sorts whatever snapshot it is given, ordered or not.
type OrderedTable[K constraints.Ordered] struct {
	m *treemap.TreeMap[K, NodeID]
}

// NewOrderedTable returns an empty OrderedTable backend.
func NewOrderedTable[K constraints.Ordered]() *OrderedTable[K] {
	return &OrderedTable[K]{m: treemap.NewTreeMap[K, NodeID]()}
}

// NewOrderedTableFactory returns a Factory constructing empty OrderedTable backends.
func NewOrderedTableFactory[K constraints.Ordered]() Factory[K] {
	return func() MutableTable[K] { return NewOrderedTable[K]() }
}

func (o *OrderedTable[K]) Get(key K) (NodeID, bool) {
	return o.m.Get(key)
}

func (o *OrderedTable[K]) Contains(key K) bool {
	return o.m.ContainsKey(key)
}

func (o *OrderedTable[K]) Set(key K, target NodeID) {
	o.m.Put(key, target)
}

func (o *OrderedTable[K]) Len() int {
	return o.m.Size()
}

func (o *OrderedTable[K]) Entries() []Entry[K] {
	entries := o.m.Entries()
	result := make([]Entry[K], len(entries))
	for i, e := range entries {
		result[i] = Entry[K]{Key: e.Key, Target: e.Value}
	}
	return result
}
