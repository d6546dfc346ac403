/*
Package table provides pluggable transition-table backends for the
generalized suffix automaton in package sam.

A transition table maps alphabet symbols to target node ids for a single
automaton state. Different backends trade construction cost, memory, and
lookup complexity against each other, mirroring the tradeoffs a suffix
automaton implementation faces for small vs. large alphabets and for
write-heavy construction vs. read-heavy querying:

  - HashTable: a Go map, O(1) expected get/set, no ordering.
  - OrderedTable: a red-black tree (treemap.TreeMap), O(log n) get/set,
    deterministic ascending-key iteration.
  - DenseTable: a direct-indexed array, O(1) get/set, ideal for small
    dense alphabets such as bytes.
  - SortedTable: a sorted slice searched by binary search, O(log n) get,
    built once from a snapshot of another table's entries and never
    mutated afterward.

Table is the read-only view every backend supports. MutableTable adds
Set and is implemented by every backend except SortedTable, which is
meant to be assembled once (via its constructor) after a node's
transitions are already known, then queried for the remaining lifetime
of the automaton.
*/
package table

// NodeID identifies a node in a transition table's target automaton.
// Transition tables are agnostic to what a NodeID means; they only
// store and look the values up.
type NodeID = int

// Entry is a single key/target pair as produced by Table.Entries.
type Entry[K comparable] struct {
	Key    K
	Target NodeID
}

// Table is the read side of a transition table backend.
type Table[K comparable] interface {
	// Get returns the target node for key, if a transition exists.
	Get(key K) (NodeID, bool)
	// Contains reports whether a transition exists for key.
	Contains(key K) bool
	// Entries returns every transition currently stored, in whatever
	// order the backend iterates most naturally.
	Entries() []Entry[K]
	// Len returns the number of transitions stored.
	Len() int
}

// MutableTable is a Table that also supports inserting transitions.
// It is the capability required while a node's transitions are still
// being built during automaton construction.
type MutableTable[K comparable] interface {
	Table[K]
	Set(key K, target NodeID)
}

// Factory builds an empty MutableTable[K]. Passing a Factory into
// sam.FromTrieAlike selects the backend used for every node's
// transitions during construction.
type Factory[K comparable] func() MutableTable[K]
