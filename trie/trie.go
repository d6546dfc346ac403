/*
Package trie implements a generic prefix tree (Trie) over any comparable
alphabet, not just runes.

Unlike a map-of-maps trie, nodes live in a flat pool addressed by integer
id, with parent pointers threaded back toward the root; node id 0 (Nil) is
reserved for "no such node" and node id 1 (Root) is the trie's root, the
same convention sam.SAM uses for its own node pool. Each node's
transitions are stored behind a table.Table[K] rather than a bare map, so
a trie can be re-materialized under a different backend via
AlterTransitionTable exactly as sam.SAM can.

Trie.GetRootState returns a State, which implements
triealike.NodeAlike[K, State[K]]: sam.FromTrieAlike builds a generalized
suffix automaton directly from a trie's root state, walking it the same
way it would walk a triealike.Chain built from a single sequence.

Time Complexity:
  - Insert: O(n), n = length of the inserted sequence
  - State traversal (Goto / GotoParent): O(1) per step

Space Complexity:
  - O(m * n), where m is the number of inserted sequences and n is their
    average length
*/
package trie

import (
	"sync"

	"github.com/Zubayear/gensam/table"
	"github.com/Zubayear/gensam/triealike"
)

// NodeID identifies a node in a Trie's node pool.
type NodeID = int

const (
	// Nil is the reserved "no node" id.
	Nil NodeID = 0
	// Root is the trie's root node id.
	Root NodeID = 1
)

type node[K comparable] struct {
	trans  table.Table[K]
	parent NodeID
	accept bool
}

// Trie is a thread-safe prefix tree over alphabet K. Its transitions are
// stored behind table.Table[K], the same pluggable backend abstraction
// sam.SAM uses, so a trie built for write-heavy insertion can later be
// re-materialized, node by node, into a read-optimized backend via
// AlterTransitionTable.
type Trie[K comparable] struct {
	mutex    sync.RWMutex
	pool     []node[K]
	newTable table.Factory[K]
}

// NewTrie returns an empty Trie whose nodes are backed by table.HashTable,
// with its Nil and Root nodes pre-allocated.
func NewTrie[K comparable]() *Trie[K] {
	return NewTrieWithTable[K](table.NewHashTableFactory[K]())
}

// NewTrieWithTable returns an empty Trie whose nodes are backed by
// newTable, with its Nil and Root nodes pre-allocated.
func NewTrieWithTable[K comparable](newTable table.Factory[K]) *Trie[K] {
	return &Trie[K]{
		pool: []node[K]{
			{trans: newTable(), parent: Nil},
			{trans: newTable(), parent: Nil},
		},
		newTable: newTable,
	}
}

// NumNodes returns the number of nodes currently in the trie's pool,
// including the reserved Nil and Root nodes.
func (t *Trie[K]) NumNodes() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return len(t.pool)
}

func (t *Trie[K]) allocNode(parent NodeID) NodeID {
	id := len(t.pool)
	t.pool = append(t.pool, node[K]{trans: t.newTable(), parent: parent})
	return id
}

// mutable returns id's transition table as a MutableTable, panicking if
// it currently holds a read-only backend (e.g. table.SortedTable) - a
// programmer error, since Insert is never called after a trie has been
// frozen into a read-optimized backend.
func (t *Trie[K]) mutable(id NodeID) table.MutableTable[K] {
	mt, ok := t.pool[id].trans.(table.MutableTable[K])
	if !ok {
		panic("trie: node transition table is not mutable")
	}
	return mt
}

// Insert adds seq to the trie, allocating any missing nodes along the way,
// and marks the final node as accepting. It returns that node's id, which
// doubles as a stable vocabulary/token identifier for seq.
//
// Algorithm Steps:
//   - Start from the root node.
//   - For each symbol in seq, follow an existing transition or allocate
//     a new node and record the transition.
//   - Mark the final node accepting.
//
// Time Complexity: O(n), where n = len(seq)
func (t *Trie[K]) Insert(seq []K) NodeID {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	current := Root
	for _, k := range seq {
		next, ok := t.pool[current].trans.Get(k)
		if !ok {
			next = t.allocNode(current)
			t.mutable(current).Set(k, next)
		}
		current = next
	}
	t.pool[current].accept = true
	return current
}

// AlterTransitionTable replaces id's transition table with build's
// result, letting callers re-materialize a node's transitions under a
// different backend (e.g. table.NewSortedTableFromTable) once a trie's
// vocabulary is fully inserted and no further writes are expected.
func (t *Trie[K]) AlterTransitionTable(id NodeID, build func(table.Table[K]) table.Table[K]) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.pool[id].trans = build(t.pool[id].trans)
}

// GetRootState returns a State positioned at the trie's root.
func (t *Trie[K]) GetRootState() State[K] {
	return t.GetState(Root)
}

// GetState returns a State positioned at id, or at Nil if id is out of range.
func (t *Trie[K]) GetState(id NodeID) State[K] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	if id < 0 || id >= len(t.pool) {
		return State[K]{trie: t, nodeID: Nil}
	}
	return State[K]{trie: t, nodeID: id}
}

// State is a position inside a Trie. It implements
// triealike.NodeAlike[K, State[K]].
type State[K comparable] struct {
	trie   *Trie[K]
	nodeID NodeID
}

// NodeID returns the underlying node id, usable as a vocabulary/token id
// for whatever sequence was inserted to reach this state.
func (s State[K]) NodeID() NodeID {
	return s.nodeID
}

func (s State[K]) IsNil() bool {
	return s.nodeID == Nil
}

func (s State[K]) IsRoot() bool {
	return s.nodeID == Root
}

func (s State[K]) node() (node[K], bool) {
	s.trie.mutex.RLock()
	defer s.trie.mutex.RUnlock()
	if s.nodeID < 0 || s.nodeID >= len(s.trie.pool) {
		return node[K]{}, false
	}
	return s.trie.pool[s.nodeID], true
}

// IsAccepting reports whether the sequence leading to this state was
// itself inserted into the trie.
func (s State[K]) IsAccepting() bool {
	n, ok := s.node()
	return ok && n.accept
}

// GotoParent moves s to its parent, or to Nil if s is already Nil or Root
// with no parent recorded.
func (s State[K]) GotoParent() State[K] {
	n, ok := s.node()
	if !ok {
		return State[K]{trie: s.trie, nodeID: Nil}
	}
	return s.trie.GetState(n.parent)
}

// Goto follows the transition for key, landing on Nil if none exists.
func (s State[K]) Goto(key K) State[K] {
	n, ok := s.node()
	if !ok {
		return State[K]{trie: s.trie, nodeID: Nil}
	}
	next, ok := n.trans.Get(key)
	if !ok {
		return State[K]{trie: s.trie, nodeID: Nil}
	}
	return s.trie.GetState(next)
}

// NextStates implements triealike.NodeAlike.
func (s State[K]) NextStates() []triealike.Edge[K, State[K]] {
	n, ok := s.node()
	if !ok {
		return nil
	}
	entries := n.trans.Entries()
	result := make([]triealike.Edge[K, State[K]], len(entries))
	for i, e := range entries {
		result[i] = triealike.Edge[K, State[K]]{Key: e.Key, Next: s.trie.GetState(e.Target)}
	}
	return result
}
