/*
Package sam implements a generalized suffix automaton (GSA): a suffix
automaton built not over one string but over every branch of a trie (or,
degenerately, over a single sequence) at once. Every node still
represents an equivalence class of substrings sharing the same set of
ending positions, and the resulting automaton accepts exactly those
sequences that are a suffix of some sequence reachable from the trie's
root.

Construction (FromTrieAlike) walks the triealike.NodeAlike source
breadth-first, extending the automaton by one symbol at a time along
each edge discovered, exactly as the classical online suffix automaton
construction extends by one character of a single string - generalized
here to branch whenever the trie branches. Once every edge has been
folded in, nodes are put in topological order over the transition DAG,
and the transitive accepting flag is propagated up the suffix-link tree.

Node 0 (Nil) is the reserved "no such state" sentinel and node 1 (Root)
is the automaton's start state, matching package trie's convention.
*/
package sam

import (
	"sort"

	"github.com/Zubayear/gensam/deque"
	"github.com/Zubayear/gensam/queue"
	"github.com/Zubayear/gensam/table"
	"github.com/Zubayear/gensam/triealike"
)

// NodeID identifies a node in a SAM's node pool.
type NodeID = table.NodeID

const (
	// Nil is the reserved "no such state" id.
	Nil NodeID = 0
	// Root is the automaton's start state id.
	Root NodeID = 1
)

type node[K comparable] struct {
	trans  table.Table[K]
	accept bool
	length int
	link   NodeID
}

// SAM is a generalized suffix automaton over alphabet K.
type SAM[K comparable] struct {
	pool      []node[K]
	topoOrder []NodeID
	newTable  table.Factory[K]
}

// MaxSuffixLen returns the length of the longest substring ending at id;
// this is the "len" field of the classical suffix-automaton construction.
func (s *SAM[K]) MaxSuffixLen(id NodeID) int {
	return s.pool[id].length
}

// IsAccepting reports whether id is (transitively, via suffix links) a
// state reached by some complete sequence from the source trie.
func (s *SAM[K]) IsAccepting(id NodeID) bool {
	return s.pool[id].accept
}

// SuffixParentID returns id's suffix-link target: the node representing
// the longest proper suffix of id's strings that is not equivalent to id.
func (s *SAM[K]) SuffixParentID(id NodeID) NodeID {
	return s.pool[id].link
}

// NumNodes returns the number of nodes in the automaton's pool, including
// the reserved Nil node.
func (s *SAM[K]) NumNodes() int {
	return len(s.pool)
}

// Transitions returns the target node ids reachable directly from id.
func (s *SAM[K]) Transitions(id NodeID) []NodeID {
	entries := s.pool[id].trans.Entries()
	result := make([]NodeID, len(entries))
	for i, e := range entries {
		result[i] = e.Target
	}
	return result
}

// TransitionTable exposes id's raw transition table, e.g. to snapshot its
// entries before calling AlterTransitionTable.
func (s *SAM[K]) TransitionTable(id NodeID) table.Table[K] {
	return s.pool[id].trans
}

// AlterTransitionTable replaces id's transition table with build's
// result, letting callers swap a write-oriented backend (used during
// construction) for a read-optimized one such as table.SortedTable once
// construction has finished and id's transitions are final.
func (s *SAM[K]) AlterTransitionTable(id NodeID, build func(table.Table[K]) table.Table[K]) {
	s.pool[id].trans = build(s.pool[id].trans)
}

// TopoSortedNodeIDs returns every node id in an order where, for any
// transition u -> v, u precedes v.
func (s *SAM[K]) TopoSortedNodeIDs() []NodeID {
	return s.topoOrder
}

// TopoAndSufLenSortedNodeIDs returns the topological order stably
// resorted by MaxSuffixLen ascending: a node's suffix parent still
// always precedes it (a suffix parent's len is strictly smaller), and
// ties within the same len preserve their relative topological order.
// suffixwise.Build walks nodes in this order so that a node's
// suffix-parent-derived data is always ready before the node itself is
// processed.
func (s *SAM[K]) TopoAndSufLenSortedNodeIDs() []NodeID {
	order := make([]NodeID, len(s.topoOrder))
	copy(order, s.topoOrder)
	sort.SliceStable(order, func(i, j int) bool {
		return s.pool[order[i]].length < s.pool[order[j]].length
	})
	return order
}

// GetRootState returns a State cursor positioned at the automaton's root.
func (s *SAM[K]) GetRootState() State[K] {
	return s.GetState(Root)
}

// GetState returns a State positioned at id, or at Nil if id is out of range.
func (s *SAM[K]) GetState(id NodeID) State[K] {
	if id < 0 || id >= len(s.pool) {
		return State[K]{sam: s, nodeID: Nil}
	}
	return State[K]{sam: s, nodeID: id}
}

func newSAM[K comparable](newTable table.Factory[K]) *SAM[K] {
	root := node[K]{trans: newTable(), accept: true, length: 0, link: Nil}
	nilNode := node[K]{trans: newTable(), accept: false, length: 0, link: Nil}
	return &SAM[K]{pool: []node[K]{nilNode, root}, newTable: newTable}
}

func (s *SAM[K]) allocNode(n node[K]) NodeID {
	id := NodeID(len(s.pool))
	s.pool = append(s.pool, n)
	return id
}

func (s *SAM[K]) mutable(id NodeID) table.MutableTable[K] {
	mt, ok := s.pool[id].trans.(table.MutableTable[K])
	if !ok {
		panic("sam: node transition table is not mutable during construction")
	}
	return mt
}

// extend is the generalized Blumer online-construction step: it adds one
// new edge, labeled key, out of lastNodeID, cloning an existing state if
// the new edge's natural suffix-link target already represents a longer
// suffix class than the new edge needs.
func (s *SAM[K]) extend(lastNodeID NodeID, key K, accept bool) NodeID {
	newNodeID := s.allocNode(node[K]{
		trans:  s.newTable(),
		accept: accept,
		length: s.pool[lastNodeID].length + 1,
		link:   Nil,
	})

	p := lastNodeID
	for p != Nil {
		if s.mutable(p).Contains(key) {
			break
		}
		s.mutable(p).Set(key, newNodeID)
		p = s.pool[p].link
	}

	if p == Nil {
		s.pool[newNodeID].link = Root
		return newNodeID
	}

	q, _ := s.pool[p].trans.Get(key)
	if s.pool[q].length == s.pool[p].length+1 {
		s.pool[newNodeID].link = q
		return newNodeID
	}

	cloneID := s.allocNode(node[K]{
		trans:  s.newTable(),
		accept: s.pool[q].accept,
		length: s.pool[p].length + 1,
		link:   s.pool[q].link,
	})
	for _, e := range s.pool[q].trans.Entries() {
		s.mutable(cloneID).Set(e.Key, e.Target)
	}

	for p != Nil {
		target, ok := s.pool[p].trans.Get(key)
		if !ok || target != q {
			break
		}
		s.mutable(p).Set(key, cloneID)
		p = s.pool[p].link
	}

	s.pool[newNodeID].link = cloneID
	s.pool[q].link = cloneID

	return newNodeID
}

type bfsWorkItem[K any, S any] struct {
	lastID NodeID
	node   S
}

// FromTrieAlike constructs a generalized suffix automaton from any
// triealike.NodeAlike source: a trie.State for a whole vocabulary, or a
// triealike.Chain for a single sequence. newTable picks the transition
// table backend each node is built with during construction; pass
// table.NewHashTableFactory[K]() when unsure, and reach for
// AlterTransitionTable afterward to swap a node's table for a
// read-optimized backend such as table.SortedTable once it is final.
func FromTrieAlike[K comparable, S triealike.NodeAlike[K, S]](root S, newTable table.Factory[K]) *SAM[K] {
	sam := newSAM[K](newTable)

	items := []bfsWorkItem[K, S]{{lastID: Root, node: root}}
	q := queue.NewQueue[int]()
	q.Enqueue(0)
	for !q.IsEmpty() {
		idx, err := q.Dequeue()
		if err != nil {
			break
		}
		it := items[idx]
		for _, e := range it.node.NextStates() {
			newID := sam.extend(it.lastID, e.Key, e.Next.IsAccepting())
			childIdx := len(items)
			items = append(items, bfsWorkItem[K, S]{lastID: newID, node: e.Next})
			q.Enqueue(childIdx)
		}
	}

	sam.pool[Root].accept = root.IsAccepting()
	sam.topoSortAndPropagateAccepting()

	return sam
}

// FromBytes builds a generalized suffix automaton over a single byte
// sequence, equivalent to building a trie containing only s and
// constructing from it.
func FromBytes(s []byte) *SAM[byte] {
	return FromTrieAlike[byte](triealike.NewChain(s), table.NewHashTableFactory[byte]())
}

// FromRunes builds a generalized suffix automaton over a single rune
// sequence.
func FromRunes(s []rune) *SAM[rune] {
	return FromTrieAlike[rune](triealike.NewChain(s), table.NewHashTableFactory[rune]())
}

// topoSortAndPropagateAccepting performs Kahn's algorithm over the
// transition DAG to find a topological order, discovering it into a
// deque.Deque (pushed at the back as each node's in-degree drops to
// zero, same discovery order a plain slice would hold), then drains it
// front-to-back into s.topoOrder before propagating each node's accept
// flag up its suffix link in reverse of that order.
func (s *SAM[K]) topoSortAndPropagateAccepting() {
	inDegree := make([]int, len(s.pool))
	for _, n := range s.pool {
		for _, e := range n.trans.Entries() {
			inDegree[e.Target]++
		}
	}

	order := deque.NewDeque[NodeID]()
	_, _ = order.OfferLast(Root)

	q := queue.NewQueue[NodeID]()
	q.Enqueue(Root)
	for !q.IsEmpty() {
		u, err := q.Dequeue()
		if err != nil {
			break
		}
		for _, e := range s.pool[u].trans.Entries() {
			inDegree[e.Target]--
			if inDegree[e.Target] == 0 {
				_, _ = order.OfferLast(e.Target)
				q.Enqueue(e.Target)
			}
		}
	}

	s.topoOrder = make([]NodeID, 0, order.Size())
	for !order.IsEmpty() {
		id, err := order.PollFirst()
		if err != nil {
			break
		}
		s.topoOrder = append(s.topoOrder, id)
	}

	for i := len(s.topoOrder) - 1; i >= 0; i-- {
		id := s.topoOrder[i]
		link := s.pool[id].link
		s.pool[link].accept = s.pool[link].accept || s.pool[id].accept
	}
	s.pool[Nil].accept = false
}
