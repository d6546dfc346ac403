package sam

import "github.com/Zubayear/gensam/triealike"

// State is a position inside a SAM. It implements
// triealike.NodeAlike[K, State[K]], so a SAM can itself be walked with
// triealike.BFS/DFS, or paired against a trie state in a joint walk.
type State[K comparable] struct {
	sam    *SAM[K]
	nodeID NodeID
}

// NodeID returns the underlying node id.
func (s State[K]) NodeID() NodeID {
	return s.nodeID
}

// IsNil reports whether s is the sentinel "no such state".
func (s State[K]) IsNil() bool {
	return s.nodeID == Nil
}

// IsRoot reports whether s is the automaton's start state.
func (s State[K]) IsRoot() bool {
	return s.nodeID == Root
}

// IsAccepting implements triealike.NodeAlike.
func (s State[K]) IsAccepting() bool {
	if s.IsNil() {
		return false
	}
	return s.sam.IsAccepting(s.nodeID)
}

// MaxSuffixLen returns the length of the longest string represented by s.
func (s State[K]) MaxSuffixLen() int {
	if s.IsNil() {
		return 0
	}
	return s.sam.MaxSuffixLen(s.nodeID)
}

// SuffixLink moves s to its suffix-link target.
func (s State[K]) SuffixLink() State[K] {
	if s.IsNil() {
		return s
	}
	return s.sam.GetState(s.sam.SuffixParentID(s.nodeID))
}

// Goto follows the transition for key, landing on Nil if none exists.
func (s State[K]) Goto(key K) State[K] {
	if s.IsNil() {
		return s
	}
	next, ok := s.sam.pool[s.nodeID].trans.Get(key)
	if !ok {
		return State[K]{sam: s.sam, nodeID: Nil}
	}
	return s.sam.GetState(next)
}

// NextStates implements triealike.NodeAlike.
func (s State[K]) NextStates() []triealike.Edge[K, State[K]] {
	if s.IsNil() {
		return nil
	}
	entries := s.sam.pool[s.nodeID].trans.Entries()
	result := make([]triealike.Edge[K, State[K]], len(entries))
	for i, e := range entries {
		result[i] = triealike.Edge[K, State[K]]{Key: e.Key, Next: s.sam.GetState(e.Target)}
	}
	return result
}

// Feed follows Goto for every symbol of seq in order, stopping early (at
// Nil) if some prefix of seq has no matching path.
func (s State[K]) Feed(seq []K) State[K] {
	cur := s
	for _, k := range seq {
		cur = cur.Goto(k)
		if cur.IsNil() {
			return cur
		}
	}
	return cur
}

// JointVisitor mirrors triealike.Visitor but threads a SAM state and a
// trie-alike state together through a single walk, so a caller can tell,
// at every depth, both which automaton state a path reaches and whether
// that path is itself a complete vocabulary entry (via the trie side's
// IsAccepting). A non-nil error returned from any callback stops the walk
// and is returned from BFSAlong/DFSAlong.
type JointVisitor[K any, S any] struct {
	PushRoot func(samRoot State[K], trieRoot S) error
	Push     func(samParent, samNode State[K], trieParent, trieNode S, key K, depth int) error
	Pop      func(samNode State[K], trieNode S, depth int) error
}

type jointWalkItem[K any, S any] struct {
	samNode   State[K]
	trieNode  S
	depth     int
	childEdge []triealike.Edge[K, S]
	pos       int
}

// BFSAlong walks a SAM and a triealike.NodeAlike source in lockstep,
// breadth-first: every trie-alike edge advances the trie-alike side via
// its own NextStates and advances the SAM side via Goto on the same key.
// This is how suffixwise.BuildTokenMatches pairs every trie node with the
// SAM state reached from the root by the same path of keys.
func BFSAlong[K comparable, S triealike.NodeAlike[K, S]](samRoot State[K], trieRoot S, v JointVisitor[K, S]) error {
	if v.PushRoot != nil {
		if err := v.PushRoot(samRoot, trieRoot); err != nil {
			return err
		}
	}

	type item struct {
		samNode  State[K]
		trieNode S
		depth    int
	}
	items := []item{{samNode: samRoot, trieNode: trieRoot, depth: 0}}
	head := 0
	for head < len(items) {
		it := items[head]
		head++
		for _, e := range it.trieNode.NextStates() {
			nextSam := it.samNode.Goto(e.Key)
			if v.Push != nil {
				if err := v.Push(it.samNode, nextSam, it.trieNode, e.Next, e.Key, it.depth+1); err != nil {
					return err
				}
			}
			items = append(items, item{samNode: nextSam, trieNode: e.Next, depth: it.depth + 1})
		}
		if v.Pop != nil {
			if err := v.Pop(it.samNode, it.trieNode, it.depth); err != nil {
				return err
			}
		}
	}
	return nil
}

// DFSAlong walks a SAM and a triealike.NodeAlike source in lockstep,
// depth-first, firing Pop in true post-order (after every descendant of
// a node has been popped).
func DFSAlong[K comparable, S triealike.NodeAlike[K, S]](samRoot State[K], trieRoot S, v JointVisitor[K, S]) error {
	if v.PushRoot != nil {
		if err := v.PushRoot(samRoot, trieRoot); err != nil {
			return err
		}
	}

	stack := []jointWalkItem[K, S]{{
		samNode:   samRoot,
		trieNode:  trieRoot,
		depth:     0,
		childEdge: trieRoot.NextStates(),
	}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.pos < len(top.childEdge) {
			e := top.childEdge[top.pos]
			top.pos++
			nextSam := top.samNode.Goto(e.Key)
			if v.Push != nil {
				if err := v.Push(top.samNode, nextSam, top.trieNode, e.Next, e.Key, top.depth+1); err != nil {
					return err
				}
			}
			stack = append(stack, jointWalkItem[K, S]{
				samNode:   nextSam,
				trieNode:  e.Next,
				depth:     top.depth + 1,
				childEdge: e.Next.NextStates(),
			})
			continue
		}
		if v.Pop != nil {
			if err := v.Pop(top.samNode, top.trieNode, top.depth); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
	}
	return nil
}
