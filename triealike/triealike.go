/*
Package triealike abstracts over anything that looks like a position inside
a trie: it exposes whether the position accepts (terminates a stored
sequence) and what edges lead out of it. Both a real trie.State and a
degenerate single-sequence Chain satisfy the same NodeAlike interface, so
sam.FromTrieAlike can build a generalized suffix automaton from either a
whole trie or a single string without knowing which one it got.

BFS and DFS walk any NodeAlike source and report three kinds of events to a
Visitor: PushRoot fires once for the starting node, Push fires when an edge
is first discovered (before its target is visited), and Pop fires once a
node's visit is complete. For BFS, "complete" means every child of a
dequeued node has been enumerated (not that its subtree has finished);
for DFS, Pop is genuine postorder, firing only after every descendant has
already popped.

Any callback may return a non-nil error to short-circuit the walk: BFS/DFS
stop visiting further nodes and return that error immediately.
*/
package triealike

import (
	"github.com/Zubayear/gensam/queue"
	"github.com/Zubayear/gensam/stack"
)

// Edge is a single outgoing transition from a NodeAlike node: following
// Key leads to Next.
type Edge[K any, S any] struct {
	Key  K
	Next S
}

// NodeAlike is satisfied by any type S that can stand in for a trie
// position over alphabet K. S appears as its own type argument so that
// NextStates can return further S values (F-bounded polymorphism).
type NodeAlike[K any, S any] interface {
	IsAccepting() bool
	NextStates() []Edge[K, S]
}

// Visitor carries the optional callbacks BFS and DFS invoke. Any field
// left nil is simply skipped. A non-nil error returned from any callback
// stops the walk and is returned from BFS/DFS.
type Visitor[K any, S any] struct {
	PushRoot func(root S) error
	Push     func(parent S, node S, key K, depth int) error
	Pop      func(node S, depth int) error
}

type walkItem[K any, S any] struct {
	node  S
	depth int
}

// BFS walks root breadth-first, reporting events to v.
//
// The traversal frontier is tracked as indices into an items slice rather
// than the items themselves, routed through a queue.Queue[int]: NodeAlike
// implementations are not required to be comparable (a Chain holds a
// slice), so the node values themselves cannot be stored in the teacher's
// comparable-keyed queue directly.
func BFS[K any, S NodeAlike[K, S]](root S, v Visitor[K, S]) error {
	if v.PushRoot != nil {
		if err := v.PushRoot(root); err != nil {
			return err
		}
	}
	items := []walkItem[K, S]{{node: root, depth: 0}}
	q := queue.NewQueue[int]()
	q.Enqueue(0)
	for !q.IsEmpty() {
		idx, err := q.Dequeue()
		if err != nil {
			break
		}
		it := items[idx]
		for _, e := range it.node.NextStates() {
			if v.Push != nil {
				if err := v.Push(it.node, e.Next, e.Key, it.depth+1); err != nil {
					return err
				}
			}
			childIdx := len(items)
			items = append(items, walkItem[K, S]{node: e.Next, depth: it.depth + 1})
			q.Enqueue(childIdx)
		}
		if v.Pop != nil {
			if err := v.Pop(it.node, it.depth); err != nil {
				return err
			}
		}
	}
	return nil
}

type dfsFrame[K any, S any] struct {
	node  S
	depth int
	edges []Edge[K, S]
	pos   int
}

// DFS walks root depth-first, reporting events to v. Pop fires in true
// postorder: after all of a node's descendants have already popped.
//
// The traversal is iterative, using a stack.Stack[int] of indices into a
// frames slice, so that deep tries do not risk exhausting the goroutine
// stack the way a recursive walk would.
func DFS[K any, S NodeAlike[K, S]](root S, v Visitor[K, S]) error {
	if v.PushRoot != nil {
		if err := v.PushRoot(root); err != nil {
			return err
		}
	}
	frames := []dfsFrame[K, S]{{node: root, depth: 0, edges: root.NextStates()}}
	st := stack.NewStack[int]()
	_, _ = st.Push(0)
	for !st.IsEmpty() {
		idx, err := st.Peek()
		if err != nil {
			break
		}
		f := &frames[idx]
		if f.pos < len(f.edges) {
			e := f.edges[f.pos]
			f.pos++
			if v.Push != nil {
				if err := v.Push(f.node, e.Next, e.Key, f.depth+1); err != nil {
					return err
				}
			}
			childIdx := len(frames)
			frames = append(frames, dfsFrame[K, S]{node: e.Next, depth: f.depth + 1, edges: e.Next.NextStates()})
			_, _ = st.Push(childIdx)
		} else {
			_, _ = st.Pop()
			if v.Pop != nil {
				if err := v.Pop(f.node, f.depth); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
