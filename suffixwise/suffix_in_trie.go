package suffixwise

import (
	"github.com/Zubayear/gensam/linkedlist"
	"github.com/Zubayear/gensam/sam"
	"github.com/Zubayear/gensam/triealike"
)

// TokenMatch records that, at a given sam state, a suffix of length
// SeqLen is itself a complete vocabulary entry, identified by a
// caller-supplied TokenID (typically the id trie.Trie.Insert returned
// for it, but any comparable digest works).
type TokenMatch[V comparable] struct {
	TokenID V
	SeqLen  int
}

// TokenMatchData holds, for every sam state and every length L in that
// state's suffix-length interval, the longest vocabulary entry that is a
// prefix of the length-L string ending at the state (nil if there is
// none). A GreedyTokenizer calls Get(currentLen) at its current sam state
// to find the longest vocabulary entry that starts its current run.
type TokenMatchData[V comparable] = Data[*TokenMatch[V]]

// BuildTokenMatches computes, for every state of s, the vocabulary
// entries reachable as a suffix of that state's strings, by walking s
// and trieRoot together breadth-first: at each step, trie-side
// acceptance (a complete vocabulary entry) is recorded against the
// paired sam state under the path length walked so far. tokenID maps a
// trie-alike node to whatever id callers want recorded for it.
func BuildTokenMatches[K comparable, S triealike.NodeAlike[K, S], V comparable](
	s *sam.SAM[K], trieRoot S, tokenID func(S) V,
) []TokenMatchData[V] {
	perNode := make([]*linkedlist.DoublyLinkedList[TokenMatch[V]], s.NumNodes())
	for i := range perNode {
		perNode[i] = linkedlist.NewLinkedList[TokenMatch[V]]()
	}

	_ = sam.BFSAlong[K, S](s.GetRootState(), trieRoot, sam.JointVisitor[K, S]{
		Pop: func(samNode sam.State[K], trieNode S, depth int) error {
			if trieNode.IsAccepting() {
				_, _ = perNode[samNode.NodeID()].AddLast(TokenMatch[V]{
					TokenID: tokenID(trieNode),
					SeqLen:  depth,
				})
			}
			return nil
		},
	})

	return Build[K, *TokenMatch[V]](s, func(id sam.NodeID) []LenValue[*TokenMatch[V]] {
		var out []LenValue[*TokenMatch[V]]
		for tm := range perNode[id].Iterate() {
			match := tm
			out = append(out, LenValue[*TokenMatch[V]]{Len: match.SeqLen, Value: &match})
		}
		return out
	})
}
