package tokenizer

import "github.com/Zubayear/gensam/triealike"

// TrieGreedyTokenizer tokenizes by walking a trie-alike vocabulary
// source directly: at every position it follows the longest path from
// the root that stays inside the trie, backtracking to the last
// accepting node passed along the way. It exists to cross-check
// GreedyTokenizer's GSA-based decomposition against a simpler,
// obviously-correct restatement of the same longest-match rule.
type TrieGreedyTokenizer[K comparable, S triealike.NodeAlike[K, S], V comparable] struct {
	root    S
	tokenID func(S) V
}

// NewTrieGreedyTokenizer builds a reference tokenizer over root.
func NewTrieGreedyTokenizer[K comparable, S triealike.NodeAlike[K, S], V comparable](
	root S, tokenID func(S) V,
) *TrieGreedyTokenizer[K, S, V] {
	return &TrieGreedyTokenizer[K, S, V]{root: root, tokenID: tokenID}
}

// Tokenize greedily decomposes input the same way GreedyTokenizer.Tokenize
// does, coalescing adjacent UnkID runs into a single Token.
func (tt *TrieGreedyTokenizer[K, S, V]) Tokenize(input []K, unkID V) []Token[V] {
	var out []Token[V]
	emit := func(tok Token[V]) {
		if tok.ID == unkID && len(out) > 0 && out[len(out)-1].ID == unkID {
			out[len(out)-1].Len += tok.Len
			return
		}
		out = append(out, tok)
	}

	pos := 0
	for pos < len(input) {
		node := tt.root
		bestLen := 0
		var bestID V
		found := false

		depth := 0
		for pos+depth < len(input) {
			next, ok := advance(node, input[pos+depth])
			if !ok {
				break
			}
			node = next
			depth++
			if node.IsAccepting() {
				bestLen = depth
				bestID = tt.tokenID(node)
				found = true
			}
		}

		if found {
			emit(Token[V]{ID: bestID, Len: bestLen})
			pos += bestLen
			continue
		}
		emit(Token[V]{ID: unkID, Len: 1})
		pos++
	}

	return out
}

func advance[K comparable, S triealike.NodeAlike[K, S]](node S, key K) (S, bool) {
	for _, e := range node.NextStates() {
		if e.Key == key {
			return e.Next, true
		}
	}
	var zero S
	return zero, false
}
