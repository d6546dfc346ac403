/*
Package tokenizer implements greedy longest-match tokenization on top of
a generalized suffix automaton (package sam): GreedyTokenizer walks input
symbol by symbol, extending the automaton's current run whenever a
transition exists, and emitting the longest vocabulary entry that starts
the run whenever it cannot be extended further.

A second, reference implementation, TrieGreedyTokenizer, walks a plain
trie instead and is used purely to cross-check the GSA-based tokenizer's
output: both must decompose any input identically, since one is simply a
slower, more obviously-correct restatement of the other's longest-match
rule.
*/
package tokenizer

import (
	"github.com/Zubayear/gensam/sam"
	"github.com/Zubayear/gensam/suffixwise"
	"github.com/Zubayear/gensam/triealike"
)

// Token is one emitted unit: either a vocabulary entry (ID is whatever
// the caller's tokenID function returned for it) or UnkID, covering Len
// input symbols.
type Token[V comparable] struct {
	ID  V
	Len int
}

// GreedyTokenizer performs greedy longest-match tokenization using a
// generalized suffix automaton's states as the current-run cursor.
type GreedyTokenizer[K comparable, V comparable] struct {
	sam  *sam.SAM[K]
	data []suffixwise.TokenMatchData[V]
}

// Build constructs a GreedyTokenizer from s and the trie-alike vocabulary
// source trieRoot that s itself was built from. tokenID maps a
// trie-alike node to the token id recorded for it; it is typically the
// id trie.Trie.Insert returned when the vocabulary was inserted.
func Build[K comparable, S triealike.NodeAlike[K, S], V comparable](
	s *sam.SAM[K], trieRoot S, tokenID func(S) V,
) *GreedyTokenizer[K, V] {
	return &GreedyTokenizer[K, V]{
		sam:  s,
		data: suffixwise.BuildTokenMatches[K, S, V](s, trieRoot, tokenID),
	}
}

// Tokenize greedily decomposes input into vocabulary tokens and UnkID
// runs. At every position it extends the current automaton run as far
// as possible; when a symbol cannot extend the run, it repeatedly emits
// the longest vocabulary entry that is a prefix of the run (or a single
// UnkID symbol if no vocabulary entry is) and drops the emitted symbols
// from the front of the run, until the run can accept the
// symbol, or is empty. Adjacent UnkID emissions are coalesced into one
// Token with a summed Len.
func (g *GreedyTokenizer[K, V]) Tokenize(input []K, unkID V) []Token[V] {
	var out []Token[V]
	emit := func(tok Token[V]) {
		if tok.ID == unkID && len(out) > 0 && out[len(out)-1].ID == unkID {
			out[len(out)-1].Len += tok.Len
			return
		}
		out = append(out, tok)
	}

	curState := g.sam.GetRootState()
	curLen := 0

	popOnce := func() {
		match, ok := g.data[curState.NodeID()].Get(curLen)
		tokenLen := 1
		tokenID := unkID
		if ok && match != nil {
			tokenID = match.TokenID
			tokenLen = match.SeqLen
		}
		curLen -= tokenLen
		emit(Token[V]{ID: tokenID, Len: tokenLen})

		for curLen < g.data[curState.NodeID()].MinSuffixLen() {
			curState = curState.SuffixLink()
		}
	}

	for _, key := range input {
		for curLen > 0 && curState.Goto(key).IsNil() {
			popOnce()
		}
		if next := curState.Goto(key); !next.IsNil() {
			curState = next
			curLen++
			continue
		}
		curState = g.sam.GetRootState()
		curLen = 0
		emit(Token[V]{ID: unkID, Len: 1})
	}

	for curLen > 0 {
		popOnce()
	}

	return out
}
