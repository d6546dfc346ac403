package tokenizer

import (
	"math/rand"
	"testing"

	"github.com/Zubayear/gensam/sam"
	"github.com/Zubayear/gensam/set"
	"github.com/Zubayear/gensam/table"
)

func randomVocabAndInput(r *rand.Rand) ([]string, string) {
	seen := set.NewUnorderedSet()
	n := 1 + r.Intn(12)
	words := make([]string, 0, n)
	for len(words) < n {
		length := 1 + r.Intn(4)
		buf := make([]byte, length)
		for i := range buf {
			buf[i] = byte('a' + r.Intn(5))
		}
		w := string(buf)
		if seen.Contain(w) {
			continue
		}
		seen.Insert(w)
		words = append(words, w)
	}

	inLen := r.Intn(20)
	in := make([]byte, inLen)
	for i := range in {
		in[i] = byte('a' + r.Intn(5))
	}
	return words, string(in)
}

// TestTokenizeMatchesTrieReferenceOverRandomVocabularies is property P5,
// swept over many randomized vocabularies and inputs: the GSA-backed
// tokenizer must decompose every input exactly as the trie-only
// reference tokenizer would, regardless of which transition-table backend
// underlies the automaton.
func TestTokenizeMatchesTrieReferenceOverRandomVocabularies(t *testing.T) {
	const numSeeds = 200
	run := func(t *testing.T, factoryName string, newTable table.Factory[byte], freeze bool) {
		for seed := int64(0); seed < numSeeds; seed++ {
			r := rand.New(rand.NewSource(seed))
			words, in := randomVocabAndInput(r)

			tr, s := buildVocabWithTable(words, newTable)
			if freeze {
				alterAllToSortedTable(s)
			}
			gt := Build[byte](s, tr.GetRootState(), idOf)
			ref := NewTrieGreedyTokenizer[byte](tr.GetRootState(), idOf)

			got := gt.Tokenize([]byte(in), unk)
			want := ref.Tokenize([]byte(in), unk)

			if len(got) != len(want) {
				t.Fatalf("%s seed %d: Tokenize(%q) over %v: GSA produced %d tokens, reference %d: %v vs %v",
					factoryName, seed, in, words, len(got), len(want), got, want)
			}
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("%s seed %d: Tokenize(%q) over %v: token %d = %v; want %v",
						factoryName, seed, in, words, i, got[i], want[i])
				}
			}
		}
	}

	t.Run("HashTable", func(t *testing.T) {
		run(t, "HashTable", table.NewHashTableFactory[byte](), false)
	})
	t.Run("OrderedTable", func(t *testing.T) {
		run(t, "OrderedTable", table.NewOrderedTableFactory[byte](), false)
	})
	t.Run("DenseTable", func(t *testing.T) {
		run(t, "DenseTable", table.NewDenseTableFactory[byte](256), false)
	})
	t.Run("SortedTable", func(t *testing.T) {
		// SortedTable has no Factory of its own - build with HashTable, then
		// freeze every node into a SortedTable before tokenizing.
		run(t, "SortedTable", table.NewHashTableFactory[byte](), true)
	})
}
