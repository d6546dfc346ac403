package suffixwise

import (
	"github.com/Zubayear/gensam/table"
	"github.com/Zubayear/gensam/trie"
)

type trieStateAlias = trie.State[byte]

func hashFactory() table.Factory[byte] {
	return table.NewHashTableFactory[byte]()
}

func buildTestTrie(words []string) (*trie.Trie[byte], map[string]int) {
	tr := trie.NewTrie[byte]()
	ids := make(map[string]int, len(words))
	for _, w := range words {
		ids[w] = tr.Insert([]byte(w))
	}
	return tr, ids
}
