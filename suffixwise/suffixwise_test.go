package suffixwise

import (
	"testing"

	"github.com/Zubayear/gensam/sam"
)

func TestBuildRootCarriesOnlyEmptySuffix(t *testing.T) {
	s := sam.FromBytes([]byte("ab"))
	data := Build[byte, int](s, func(sam.NodeID) []LenValue[int] { return nil })

	root := data[sam.Root]
	if _, ok := root.Get(0); ok {
		t.Errorf("Get(0) at root = found; want not found (suffix length 0 is never reported)")
	}
}

func TestBuildInitForSplicesExactLength(t *testing.T) {
	s := sam.FromBytes([]byte("abc"))
	full := s.GetRootState().Feed([]byte("abc"))
	if full.IsNil() {
		t.Fatalf("expected a path for \"abc\"")
	}

	data := Build[byte, string](s, func(id sam.NodeID) []LenValue[string] {
		if id == full.NodeID() {
			return []LenValue[string]{{Len: 3, Value: "abc"}}
		}
		return nil
	})

	got, ok := data[full.NodeID()].Get(3)
	if !ok || got != "abc" {
		t.Errorf("Get(3) = %q, %v; want \"abc\", true", got, ok)
	}
	if got, ok := data[full.NodeID()].Get(1); !ok || got != "" {
		t.Errorf("Get(1) = %q, %v; want \"\", true (nothing was spliced there, so the zero value is kept)", got, ok)
	}
}

func TestBuildForwardsDataToSuccessors(t *testing.T) {
	// data recorded at the state for "a" (length 1) is forwarded along
	// the 'a' transition, so the state for "aa" sees it at length 2.
	s := sam.FromBytes([]byte("aa"))
	oneA := s.GetRootState().Feed([]byte("a"))
	twoA := s.GetRootState().Feed([]byte("aa"))
	if oneA.IsNil() || twoA.IsNil() {
		t.Fatalf("expected paths for \"a\" and \"aa\"")
	}

	data := Build[byte, string](s, func(id sam.NodeID) []LenValue[string] {
		if id == oneA.NodeID() {
			return []LenValue[string]{{Len: 1, Value: "a"}}
		}
		return nil
	})

	got, ok := data[twoA.NodeID()].Get(2)
	if !ok || got != "a" {
		t.Errorf("Get(2) at state for \"aa\" = %q, %v; want \"a\", true", got, ok)
	}
}

func TestBuildTokenMatchesFindsEveryVocabEntryAsSuffix(t *testing.T) {
	trieWords := []string{"a", "ab", "b", "bc", "c", "cd"}
	tr, ids := buildTestTrie(trieWords)
	s := sam.FromTrieAlike[byte](tr.GetRootState(), hashFactory())

	matches := BuildTokenMatches[byte, trieStateAlias, int](s, tr.GetRootState(), func(st trieStateAlias) int {
		return st.NodeID()
	})

	for _, w := range trieWords {
		state := s.GetRootState().Feed([]byte(w))
		if state.IsNil() {
			t.Fatalf("expected a path for %q", w)
		}

		if tm, ok := matches[state.NodeID()].Get(len(w)); !ok || tm == nil || tm.TokenID != ids[w] {
			t.Errorf("lookup of %q at len %d = %v, %v; want token for %q", w, len(w), tm, ok, w)
		}
	}
}
