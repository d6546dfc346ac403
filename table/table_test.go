package table

import "testing"

func TestHashTable(t *testing.T) {
	h := NewHashTable[string]()
	h.Set("a", 1)
	h.Set("b", 2)

	if v, ok := h.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v; want 1, true", v, ok)
	}
	if h.Contains("z") {
		t.Errorf("Contains(z) = true; want false")
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d; want 2", h.Len())
	}
}

func TestOrderedTableOrdering(t *testing.T) {
	o := NewOrderedTable[int]()
	for _, k := range []int{5, 1, 3, 2, 4} {
		o.Set(k, k*10)
	}
	entries := o.Entries()
	if len(entries) != 5 {
		t.Fatalf("Entries() len = %d; want 5", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Key >= entries[i].Key {
			t.Errorf("Entries() not ascending at %d: %v then %v", i, entries[i-1], entries[i])
		}
	}
	if v, ok := o.Get(3); !ok || v != 30 {
		t.Errorf("Get(3) = %v, %v; want 30, true", v, ok)
	}
}

func TestDenseTable(t *testing.T) {
	d := NewDenseTable[byte](256)
	d.Set('a', 1)
	d.Set('z', 2)

	if v, ok := d.Get('a'); !ok || v != 1 {
		t.Errorf("Get('a') = %v, %v; want 1, true", v, ok)
	}
	if d.Contains('b') {
		t.Errorf("Contains('b') = true; want false")
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d; want 2", d.Len())
	}
}

func TestSortedTableFromTable(t *testing.T) {
	h := NewHashTable[int]()
	for _, k := range []int{9, 1, 5, 3} {
		h.Set(k, k)
	}
	sorted := NewSortedTableFromTable[int](h)

	entries := sorted.Entries()
	if len(entries) != 4 {
		t.Fatalf("Entries() len = %d; want 4", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Key >= entries[i].Key {
			t.Errorf("entries not ascending: %v then %v", entries[i-1], entries[i])
		}
	}
	for _, k := range []int{9, 1, 5, 3} {
		if v, ok := sorted.Get(k); !ok || v != k {
			t.Errorf("Get(%d) = %v, %v; want %d, true", k, v, ok, k)
		}
	}
	if sorted.Contains(100) {
		t.Errorf("Contains(100) = true; want false")
	}
}
