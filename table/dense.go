package table

import "golang.org/x/exp/constraints"

// DenseTable is a transition table backed by a directly indexed array,
// suited to small dense alphabets such as raw bytes. Get/Set are O(1)
// with no hashing or comparisons. Keys are converted to array indices
// via int(key) and must fall within [0, size).
//
// NodeID 0 (sam.Nil) doubles as the "no transition" sentinel, so no
// separate presence bitmap is needed.
type DenseTable[K constraints.Integer] struct {
	data []NodeID
}

// NewDenseTable returns an empty DenseTable sized for keys in [0, size).
func NewDenseTable[K constraints.Integer](size int) *DenseTable[K] {
	return &DenseTable[K]{data: make([]NodeID, size)}
}

// NewDenseTableFactory returns a Factory constructing DenseTable backends
// sized for keys in [0, size). Pass 256 for a byte alphabet.
func NewDenseTableFactory[K constraints.Integer](size int) Factory[K] {
	return func() MutableTable[K] { return NewDenseTable[K](size) }
}

func (d *DenseTable[K]) Get(key K) (NodeID, bool) {
	idx := int(key)
	if idx < 0 || idx >= len(d.data) {
		return 0, false
	}
	v := d.data[idx]
	return v, v != 0
}

func (d *DenseTable[K]) Contains(key K) bool {
	_, ok := d.Get(key)
	return ok
}

func (d *DenseTable[K]) Set(key K, target NodeID) {
	idx := int(key)
	if idx < 0 || idx >= len(d.data) {
		grown := make([]NodeID, idx+1)
		copy(grown, d.data)
		d.data = grown
	}
	d.data[idx] = target
}

func (d *DenseTable[K]) Len() int {
	count := 0
	for _, v := range d.data {
		if v != 0 {
			count++
		}
	}
	return count
}

func (d *DenseTable[K]) Entries() []Entry[K] {
	result := make([]Entry[K], 0, d.Len())
	for idx, v := range d.data {
		if v != 0 {
			result = append(result, Entry[K]{Key: K(idx), Target: v})
		}
	}
	return result
}
