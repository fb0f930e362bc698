// Package prodindex stores values keyed by 32-bit prime products behind a
// CHD minimal perfect hash, giving dense storage with a membership check.
package prodindex

import (
	"errors"
	"fmt"

	chd "github.com/opencoff/go-chd"
)

// loadFactor trades build time for table density.
const loadFactor = 0.9

// ErrEmpty is returned when building an index without entries.
var ErrEmpty = errors.New("prodindex: no entries")

// Index is an immutable product -> value map.
type Index struct {
	hash   *chd.Chd
	keys   []uint32
	values []uint16
	filled []bool
}

// Build freezes entries into an Index.
func Build(entries map[uint32]uint16) (*Index, error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}

	b, err := chd.New()
	if err != nil {
		return nil, fmt.Errorf("prodindex: new builder: %w", err)
	}
	for k := range entries {
		b.Add(uint64(k))
	}
	h, err := b.Freeze(loadFactor)
	if err != nil {
		return nil, fmt.Errorf("prodindex: freeze %d keys: %w", len(entries), err)
	}

	size := 0
	for k := range entries {
		size = max(size, int(h.Find(uint64(k)))+1)
	}

	idx := &Index{
		hash:   h,
		keys:   make([]uint32, size),
		values: make([]uint16, size),
		filled: make([]bool, size),
	}
	for k, v := range entries {
		slot := h.Find(uint64(k))
		if idx.filled[slot] {
			return nil, fmt.Errorf("prodindex: keys %d and %d share slot %d", idx.keys[slot], k, slot)
		}
		idx.keys[slot] = k
		idx.values[slot] = v
		idx.filled[slot] = true
	}
	return idx, nil
}

// Lookup returns the value stored for product. Keys that were never added
// report false.
func (x *Index) Lookup(product uint32) (uint16, bool) {
	slot := x.hash.Find(uint64(product))
	if slot >= uint64(len(x.keys)) || !x.filled[slot] || x.keys[slot] != product {
		return 0, false
	}
	return x.values[slot], true
}

// Len returns the number of slots backing the index.
func (x *Index) Len() int {
	return len(x.keys)
}
