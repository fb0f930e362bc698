package poker

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
)

const (
	rankMaskSize   = 1 << NumRanks // index domain of Flushes and Unique5
	hashAdjustSize = 512
	hashValuesSize = 8192

	// distinctRankCombos is C(13,5): the populated entries of Flushes and Unique5.
	distinctRankCombos = 1287
	// repeatedRankClasses counts hand classes with at least two cards of one rank.
	repeatedRankClasses = 4888
)

// Tables is the lookup data behind the evaluator. It is a plain value:
// copying it yields independent tables. A Tables value in use by an
// evaluator must not be modified.
type Tables struct {
	// Primes holds the prime weight of each rank.
	Primes [NumRanks]uint32
	// Flushes maps a rank presence mask to the strength of the flush or
	// straight flush it forms. Zero marks masks without exactly five ranks.
	Flushes [rankMaskSize]uint16
	// Unique5 maps a rank presence mask of five distinct ranks to the
	// strength of the straight or high-card hand it forms.
	Unique5 [rankMaskSize]uint16
	// HashAdjust displaces each mixing bucket into HashValues.
	HashAdjust [hashAdjustSize]uint16
	// HashValues holds the strength of every hand with a repeated rank,
	// addressed by findFast over the hand's prime product.
	HashValues [hashValuesSize]uint16
}

var loadDefaultTables = sync.OnceValue(func() *Tables {
	t, err := BuildTables()
	if err != nil {
		panic(fmt.Sprintf("poker: lookup tables are inconsistent: %v", err))
	}
	return t
})

// DefaultTables returns the process-wide lookup tables, building them on
// first use. It panics if construction fails its own consistency checks.
//
// The returned value is shared by every caller, including the package-level
// Evaluate, and must never be written to. Callers that need tables they can
// change should copy the value or call BuildTables.
func DefaultTables() *Tables {
	return loadDefaultTables()
}

// TableStats summarises how densely the lookup tables are populated.
type TableStats struct {
	Flushes       int // non-zero Flushes entries
	Unique5       int // non-zero Unique5 entries
	HashValues    int // non-zero HashValues entries
	HashSpan      int // highest populated HashValues slot + 1
	UsedBuckets   int // mixing buckets holding at least one product
	LargestBucket int // products sharing the busiest mixing bucket
}

// Stats reports population figures for the tables.
func (t *Tables) Stats() TableStats {
	var s TableStats
	for i := range t.Flushes {
		if t.Flushes[i] != 0 {
			s.Flushes++
		}
		if t.Unique5[i] != 0 {
			s.Unique5++
		}
	}
	for i, v := range t.HashValues {
		if v != 0 {
			s.HashValues++
			s.HashSpan = i + 1
		}
	}

	var buckets [hashAdjustSize]int
	for _, c := range repeatedClasses() {
		_, b := mix(c.product)
		buckets[b]++
	}
	for _, n := range buckets {
		if n > 0 {
			s.UsedBuckets++
		}
		s.LargestBucket = max(s.LargestBucket, n)
	}
	return s
}

// tableFileMagic prefixes serialized tables.
var tableFileMagic = [4]byte{'C', 'K', 'T', '1'}

// ErrTableFormat reports input that is not a serialized table set.
var ErrTableFormat = errors.New("not a table file")

// Save writes the tables in a fixed little-endian layout readable by
// ReadTables.
func (t *Tables) Save(w io.Writer) error {
	if _, err := w.Write(tableFileMagic[:]); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, t)
}

// ReadTables reads tables written by Save and verifies them before
// returning.
func ReadTables(r io.Reader) (*Tables, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTableFormat, err)
	}
	if magic != tableFileMagic {
		return nil, fmt.Errorf("%w: bad header %q", ErrTableFormat, magic[:])
	}

	t := &Tables{}
	if err := binary.Read(r, binary.LittleEndian, t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTableFormat, err)
	}
	if err := t.Verify(); err != nil {
		return nil, err
	}
	return t, nil
}
