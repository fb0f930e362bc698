package poker

import (
	"errors"
	"fmt"
	"math/bits"
	"slices"

	"github.com/lox/pokerable/internal/prodindex"
)

// ErrTableCollision reports that two hand classes could not be given
// distinct hash slots.
var ErrTableCollision = errors.New("perfect hash collision")

// ErrTableMismatch reports a table entry that disagrees with the canonical
// hand ordering.
var ErrTableMismatch = errors.New("table entry mismatch")

// straightMasks lists the rank masks of the ten straights, best first.
// The wheel (A-5-4-3-2) is the weakest.
var straightMasks = [10]uint16{
	0x1F00, 0x0F80, 0x07C0, 0x03E0, 0x01F0,
	0x00F8, 0x007C, 0x003E, 0x001F, 0x100F,
}

func isStraightMask(mask uint16) bool {
	return slices.Contains(straightMasks[:], mask)
}

// rankClass is one equivalence class of hands with a repeated rank,
// identified by the product of its rank primes.
type rankClass struct {
	product  uint32
	strength uint16
}

// BuildTables generates the lookup tables from scratch.
//
// Hand classes are enumerated in canonical order (straight flushes 1-10,
// quads 11-166, full houses 167-322, flushes 323-1599, straights 1600-1609,
// trips 1610-2467, two pair 2468-3325, one pair 3326-6185, high card
// 6186-7462). Five-distinct-rank classes are stored directly by rank mask.
// The 4888 repeated-rank classes are keyed by prime product and placed with
// a displacement search over the findFast mixing buckets: the busiest
// bucket is placed first and takes the smallest displacement that lands
// every product on a free slot.
func BuildTables() (*Tables, error) {
	t := &Tables{Primes: rankPrimes}
	if err := t.fillDistinct(); err != nil {
		return nil, err
	}
	classes := repeatedClasses()
	if len(classes) != repeatedRankClasses {
		return nil, fmt.Errorf("%w: enumerated %d repeated-rank classes, want %d",
			ErrTableMismatch, len(classes), repeatedRankClasses)
	}
	if err := t.fillRepeated(classes); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tables) fillDistinct() error {
	for i, mask := range straightMasks {
		t.Flushes[mask] = uint16(i) + 1
		t.Unique5[mask] = uint16(MaxFlush) + 1 + uint16(i)
	}

	// Descending mask order is descending high-card order.
	var n uint16
	for mask := 0x1F00; mask >= 0x1F; mask-- {
		m := uint16(mask)
		if bits.OnesCount16(m) != 5 || isStraightMask(m) {
			continue
		}
		t.Flushes[m] = uint16(MaxFullHouse) + 1 + n
		t.Unique5[m] = uint16(MaxPair) + 1 + n
		n++
	}

	if want := uint16(MaxFlush - MaxFullHouse); n != want {
		return fmt.Errorf("%w: enumerated %d non-straight rank masks, want %d", ErrTableMismatch, n, want)
	}
	return nil
}

// repeatedClasses enumerates every hand class with a repeated rank in
// canonical strength order.
func repeatedClasses() []rankClass {
	classes := make([]rankClass, 0, repeatedRankClasses)
	strength := uint16(MaxStraightFlush)
	emit := func(ranks ...int) {
		product := uint32(1)
		for _, r := range ranks {
			product *= rankPrimes[r]
		}
		strength++
		classes = append(classes, rankClass{product: product, strength: strength})
	}

	for quad := 12; quad >= 0; quad-- {
		for kicker := 12; kicker >= 0; kicker-- {
			if kicker != quad {
				emit(quad, quad, quad, quad, kicker)
			}
		}
	}

	for trip := 12; trip >= 0; trip-- {
		for pair := 12; pair >= 0; pair-- {
			if pair != trip {
				emit(trip, trip, trip, pair, pair)
			}
		}
	}

	// Flushes and straights live in the distinct-rank tables.
	strength = uint16(MaxStraight)

	for trip := 12; trip >= 0; trip-- {
		for k1 := 12; k1 >= 1; k1-- {
			for k2 := k1 - 1; k2 >= 0; k2-- {
				if k1 != trip && k2 != trip {
					emit(trip, trip, trip, k1, k2)
				}
			}
		}
	}

	for high := 12; high >= 1; high-- {
		for low := high - 1; low >= 0; low-- {
			for kicker := 12; kicker >= 0; kicker-- {
				if kicker != high && kicker != low {
					emit(high, high, low, low, kicker)
				}
			}
		}
	}

	for pair := 12; pair >= 0; pair-- {
		for k1 := 12; k1 >= 2; k1-- {
			for k2 := k1 - 1; k2 >= 1; k2-- {
				for k3 := k2 - 1; k3 >= 0; k3-- {
					if k1 != pair && k2 != pair && k3 != pair {
						emit(pair, pair, k1, k2, k3)
					}
				}
			}
		}
	}

	return classes
}

type hashKey struct {
	a        uint32
	product  uint32
	strength uint16
}

func (t *Tables) fillRepeated(classes []rankClass) error {
	var buckets [hashAdjustSize][]hashKey
	for _, c := range classes {
		a, b := mix(c.product)
		for _, k := range buckets[b] {
			// No displacement can separate keys that mix identically.
			if k.a == a {
				return fmt.Errorf("%w: products %d and %d mix to bucket %d slot %d",
					ErrTableCollision, k.product, c.product, b, a)
			}
		}
		buckets[b] = append(buckets[b], hashKey{a: a, product: c.product, strength: c.strength})
	}

	order := make([]int, hashAdjustSize)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(x, y int) int {
		return len(buckets[y]) - len(buckets[x])
	})

	var used [hashValuesSize]bool
	for _, b := range order {
		keys := buckets[b]
		if len(keys) == 0 {
			break
		}
		d, ok := displacement(keys, &used)
		if !ok {
			return fmt.Errorf("%w: no free displacement for bucket %d (%d products)", ErrTableCollision, b, len(keys))
		}
		t.HashAdjust[b] = uint16(d)
		for _, k := range keys {
			slot := k.a ^ d
			used[slot] = true
			t.HashValues[slot] = k.strength
		}
	}

	for _, c := range classes {
		if got := t.HashValues[findFast(c.product, &t.HashAdjust)]; got != c.strength {
			return fmt.Errorf("%w: product %d resolves to %d, want %d", ErrTableMismatch, c.product, got, c.strength)
		}
	}
	return nil
}

// displacement finds the smallest d for which every key's slot a^d is free.
func displacement(keys []hashKey, used *[hashValuesSize]bool) (uint32, bool) {
next:
	for d := uint32(0); d < hashValuesSize; d++ {
		for _, k := range keys {
			if used[k.a^d] {
				continue next
			}
		}
		return d, true
	}
	return 0, false
}

// Verify exhaustively re-checks the tables: every rank multiset a five-card
// hand can hold must resolve to its canonical strength, and every strength
// from 1 to MaxHighCard must be reachable exactly once. Every HashAdjust
// entry must stay inside HashValues and no unreachable slot may be populated.
func (t *Tables) Verify() error {
	if t.Primes != rankPrimes {
		return fmt.Errorf("%w: primes %v", ErrTableMismatch, t.Primes)
	}

	// Buckets no legal hand reaches must still displace inside HashValues.
	for b, d := range t.HashAdjust {
		if int(d) >= hashValuesSize {
			return fmt.Errorf("%w: HashAdjust[%d] = %d exceeds %d slots", ErrTableMismatch, b, d, hashValuesSize)
		}
	}

	var seen [MaxHighCard + 1]bool
	var reached [hashValuesSize]bool
	mark := func(table string, index int, s uint16) error {
		if s == 0 || s > uint16(MaxHighCard) {
			return fmt.Errorf("%w: %s[%d] = %d out of range", ErrTableMismatch, table, index, s)
		}
		if table == "HashValues" {
			reached[index] = true
		}
		if seen[s] {
			return fmt.Errorf("%w: %s[%d] = %d assigned twice", ErrTableMismatch, table, index, s)
		}
		seen[s] = true
		return nil
	}

	for mask := range rankMaskSize {
		f, u := t.Flushes[mask], t.Unique5[mask]
		if bits.OnesCount16(uint16(mask)) != 5 {
			if f != 0 || u != 0 {
				return fmt.Errorf("%w: rank mask %#x is not five ranks but is populated", ErrTableMismatch, mask)
			}
			continue
		}
		straight := isStraightMask(uint16(mask))
		if got := Classify(HandRank(f)); (straight && got != StraightFlush) || (!straight && got != Flush) {
			return fmt.Errorf("%w: Flushes[%#x] = %d classifies as %s", ErrTableMismatch, mask, f, got)
		}
		if got := Classify(HandRank(u)); (straight && got != Straight) || (!straight && got != HighCard) {
			return fmt.Errorf("%w: Unique5[%#x] = %d classifies as %s", ErrTableMismatch, mask, u, got)
		}
		if err := mark("Flushes", mask, f); err != nil {
			return err
		}
		if err := mark("Unique5", mask, u); err != nil {
			return err
		}
	}

	reference := make(map[uint32]uint16, repeatedRankClasses)
	for _, c := range repeatedClasses() {
		reference[c.product] = c.strength
	}
	index, err := prodindex.Build(reference)
	if err != nil {
		return fmt.Errorf("building product index: %w", err)
	}

	var counts [NumRanks]int
	var walk func(from, left int) error
	walk = func(from, left int) error {
		if left == 0 {
			return t.verifyMultiset(&counts, index, mark)
		}
		for r := from; r < NumRanks; r++ {
			if counts[r] == 4 {
				continue
			}
			counts[r]++
			err := walk(r, left-1)
			counts[r]--
			if err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(0, 5); err != nil {
		return err
	}

	for slot, v := range t.HashValues {
		if v != 0 && !reached[slot] {
			return fmt.Errorf("%w: HashValues[%d] = %d is populated but unreachable", ErrTableMismatch, slot, v)
		}
	}

	for s := 1; s <= int(MaxHighCard); s++ {
		if !seen[s] {
			return fmt.Errorf("%w: strength %d is unreachable", ErrTableMismatch, s)
		}
	}
	return nil
}

func (t *Tables) verifyMultiset(counts *[NumRanks]int, index *prodindex.Index, mark func(string, int, uint16) error) error {
	product := uint32(1)
	repeated := false
	for r, n := range counts {
		for range n {
			product *= t.Primes[r]
		}
		if n > 1 {
			repeated = true
		}
	}
	if !repeated {
		return nil
	}

	want, ok := index.Lookup(product)
	if !ok {
		return fmt.Errorf("%w: product %d has no reference strength", ErrTableMismatch, product)
	}
	slot := findFast(product, &t.HashAdjust)
	if got := t.HashValues[slot]; got != want {
		return fmt.Errorf("%w: product %d resolves to slot %d = %d, want %d", ErrTableMismatch, product, slot, got, want)
	}
	return mark("HashValues", int(slot), want)
}
