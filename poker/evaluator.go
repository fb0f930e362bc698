package poker

import "math"

// HandRank is the strength of a five-card hand. Lower values are stronger:
// 1 is a royal flush and MaxHighCard (7462) is 7-5-4-3-2 offsuit.
type HandRank uint16

// WorstRank is reported for card lists that do not hold exactly five cards.
// It is weaker than every real hand.
const WorstRank HandRank = math.MaxUint16

// Type returns the category of the hand.
func (hr HandRank) Type() HandType {
	return Classify(hr)
}

// String returns the display name of the hand's category.
func (hr HandRank) String() string {
	return hr.Type().Name()
}

// Compare returns 1 if hr is stronger than other, -1 if weaker and 0 on a tie.
func (hr HandRank) Compare(other HandRank) int {
	return CompareHands(hr, other)
}

// Beats reports whether hr is strictly stronger than other.
func (hr HandRank) Beats(other HandRank) bool {
	return hr < other
}

// CompareHands compares two hands and returns 1 if a wins, -1 if b wins, 0 for tie
func CompareHands(a, b HandRank) int {
	if a < b {
		return 1
	} else if a > b {
		return -1
	}
	return 0
}

// Winners returns the indexes of the strongest ranks, in input order.
func Winners(ranks []HandRank) []int {
	best := WorstRank
	var out []int
	for i, hr := range ranks {
		switch {
		case hr < best:
			best = hr
			out = append(out[:0], i)
		case hr == best:
			out = append(out, i)
		}
	}
	return out
}

// Evaluate returns the strength of five encoded cards using DefaultTables.
// The result does not depend on argument order. Duplicate cards yield a
// stable but meaningless strength.
func Evaluate(c1, c2, c3, c4, c5 EncodedCard) HandRank {
	return DefaultTables().Evaluate(c1, c2, c3, c4, c5)
}

// Evaluate returns the strength of five encoded cards.
func (t *Tables) Evaluate(c1, c2, c3, c4, c5 EncodedCard) HandRank {
	q := uint32(c1|c2|c3|c4|c5) >> 16

	// All five cards share a suit.
	if c1&c2&c3&c4&c5&0xF000 != 0 {
		return HandRank(t.Flushes[q])
	}

	// Five distinct ranks: straights and high cards.
	if s := t.Unique5[q]; s != 0 {
		return HandRank(s)
	}

	product := (uint32(c1) & 0xFF) * (uint32(c2) & 0xFF) * (uint32(c3) & 0xFF) *
		(uint32(c4) & 0xFF) * (uint32(c5) & 0xFF)
	return HandRank(t.HashValues[findFast(product, &t.HashAdjust)])
}

// mix scrambles a prime product into a slot candidate a (13 bits) and a
// bucket b (9 bits). All arithmetic wraps at 32 bits.
func mix(u uint32) (a, b uint32) {
	u += 0xe91aaa35
	u ^= u >> 16
	u += u << 8
	u ^= u >> 4
	b = (u >> 8) & 0x1ff
	a = (u + (u << 2)) >> 19
	return a, b
}

// findFast maps a prime product to its HashValues slot.
func findFast(u uint32, adjust *[hashAdjustSize]uint16) uint32 {
	a, b := mix(u)
	return a ^ uint32(adjust[b])
}

// Evaluate5 evaluates a five-card hand.
func Evaluate5(hand [5]Card) HandRank {
	return DefaultTables().Evaluate(
		hand[0].Encode(),
		hand[1].Encode(),
		hand[2].Encode(),
		hand[3].Encode(),
		hand[4].Encode(),
	)
}

// EvaluateCards evaluates a card list. Lists that do not hold exactly five
// cards are never evaluated and report WorstRank.
func EvaluateCards(cards []Card) HandRank {
	if len(cards) != 5 {
		return WorstRank
	}
	return Evaluate5([5]Card(cards))
}

// EvaluateBatch evaluates multiple five-card hands and writes results into out.
// If out is nil or smaller than hands, a new slice is allocated and returned.
func EvaluateBatch(hands [][5]Card, out []HandRank) []HandRank {
	if len(out) < len(hands) {
		out = make([]HandRank, len(hands))
	} else {
		out = out[:len(hands)]
	}

	t := DefaultTables()
	for i, h := range hands {
		out[i] = t.Evaluate(h[0].Encode(), h[1].Encode(), h[2].Encode(), h[3].Encode(), h[4].Encode())
	}
	return out
}
