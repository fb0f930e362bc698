package poker

// HandType is the coarse category of a hand, ordered from weakest to strongest.
// Invalid is reserved for strengths outside the range of real hands.
type HandType uint8

const (
	Invalid HandType = iota
	HighCard
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// NumHandTypes is the number of categories including Invalid.
const NumHandTypes = int(StraightFlush) + 1

// Upper (weakest) strength of each category.
const (
	MaxStraightFlush HandRank = 10
	MaxFourOfAKind   HandRank = 166
	MaxFullHouse     HandRank = 322
	MaxFlush         HandRank = 1599
	MaxStraight      HandRank = 1609
	MaxThreeOfAKind  HandRank = 2467
	MaxTwoPair       HandRank = 3325
	MaxPair          HandRank = 6185
	MaxHighCard      HandRank = 7462
)

// Classify maps a strength to its category.
func Classify(hr HandRank) HandType {
	switch {
	case hr > MaxHighCard:
		return Invalid
	case hr > MaxPair:
		return HighCard
	case hr > MaxTwoPair:
		return Pair
	case hr > MaxThreeOfAKind:
		return TwoPair
	case hr > MaxStraight:
		return ThreeOfAKind
	case hr > MaxFlush:
		return Straight
	case hr > MaxFullHouse:
		return Flush
	case hr > MaxFourOfAKind:
		return FullHouse
	case hr > MaxStraightFlush:
		return FourOfAKind
	default:
		return StraightFlush
	}
}

var handTypeLabels = [NumHandTypes]string{
	"invalid",
	"high-card",
	"pair",
	"two-pair",
	"three-of-a-kind",
	"straight",
	"flush",
	"full-house",
	"four-of-a-kind",
	"straight-flush",
}

var handTypeNames = [NumHandTypes]string{
	"Invalid",
	"High Card",
	"Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
}

// String returns the category label, e.g. "full-house".
func (t HandType) String() string {
	if int(t) >= NumHandTypes {
		return handTypeLabels[Invalid]
	}
	return handTypeLabels[t]
}

// Name returns the display name, e.g. "Full House".
func (t HandType) Name() string {
	if int(t) >= NumHandTypes {
		return handTypeNames[Invalid]
	}
	return handTypeNames[t]
}

// ParseHandType resolves a category label as produced by String.
func ParseHandType(s string) (HandType, bool) {
	for i, label := range handTypeLabels {
		if label == s {
			return HandType(i), true
		}
	}
	return Invalid, false
}

// HandTypes lists the real categories from weakest to strongest.
func HandTypes() []HandType {
	return []HandType{HighCard, Pair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush}
}
