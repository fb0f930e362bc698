package poker

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrHandSize reports a card list that does not hold exactly five cards.
	ErrHandSize = errors.New("a hand must hold exactly five cards")
	// ErrDuplicateCard reports a card that appears more than once.
	ErrDuplicateCard = errors.New("duplicate card")
)

// CheckHand reports whether cards form a legal five-card hand. The
// evaluator itself never checks; callers handling untrusted input should.
func CheckHand(cards []Card) error {
	if len(cards) != 5 {
		return fmt.Errorf("%w: got %d", ErrHandSize, len(cards))
	}
	var seen uint64
	for _, c := range cards {
		bit := uint64(1) << (uint(c.Rank())*NumSuits + uint(c.Suit()))
		if seen&bit != 0 {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen |= bit
	}
	return nil
}

// Hand is a mutable card list that caches its strength. Every mutation
// invalidates the cache; the strength is recomputed on the next Rank call.
// A Hand is not safe for concurrent use.
type Hand struct {
	cards  []Card
	rank   HandRank
	cached bool
}

// NewHand creates a hand holding the given cards.
func NewHand(cards ...Card) *Hand {
	h := &Hand{}
	h.SetCards(cards...)
	return h
}

// ParseHand creates a hand from card notation, see ParseCards.
func ParseHand(s string) (*Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return nil, err
	}
	return NewHand(cards...), nil
}

// Cards returns a copy of the hand's cards.
func (h *Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

// Len returns the number of cards held.
func (h *Hand) Len() int {
	return len(h.cards)
}

// SetCards replaces the hand's cards.
func (h *Hand) SetCards(cards ...Card) {
	h.cards = append(h.cards[:0], cards...)
	h.cached = false
}

// Add appends cards to the hand.
func (h *Hand) Add(cards ...Card) {
	h.cards = append(h.cards, cards...)
	h.cached = false
}

// Reset empties the hand.
func (h *Hand) Reset() {
	h.cards = h.cards[:0]
	h.cached = false
}

// Rank returns the hand's strength, or WorstRank unless it holds exactly
// five cards.
func (h *Hand) Rank() HandRank {
	if !h.cached {
		h.rank = EvaluateCards(h.cards)
		h.cached = true
	}
	return h.rank
}

// Type returns the hand's category; Invalid unless it holds five cards.
func (h *Hand) Type() HandType {
	return Classify(h.Rank())
}

// Compare returns 1 if h beats other, -1 if it loses and 0 on a tie.
func (h *Hand) Compare(other *Hand) int {
	return CompareHands(h.Rank(), other.Rank())
}

// Beats reports whether h is strictly stronger than other.
func (h *Hand) Beats(other *Hand) bool {
	return h.Compare(other) > 0
}

// Ties reports whether h and other have equal strength.
func (h *Hand) Ties(other *Hand) bool {
	return h.Compare(other) == 0
}

// String returns the cards in short notation separated by spaces.
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
