package poker

import (
	"math/rand/v2"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = NumRanks * NumSuits

// FullDeck returns all 52 cards, ordered by rank then suit.
func FullDeck() [DeckSize]Card {
	var cards [DeckSize]Card
	i := 0
	for rank := range Rank(NumRanks) {
		for suit := range Suit(NumSuits) {
			cards[i] = NewCard(rank, suit)
			i++
		}
	}
	return cards
}

// Deck represents a standard 52-card deck
type Deck struct {
	cards [DeckSize]Card
	next  int
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a new shuffled deck with explicit RNG. A nil rng uses
// the global source.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: FullDeck(),
		rng:   rng,
	}
	d.Shuffle()
	return d
}

// Shuffle shuffles the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck, or nil if fewer than n remain.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || d.next+n > len(d.cards) {
		return nil
	}
	cards := append([]Card(nil), d.cards[d.next:d.next+n]...)
	d.next += n
	return cards
}

// DealOne deals a single card from the deck
func (d *Deck) DealOne() (Card, bool) {
	if d.next >= len(d.cards) {
		return Card{}, false
	}
	card := d.cards[d.next]
	d.next++
	return card, true
}

// DealHand deals five cards as a fixed-size hand.
func (d *Deck) DealHand() ([5]Card, bool) {
	cards := d.Deal(5)
	if cards == nil {
		return [5]Card{}, false
	}
	return [5]Card(cards), true
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
