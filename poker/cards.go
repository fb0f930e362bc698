package poker

import (
	"fmt"
	"math/bits"
)

// Suit identifies one of the four card suits.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// NumSuits is the number of suits in a standard deck.
const NumSuits = 4

// Bits returns the one-hot suit pattern carried in bits 12-15 of an encoded card.
func (s Suit) Bits() uint32 {
	return 0x1000 << s
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s < NumSuits
}

// String returns the single-letter suit ("s", "h", "d", "c").
func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return "shdc"[s : s+1]
}

// Glyph returns the suit symbol.
func (s Suit) Glyph() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Rank is a dense card rank, Two (0) through Ace (12).
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of ranks in a standard deck.
const NumRanks = 13

// rankPrimes maps each rank to its prime weight.
var rankPrimes = [NumRanks]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// Prime returns the prime weight of the rank.
func (r Rank) Prime() uint32 {
	return rankPrimes[r]
}

// Valid reports whether r is between Two and Ace.
func (r Rank) Valid() bool {
	return r < NumRanks
}

// String returns the rank character ("2".."9", "T", "J", "Q", "K", "A").
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return "23456789TJQKA"[r : r+1]
}

// Card is an immutable playing card.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a card from a rank and a suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit}
}

// Rank returns the card's rank.
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card's suit.
func (c Card) Suit() Suit { return c.suit }

// Encode returns the packed evaluator form of the card.
func (c Card) Encode() EncodedCard {
	return Encode(c.suit, c.rank)
}

// String returns the card in short notation, e.g. "As".
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// Glyph returns the card with its suit symbol, e.g. "A♠".
func (c Card) Glyph() string {
	return c.rank.String() + c.suit.Glyph()
}

// EncodedCard is the 32-bit packed card used by the evaluator:
//
//	bits  0-7   prime weight of the rank
//	bits  8-11  rank index
//	bits 12-15  one-hot suit
//	bits 16-28  one-hot rank presence
type EncodedCard uint32

// Encode packs a suit and rank into an EncodedCard.
func Encode(suit Suit, rank Rank) EncodedCard {
	r := uint32(rank)
	return EncodedCard(rankPrimes[r] | r<<8 | suit.Bits() | 1<<(16+r))
}

// EncodeCards packs a slice of cards.
func EncodeCards(cards []Card) []EncodedCard {
	out := make([]EncodedCard, len(cards))
	for i, c := range cards {
		out[i] = c.Encode()
	}
	return out
}

// Prime returns the prime weight stored in the low byte.
func (e EncodedCard) Prime() uint32 {
	return uint32(e) & 0xFF
}

// Rank returns the rank index stored in bits 8-11.
func (e EncodedCard) Rank() Rank {
	return Rank(uint32(e) >> 8 & 0xF)
}

// Suit returns the suit whose bit is set in bits 12-15.
func (e EncodedCard) Suit() Suit {
	return Suit(bits.TrailingZeros32(uint32(e)&0xF000) - 12)
}

// RankBit returns the 13-bit rank presence mask of the card.
func (e EncodedCard) RankBit() uint32 {
	return uint32(e) >> 16
}

// Card decodes the packed form back into a Card.
func (e EncodedCard) Card() Card {
	return NewCard(e.Rank(), e.Suit())
}

// String renders the packed word for diagnostics.
func (e EncodedCard) String() string {
	return fmt.Sprintf("%s:%#08x", e.Card(), uint32(e))
}
