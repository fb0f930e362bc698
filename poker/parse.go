package poker

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidCard is wrapped by every card notation error.
var ErrInvalidCard = errors.New("invalid card")

// textPresentation is the variation selector some renderers append to suit glyphs.
const textPresentation = "\uFE0E"

// ParseCard parses a single card such as "As", "10h" or "Q♦".
func ParseCard(s string) (Card, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Card{}, err
	}
	if len(cards) != 1 {
		return Card{}, fmt.Errorf("%w: %q holds %d cards", ErrInvalidCard, s, len(cards))
	}
	return cards[0], nil
}

// ParseCards parses a list of cards. Cards may be separated by commas or
// whitespace, or written back to back ("AsKsQsJsTs").
// Ranks: A, K, Q, J, T (or 10), 9-2. Suits: s, h, d, c or their glyphs.
// Both are case-insensitive.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	cards := make([]Card, 0, 5)
	for _, field := range fields {
		runes := []rune(strings.ReplaceAll(field, textPresentation, ""))
		for i := 0; i < len(runes); {
			rank, n, err := parseRank(runes[i:])
			if err != nil {
				return nil, fmt.Errorf("card %d in %q: %w", len(cards)+1, field, err)
			}
			i += n
			if i >= len(runes) {
				return nil, fmt.Errorf("card %d in %q: %w: missing suit", len(cards)+1, field, ErrInvalidCard)
			}
			suit, err := parseSuit(runes[i])
			if err != nil {
				return nil, fmt.Errorf("card %d in %q: %w", len(cards)+1, field, err)
			}
			i++
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// parseRank reads a rank token and returns how many runes it consumed.
func parseRank(rs []rune) (Rank, int, error) {
	switch unicode.ToUpper(rs[0]) {
	case 'A':
		return Ace, 1, nil
	case 'K':
		return King, 1, nil
	case 'Q':
		return Queen, 1, nil
	case 'J':
		return Jack, 1, nil
	case 'T':
		return Ten, 1, nil
	case '1':
		if len(rs) > 1 && rs[1] == '0' {
			return Ten, 2, nil
		}
	case '9':
		return Nine, 1, nil
	case '8':
		return Eight, 1, nil
	case '7':
		return Seven, 1, nil
	case '6':
		return Six, 1, nil
	case '5':
		return Five, 1, nil
	case '4':
		return Four, 1, nil
	case '3':
		return Three, 1, nil
	case '2':
		return Two, 1, nil
	}
	return 0, 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, rs[0])
}

func parseSuit(r rune) (Suit, error) {
	switch unicode.ToLower(r) {
	case 's', '♠', '♤':
		return Spades, nil
	case 'h', '♥', '♡':
		return Hearts, nil
	case 'd', '♦', '♢':
		return Diamonds, nil
	case 'c', '♣', '♧':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, r)
	}
}
