package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()

	aceSpades := NewCard(Ace, Spades)
	assert.Equal(t, Ace, aceSpades.Rank())
	assert.Equal(t, Spades, aceSpades.Suit())
	assert.Equal(t, "As", aceSpades.String())
	assert.Equal(t, "A♠", aceSpades.Glyph())

	twoClubs := NewCard(Two, Clubs)
	assert.Equal(t, "2c", twoClubs.String())
	assert.Equal(t, "2♣", twoClubs.Glyph())
}

func TestEncodeLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		card Card
		want EncodedCard
	}{
		{NewCard(King, Diamonds), 0x08004B25},
		{NewCard(Five, Spades), 0x00081307},
		{NewCard(Jack, Clubs), 0x0200891D},
		{NewCard(Ace, Spades), 0x10001C29},
		{NewCard(Two, Clubs), 0x00018002},
	}

	for _, tt := range tests {
		t.Run(tt.card.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equalf(t, tt.want, tt.card.Encode(), "got %#08x", uint32(tt.card.Encode()))
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	seen := make(map[EncodedCard]bool, DeckSize)
	for _, c := range FullDeck() {
		e := c.Encode()
		require.False(t, seen[e], "duplicate encoding for %s", c)
		seen[e] = true

		assert.Equal(t, c.Rank().Prime(), e.Prime())
		assert.Equal(t, c.Rank(), e.Rank())
		assert.Equal(t, c.Suit(), e.Suit())
		assert.Equal(t, uint32(1)<<c.Rank(), e.RankBit())
		assert.Equal(t, c, e.Card())
		assert.Equal(t, Encode(c.Suit(), c.Rank()), e)
	}
	assert.Len(t, seen, DeckSize)
}

func TestPrimes(t *testing.T) {
	t.Parallel()

	want := []uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}
	for r := range Rank(NumRanks) {
		assert.Equal(t, want[r], r.Prime(), "rank %s", r)
	}
}

func TestSuitAndRankStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "s", Spades.String())
	assert.Equal(t, "h", Hearts.String())
	assert.Equal(t, "d", Diamonds.String())
	assert.Equal(t, "c", Clubs.String())
	assert.Equal(t, "?", Suit(4).String())
	assert.False(t, Suit(4).Valid())

	assert.Equal(t, "2", Two.String())
	assert.Equal(t, "T", Ten.String())
	assert.Equal(t, "A", Ace.String())
	assert.Equal(t, "?", Rank(13).String())
	assert.False(t, Rank(13).Valid())
}

func TestEncodeCards(t *testing.T) {
	t.Parallel()

	cards := MustParseCards("As Kd 2c")
	got := EncodeCards(cards)
	require.Len(t, got, 3)
	assert.Equal(t, EncodedCard(0x10001C29), got[0])
	assert.Equal(t, EncodedCard(0x08004B25), got[1])
	assert.Equal(t, EncodedCard(0x00018002), got[2])
	assert.Contains(t, got[1].String(), "Kd:")
	assert.Contains(t, got[1].String(), "8004b25")
}
