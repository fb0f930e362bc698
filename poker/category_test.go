package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		strength HandRank
		want     HandType
	}{
		{0, StraightFlush},
		{1, StraightFlush},
		{10, StraightFlush},
		{11, FourOfAKind},
		{166, FourOfAKind},
		{167, FullHouse},
		{322, FullHouse},
		{323, Flush},
		{1599, Flush},
		{1600, Straight},
		{1609, Straight},
		{1610, ThreeOfAKind},
		{2467, ThreeOfAKind},
		{2468, TwoPair},
		{3325, TwoPair},
		{3326, Pair},
		{6185, Pair},
		{6186, HighCard},
		{7462, HighCard},
		{7463, Invalid},
		{WorstRank, Invalid},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.strength), "strength %d", tt.strength)
	}
}

func TestHandTypeNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "full-house", FullHouse.String())
	assert.Equal(t, "Full House", FullHouse.Name())
	assert.Equal(t, "Three of a Kind", ThreeOfAKind.Name())
	assert.Equal(t, "invalid", HandType(42).String())
	assert.Equal(t, "Invalid", HandType(42).Name())
	assert.Equal(t, "Straight Flush", HandRank(1).String())
}

func TestParseHandType(t *testing.T) {
	t.Parallel()

	types := HandTypes()
	assert.Len(t, types, NumHandTypes-1)
	for i, ht := range types {
		got, ok := ParseHandType(ht.String())
		assert.True(t, ok)
		assert.Equal(t, ht, got)
		if i > 0 {
			assert.Greater(t, ht, types[i-1])
		}
	}

	_, ok := ParseHandType("royal-flush")
	assert.False(t, ok)
}
