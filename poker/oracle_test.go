package poker

import (
	"testing"

	ph "github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerable/internal/randutil"
)

var oracleSuits = [NumSuits]ph.Suit{
	Spades:   ph.Spade,
	Hearts:   ph.Heart,
	Diamonds: ph.Diamond,
	Clubs:    ph.Club,
}

func oracleCard(t testing.TB, c Card) ph.Card {
	t.Helper()
	rank := ph.Rank(c.Rank()) + 2
	if c.Rank() == Ace {
		rank = 1
	}
	oc, err := ph.MakeCard(oracleSuits[c.Suit()], rank)
	require.NoError(t, err)
	return oc
}

func oracleEval(t testing.TB, hand [5]Card) int16 {
	t.Helper()
	var oh [5]ph.Card
	for i, c := range hand {
		oh[i] = oracleCard(t, c)
	}
	return ph.Eval5(&oh)
}

// The oracle scores higher-is-better, so orderings must be mirrored.
func TestEvaluateAgreesWithIndependentEvaluator(t *testing.T) {
	t.Parallel()

	rng := randutil.New(20240601)
	deck := NewDeck(rng)

	deal := func() [5]Card {
		h, ok := deck.DealHand()
		if !ok {
			deck.Shuffle()
			h, _ = deck.DealHand()
		}
		return h
	}

	iterations := 50000
	if testing.Short() {
		iterations = 5000
	}

	for range iterations {
		a, b := deal(), deal()
		ours := Evaluate5(a).Compare(Evaluate5(b))

		oa, ob := oracleEval(t, a), oracleEval(t, b)
		theirs := 0
		switch {
		case oa > ob:
			theirs = 1
		case oa < ob:
			theirs = -1
		}
		require.Equal(t, theirs, ours, "%v (%d) vs %v (%d)", a, Evaluate5(a), b, Evaluate5(b))
	}
}
