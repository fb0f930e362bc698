package census

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerable/internal/randutil"
	"github.com/lox/pokerable/poker"
)

func TestSampleIsReproducible(t *testing.T) {
	t.Parallel()

	a, err := Sample(context.Background(), SampleOptions{Hands: 5000, Rand: randutil.New(9)})
	require.NoError(t, err)
	b, err := Sample(context.Background(), SampleOptions{Hands: 5000, Rand: randutil.New(9)})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, 5000, a.Total)
	assert.Zero(t, a.Count(poker.Invalid))
}

func TestSampleApproximatesFrequencies(t *testing.T) {
	t.Parallel()

	res, err := Sample(context.Background(), SampleOptions{Hands: 200000, Rand: randutil.New(1)})
	require.NoError(t, err)

	// Common categories land within a percentage point of their exact odds.
	for _, ht := range []poker.HandType{poker.HighCard, poker.Pair, poker.TwoPair, poker.ThreeOfAKind} {
		assert.InDelta(t, Frequency(ht), res.Share(ht), 0.01, "%s", ht)
	}
	assert.LessOrEqual(t, res.Distinct, int(poker.MaxHighCard))
	assert.GreaterOrEqual(t, res.Best, poker.HandRank(1))
	assert.LessOrEqual(t, res.Worst, poker.MaxHighCard)
}

func TestSampleErrors(t *testing.T) {
	t.Parallel()

	_, err := Sample(context.Background(), SampleOptions{})
	assert.ErrorIs(t, err, ErrNoSamples)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Sample(ctx, SampleOptions{Hands: 10, Rand: randutil.New(1)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFrequencySumsToOne(t *testing.T) {
	t.Parallel()

	var sum float64
	for _, ht := range poker.HandTypes() {
		sum += Frequency(ht)
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.False(t, math.IsNaN((&Result{}).Share(poker.Pair)))
}
