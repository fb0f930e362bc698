package census

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lox/pokerable/poker"
)

// ErrNoSamples is returned when a sample of zero hands is requested.
var ErrNoSamples = errors.New("census: sample size must be positive")

// SampleOptions configures a Monte Carlo census.
type SampleOptions struct {
	Hands  int
	Rand   *rand.Rand    // required for reproducible runs; nil uses the global source
	Tables *poker.Tables // defaults to poker.DefaultTables()
}

// Sample evaluates opts.Hands random hands dealt from freshly shuffled decks
// and tallies them like Run. Distinct counts only strengths actually seen.
func Sample(ctx context.Context, opts SampleOptions) (*Result, error) {
	if opts.Hands <= 0 {
		return nil, ErrNoSamples
	}
	if opts.Tables == nil {
		opts.Tables = poker.DefaultTables()
	}

	deck := poker.NewDeck(opts.Rand)
	p := &partition{best: poker.WorstRank}
	for i := range opts.Hands {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("census: %w", err)
			}
		}
		hand, ok := deck.DealHand()
		if !ok {
			deck.Shuffle()
			hand, _ = deck.DealHand()
		}
		p.add(opts.Tables.Evaluate(
			hand[0].Encode(), hand[1].Encode(), hand[2].Encode(), hand[3].Encode(), hand[4].Encode()))
	}

	res := &Result{
		Counts: p.counts,
		Total:  p.total,
		Best:   p.best,
		Worst:  p.worst,
	}
	for _, ok := range p.seen {
		if ok {
			res.Distinct++
		}
	}
	return res, nil
}

// Frequency returns the exact probability of dealing a hand of type t.
func Frequency(t poker.HandType) float64 {
	return float64(ExpectedCounts[t]) / TotalHands
}

// Share returns the observed fraction of hands of type t.
func (r *Result) Share(t poker.HandType) float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Counts[t]) / float64(r.Total)
}
