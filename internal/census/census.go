// Package census evaluates every five-card hand in a standard deck and
// tallies the results by category.
package census

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerable/poker"
)

// TotalHands is C(52,5).
const TotalHands = 2598960

// ExpectedCounts holds the number of hands in each category.
var ExpectedCounts = map[poker.HandType]int{
	poker.HighCard:      1302540,
	poker.Pair:          1098240,
	poker.TwoPair:       123552,
	poker.ThreeOfAKind:  54912,
	poker.Straight:      10200,
	poker.Flush:         5108,
	poker.FullHouse:     3744,
	poker.FourOfAKind:   624,
	poker.StraightFlush: 40,
}

// distinctStrengths is the number of distinct hand strengths.
const distinctStrengths = int(poker.MaxHighCard)

// Options configures a census run. Zero values select defaults.
type Options struct {
	Workers  int           // concurrent partitions; defaults to GOMAXPROCS
	Tables   *poker.Tables // defaults to poker.DefaultTables()
	Logger   *log.Logger   // defaults to log.Default()
	Clock    quartz.Clock  // defaults to the real clock
	Progress func(done, total int)
}

// Result is the outcome of a census.
type Result struct {
	Counts   [poker.NumHandTypes]int
	Total    int
	Distinct int
	Best     poker.HandRank
	Worst    poker.HandRank
	Elapsed  time.Duration
}

// Count returns the number of hands in a category.
func (r *Result) Count(t poker.HandType) int {
	return r.Counts[t]
}

// Check compares the result against ExpectedCounts.
func (r *Result) Check() error {
	var errs []error
	if r.Total != TotalHands {
		errs = append(errs, fmt.Errorf("evaluated %d hands, want %d", r.Total, TotalHands))
	}
	if n := r.Counts[poker.Invalid]; n != 0 {
		errs = append(errs, fmt.Errorf("%d hands classified as invalid", n))
	}
	for _, t := range poker.HandTypes() {
		if got, want := r.Counts[t], ExpectedCounts[t]; got != want {
			errs = append(errs, fmt.Errorf("%s: got %d hands, want %d", t, got, want))
		}
	}
	if r.Distinct != distinctStrengths {
		errs = append(errs, fmt.Errorf("saw %d distinct strengths, want %d", r.Distinct, distinctStrengths))
	}
	return errors.Join(errs...)
}

type partition struct {
	counts [poker.NumHandTypes]int
	seen   [poker.MaxHighCard + 1]bool
	total  int
	best   poker.HandRank
	worst  poker.HandRank
}

// Run evaluates every hand. The deck is partitioned by the lowest card of
// each hand and partitions are evaluated concurrently.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Tables == nil {
		opts.Tables = poker.DefaultTables()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	logger := opts.Logger.WithPrefix("census")

	var deck [poker.DeckSize]poker.EncodedCard
	for i, c := range poker.FullDeck() {
		deck[i] = c.Encode()
	}

	start := opts.Clock.Now()
	logger.Debug("Starting census", "workers", opts.Workers)

	var (
		mu     sync.Mutex
		merged = partition{best: poker.WorstRank}
		done   int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for first := 0; first <= poker.DeckSize-5; first++ {
		g.Go(func() error {
			p, err := evaluatePartition(ctx, opts.Tables, &deck, first)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			merged.merge(p)
			done += p.total
			if opts.Progress != nil {
				opts.Progress(done, TotalHands)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("census: %w", err)
	}

	res := &Result{
		Counts:  merged.counts,
		Total:   merged.total,
		Best:    merged.best,
		Worst:   merged.worst,
		Elapsed: opts.Clock.Now().Sub(start),
	}
	for _, ok := range merged.seen {
		if ok {
			res.Distinct++
		}
	}

	logger.Debug("Census complete", "hands", res.Total, "distinct", res.Distinct, "elapsed", res.Elapsed)
	return res, nil
}

func evaluatePartition(ctx context.Context, t *poker.Tables, deck *[poker.DeckSize]poker.EncodedCard, a int) (*partition, error) {
	p := &partition{best: poker.WorstRank}
	c1 := deck[a]
	for b := a + 1; b < poker.DeckSize-3; b++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c2 := deck[b]
		for c := b + 1; c < poker.DeckSize-2; c++ {
			c3 := deck[c]
			for d := c + 1; d < poker.DeckSize-1; d++ {
				c4 := deck[d]
				for e := d + 1; e < poker.DeckSize; e++ {
					p.add(t.Evaluate(c1, c2, c3, c4, deck[e]))
				}
			}
		}
	}
	return p, nil
}

func (p *partition) add(hr poker.HandRank) {
	p.total++
	p.counts[poker.Classify(hr)]++
	if int(hr) < len(p.seen) {
		p.seen[hr] = true
	}
	p.best = min(p.best, hr)
	p.worst = max(p.worst, hr)
}

func (p *partition) merge(o *partition) {
	for i, n := range o.counts {
		p.counts[i] += n
	}
	for i, ok := range o.seen {
		p.seen[i] = p.seen[i] || ok
	}
	p.total += o.total
	p.best = min(p.best, o.best)
	p.worst = max(p.worst, o.worst)
}
