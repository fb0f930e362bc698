package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/lox/pokerable/internal/census"
	"github.com/lox/pokerable/internal/randutil"
	"github.com/lox/pokerable/poker"
)

// SampleCmd estimates category frequencies from random hands
type SampleCmd struct {
	Hands int    `short:"n" default:"100000" help:"Number of random hands to deal"`
	Seed  *int64 `help:"Random seed for reproducible results"`
}

func (c *SampleCmd) Run(g *Globals) error {
	logger := g.Logger().WithPrefix("sample")

	seed := randutil.Seed(c.Seed, time.Now())
	logger.Debug("Sampling hands", "hands", c.Hands, "seed", seed)

	ctx, stop := setupSignalHandler(context.Background(), logger)
	defer stop()

	start := time.Now()
	res, err := census.Sample(ctx, census.SampleOptions{
		Hands: c.Hands,
		Rand:  randutil.New(seed),
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(g.stdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
		headerStyle.Render("Category"), headerStyle.Render("Hands"), headerStyle.Render("Observed"), headerStyle.Render("Exact"))
	types := poker.HandTypes()
	for i := len(types) - 1; i >= 0; i-- {
		t := types[i]
		fmt.Fprintf(w, "%s\t%d\t%.4f%%\t%.4f%%\t\n",
			categoryStyle.Render(t.Name()), res.Count(t), 100*res.Share(t), 100*census.Frequency(t))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(g.stdout(), "\n%d hands (seed %d) in %v\n", res.Total, seed, elapsed.Round(time.Millisecond))
	return nil
}
