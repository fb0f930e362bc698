package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/lox/pokerable/internal/census"
	"github.com/lox/pokerable/internal/config"
	"github.com/lox/pokerable/poker"
)

// CensusCmd evaluates all C(52,5) hands
type CensusCmd struct {
	Workers int `short:"j" help:"Concurrent workers (defaults to the config file, then GOMAXPROCS)"`
}

func (c *CensusCmd) Run(g *Globals) error {
	logger := g.Logger()

	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", g.Config, err)
	}

	workers := cfg.Census.Workers
	if c.Workers > 0 {
		workers = c.Workers
	}

	ctx, stop := setupSignalHandler(context.Background(), logger)
	defer stop()

	res, err := census.Run(ctx, census.Options{
		Workers: workers,
		Logger:  logger,
		Progress: func(done, total int) {
			logger.Debug("Census progress", "done", done, "total", total)
		},
	})
	if err != nil {
		return err
	}

	checkErr := res.Check()
	printCensus(g, res)
	if checkErr != nil {
		return fmt.Errorf("census mismatch: %w", checkErr)
	}
	return nil
}

func printCensus(g *Globals, res *census.Result) {
	w := tabwriter.NewWriter(g.stdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "%s\t%s\t%s\t\n", headerStyle.Render("Category"), headerStyle.Render("Hands"), headerStyle.Render("Expected"))

	types := poker.HandTypes()
	for i := len(types) - 1; i >= 0; i-- {
		t := types[i]
		got, want := res.Count(t), census.ExpectedCounts[t]
		status := winStyle.Render("ok")
		if got != want {
			status = failStyle.Render("MISMATCH")
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", categoryStyle.Render(t.Name()), got, want, status)
	}
	fmt.Fprintf(w, "%s\t%d\t%d\t\n", headerStyle.Render("Total"), res.Total, census.TotalHands)
	_ = w.Flush()

	fmt.Fprintf(g.stdout(), "\n%d distinct strengths (best %d, worst %d) in %v\n",
		res.Distinct, res.Best, res.Worst, res.Elapsed.Round(time.Millisecond))
}
