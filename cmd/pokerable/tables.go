package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lox/pokerable/internal/fileutil"
	"github.com/lox/pokerable/poker"
)

// TablesCmd reports on the lookup tables
type TablesCmd struct {
	Verify bool   `help:"Rebuild the tables and verify them exhaustively"`
	Out    string `short:"o" type:"path" help:"Write the tables to a file"`
	Check  string `type:"existingfile" help:"Verify a table file written with --out"`
}

func (c *TablesCmd) Run(g *Globals) error {
	logger := g.Logger().WithPrefix("tables")

	start := time.Now()
	tables := poker.DefaultTables()
	logger.Debug("Tables ready", "elapsed", time.Since(start))

	s := tables.Stats()
	w := tabwriter.NewWriter(g.stdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%d populated\n", headerStyle.Render("flushes"), s.Flushes)
	fmt.Fprintf(w, "%s\t%d populated\n", headerStyle.Render("unique5"), s.Unique5)
	fmt.Fprintf(w, "%s\t%d populated, highest slot %d\n", headerStyle.Render("hash_values"), s.HashValues, s.HashSpan-1)
	fmt.Fprintf(w, "%s\t%d buckets used, largest holds %d\n", headerStyle.Render("hash_adjust"), s.UsedBuckets, s.LargestBucket)
	if err := w.Flush(); err != nil {
		return err
	}

	if c.Out != "" {
		if err := fileutil.WriteAtomic(c.Out, 0o644, func(w io.Writer) error { return tables.Save(w) }); err != nil {
			return fmt.Errorf("writing tables: %w", err)
		}
		logger.Info("Tables written", "path", c.Out)
	}

	if c.Check != "" {
		if err := checkTableFile(c.Check, tables); err != nil {
			return err
		}
		fmt.Fprintf(g.stdout(), "%s %s\n", c.Check, winStyle.Render("matches"))
	}

	if !c.Verify {
		return nil
	}

	start = time.Now()
	fresh, err := poker.BuildTables()
	if err != nil {
		return fmt.Errorf("rebuilding tables: %w", err)
	}
	if *fresh != *tables {
		return fmt.Errorf("rebuilt tables differ from the loaded tables")
	}
	if err := fresh.Verify(); err != nil {
		return err
	}
	logger.Info("Tables verified", "elapsed", time.Since(start))
	fmt.Fprintln(g.stdout(), winStyle.Render("verified"))
	return nil
}

// loadTableFile reads and verifies a table file written with --out.
func loadTableFile(path string) (*poker.Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	loaded, err := poker.ReadTables(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return loaded, nil
}

func checkTableFile(path string, want *poker.Tables) error {
	loaded, err := loadTableFile(path)
	if err != nil {
		return err
	}
	if *loaded != *want {
		return fmt.Errorf("%s: tables verify but differ from the generated tables", path)
	}
	return nil
}
