package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	LogLevel string `help:"Log level (debug, info, warn, error), defaults to info or the config file's log_level"`
	NoColor  bool   `help:"Disable colored output"`
	Config   string `short:"c" help:"HCL configuration file" default:"pokerable.hcl"`

	out io.Writer
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Eval    EvalCmd          `cmd:"" help:"Evaluate a five-card hand"`
	Compare CompareCmd       `cmd:"" help:"Compare two or more five-card hands"`
	Census  CensusCmd        `cmd:"" help:"Evaluate every five-card hand and check category frequencies"`
	Sample  SampleCmd        `cmd:"" help:"Estimate category frequencies from random hands"`
	Tables  TablesCmd        `cmd:"" help:"Show lookup table statistics"`
	Serve   ServeCmd         `cmd:"" help:"Run the evaluation service"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerable"),
		kong.Description("Five-card poker hand evaluator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	cli.out = os.Stdout

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// Validate rejects an unknown --log-level. Kong calls it after parsing.
func (g *Globals) Validate() error {
	if g.LogLevel == "" {
		return nil
	}
	if _, err := log.ParseLevel(g.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", g.LogLevel)
	}
	return nil
}

// Logger builds the process logger at the requested level, or info when
// --log-level was not given.
func (g *Globals) Logger() *log.Logger {
	level := log.InfoLevel
	if g.LogLevel != "" {
		if parsed, err := log.ParseLevel(g.LogLevel); err == nil {
			level = parsed
		}
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}

func (g *Globals) stdout() io.Writer {
	if g.out == nil {
		return os.Stdout
	}
	return g.out
}
