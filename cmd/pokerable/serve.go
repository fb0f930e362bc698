package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerable/internal/config"
	"github.com/lox/pokerable/internal/server"
)

// ServeCmd runs the evaluation service
type ServeCmd struct {
	Addr   string `help:"Listen address, overrides the config file (e.g. ':8080')"`
	Tables string `type:"existingfile" help:"Serve lookup tables written by 'tables --out' instead of building them"`
}

func (c *ServeCmd) Run(g *Globals) error {
	s, logger, err := c.newServer(g)
	if err != nil {
		return err
	}

	ctx, stop := setupSignalHandler(context.Background(), logger)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- s.Start()
	}()

	// Wait for shutdown or error
	select {
	case <-ctx.Done():
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}

// newServer resolves the config file and flags into a server and its logger.
func (c *ServeCmd) newServer(g *Globals) (*server.Server, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config %s: %w", g.Config, err)
	}

	logger := g.Logger()
	// An explicit --log-level wins over the config file.
	if g.LogLevel == "" {
		logger.SetLevel(cfg.Level())
	}

	addr := cfg.ServerAddress()
	if c.Addr != "" {
		addr = c.Addr
	}

	var opts []server.Option
	if c.Tables != "" {
		tables, err := loadTableFile(c.Tables)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Loaded lookup tables", "path", c.Tables)
		opts = append(opts, server.WithTables(tables))
	}

	return server.NewServer(addr, logger, opts...), logger, nil
}
