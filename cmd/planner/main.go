// Package main is the entry point for the travel planner.
// Its sole responsibility is wiring dependencies together and starting the REPL.
// No business logic belongs here.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkordes/travel-planner/internal/cli"
	"github.com/pkordes/travel-planner/internal/config"
	"github.com/pkordes/travel-planner/internal/service"
	"github.com/pkordes/travel-planner/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("planner stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// --- Logger -----------------------------------------------------------
	// Logs go to stderr; stdout belongs to the REPL.
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)

	// Stop on SIGINT/SIGTERM. The REPL notices between commands.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Store ------------------------------------------------------------
	st, err := store.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()
	logger.Info("store ready", "driver", cfg.StoreDriver)

	// --- Services ---------------------------------------------------------
	accounts := service.NewAccountService(st.Accounts)
	itineraries := service.NewItineraryService(st.Itineraries)
	exporter := service.NewExportService(st.Itineraries)

	app := cli.NewApp(accounts, itineraries, exporter, os.Stdin, os.Stdout, logger)
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	logger.Info("planner exited")
	return nil
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
