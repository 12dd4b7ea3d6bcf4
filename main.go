package main

import (
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-exchange-terminal/config"
	"go-exchange-terminal/exchange"
	"go-exchange-terminal/rates"
	"go-exchange-terminal/shell"
	"golang.org/x/term"
	"os"
)

func main() {
	bootstrap := level.NewFilter(log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr)), level.AllowWarn())

	cfg, err := config.Load(bootstrap)
	if err != nil {
		level.Error(bootstrap).Log("msg", "loading config", "err", err)
		os.Exit(1)
	}
	logger := cfg.Log.Logger(os.Stderr)

	seed, err := config.LoadSeed(cfg.SeedFile)
	if err != nil {
		level.Error(logger).Log("msg", "loading seed", "file", cfg.SeedFile, "err", err)
		os.Exit(1)
	}

	drifter := rates.NewDrifter(rates.NewSource(cfg.Drift.Seed), cfg.Drift.Band, log.With(logger, "component", "drift"))
	service, err := exchange.NewService(seed, drifter)
	if err != nil {
		level.Error(logger).Log("msg", "seeding terminal", "err", err)
		os.Exit(1)
	}
	service = exchange.NewLoggingService(log.With(logger, "component", "exchange"), service)

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	sh := shell.New(service, os.Stdin, os.Stdout, shell.WithBanner(interactive), shell.WithColor(interactive))
	if err := sh.Run(context.Background()); err != nil {
		level.Error(logger).Log("msg", "reading input", "err", err)
		os.Exit(1)
	}
}
