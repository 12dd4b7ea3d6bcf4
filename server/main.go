package main

import (
	"context"
	"errors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-exchange-terminal/config"
	"go-exchange-terminal/exchange"
	"go-exchange-terminal/http"
	"go-exchange-terminal/rates"
	"os"
	"os/signal"
	"syscall"
	"time"

	nhttp "net/http"
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
	service = exchange.NewLockingService(service)

	handler := http.NewServer(service, log.With(logger, "component", "http"))
	server := &nhttp.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdown); err != nil {
			level.Error(logger).Log("msg", "shutting down", "err", err)
		}
	}()

	level.Info(logger).Log("msg", "listening", "addr", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, nhttp.ErrServerClosed) {
		level.Error(logger).Log("msg", "serving", "err", err)
		os.Exit(1)
	}
}
