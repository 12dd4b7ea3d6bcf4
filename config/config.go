// Package config loads terminal settings from the environment and seed data from YAML.
package config

import (
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"io"
)

// Prefix of all environment variables, e.g. TERMINAL_LOG_LEVEL
const Prefix = "TERMINAL"

var validate = validator.New()

// Config process settings
type Config struct {
	// SeedFile YAML seed of balances and pairs. Empty means DefaultSeed.
	SeedFile string `envconfig:"SEED_FILE"`

	// HTTPAddr listen address of the HTTP server
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080" validate:"required"`

	Log   LogConfig   `envconfig:"LOG"`
	Drift DriftConfig `envconfig:"DRIFT"`
}

type LogConfig struct {
	Level  string `envconfig:"LEVEL" default:"warn" validate:"oneof=debug info warn error"`
	Format string `envconfig:"FORMAT" default:"logfmt" validate:"oneof=logfmt json"`
}

type DriftConfig struct {
	// Seed of the drift random source, 0 seeds from the clock
	Seed int64 `envconfig:"SEED"`

	// Band maximum relative move of a rate per exchange
	Band float64 `envconfig:"BAND" default:"0.05" validate:"gt=0,lt=1"`
}

// Load reads an optional .env file, then the environment, and validates the result.
func Load(logger log.Logger, envFile ...string) (*Config, error) {
	var err error
	if len(envFile) > 0 && envFile[0] != "" {
		err = godotenv.Load(envFile[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		level.Debug(logger).Log("msg", "no .env file loaded, using process environment", "err", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Logger builds the process logger writing to w
func (c LogConfig) Logger(w io.Writer) log.Logger {
	var logger log.Logger
	if c.Format == "json" {
		logger = log.NewJSONLogger(log.NewSyncWriter(w))
	} else {
		logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
	}
	logger = level.NewFilter(logger, allow(c.Level))
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func allow(lvl string) level.Option {
	switch lvl {
	case "debug":
		return level.AllowDebug()
	case "info":
		return level.AllowInfo()
	case "error":
		return level.AllowError()
	default:
		return level.AllowWarn()
	}
}
