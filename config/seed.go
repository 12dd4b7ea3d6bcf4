package config

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
)

// Seed opening balances and pairs of a terminal. Amounts and rates are minor units.
type Seed struct {
	User     []BalanceSeed `yaml:"user" validate:"dive"`
	Terminal []BalanceSeed `yaml:"terminal" validate:"dive"`
	Pairs    []PairSeed    `yaml:"pairs" validate:"required,min=1,dive"`
}

type BalanceSeed struct {
	Currency string `yaml:"currency" validate:"required,uppercase"`
	Amount   int64  `yaml:"amount" validate:"gte=0"`
}

type PairSeed struct {
	Base  string `yaml:"base" validate:"required,uppercase"`
	Quote string `yaml:"quote" validate:"required,uppercase"`
	Rate  int64  `yaml:"rate" validate:"gt=0"`
}

// DefaultSeed the built-in opening state: a user holding 1,000,000 RUB and a terminal
// stocked with RUB, USD, EUR, USDT and 1.5 BTC.
func DefaultSeed() *Seed {
	return &Seed{
		User: []BalanceSeed{
			{Currency: "RUB", Amount: 1000000 * 100},
		},
		Terminal: []BalanceSeed{
			{Currency: "RUB", Amount: 10000 * 100},
			{Currency: "USD", Amount: 1000 * 100},
			{Currency: "EUR", Amount: 1000 * 100},
			{Currency: "USDT", Amount: 1000 * 100},
			{Currency: "BTC", Amount: 150},
		},
		Pairs: []PairSeed{
			{Base: "RUB", Quote: "USD", Rate: 90 * 100},
			{Base: "RUB", Quote: "EUR", Rate: 100 * 100},
			{Base: "USD", Quote: "EUR", Rate: 120},
			{Base: "USD", Quote: "USDT", Rate: 1 * 100},
			{Base: "USD", Quote: "BTC", Rate: 5000 * 100},
		},
	}
}

// LoadSeed reads a YAML seed, expanding ${VAR} environment variables.
// An empty path returns DefaultSeed.
func LoadSeed(path string) (*Seed, error) {
	if path == "" {
		return DefaultSeed(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &seed); err != nil {
		return nil, fmt.Errorf("parse seed yaml: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

func (s *Seed) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validate seed: %w", err)
	}
	return nil
}
