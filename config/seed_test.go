package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
)

func TestLoadSeed_EmptyPathIsDefault(t *testing.T) {
	seed, err := LoadSeed("")

	require.Nil(t, err)
	assert.Equal(t, DefaultSeed(), seed)
}

func TestDefaultSeed_IsValid(t *testing.T) {
	assert.Nil(t, DefaultSeed().Validate())
}

func TestLoadSeed(t *testing.T) {
	t.Setenv("TEST_USER_RUB", "500")

	yaml := `
user:
  - currency: RUB
    amount: ${TEST_USER_RUB}
terminal:
  - currency: USD
    amount: 10000
  - currency: RUB
    amount: 0
pairs:
  - base: RUB
    quote: USD
    rate: 9000
`
	seed, err := LoadSeed(writeTempFile(t, "seed.yaml", yaml))

	require.Nil(t, err)
	assert.Equal(t, []BalanceSeed{{Currency: "RUB", Amount: 500}}, seed.User)
	assert.Equal(t, []BalanceSeed{{Currency: "USD", Amount: 10000}, {Currency: "RUB", Amount: 0}}, seed.Terminal)
	assert.Equal(t, []PairSeed{{Base: "RUB", Quote: "USD", Rate: 9000}}, seed.Pairs)
}

func TestLoadSeed_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no pairs", "user: []\n"},
		{"zero rate", "pairs:\n  - {base: RUB, quote: USD, rate: 0}\n"},
		{"lower case code", "pairs:\n  - {base: rub, quote: USD, rate: 10}\n"},
		{"missing quote", "pairs:\n  - {base: RUB, rate: 10}\n"},
		{"negative balance", "user:\n  - {currency: RUB, amount: -1}\npairs:\n  - {base: RUB, quote: USD, rate: 10}\n"},
		{"not yaml", "pairs: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSeed(writeTempFile(t, "seed.yaml", tt.yaml))
			assert.NotNil(t, err)
		})
	}
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NotNil(t, err)
}

func TestLoadSeed_ExampleMatchesDefault(t *testing.T) {
	seed, err := LoadSeed(filepath.Join("..", "seed.example.yaml"))

	require.Nil(t, err)
	assert.Equal(t, DefaultSeed(), seed)
}
