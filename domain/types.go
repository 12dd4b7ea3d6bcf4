package domain

import (
	"errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"strings"
)

// Scale number of minor units in one major unit
const Scale = 100

var (
	ErrPairNotFound              = errors.New("currency pair not found")
	ErrInsufficientUserFunds     = errors.New("insufficient user funds")
	ErrInsufficientTerminalFunds = errors.New("insufficient terminal funds")
	ErrInvalidAmount             = errors.New("amount must be positive")
	ErrInvalidRate               = errors.New("rate must be positive")
)

// Currency a currency code
type Currency string

// ParseCurrency normalises a currency code as typed by a user
func ParseCurrency(text string) Currency {
	return Currency(strings.ToUpper(strings.TrimSpace(text)))
}

// Amount a monetary amount in minor units
type Amount int64

// Major converts to major units, truncating the minor remainder.
func (a Amount) Major() int64 {
	return int64(a) / Scale
}

// Decimal the exact value in major units, for display
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// Rate an exchange rate in minor units
type Rate int64

// Major converts to major units, truncating the minor remainder.
func (r Rate) Major() int64 {
	return int64(r) / Scale
}

// Pair a directional currency pair. BASE/QUOTE and QUOTE/BASE are unrelated.
type Pair struct {
	Base  Currency
	Quote Currency
	Rate  Rate
}

// Key the lookup key of the pair
func (p Pair) Key() string {
	return PairKey(p.Base, p.Quote)
}

func PairKey(base Currency, quote Currency) string {
	return string(base) + "/" + string(quote)
}

type Balance struct {
	Currency Currency
	Amount   Amount
}

// Exchanged receipt of a completed exchange
type Exchanged struct {
	ID     uuid.UUID
	From   Currency
	To     Currency
	Rate   Rate
	Sold   Amount
	Bought Amount
}
