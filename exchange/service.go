package exchange

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"go-exchange-terminal/config"
	"go-exchange-terminal/domain"
	"go-exchange-terminal/rates"
	"go-exchange-terminal/wallet"
)

// Service interface of an exchange terminal
type Service interface {
	// Exchange sells amount of from for to at the current rate of the from/to pair.
	Exchange(ctx context.Context, from domain.Currency, to domain.Currency, amount domain.Amount) (domain.Exchanged, error)

	UserBalances(ctx context.Context) []domain.Balance
	TerminalBalances(ctx context.Context) []domain.Balance
	Pairs(ctx context.Context) []domain.Pair
}

// Drifter moves rates after each completed exchange
type Drifter interface {
	Drift(table *rates.Table)
}

// terminal owns the state of one exchange terminal. It is not safe for concurrent use,
// see NewLockingService.
type terminal struct {
	// user wallet of the customer
	user *wallet.Wallet

	// terminal wallet of the operator, the counterparty of every exchange
	terminal *wallet.Wallet

	rates *rates.Table

	drifter Drifter
}

// NewService constructs a terminal with the opening state in seed
func NewService(seed *config.Seed, drifter Drifter) (Service, error) {
	t := &terminal{
		user:     wallet.New(),
		terminal: wallet.New(),
		rates:    rates.NewTable(),
		drifter:  drifter,
	}
	for _, b := range seed.User {
		t.user.SetBalance(domain.Currency(b.Currency), domain.Amount(b.Amount))
	}
	for _, b := range seed.Terminal {
		t.terminal.SetBalance(domain.Currency(b.Currency), domain.Amount(b.Amount))
	}
	for _, p := range seed.Pairs {
		err := t.rates.Register(domain.Currency(p.Base), domain.Currency(p.Quote), domain.Rate(p.Rate))
		if err != nil {
			return nil, fmt.Errorf("seeding terminal: %w", err)
		}
	}
	return t, nil
}

// Exchange moves amount of from out of the user wallet into the terminal wallet, and the
// converted amount of to the other way. Either all four balances change or none do.
// Rates drift after, and only after, a completed exchange.
func (t *terminal) Exchange(_ context.Context, from domain.Currency, to domain.Currency, amount domain.Amount) (domain.Exchanged, error) {
	if amount <= 0 {
		return domain.Exchanged{}, fmt.Errorf("exchange [%v]: %w", domain.PairKey(from, to), domain.ErrInvalidAmount)
	}

	pair, err := t.rates.Lookup(from, to)
	if err != nil {
		return domain.Exchanged{}, fmt.Errorf("exchange: %w", err)
	}
	rate := pair.Rate

	// truncate to whole units of to before rescaling, small amounts convert to nothing
	bought := domain.Amount(int64(amount)/int64(rate)) * domain.Scale

	if t.user.Balance(from) < amount {
		return domain.Exchanged{}, fmt.Errorf("exchange [%v]: %w", pair.Key(), domain.ErrInsufficientUserFunds)
	}
	if t.terminal.Balance(to) < bought {
		return domain.Exchanged{}, fmt.Errorf("exchange [%v]: %w", pair.Key(), domain.ErrInsufficientTerminalFunds)
	}

	// both subtractions are covered by the checks above
	t.user.Subtract(from, amount)
	t.user.Add(to, bought)
	t.terminal.Subtract(to, bought)
	t.terminal.Add(from, amount)

	t.drifter.Drift(t.rates)

	return domain.Exchanged{
		ID:     uuid.New(),
		From:   from,
		To:     to,
		Rate:   rate,
		Sold:   amount,
		Bought: bought,
	}, nil
}

func (t *terminal) UserBalances(_ context.Context) []domain.Balance {
	return t.user.Balances()
}

func (t *terminal) TerminalBalances(_ context.Context) []domain.Balance {
	return t.terminal.Balances()
}

func (t *terminal) Pairs(_ context.Context) []domain.Pair {
	return t.rates.Pairs()
}
