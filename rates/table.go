package rates

import (
	"fmt"
	"go-exchange-terminal/domain"
	"io"
)

// Table of currency pairs keyed by BASE/QUOTE. No inverse pairs are derived.
// A Table is not safe for concurrent use.
type Table struct {
	// pairs maps a pair key to the registered pair
	pairs map[string]*domain.Pair

	// order pair keys in registration order
	order []string
}

// NewTable constructs an empty Table
func NewTable() *Table {
	return &Table{
		pairs: map[string]*domain.Pair{},
	}
}

// Register adds a pair, or replaces the rate of an already registered pair.
func (t *Table) Register(base domain.Currency, quote domain.Currency, rate domain.Rate) error {
	if rate <= 0 {
		return fmt.Errorf("register [%v]: %w", domain.PairKey(base, quote), domain.ErrInvalidRate)
	}
	key := domain.PairKey(base, quote)
	if p, ok := t.pairs[key]; ok {
		p.Rate = rate
		return nil
	}
	t.pairs[key] = &domain.Pair{Base: base, Quote: quote, Rate: rate}
	t.order = append(t.order, key)
	return nil
}

// Lookup finds the pair selling base for quote.
// The returned pair is owned by the table; changing its rate changes the table.
func (t *Table) Lookup(base domain.Currency, quote domain.Currency) (*domain.Pair, error) {
	key := domain.PairKey(base, quote)
	p, ok := t.pairs[key]
	if !ok {
		return nil, fmt.Errorf("lookup [%v]: %w", key, domain.ErrPairNotFound)
	}
	return p, nil
}

// Pairs a snapshot of all pairs in registration order
func (t *Table) Pairs() []domain.Pair {
	pairs := make([]domain.Pair, 0, len(t.order))
	t.Each(func(p *domain.Pair) {
		pairs = append(pairs, *p)
	})
	return pairs
}

// Each calls fn for every registered pair in registration order
func (t *Table) Each(fn func(p *domain.Pair)) {
	for _, key := range t.order {
		fn(t.pairs[key])
	}
}

func (t *Table) Len() int {
	return len(t.order)
}

// Display writes pairs and rates in major units
func (t *Table) Display(out io.Writer) error {
	return Display(out, t.Pairs())
}

// Display writes a listing of pairs with rates in major units. Minor units are truncated.
func Display(out io.Writer, pairs []domain.Pair) error {
	if _, err := fmt.Fprintln(out, "Available currency pairs and rates:"); err != nil {
		return fmt.Errorf("display pairs: %w", err)
	}
	for _, p := range pairs {
		if _, err := fmt.Fprintf(out, "%v: %d\n", p.Key(), p.Rate.Major()); err != nil {
			return fmt.Errorf("display pairs [%v]: %w", p.Key(), err)
		}
	}
	return nil
}
