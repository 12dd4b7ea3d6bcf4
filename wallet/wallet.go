package wallet

import (
	"fmt"
	"go-exchange-terminal/domain"
	"io"
)

// Wallet balances per currency in minor units.
// A Wallet is not safe for concurrent use.
type Wallet struct {
	// balances maps a currency to its balance
	balances map[domain.Currency]domain.Amount

	// order currencies in the order they were first set, for listings
	order []domain.Currency
}

// New constructs an empty Wallet
func New() *Wallet {
	return &Wallet{
		balances: map[domain.Currency]domain.Amount{},
	}
}

// SetBalance overwrites the balance of currency. The amount is not validated.
func (w *Wallet) SetBalance(currency domain.Currency, amount domain.Amount) {
	if _, ok := w.balances[currency]; !ok {
		w.order = append(w.order, currency)
	}
	w.balances[currency] = amount
}

// Balance returns the balance of currency, zero if it was never set
func (w *Wallet) Balance(currency domain.Currency) domain.Amount {
	return w.balances[currency]
}

func (w *Wallet) Add(currency domain.Currency, amount domain.Amount) {
	w.SetBalance(currency, w.Balance(currency)+amount)
}

// Subtract takes amount from the balance of currency if the balance covers it.
// Returns false, leaving the balance untouched, if it doesn't.
func (w *Wallet) Subtract(currency domain.Currency, amount domain.Amount) bool {
	current := w.Balance(currency)
	if current < amount {
		return false
	}
	w.SetBalance(currency, current-amount)
	return true
}

// Balances a snapshot of all balances in the order currencies were first set
func (w *Wallet) Balances() []domain.Balance {
	balances := make([]domain.Balance, 0, len(w.order))
	for _, c := range w.order {
		balances = append(balances, domain.Balance{Currency: c, Amount: w.balances[c]})
	}
	return balances
}

// Display writes balances in major units
func (w *Wallet) Display(out io.Writer) error {
	return Display(out, w.Balances())
}

// Display writes a listing of balances in major units. Minor units are truncated.
func Display(out io.Writer, balances []domain.Balance) error {
	if _, err := fmt.Fprintln(out, "Balance:"); err != nil {
		return fmt.Errorf("display balances: %w", err)
	}
	for _, b := range balances {
		if _, err := fmt.Fprintf(out, "%v: %d\n", b.Currency, b.Amount.Major()); err != nil {
			return fmt.Errorf("display balances [%v]: %w", b.Currency, err)
		}
	}
	return nil
}
