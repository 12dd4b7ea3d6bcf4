// Package shell is the interactive text menu in front of an exchange terminal.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"github.com/fatih/color"
	"go-exchange-terminal/domain"
	"go-exchange-terminal/exchange"
	"go-exchange-terminal/rates"
	"go-exchange-terminal/wallet"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNotANumber  = errors.New("invalid amount")
	ErrNotPositive = errors.New("amount must be positive")
)

const banner = "Welcome to the currency exchange terminal!"

// Shell reads menu choices line by line and calls into an exchange.Service
type Shell struct {
	service exchange.Service
	in      *bufio.Scanner
	out     io.Writer

	// banner whether to greet on start
	banner bool

	success *color.Color
	failure *color.Color
}

type Option func(*Shell)

// WithBanner greets the user before the first menu
func WithBanner(on bool) Option {
	return func(s *Shell) {
		s.banner = on
	}
}

// WithColor forces colored outcome messages on or off
func WithColor(on bool) Option {
	return func(s *Shell) {
		if on {
			s.success.EnableColor()
			s.failure.EnableColor()
		} else {
			s.success.DisableColor()
			s.failure.DisableColor()
		}
	}
}

// New constructs a Shell. By default there is no banner and color follows fatih/color's
// detection of the process' stdout.
func New(service exchange.Service, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the menu until the user exits or input ends.
// Returns an error only if reading input fails.
func (s *Shell) Run(ctx context.Context) error {
	if s.banner {
		fmt.Fprintln(s.out, banner)
	}

	for {
		fmt.Fprintln(s.out, "\nChoose an action:")
		fmt.Fprintln(s.out, "1. Show balance")
		fmt.Fprintln(s.out, "2. Show currency pairs")
		fmt.Fprintln(s.out, "3. Exchange")
		fmt.Fprintln(s.out, "4. Exit")

		choice, ok := s.prompt("Enter action number: ")
		if !ok {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			_ = wallet.Display(s.out, s.service.UserBalances(ctx))
		case "2":
			_ = rates.Display(s.out, s.service.Pairs(ctx))
		case "3":
			if !s.exchange(ctx) {
				fmt.Fprintln(s.out)
				return s.in.Err()
			}
		case "4":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			s.failure.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

// exchange prompts for an exchange and reports its outcome.
// Returns false if input ended mid-way.
func (s *Shell) exchange(ctx context.Context) bool {
	text, ok := s.prompt("Enter the currency to sell (e.g. RUB): ")
	if !ok {
		return false
	}
	from := domain.ParseCurrency(text)

	text, ok = s.prompt("Enter the currency to buy (e.g. USD): ")
	if !ok {
		return false
	}
	to := domain.ParseCurrency(text)

	text, ok = s.prompt(fmt.Sprintf("Enter the amount in %v: ", from))
	if !ok {
		return false
	}
	amount, err := ParseAmount(text)
	if err != nil {
		if errors.Is(err, ErrNotPositive) {
			s.failure.Fprintln(s.out, "Amount must be positive.")
		} else {
			s.failure.Fprintln(s.out, "Invalid amount.")
		}
		return true
	}

	ex, err := s.service.Exchange(ctx, from, to, amount)
	switch {
	case err == nil:
		s.success.Fprintf(s.out, "Exchange completed: sold %v %v, received %v %v (receipt %v).\n",
			ex.Sold.Decimal().StringFixed(2), ex.From, ex.Bought.Decimal().StringFixed(2), ex.To, ex.ID)
	case errors.Is(err, domain.ErrPairNotFound):
		s.failure.Fprintf(s.out, "Currency pair %v not found.\n", domain.PairKey(from, to))
	case errors.Is(err, domain.ErrInsufficientUserFunds):
		s.failure.Fprintln(s.out, "Insufficient user funds.")
	case errors.Is(err, domain.ErrInsufficientTerminalFunds):
		s.failure.Fprintln(s.out, "Insufficient funds in the terminal.")
	default:
		s.failure.Fprintf(s.out, "Exchange failed: %v\n", err)
	}
	return true
}

func (s *Shell) prompt(text string) (string, bool) {
	fmt.Fprint(s.out, text)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// ParseAmount parses a whole number of major units, allowing ' as a digit separator,
// and returns it in minor units.
func ParseAmount(text string) (domain.Amount, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), "'", "")
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount [%v]: %w", text, ErrNotANumber)
	}
	if n <= 0 {
		return 0, fmt.Errorf("parse amount [%v]: %w", text, ErrNotPositive)
	}
	if n > math.MaxInt64/domain.Scale {
		return 0, fmt.Errorf("parse amount [%v]: too large: %w", text, ErrNotANumber)
	}
	return domain.Amount(n * domain.Scale), nil
}
