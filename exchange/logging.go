package exchange

import (
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-exchange-terminal/domain"
	"time"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Exchange(ctx context.Context, from domain.Currency, to domain.Currency, amount domain.Amount) (ex domain.Exchanged, err error) {
	defer func(begin time.Time) {
		level.Info(s.logger).Log(
			"method", "exchange",
			"from", from,
			"to", to,
			"amount", amount,
			"id", ex.ID,
			"rate", ex.Rate,
			"bought", ex.Bought,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Exchange(ctx, from, to, amount)
}

func (s *loggingService) UserBalances(ctx context.Context) (balances []domain.Balance) {
	defer func(begin time.Time) {
		level.Debug(s.logger).Log(
			"method", "user_balances",
			"currencies", len(balances),
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.UserBalances(ctx)
}

func (s *loggingService) TerminalBalances(ctx context.Context) (balances []domain.Balance) {
	defer func(begin time.Time) {
		level.Debug(s.logger).Log(
			"method", "terminal_balances",
			"currencies", len(balances),
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.TerminalBalances(ctx)
}

func (s *loggingService) Pairs(ctx context.Context) (pairs []domain.Pair) {
	defer func(begin time.Time) {
		level.Debug(s.logger).Log(
			"method", "pairs",
			"pairs", len(pairs),
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Pairs(ctx)
}
