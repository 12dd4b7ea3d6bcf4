package exchange

import (
	"context"
	"go-exchange-terminal/domain"
	"sync"
)

// lockingService decorates an exchange.Service so that calls run one at a time.
// Needed wherever the service is shared between goroutines, e.g. behind HTTP handlers.
type lockingService struct {
	next Service

	// lock serializes every call, reads included, since reads walk the same maps exchanges write
	lock sync.Mutex
}

// NewLockingService returns a Service safe for concurrent use
func NewLockingService(s Service) Service {
	return &lockingService{
		next: s,
	}
}

func (s *lockingService) Exchange(ctx context.Context, from domain.Currency, to domain.Currency, amount domain.Amount) (domain.Exchanged, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.next.Exchange(ctx, from, to, amount)
}

func (s *lockingService) UserBalances(ctx context.Context) []domain.Balance {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.next.UserBalances(ctx)
}

func (s *lockingService) TerminalBalances(ctx context.Context) []domain.Balance {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.next.TerminalBalances(ctx)
}

func (s *lockingService) Pairs(ctx context.Context) []domain.Pair {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.next.Pairs(ctx)
}
