package http

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-exchange-terminal/domain"
	"go-exchange-terminal/exchange"
	"math"
	"net/http"
)

// Server dependencies for HTTP Server functions
type Server struct {
	// Service must be safe for concurrent use, see exchange.NewLockingService
	Service exchange.Service
	Logger  log.Logger
	router  *http.ServeMux
}

func NewServer(s exchange.Service, logger log.Logger) *Server {
	server := &Server{
		Service: s,
		Logger:  logger,
		router:  http.NewServeMux(),
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("GET /api/balances", s.balances(func(ctx context.Context) []domain.Balance {
		return s.Service.UserBalances(ctx)
	}))
	s.router.Handle("GET /api/terminal/balances", s.balances(func(ctx context.Context) []domain.Balance {
		return s.Service.TerminalBalances(ctx)
	}))
	s.router.Handle("GET /api/pairs", s.pairs())
	s.router.Handle("POST /api/exchange", s.exchange())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// money an amount in minor units along with its value in major units
type money struct {
	Amount  domain.Amount `json:"amount"`
	Display string        `json:"display"`
}

func toMoney(a domain.Amount) money {
	return money{Amount: a, Display: a.Decimal().StringFixed(2)}
}

// balances produces HTTP handler listing the balances of one wallet
func (s *Server) balances(list func(ctx context.Context) []domain.Balance) http.HandlerFunc {

	type balance struct {
		Currency domain.Currency `json:"currency"`
		money
	}

	type response struct {
		Balances []balance `json:"balances"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		resp := response{Balances: []balance{}}
		for _, b := range list(r.Context()) {
			resp.Balances = append(resp.Balances, balance{Currency: b.Currency, money: toMoney(b.Amount)})
		}
		s.encode(rw, http.StatusOK, &resp)
	}
}

// pairs produces HTTP handler listing currency pairs and their current rates
func (s *Server) pairs() http.HandlerFunc {

	type pair struct {
		Pair  string          `json:"pair"`
		Base  domain.Currency `json:"base"`
		Quote domain.Currency `json:"quote"`
		Rate  money           `json:"rate"`
	}

	type response struct {
		Pairs []pair `json:"pairs"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		resp := response{Pairs: []pair{}}
		for _, p := range s.Service.Pairs(r.Context()) {
			resp.Pairs = append(resp.Pairs, pair{
				Pair:  p.Key(),
				Base:  p.Base,
				Quote: p.Quote,
				Rate:  toMoney(domain.Amount(p.Rate)),
			})
		}
		s.encode(rw, http.StatusOK, &resp)
	}
}

// exchange produces HTTP handler for currency exchanges
func (s *Server) exchange() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients, amount in major units
	type request struct {
		FromCurrency string
		ToCurrency   string
		Amount       int64
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		ID     string          `json:"id"`
		From   domain.Currency `json:"from"`
		To     domain.Currency `json:"to"`
		Rate   money           `json:"rate"`
		Sold   money           `json:"sold"`
		Bought money           `json:"bought"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.fail(rw, http.StatusBadRequest, "invalid json")
			return
		}
		if req.Amount <= 0 || req.Amount > math.MaxInt64/domain.Scale {
			s.fail(rw, http.StatusBadRequest, "invalid amount")
			return
		}

		from := domain.ParseCurrency(req.FromCurrency)
		to := domain.ParseCurrency(req.ToCurrency)
		ex, err := s.Service.Exchange(r.Context(), from, to, domain.Amount(req.Amount*domain.Scale))
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrPairNotFound):
			s.fail(rw, http.StatusNotFound, "currency pair not found")
			return
		case errors.Is(err, domain.ErrInsufficientUserFunds):
			s.fail(rw, http.StatusConflict, "insufficient user funds")
			return
		case errors.Is(err, domain.ErrInsufficientTerminalFunds):
			s.fail(rw, http.StatusConflict, "insufficient terminal funds")
			return
		case errors.Is(err, domain.ErrInvalidAmount):
			s.fail(rw, http.StatusBadRequest, "invalid amount")
			return
		default:
			level.Error(s.Logger).Log("msg", "exchange failed", "from", from, "to", to, "err", err)
			s.fail(rw, http.StatusInternalServerError, "failed exchange")
			return
		}

		s.encode(rw, http.StatusOK, &response{
			ID:     ex.ID.String(),
			From:   ex.From,
			To:     ex.To,
			Rate:   toMoney(domain.Amount(ex.Rate)),
			Sold:   toMoney(ex.Sold),
			Bought: toMoney(ex.Bought),
		})
	}
}

func (s *Server) encode(rw http.ResponseWriter, status int, v interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(v); err != nil {
		level.Error(s.Logger).Log("msg", "failed json encoding", "err", err)
	}
}

func (s *Server) fail(rw http.ResponseWriter, status int, msg string) {
	s.encode(rw, status, map[string]string{"error": msg})
}
