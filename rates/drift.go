package rates

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-exchange-terminal/domain"
	"math/rand/v2"
	"time"
)

// DefaultBand the default maximum relative drift of a rate, either way
const DefaultBand = 0.05

// MinRate the floor drift never goes below
const MinRate domain.Rate = 1

// Source of uniformly distributed floats in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded Source. A zero seed seeds from the clock.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}

// Drifter perturbs rates to emulate market movement
type Drifter struct {
	source Source

	// band rates move by less than this fraction either way
	band float64

	logger log.Logger
}

// NewDrifter constructs a valid Drifter. band must be in (0, 1).
func NewDrifter(source Source, band float64, logger log.Logger) *Drifter {
	return &Drifter{
		source: source,
		band:   band,
		logger: logger,
	}
}

// Drift moves every rate in the table by an independent random percentage in (-band, band).
// The new rate is truncated to whole minor units and never drops below MinRate.
func (d *Drifter) Drift(table *Table) {
	table.Each(func(p *domain.Pair) {
		old := p.Rate
		p.Rate = d.next(old)
		level.Debug(d.logger).Log("msg", "rate drifted", "pair", p.Key(), "from", old, "to", p.Rate)
	})
}

func (d *Drifter) next(rate domain.Rate) domain.Rate {
	next := domain.Rate(float64(rate) * (1 + d.change()))
	if next < MinRate {
		return MinRate
	}
	return next
}

// change draws a fraction in the open interval (-band, band)
func (d *Drifter) change() float64 {
	for {
		p := (2*d.source.Float64() - 1) * d.band
		if p > -d.band {
			return p
		}
	}
}
