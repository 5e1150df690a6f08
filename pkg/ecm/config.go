package ecm

import (
	"math/big"

	"github.com/factorlab/ecm-go/pkg/ecm/logging"
)

const (
	// DefaultMaxAttempts bounds the number of curves tried per request.
	DefaultMaxAttempts = 200

	// escalationPeriod is the number of failed attempts after which the
	// default schedule doubles the stage bounds. Within a plateau the
	// cached prime list is reused.
	escalationPeriod = 30

	// smallPrimeBound delimits the trial-division pre-filter.
	smallPrimeBound = 1000

	// primalityRounds is passed to big.Int.ProbablyPrime.
	primalityRounds = 20
)

// Bounds is the (B1, B2) pair delimiting the stage-1 and stage-2 prime
// ranges of one curve attempt.
type Bounds struct {
	B1, B2 uint64
}

// normalized rounds odd bounds up to even (the stage-2 continuation
// pairs primes by odd offsets around even multiples) and enforces
// B2 >= B1.
func (b Bounds) normalized() Bounds {
	if b.B1 < 4 {
		b.B1 = 4
	}
	b.B1 += b.B1 & 1
	b.B2 += b.B2 & 1
	if b.B2 < b.B1 {
		b.B2 = b.B1
	}
	return b
}

// Config carries the knobs of a factoring request. The zero value is
// usable: every field has a sensible default.
type Config struct {
	// MaxAttempts is the ceiling on curve attempts. Defaults to
	// DefaultMaxAttempts.
	MaxAttempts int

	// Bounds is the initial (B1, B2) pair. The zero value selects
	// DefaultBounds for the number being factored.
	Bounds Bounds

	// Schedule maps an attempt index to the bounds for that attempt,
	// starting from the initial bounds. It must be a pure function of
	// its arguments so parallel and sequential runs cover the same
	// search space. Defaults to DefaultSchedule.
	Schedule func(attempt int, initial Bounds) Bounds

	// Seeds supplies the curve seed for each attempt. Defaults to
	// RandomSeeds; tests use DeterministicSeeds for reproducibility.
	Seeds SeedSource

	// Parallelism is the number of concurrent curve attempts. 1 (the
	// default) gives strictly sequential, deterministic behavior.
	Parallelism int

	// Observer, when set, is invoked at the start of every attempt with
	// the attempt index and its bounds. Purely informational; it has no
	// control over the algorithm.
	Observer func(attempt int, bounds Bounds)

	// Logger receives attempt-level diagnostics. Defaults to a no-op
	// logger; pass logging.New(nil) to bind slog.Default().
	Logger logging.Logger
}

func (c Config) withDefaults(n *big.Int) Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.Bounds == (Bounds{}) {
		c.Bounds = DefaultBounds(n)
	}
	c.Bounds = c.Bounds.normalized()
	if c.Schedule == nil {
		c.Schedule = DefaultSchedule
	}
	if c.Seeds == nil {
		c.Seeds = RandomSeeds()
	}
	if c.Parallelism <= 0 {
		c.Parallelism = 1
	}
	if c.Logger == nil {
		c.Logger = logging.Discard()
	}
	return c
}

// DefaultBounds picks a stage-1 bound from the decimal size of n, with
// B2 = 100*B1. The table trades curve count against per-curve cost for
// the factor sizes typically hiding in numbers of that magnitude.
func DefaultBounds(n *big.Int) Bounds {
	digits := len(n.Text(10))
	var b1 uint64
	switch {
	case digits <= 15:
		b1 = 2000
	case digits <= 20:
		b1 = 11000
	case digits <= 25:
		b1 = 50000
	case digits <= 30:
		b1 = 250000
	case digits <= 35:
		b1 = 1000000
	case digits <= 40:
		b1 = 3000000
	case digits <= 45:
		b1 = 11000000
	case digits <= 50:
		b1 = 44000000
	case digits <= 55:
		b1 = 110000000
	case digits <= 60:
		b1 = 260000000
	case digits <= 65:
		b1 = 850000000
	default:
		b1 = 2900000000
	}
	return Bounds{B1: b1, B2: 100 * b1}
}

// DefaultSchedule doubles both bounds every escalationPeriod failed
// attempts: early attempts stay cheap, later ones trade more work per
// curve for fewer curves.
func DefaultSchedule(attempt int, initial Bounds) Bounds {
	shift := uint(0)
	if attempt > 0 {
		shift = uint(attempt-1) / escalationPeriod
	}
	if shift > 16 {
		shift = 16
	}
	return Bounds{B1: initial.B1 << shift, B2: initial.B2 << shift}
}
