package ecm

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/factorlab/ecm-go/internal/primes"
	"github.com/factorlab/ecm-go/pkg/ecm/curve"
)

// Factor searches for a single nontrivial divisor of n.
//
// The sign of n is ignored. n must satisfy |n| > 1 or ErrInvalidInput is
// returned. Small factors are removed by trial division up to 1000, and
// probable primes are reported as StatusInputPrime before any curve
// work. The remaining composites go through up to cfg.MaxAttempts curve
// attempts; exhausting the budget, or cancellation of ctx, yields
// StatusNoFactorFound with a nil error.
func Factor(ctx context.Context, n *big.Int, cfg Config) (Result, error) {
	if n == nil {
		return Result{}, ErrInvalidInput
	}
	n = new(big.Int).Abs(n)
	if n.Cmp(one) <= 0 {
		return Result{}, ErrInvalidInput
	}
	cfg = cfg.withDefaults(n)

	if f := trialDivide(n); f != nil {
		return Result{
			Status:   StatusFactorFound,
			Factor:   f,
			Cofactor: new(big.Int).Div(n, f),
		}, nil
	}
	if n.ProbablyPrime(primalityRounds) {
		return Result{Status: StatusInputPrime}, nil
	}

	o := &orchestrator{n: n, cfg: cfg}
	return o.run(ctx)
}

// trialDivide returns the smallest prime divisor of n below
// smallPrimeBound, or nil. A divisor equal to n itself is not a
// nontrivial factor and is skipped.
func trialDivide(n *big.Int) *big.Int {
	rem := new(big.Int)
	for _, q := range primes.UpTo(smallPrimeBound) {
		p := new(big.Int).SetUint64(q)
		if p.Cmp(n) >= 0 {
			return nil
		}
		if rem.Mod(n, p).Sign() == 0 {
			return p
		}
	}
	return nil
}

// orchestrator fans curve attempts out over an errgroup. Attempt
// indices are drawn from an atomic counter so the schedule is covered
// exactly once regardless of Parallelism; the first worker to find a
// factor records it and cancels the rest.
type orchestrator struct {
	n   *big.Int
	cfg Config

	mu       sync.Mutex
	factor   *big.Int
	next     atomic.Int64
	consumed atomic.Int64
}

func (o *orchestrator) run(ctx context.Context) (Result, error) {
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(o.cfg.Parallelism)

	for w := 0; w < o.cfg.Parallelism; w++ {
		grp.Go(func() error {
			for {
				attempt := int(o.next.Add(1))
				if attempt > o.cfg.MaxAttempts {
					return nil
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				o.consumed.Add(1)

				bounds := o.cfg.Schedule(attempt, o.cfg.Bounds).normalized()
				if o.cfg.Observer != nil {
					o.cfg.Observer(attempt, bounds)
				}
				f, err := o.attempt(gctx, attempt, bounds)
				if err != nil {
					return err
				}
				if f != nil {
					o.mu.Lock()
					if o.factor == nil {
						o.factor = f
					}
					o.mu.Unlock()
					return errFactorFound
				}
			}
		})
	}

	err := grp.Wait()
	res := Result{Attempts: int(o.consumed.Load())}
	if o.factor != nil {
		res.Status = StatusFactorFound
		res.Factor = o.factor
		res.Cofactor = new(big.Int).Div(o.n, o.factor)
		return res, nil
	}
	// Cancellation and budget exhaustion are both expected outcomes.
	switch {
	case err == nil, errors.Is(err, errFactorFound),
		errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
	default:
		return Result{}, err
	}
	res.Status = StatusNoFactorFound
	return res, nil
}

// attempt runs one full curve attempt: seed, Suyama curve generation,
// stage 1, stage 2. It returns a nontrivial divisor of n, or nil when
// the curve yielded nothing. Degenerate gcds (equal to n) abandon the
// curve, not the search.
func (o *orchestrator) attempt(ctx context.Context, attempt int, bounds Bounds) (*big.Int, error) {
	log := o.cfg.Logger
	sigma, err := o.cfg.Seeds.Sigma(o.n)
	if err != nil {
		return nil, err
	}
	log.Debug(ctx, "curve attempt",
		"attempt", attempt, "b1", bounds.B1, "b2", bounds.B2, "sigma", sigma.String())

	r := curve.NewRing(o.n)
	c, p, g := curve.Suyama(r, sigma)
	if g != nil {
		switch classifyGCD(g, o.n) {
		case gcdFactor:
			log.Debug(ctx, "factor from curve generation", "attempt", attempt)
			return g, nil
		default:
			return nil, nil
		}
	}

	p, err = stage1(ctx, c, p, primes.UpTo(bounds.B1), bounds.B1)
	if err != nil {
		return nil, err
	}
	affine, g := c.Normalize(p)
	if g != nil {
		switch classifyGCD(g, o.n) {
		case gcdFactor:
			log.Debug(ctx, "factor in stage 1", "attempt", attempt)
			return g, nil
		default:
			return nil, nil
		}
	}

	acc, err := stage2(ctx, c, affine, primes.Between(bounds.B1, bounds.B2), bounds.B1, bounds.B2)
	if err != nil {
		return nil, err
	}
	if g = r.GCD(acc); classifyGCD(g, o.n) == gcdFactor {
		log.Debug(ctx, "factor in stage 2", "attempt", attempt)
		return g, nil
	}
	return nil, nil
}
