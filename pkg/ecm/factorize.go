package ecm

import (
	"context"
	"math/big"
	"sort"

	"github.com/factorlab/ecm-go/internal/primes"
)

// Factorize drives Factor to a complete factorization of n, returning
// the prime factors in ascending order with multiplicity. It returns
// ErrAttemptsExhausted when any composite piece survives its attempt
// budget; the budget in cfg applies to each piece independently.
func Factorize(ctx context.Context, n *big.Int, cfg Config) ([]*big.Int, error) {
	if n == nil {
		return nil, ErrInvalidInput
	}
	n = new(big.Int).Abs(n)
	if n.Cmp(one) <= 0 {
		return nil, ErrInvalidInput
	}

	var factors []*big.Int

	// Strip small primes completely first so the curve machinery only
	// ever sees composites with no tiny factors.
	rem := new(big.Int)
	quo := new(big.Int)
	for _, q := range primes.UpTo(smallPrimeBound) {
		p := new(big.Int).SetUint64(q)
		for quo.DivMod(n, p, rem); rem.Sign() == 0; quo.DivMod(n, p, rem) {
			factors = append(factors, new(big.Int).Set(p))
			n.Set(quo)
		}
		if n.Cmp(one) == 0 {
			break
		}
	}

	// Split the remaining composites recursively. Factor reports primes
	// via StatusInputPrime, so the stack only ever holds numbers > 1.
	pending := []*big.Int{}
	if n.Cmp(one) > 0 {
		pending = append(pending, n)
	}
	for len(pending) > 0 {
		m := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		res, err := Factor(ctx, m, cfg)
		if err != nil {
			return nil, err
		}
		switch res.Status {
		case StatusInputPrime:
			factors = append(factors, m)
		case StatusFactorFound:
			pending = append(pending, res.Factor, res.Cofactor)
		default:
			return nil, ErrAttemptsExhausted
		}
	}

	sort.Slice(factors, func(i, j int) bool { return factors[i].Cmp(factors[j]) < 0 })
	return factors, nil
}
