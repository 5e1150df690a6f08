package ecm

import (
	"context"
	"math"
	"math/big"

	"github.com/factorlab/ecm-go/pkg/ecm/curve"
)

// stage2 runs the improved standard continuation over the primes in
// (b1, b2], given in plist in ascending order. q is the stage-1 output.
// It returns the accumulated product of cross terms; the caller takes a
// single gcd with n at the end. Each prime p in the window is covered
// exactly once: p = rr + 2*delta for some giant step rr and baby index
// delta in [1, d].
func stage2(ctx context.Context, c *curve.Montgomery, q curve.Point, plist []uint64, b1, b2 uint64) (*big.Int, error) {
	r := c.Ring()
	g := big.NewInt(1)
	if len(plist) == 0 {
		return g, nil
	}

	// Giant steps advance by 2d from b = b1-1, so every window prime
	// must sit at an even offset delta*2 <= 2d from some step. d is
	// capped so the first back-step b-2d stays positive.
	d := uint64(math.Sqrt(float64(b2)))
	if lim := (b1 - 2) / 2; d > lim {
		d = lim
	}
	if d < 2 {
		return g, nil
	}

	// Baby steps: s[i] = 2i*q, with beta[i] = X_i * Z_i precomputed for
	// the cross-term identity.
	s := make([]curve.Point, d+1)
	beta := make([]*big.Int, d+1)
	s[1] = c.Double(q)
	s[2] = c.Double(s[1])
	beta[1] = r.Mul(s[1].X, s[1].Z)
	beta[2] = r.Mul(s[2].X, s[2].Z)
	for i := uint64(3); i <= d; i++ {
		s[i] = c.Add(s[i-1], s[1], s[i-2])
		beta[i] = r.Mul(s[i].X, s[i].Z)
	}

	b := b1 - 1
	tp := c.ScalarMultUint64(q, b-2*d)
	rp := c.ScalarMultUint64(q, b)

	pi := 0
	for rr := b; rr < b2; rr += 2 * d {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		alpha := r.Mul(rp.X, rp.Z)
		for pi < len(plist) && plist[pi] <= rr+2*d {
			delta := (plist[pi] - rr) / 2
			f := r.Sub(
				r.Mul(r.Sub(rp.X, s[delta].X), r.Add(rp.Z, s[delta].Z)),
				alpha,
			)
			f = r.Add(f, beta[delta])
			g = r.Mul(g, f)
			pi++
		}
		tp, rp = rp, c.Add(rp, s[d], tp)
	}
	return g, nil
}
