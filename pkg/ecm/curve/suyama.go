package curve

import "math/big"

var (
	three   = big.NewInt(3)
	four    = big.NewInt(4)
	five    = big.NewInt(5)
	sixteen = big.NewInt(16)
)

// Suyama derives a Montgomery curve and a starting point on it from the
// seed sigma, using Suyama's one-parameter construction:
//
//	u = sigma^2 - 5,  v = 4*sigma
//	x0 = u^3,  z0 = v^3
//	a24 = (v-u)^3 * (3u+v) / (16*u^3*v)
//
// The construction guarantees (x0:z0) lies on the curve without ever
// extracting a square root. The single division is performed through
// Ring.Inverse: when the denominator shares a factor with n the gcd is
// returned as the third result and no curve is produced. A gcd strictly
// between 1 and n means curve generation itself has already found a
// factor; a gcd equal to n means the seed is degenerate and the attempt
// should be discarded. Callers should draw sigma from [6, n) so the
// numerators stay away from trivial zeros.
func Suyama(r *Ring, sigma *big.Int) (*Montgomery, Point, *big.Int) {
	u := r.Sub(r.Mul(sigma, sigma), five)
	v := r.Mul(four, sigma)

	u2 := r.Mul(u, u)
	u3 := r.Mul(u2, u)
	v3 := r.Mul(r.Mul(v, v), v)

	den := r.Mul(sixteen, r.Mul(u3, v))
	inv, gcd := r.Inverse(den)
	if gcd != nil {
		return nil, Point{}, gcd
	}

	d := r.Sub(v, u)
	d3 := r.Mul(r.Mul(d, d), d)
	num := r.Mul(d3, r.Add(r.Mul(three, u), v))
	a24 := r.Mul(num, inv)

	return NewMontgomery(r, a24), Point{X: u3, Z: v3}, nil
}
