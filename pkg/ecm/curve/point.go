package curve

import "math/big"

// Point is an x-only projective point (X:Z) on a Montgomery curve
// reduced modulo the ring modulus. Z = 0 denotes the identity. Points
// are value types; operations return fresh points and never mutate
// their inputs.
type Point struct {
	X, Z *big.Int
}

// NewPoint builds a point from raw coordinates, reducing them into the
// ring.
func NewPoint(r *Ring, x, z *big.Int) Point {
	return Point{X: r.Mod(x), Z: r.Mod(z)}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.Z.Sign() == 0
}

// Montgomery is a Montgomery-form curve B*y^2*z = x^3 + A*x^2*z + x*z^2
// over Z/nZ, carried around as the single constant a24 = (A+2)/4 that
// the x-only formulas need.
type Montgomery struct {
	ring *Ring
	a24  *big.Int
}

// NewMontgomery returns the curve with constant a24 over the ring.
func NewMontgomery(r *Ring, a24 *big.Int) *Montgomery {
	return &Montgomery{ring: r, a24: r.Mod(a24)}
}

// Ring returns the ambient ring.
func (c *Montgomery) Ring() *Ring {
	return c.ring
}

// A24 returns the curve constant (A+2)/4. The returned value must not
// be modified.
func (c *Montgomery) A24() *big.Int {
	return c.a24
}

// Identity returns the point at infinity.
func (c *Montgomery) Identity() Point {
	return Point{X: big.NewInt(1), Z: new(big.Int)}
}

// Double returns 2p. Costs 5 multiplications:
//
//	u = (X+Z)^2, v = (X-Z)^2, w = u-v
//	X' = u*v, Z' = (v + a24*w)*w
func (c *Montgomery) Double(p Point) Point {
	if p.IsIdentity() {
		return c.Identity()
	}
	r := c.ring
	u := r.Add(p.X, p.Z)
	u = r.Mul(u, u)
	v := r.Sub(p.X, p.Z)
	v = r.Mul(v, v)
	w := r.Sub(u, v)
	return Point{
		X: r.Mul(u, v),
		Z: r.Mul(r.Add(v, r.Mul(c.a24, w)), w),
	}
}

// Add returns p+q given diff = p-q (differential addition, 6
// multiplications). The ladder is arranged so that the difference of
// its two running points is always the original input, which is what
// makes the x-only form workable.
func (c *Montgomery) Add(p, q, diff Point) Point {
	if p.IsIdentity() {
		return Point{X: new(big.Int).Set(q.X), Z: new(big.Int).Set(q.Z)}
	}
	if q.IsIdentity() {
		return Point{X: new(big.Int).Set(p.X), Z: new(big.Int).Set(p.Z)}
	}
	r := c.ring
	u := r.Mul(r.Sub(p.X, p.Z), r.Add(q.X, q.Z))
	v := r.Mul(r.Add(p.X, p.Z), r.Sub(q.X, q.Z))
	sum := r.Add(u, v)
	dif := r.Sub(u, v)
	return Point{
		X: r.Mul(diff.Z, r.Mul(sum, sum)),
		Z: r.Mul(diff.X, r.Mul(dif, dif)),
	}
}

// ScalarMult returns k*p via the binary Montgomery ladder: one
// differential addition and one doubling per bit of k regardless of the
// bit pattern. k must be non-negative; k = 0 yields the identity.
func (c *Montgomery) ScalarMult(p Point, k *big.Int) Point {
	if k.Sign() == 0 || p.IsIdentity() {
		return c.Identity()
	}
	q := Point{X: new(big.Int).Set(p.X), Z: new(big.Int).Set(p.Z)}
	if k.Cmp(one) == 0 {
		return q
	}
	r := c.Double(p)
	for i := k.BitLen() - 2; i >= 0; i-- {
		if k.Bit(i) == 1 {
			q = c.Add(r, q, p)
			r = c.Double(r)
		} else {
			r = c.Add(q, r, p)
			q = c.Double(q)
		}
	}
	return q
}

// ScalarMultUint64 is ScalarMult for small scalars.
func (c *Montgomery) ScalarMultUint64(p Point, k uint64) Point {
	return c.ScalarMult(p, new(big.Int).SetUint64(k))
}

// Normalize reduces p to affine form (X/Z : 1). This is the only place
// point code performs a modular inversion; when Z is not invertible the
// gcd of Z and n is returned instead, and a gcd strictly between 1 and
// n is a divisor of n.
func (c *Montgomery) Normalize(p Point) (Point, *big.Int) {
	inv, gcd := c.ring.Inverse(p.Z)
	if gcd != nil {
		return Point{}, gcd
	}
	return Point{X: c.ring.Mul(p.X, inv), Z: big.NewInt(1)}, nil
}

// Equal reports whether p and q represent the same projective point,
// comparing by cross product to avoid inversion.
func (c *Montgomery) Equal(p, q Point) bool {
	if p.IsIdentity() || q.IsIdentity() {
		return p.IsIdentity() == q.IsIdentity()
	}
	r := c.ring
	return r.Mul(p.X, q.Z).Cmp(r.Mul(q.X, p.Z)) == 0
}
