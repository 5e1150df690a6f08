package curve

import "math/big"

var one = big.NewInt(1)

// Ring provides modular arithmetic over Z/nZ for a fixed modulus n > 1.
// All methods are pure: they allocate fresh big.Ints and never mutate
// their operands, so a Ring may be shared across goroutines.
type Ring struct {
	n *big.Int
}

// NewRing returns a Ring for the modulus n. The modulus is copied.
func NewRing(n *big.Int) *Ring {
	return &Ring{n: new(big.Int).Set(n)}
}

// N returns the modulus. The returned value must not be modified.
func (r *Ring) N() *big.Int {
	return r.n
}

// Mod reduces a into [0, n).
func (r *Ring) Mod(a *big.Int) *big.Int {
	return new(big.Int).Mod(a, r.n)
}

// Add returns a+b mod n.
func (r *Ring) Add(a, b *big.Int) *big.Int {
	z := new(big.Int).Add(a, b)
	return z.Mod(z, r.n)
}

// Sub returns a-b mod n.
func (r *Ring) Sub(a, b *big.Int) *big.Int {
	z := new(big.Int).Sub(a, b)
	return z.Mod(z, r.n)
}

// Mul returns a*b mod n.
func (r *Ring) Mul(a, b *big.Int) *big.Int {
	z := new(big.Int).Mul(a, b)
	return z.Mod(z, r.n)
}

// GCD returns gcd(a, n), with gcd(0, n) = n.
func (r *Ring) GCD(a *big.Int) *big.Int {
	z := new(big.Int).Mod(a, r.n)
	if z.Sign() == 0 {
		return new(big.Int).Set(r.n)
	}
	return z.GCD(nil, nil, z, r.n)
}

// Inverse computes the modular inverse of a mod n via the extended
// Euclidean algorithm. When gcd(a, n) = 1 it returns (inverse, nil);
// otherwise it returns (nil, gcd). The non-unit gcd is not an error:
// a gcd strictly between 1 and n is a divisor of n, and surfacing it is
// how the factorization method discovers factors.
func (r *Ring) Inverse(a *big.Int) (inv, gcd *big.Int) {
	z := new(big.Int).Mod(a, r.n)
	if z.Sign() == 0 {
		return nil, new(big.Int).Set(r.n)
	}
	x := new(big.Int)
	g := new(big.Int).GCD(x, nil, z, r.n)
	if g.Cmp(one) != 0 {
		return nil, g
	}
	return x.Mod(x, r.n), nil
}
