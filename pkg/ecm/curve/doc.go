// Package curve implements x-only Montgomery curve arithmetic over the
// ring Z/nZ for a composite modulus n, as used by the elliptic curve
// factorization method.
//
// Because n is composite, Z/nZ is not a field and the points do not
// form a group; the package nevertheless performs additions and
// doublings as if it were one. The payoff is exactly the failure mode:
// a coordinate that is not invertible mod n shares a nontrivial factor
// with n, and Ring.Inverse reports that gcd instead of an inverse.
//
// Points are projective (X:Z) pairs and no inversion ever happens
// inside point arithmetic; Montgomery.Normalize is the only operation
// that consults the ring inverse.
package curve
