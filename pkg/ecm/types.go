package ecm

import "math/big"

// Status classifies the outcome of a factoring request.
type Status int

const (
	// StatusFactorFound means a nontrivial divisor was found.
	StatusFactorFound Status = iota
	// StatusInputPrime means n passed the primality pre-check; there is
	// nothing for the curve machinery to do.
	StatusInputPrime
	// StatusNoFactorFound means the attempt budget was exhausted (or the
	// context cancelled) without a factor. This is an expected outcome
	// for hard inputs, not evidence that n is prime.
	StatusNoFactorFound
)

func (s Status) String() string {
	switch s {
	case StatusFactorFound:
		return "factor found"
	case StatusInputPrime:
		return "input is prime"
	case StatusNoFactorFound:
		return "no factor found"
	default:
		return "unknown"
	}
}

// Result reports the outcome of a Factor call.
type Result struct {
	Status Status

	// Factor is a divisor of n with 1 < Factor < n, set only when
	// Status is StatusFactorFound. Cofactor is n/Factor.
	Factor   *big.Int
	Cofactor *big.Int

	// Attempts is the number of curve attempts consumed.
	Attempts int
}

// gcdClass is the three-way classification of the gcd test that follows
// curve generation and each stage. A failed inversion is the success
// signal of the whole method, so the non-unit cases are modeled as
// ordinary outcomes rather than errors.
type gcdClass int

const (
	gcdUnit       gcdClass = iota // gcd 1: arithmetic survived, no factor here
	gcdFactor                     // 1 < gcd < n: a divisor of n
	gcdDegenerate                 // gcd n: point vanished mod every factor at once
)

func classifyGCD(g, n *big.Int) gcdClass {
	switch {
	case g.Cmp(one) <= 0:
		return gcdUnit
	case g.Cmp(n) < 0:
		return gcdFactor
	default:
		return gcdDegenerate
	}
}
