// Package ecm factors composite integers with Lenstra's two-stage
// elliptic curve method using Suyama's parametrization and Montgomery
// x-only curve arithmetic.
//
// The entry points are Factor, which hunts for a single nontrivial
// divisor, and Factorize, which drives Factor repeatedly to a complete
// prime factorization. Both take a Config describing the attempt
// budget, the (B1, B2) stage bounds and their escalation schedule, the
// curve seed source, and the degree of parallelism:
//
//	res, err := ecm.Factor(ctx, n, ecm.Config{})
//	if err != nil {
//	    // n was not a valid input
//	}
//	switch res.Status {
//	case ecm.StatusFactorFound:
//	    // res.Factor divides n, 1 < res.Factor < n
//	case ecm.StatusInputPrime:
//	    // n is (probably) prime; nothing to factor
//	case ecm.StatusNoFactorFound:
//	    // budget exhausted; retry with a larger Config
//	}
//
// ECM is probabilistic: StatusNoFactorFound means the configured limits
// were reached, not that n is prime.
package ecm
