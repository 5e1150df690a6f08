package ecm

import "errors"

// ErrInvalidInput indicates the number to factor is missing or, after
// sign normalization, not greater than 1. It is the only error Factor
// returns for bad input; primality and budget exhaustion are reported
// as Result statuses, not errors.
var ErrInvalidInput = errors.New("ecm: n must be an integer greater than 1")

// ErrAttemptsExhausted is returned by Factorize when the attempt budget
// runs out before the factorization is complete.
var ErrAttemptsExhausted = errors.New("ecm: attempt budget exhausted before full factorization")

// errFactorFound stops the attempt group once any worker has won.
var errFactorFound = errors.New("ecm: factor found")
