package ecm

import (
	crand "crypto/rand"
	"math/big"
	mrand "math/rand"
	"sync"
)

var (
	one = big.NewInt(1)
	six = big.NewInt(6)
)

// SeedSource yields the Suyama seeds for successive curve attempts.
// Implementations must be safe for concurrent use when curve attempts
// run in parallel.
type SeedSource interface {
	// Sigma returns a seed in [6, n) for the modulus n. Seeds below 6
	// degenerate the parametrization, so sources never produce them.
	Sigma(n *big.Int) (*big.Int, error)
}

// DeterministicSeeds returns a SeedSource producing a reproducible
// pseudo-random sequence from the given seed. Two runs with the same
// seed, configuration, and Parallelism 1 cover identical curves.
func DeterministicSeeds(seed int64) SeedSource {
	return &deterministicSeeds{rng: mrand.New(mrand.NewSource(seed))}
}

type deterministicSeeds struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

func (s *deterministicSeeds) Sigma(n *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(n, six)
	if span.Sign() <= 0 {
		return new(big.Int).Set(six), nil
	}
	s.mu.Lock()
	sigma := new(big.Int).Rand(s.rng, span)
	s.mu.Unlock()
	return sigma.Add(sigma, six), nil
}

// RandomSeeds returns a SeedSource drawing seeds from crypto/rand.
func RandomSeeds() SeedSource {
	return randomSeeds{}
}

type randomSeeds struct{}

func (randomSeeds) Sigma(n *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(n, six)
	if span.Sign() <= 0 {
		return new(big.Int).Set(six), nil
	}
	sigma, err := crand.Int(crand.Reader, span)
	if err != nil {
		return nil, err
	}
	return sigma.Add(sigma, six), nil
}
