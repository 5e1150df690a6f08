package ecm

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyGCD(t *testing.T) {
	n := big.NewInt(455839)

	require.Equal(t, gcdUnit, classifyGCD(big.NewInt(1), n))
	require.Equal(t, gcdFactor, classifyGCD(big.NewInt(599), n))
	require.Equal(t, gcdDegenerate, classifyGCD(new(big.Int).Set(n), n))
}

func TestBoundsNormalized(t *testing.T) {
	require.Equal(t, Bounds{B1: 4, B2: 4}, Bounds{}.normalized())
	require.Equal(t, Bounds{B1: 2000, B2: 200000}, Bounds{B1: 2000, B2: 200000}.normalized())

	// Odd bounds round up to even.
	require.Equal(t, Bounds{B1: 2002, B2: 200002}, Bounds{B1: 2001, B2: 200001}.normalized())

	// B2 is pulled up to B1.
	require.Equal(t, Bounds{B1: 5000, B2: 5000}, Bounds{B1: 5000, B2: 100}.normalized())
}

func TestSeedSourcesStayInRange(t *testing.T) {
	n := big.NewInt(455839)
	six := big.NewInt(6)

	det := DeterministicSeeds(9)
	for i := 0; i < 100; i++ {
		s, err := det.Sigma(n)
		require.NoError(t, err)
		require.GreaterOrEqual(t, s.Cmp(six), 0)
		require.Negative(t, s.Cmp(n))
	}

	rnd := RandomSeeds()
	for i := 0; i < 20; i++ {
		s, err := rnd.Sigma(n)
		require.NoError(t, err)
		require.GreaterOrEqual(t, s.Cmp(six), 0)
		require.Negative(t, s.Cmp(n))
	}
}

func TestDeterministicSeedsReproducible(t *testing.T) {
	n := big.NewInt(455839)
	a := DeterministicSeeds(31)
	b := DeterministicSeeds(31)
	for i := 0; i < 10; i++ {
		sa, err := a.Sigma(n)
		require.NoError(t, err)
		sb, err := b.Sigma(n)
		require.NoError(t, err)
		require.Zero(t, sa.Cmp(sb))
	}
}
