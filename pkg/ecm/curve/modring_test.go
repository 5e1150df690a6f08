package curve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRingArithmetic(t *testing.T) {
	r := NewRing(big.NewInt(29))

	require.Equal(t, int64(4), r.Add(big.NewInt(20), big.NewInt(13)).Int64())
	require.Equal(t, int64(25), r.Sub(big.NewInt(3), big.NewInt(7)).Int64())
	require.Equal(t, int64(6), r.Mul(big.NewInt(12), big.NewInt(15)).Int64())
	require.Equal(t, int64(27), r.Mod(big.NewInt(-2)).Int64())
}

func TestRingInverse(t *testing.T) {
	r := NewRing(big.NewInt(10))

	inv, gcd := r.Inverse(big.NewInt(3))
	require.Nil(t, gcd)
	require.Equal(t, int64(7), inv.Int64())

	// Non-unit: the gcd comes back instead of an inverse.
	inv, gcd = r.Inverse(big.NewInt(4))
	require.Nil(t, inv)
	require.Equal(t, int64(2), gcd.Int64())

	// Zero is never invertible; its gcd is the modulus itself.
	inv, gcd = r.Inverse(new(big.Int))
	require.Nil(t, inv)
	require.Equal(t, int64(10), gcd.Int64())
}

func TestRingInverseRoundTrip(t *testing.T) {
	n := big.NewInt(455839)
	r := NewRing(n)
	for _, a := range []int64{2, 3, 1234, 455838} {
		inv, gcd := r.Inverse(big.NewInt(a))
		require.Nil(t, gcd)
		require.Equal(t, int64(1), r.Mul(big.NewInt(a), inv).Int64())
	}
}

func TestRingGCD(t *testing.T) {
	r := NewRing(big.NewInt(15))
	require.Equal(t, int64(3), r.GCD(big.NewInt(12)).Int64())
	require.Equal(t, int64(1), r.GCD(big.NewInt(7)).Int64())
	require.Equal(t, int64(15), r.GCD(big.NewInt(30)).Int64())
}
