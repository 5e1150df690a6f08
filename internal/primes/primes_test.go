package primes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpTo(t *testing.T) {
	require.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, UpTo(30))
	require.Equal(t, []uint64{2}, UpTo(2))
	require.Empty(t, UpTo(1))
	require.Empty(t, UpTo(0))
}

func TestUpToBoundIsPrime(t *testing.T) {
	list := UpTo(29)
	require.Equal(t, uint64(29), list[len(list)-1])
}

func TestBetween(t *testing.T) {
	require.Equal(t, []uint64{11, 13, 17, 19, 23, 29}, Between(10, 30))
	require.Equal(t, []uint64{29}, Between(23, 30))
	require.Empty(t, Between(30, 30))
}

func TestCacheReuse(t *testing.T) {
	a := UpTo(1000)
	b := UpTo(1000)
	require.Len(t, a, 168)
	require.Equal(t, a, b)
}
