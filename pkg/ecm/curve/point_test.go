package curve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func mont(t *testing.T, n, a24 int64) *Montgomery {
	t.Helper()
	return NewMontgomery(NewRing(big.NewInt(n)), big.NewInt(a24))
}

func pt(x, z int64) Point {
	return Point{X: big.NewInt(x), Z: big.NewInt(z)}
}

func TestPointDouble(t *testing.T) {
	c := mont(t, 29, 7)
	p2 := c.Double(pt(11, 16))
	require.Equal(t, int64(13), p2.X.Int64())
	require.Equal(t, int64(10), p2.Z.Int64())
}

func TestPointAdd(t *testing.T) {
	c := mont(t, 29, 7)
	p1 := pt(11, 16)
	p2 := pt(13, 10)
	p3 := c.Add(p2, p1, p1)
	require.Equal(t, int64(23), p3.X.Int64())
	require.Equal(t, int64(17), p3.Z.Int64())
}

func TestPointScalarMult(t *testing.T) {
	c := mont(t, 29, 7)
	p3 := c.ScalarMult(pt(11, 16), big.NewInt(3))
	require.Equal(t, int64(23), p3.X.Int64())
	require.Equal(t, int64(17), p3.Z.Int64())
}

// Walks the small curve a = 10 over Z/101Z and cross-checks every way
// of reaching the same multiple of the base point.
func TestPointChain(t *testing.T) {
	// a24 = (10+2)/4 mod 101
	r := NewRing(big.NewInt(101))
	inv4, gcd := r.Inverse(big.NewInt(4))
	require.Nil(t, gcd)
	c := NewMontgomery(r, r.Mul(big.NewInt(12), inv4))

	p1 := pt(10, 17)
	p2 := c.Double(p1)
	p4 := c.Double(p2)
	p8 := c.Double(p4)
	p16 := c.Double(p8)

	require.True(t, c.Equal(p2, pt(68, 56)))
	require.True(t, c.Equal(p4, pt(22, 64)))
	require.True(t, c.Equal(p8, pt(71, 95)))
	require.True(t, c.Equal(p16, pt(5, 16)))

	p3 := c.Add(p2, p1, p1)
	require.True(t, c.Equal(p3, pt(1, 61)))

	p5 := c.Add(p3, p2, p1)
	require.True(t, c.Equal(p5, pt(49, 90)))
	require.True(t, c.Equal(p5, c.Add(p4, p1, p3)))

	p6 := c.Double(p3)
	require.True(t, c.Equal(p6, pt(87, 43)))
	require.True(t, c.Equal(p6, c.Add(p4, p2, p2)))

	p7 := c.Add(p5, p2, p3)
	require.True(t, c.Equal(p7, pt(69, 23)))
	require.True(t, c.Equal(p7, c.Add(p4, p3, p1)))
	require.True(t, c.Equal(p7, c.Add(p6, p1, p5)))

	p9 := c.Add(p5, p4, p1)
	require.True(t, c.Equal(p9, pt(56, 99)))
	require.True(t, c.Equal(p9, c.Add(p6, p3, p3)))
	require.True(t, c.Equal(p9, c.Add(p7, p2, p5)))
	require.True(t, c.Equal(p9, c.Add(p8, p1, p7)))

	require.True(t, c.Equal(p5, c.ScalarMult(p1, big.NewInt(5))))
	require.True(t, c.Equal(p9, c.ScalarMult(p1, big.NewInt(9))))
	require.True(t, c.Equal(p16, c.ScalarMult(p1, big.NewInt(16))))
	require.True(t, c.Equal(p9, c.ScalarMult(p3, big.NewInt(3))))
}

func TestIdentityEdgeCases(t *testing.T) {
	c := mont(t, 29, 7)
	id := c.Identity()
	p := pt(11, 16)

	require.True(t, c.Double(id).IsIdentity())
	require.True(t, c.ScalarMult(p, new(big.Int)).IsIdentity())
	require.True(t, c.ScalarMult(id, big.NewInt(7)).IsIdentity())

	require.True(t, c.Equal(c.Add(id, p, p), p))
	require.True(t, c.Equal(c.Add(p, id, p), p))

	p1 := c.ScalarMult(p, big.NewInt(1))
	require.Equal(t, p.X.Int64(), p1.X.Int64())
	require.Equal(t, p.Z.Int64(), p1.Z.Int64())
}

func TestNormalize(t *testing.T) {
	c := mont(t, 29, 7)
	q, gcd := c.Normalize(pt(11, 16))
	require.Nil(t, gcd)
	require.Equal(t, int64(1), q.Z.Int64())
	require.True(t, c.Equal(q, pt(11, 16)))

	// Identity has no affine form: the gcd of Z=0 is the modulus.
	_, gcd = c.Normalize(c.Identity())
	require.Equal(t, int64(29), gcd.Int64())
}
