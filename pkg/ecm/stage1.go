package ecm

import (
	"context"

	"github.com/factorlab/ecm-go/pkg/ecm/curve"
)

// stage1 multiplies p by every prime power q^e <= b1 over the primes in
// plist. A factor p-1-smooth up to b1 sends the point to the identity
// modulo that factor, which the caller detects by normalizing the
// result.
func stage1(ctx context.Context, c *curve.Montgomery, p curve.Point, plist []uint64, b1 uint64) (curve.Point, error) {
	for i, q := range plist {
		if i&0x3f == 0 {
			if err := ctx.Err(); err != nil {
				return curve.Point{}, err
			}
		}
		pe := q
		for pe <= b1/q {
			pe *= q
		}
		p = c.ScalarMultUint64(p, pe)
	}
	return p, nil
}
