package curve

import (
	"errors"
	"math/big"
)

// ErrNotOnCurve is returned by Curve.FindY when no y exists for the
// given x, i.e. the right-hand side of the curve equation is a
// quadratic non-residue mod the field modulus.
var ErrNotOnCurve = errors.New("curve: x does not correspond to a point on the curve")

// Curve is the capability every curve family implements. All methods
// are total except FindY. Implementations must not panic on the
// neutral element or on algebraic degeneracies (P = -Q on double, etc);
// those fold into the neutral-element branch instead.
type Curve interface {
	// Modulus returns the prime field modulus m.
	Modulus() *big.Int

	// Zero returns the neutral element of the group.
	Zero() Point

	// Check reports whether p is the neutral element or satisfies the
	// curve equation mod the field modulus.
	Check(p Point) bool

	// FindY returns the two roots (y1, y2) with y1 < y2 such that (x, y)
	// is on the curve, or ErrNotOnCurve if x has no on-curve y.
	FindY(x *big.Int) (*big.Int, *big.Int, error)

	// Inv returns the group inverse of p.
	Inv(p Point) Point

	// Add returns p + q.
	Add(p, q Point) Point

	// Double returns p + p.
	Double(p Point) Point

	// Mul returns k*p via left-to-right double-and-add. k must be
	// non-negative; Mul(p, 0) = Zero().
	Mul(p Point, k *big.Int) Point
}

// mulBits implements the shared left-to-right double-and-add scan
// described in spec §4.1: scan k's bits from most significant to
// least, doubling the accumulator every step and adding p on set bits.
func mulBits(c Curve, p Point, k *big.Int) Point {
	res := c.Zero()
	if k.Sign() <= 0 {
		return res
	}
	for i := k.BitLen() - 1; i >= 0; i-- {
		res = c.Double(res)
		if k.Bit(i) == 1 {
			res = c.Add(res, p)
		}
	}
	return res
}
