package curve

import "math/big"

// MontgomeryCurve is the family b·y² = x³ + a·x² + x (mod m). Its
// neutral element is the point at infinity, represented by Point.Zero.
type MontgomeryCurve struct {
	A, B, M *big.Int
}

func (c *MontgomeryCurve) Modulus() *big.Int { return c.M }

func (c *MontgomeryCurve) Zero() Point { return NewZero() }

func (c *MontgomeryCurve) right(x *big.Int) *big.Int {
	// (x + a) * x + 1, then * x
	t := new(big.Int).Add(x, c.A)
	t.Mod(t, c.M)
	t.Mul(t, x)
	t.Add(t, big.NewInt(1))
	t.Mod(t, c.M)
	t.Mul(t, x)
	t.Mod(t, c.M)
	return t
}

func (c *MontgomeryCurve) Check(p Point) bool {
	if p.Zero {
		return true
	}
	left := new(big.Int).Mul(p.Y, p.Y)
	left.Mod(left, c.M)
	left.Mul(left, c.B)
	left.Mod(left, c.M)
	return left.Cmp(c.right(p.X)) == 0
}

func (c *MontgomeryCurve) FindY(x *big.Int) (*big.Int, *big.Int, error) {
	y2 := divMod(c.right(x), c.B, c.M)
	return sqrtMod(y2, c.M)
}

func (c *MontgomeryCurve) Inv(p Point) Point {
	if p.Zero {
		return p
	}
	ny := new(big.Int).Sub(c.M, p.Y)
	ny.Mod(ny, c.M)
	return NewPoint(new(big.Int).Set(p.X), ny)
}

func (c *MontgomeryCurve) Add(p, q Point) Point {
	if q.Zero {
		return p
	}
	if p.Zero {
		return q
	}
	if p.X.Cmp(q.X) == 0 && (p.Y.Cmp(q.Y) != 0 || p.Y.Sign() == 0) {
		return c.Zero()
	}

	var lambda *big.Int
	if p.X.Cmp(q.X) == 0 {
		// lambda = ((3*Px + 2*a)*Px + 1) / (2*B*Py)
		num := new(big.Int).Mul(p.X, big.NewInt(3))
		num.Add(num, new(big.Int).Mul(c.A, big.NewInt(2)))
		num.Mod(num, c.M)
		num.Mul(num, p.X)
		num.Add(num, big.NewInt(1))
		num.Mod(num, c.M)
		den := new(big.Int).Mul(p.Y, big.NewInt(2))
		den.Mul(den, c.B)
		den.Mod(den, c.M)
		lambda = divMod(num, den, c.M)
	} else {
		num := new(big.Int).Sub(p.Y, q.Y)
		num.Mod(num, c.M)
		den := new(big.Int).Sub(p.X, q.X)
		den.Mod(den, c.M)
		lambda = divMod(num, den, c.M)
	}

	// Rx = B*lambda^2 - (Px + Qx + A)
	rx := new(big.Int).Mul(lambda, lambda)
	rx.Mul(rx, c.B)
	sum := new(big.Int).Add(p.X, q.X)
	sum.Add(sum, c.A)
	rx.Sub(rx, sum)
	rx.Mod(rx, c.M)

	// Ry = (Px - Rx)*lambda - Py
	ry := new(big.Int).Sub(p.X, rx)
	ry.Mul(ry, lambda)
	ry.Sub(ry, p.Y)
	ry.Mod(ry, c.M)

	return NewPoint(rx, ry)
}

func (c *MontgomeryCurve) Double(p Point) Point {
	return c.Add(p, p)
}

func (c *MontgomeryCurve) Mul(p Point, k *big.Int) Point {
	return mulBits(c, p, k)
}
