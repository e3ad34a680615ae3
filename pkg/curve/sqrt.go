package curve

import "math/big"

// sqrtMod returns the two square roots (y1, y2) of y2 mod m, ordered
// y1 < y2, or ErrNotOnCurve if y2 is a quadratic non-residue.
//
// The y2^((m+1)/4) shortcut is used when m ≡ 3 (mod 4), which holds for
// the secp256k1, Fp254BNb and Curve1174 presets. Any other modulus,
// including Curve25519's 2^255 − 19 (≡ 1 mod 4), takes the Tonelli-
// Shanks fallback below, grounded on math/big.Int.ModSqrt (stdlib)
// rather than a hand-rolled loop, since no example in the retrieved
// corpus implements Tonelli-Shanks itself.
func sqrtMod(y2, m *big.Int) (*big.Int, *big.Int, error) {
	var y *big.Int
	if new(big.Int).And(m, big.NewInt(3)).Cmp(big.NewInt(3)) == 0 {
		exp := new(big.Int).Add(m, big.NewInt(1))
		exp.Rsh(exp, 2)
		y = new(big.Int).Exp(y2, exp, m)
	} else {
		y = new(big.Int).ModSqrt(y2, m)
	}
	if y == nil {
		return nil, nil, ErrNotOnCurve
	}
	check := new(big.Int).Exp(y, big.NewInt(2), m)
	if check.Cmp(new(big.Int).Mod(y2, m)) != 0 {
		return nil, nil, ErrNotOnCurve
	}

	other := new(big.Int).Sub(m, y)
	other.Mod(other, m)

	if y.Cmp(other) <= 0 {
		return y, other, nil
	}
	return other, y, nil
}
