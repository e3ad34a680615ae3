package curve

import "math/big"

// divMod returns a/b mod m, i.e. a * modinverse(b, m) mod m. Grounded
// on the original implementation's bigi::prime::div_mod helper used by
// every family's addition law.
func divMod(a, b, m *big.Int) *big.Int {
	bInv := new(big.Int).ModInverse(new(big.Int).Mod(b, m), m)
	r := new(big.Int).Mul(a, bInv)
	return r.Mod(r, m)
}
