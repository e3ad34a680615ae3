// Package ecdsa implements signature generation and verification over
// a schema.Scheme.
package ecdsa

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/smallyunet/ecc-core/pkg/curve"
	"github.com/smallyunet/ecc-core/pkg/schema"
)

// Signature is an ECDSA (r, s) pair.
type Signature struct {
	R *big.Int
	S *big.Int
}

// hashToInt interprets hash as a big-endian integer, truncated to the
// bit length of n if it is longer.
func hashToInt(hash []byte, n *big.Int) *big.Int {
	h := new(big.Int).SetBytes(hash)
	nBits := n.BitLen()
	if hBits := h.BitLen(); hBits > nBits {
		h.Rsh(h, uint(hBits-nBits))
	}
	return h
}

// BuildSignature signs hash with privKey, restarting the ephemeral draw
// whenever R is neutral, r is zero, or s is zero.
func BuildSignature(rng io.Reader, s *schema.Scheme, privKey *big.Int, hash []byte) (*Signature, error) {
	h := hashToInt(hash, s.Order)
	neutral := s.Curve.Zero()

	for {
		k, err := rand.Int(rng, s.Order)
		if err != nil {
			return nil, err
		}
		if k.Sign() == 0 {
			continue
		}

		R := s.Curve.Mul(s.Generator, k)
		if R.Equal(neutral) {
			continue
		}

		r := new(big.Int).Mod(R.X, s.Order)
		if r.Sign() == 0 {
			continue
		}

		kInv := new(big.Int).ModInverse(k, s.Order)
		if kInv == nil {
			continue
		}

		sVal := new(big.Int).Mul(r, privKey)
		sVal.Add(sVal, h)
		sVal.Mul(sVal, kInv)
		sVal.Mod(sVal, s.Order)
		if sVal.Sign() == 0 {
			continue
		}

		return &Signature{R: r, S: sVal}, nil
	}
}

// CheckSignature verifies sig against hash under pubKey.
func CheckSignature(s *schema.Scheme, pubKey curve.Point, hash []byte, sig *Signature) bool {
	n := s.Order
	if sig.R.Sign() <= 0 || sig.R.Cmp(n) >= 0 {
		return false
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(n) >= 0 {
		return false
	}

	h := hashToInt(hash, n)

	w := new(big.Int).ModInverse(sig.S, n)
	if w == nil {
		return false
	}

	u1 := new(big.Int).Mul(h, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, n)

	x := s.Curve.Add(s.Curve.Mul(s.Generator, u1), s.Curve.Mul(pubKey, u2))
	if x.Equal(s.Curve.Zero()) {
		return false
	}

	xMod := new(big.Int).Mod(x.X, n)
	return xMod.Cmp(sig.R) == 0
}
