// Package schema bundles a curve with a generator and subgroup order,
// and ships four named presets (secp256k1, Fp254BNb, Curve25519,
// Curve1174).
package schema

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/smallyunet/ecc-core/pkg/curve"
)

// Scheme owns a curve, a generator point G on that curve, and an order
// n such that n*G = Zero(). Private keys are scalars in [1, n); public
// keys are privKey*G.
type Scheme struct {
	Title     string
	Bits      int
	Curve     curve.Curve
	Generator curve.Point
	Order     *big.Int
	// Cofactor carries the preset's cofactor for informational purposes
	// only; no operation in this package uses it. Grounded on the
	// original schemas.rs, which stores it alongside order/generator.
	Cofactor *big.Int
}

// GetPoint returns k*G.
func (s *Scheme) GetPoint(k *big.Int) curve.Point {
	return s.Curve.Mul(s.Generator, k)
}

// GeneratePair draws a uniform scalar k in [1, n) and returns (k, k*G).
// k = 0 is rejection-sampled per spec §4.2.
func (s *Scheme) GeneratePair(rng io.Reader) (*big.Int, curve.Point, error) {
	for {
		k, err := rand.Int(rng, s.Order)
		if err != nil {
			return nil, curve.Point{}, err
		}
		if k.Sign() == 0 {
			continue
		}
		return k, s.GetPoint(k), nil
	}
}

// CheckPair reports whether pubKey == privKey*G.
func (s *Scheme) CheckPair(privKey *big.Int, pubKey curve.Point) bool {
	return s.GetPoint(privKey).Equal(pubKey)
}
