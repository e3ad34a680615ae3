// Package elgamal implements point ElGamal encryption over a schema.Scheme.
package elgamal

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/smallyunet/ecc-core/pkg/curve"
	"github.com/smallyunet/ecc-core/pkg/schema"
)

// Ciphertext is one ElGamal pair (C1, C2) produced for a single
// plaintext point.
type Ciphertext struct {
	C1, C2 curve.Point
}

// Encrypt draws a fresh session scalar per plaintext point and returns
// one Ciphertext per point. Reusing a session scalar across points
// breaks confidentiality, so each point gets its own draw from rng.
func Encrypt(rng io.Reader, s *schema.Scheme, pubKey curve.Point, plaintext []curve.Point) ([]Ciphertext, error) {
	out := make([]Ciphertext, len(plaintext))
	for i, m := range plaintext {
		sk, err := sessionScalar(rng, s)
		if err != nil {
			return nil, err
		}
		c1 := s.Curve.Mul(s.Generator, sk)
		c2 := s.Curve.Add(m, s.Curve.Mul(pubKey, sk))
		out[i] = Ciphertext{C1: c1, C2: c2}
	}
	return out, nil
}

// Decrypt recovers the plaintext points from ciphertext using privKey.
func Decrypt(s *schema.Scheme, privKey *big.Int, ciphertext []Ciphertext) []curve.Point {
	out := make([]curve.Point, len(ciphertext))
	for i, ct := range ciphertext {
		shared := s.Curve.Mul(ct.C1, privKey)
		out[i] = s.Curve.Add(ct.C2, s.Curve.Inv(shared))
	}
	return out
}

func sessionScalar(rng io.Reader, s *schema.Scheme) (*big.Int, error) {
	for {
		k, err := rand.Int(rng, s.Order)
		if err != nil {
			return nil, err
		}
		if k.Sign() == 0 {
			continue
		}
		return k, nil
	}
}
