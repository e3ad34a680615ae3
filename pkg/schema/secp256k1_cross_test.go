package schema

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// These tests cross-check our from-scratch affine Weierstrass arithmetic
// for the secp256k1 preset against decred's battle-tested implementation,
// the same way the teacher verifies its own signing flow against a
// third-party verifier.
func TestSecp256k1MatchesDecredParams(t *testing.T) {
	s := LoadSecp256k1()
	params := secp256k1.S256().Params()

	if s.Curve.Modulus().Cmp(params.P) != 0 {
		t.Fatalf("modulus mismatch: ours %s, decred %s", s.Curve.Modulus(), params.P)
	}
	if s.Order.Cmp(params.N) != 0 {
		t.Fatalf("order mismatch: ours %s, decred %s", s.Order, params.N)
	}
	if s.Generator.X.Cmp(params.Gx) != 0 || s.Generator.Y.Cmp(params.Gy) != 0 {
		t.Fatalf("generator mismatch: ours (%s, %s), decred (%s, %s)",
			s.Generator.X, s.Generator.Y, params.Gx, params.Gy)
	}
}

func TestSecp256k1MatchesDecredScalarMult(t *testing.T) {
	s := LoadSecp256k1()
	curve := secp256k1.S256()

	for i := 0; i < 20; i++ {
		k, err := rand.Int(rand.Reader, s.Order)
		if err != nil {
			t.Fatal(err)
		}
		if k.Sign() == 0 {
			k = big.NewInt(1)
		}

		ours := s.GetPoint(k)
		wantX, wantY := curve.ScalarBaseMult(k.Bytes())

		if ours.X.Cmp(wantX) != 0 || ours.Y.Cmp(wantY) != 0 {
			t.Fatalf("scalar mult mismatch for k=%s: ours (%s, %s), decred (%s, %s)",
				k, ours.X, ours.Y, wantX, wantY)
		}
	}
}

func TestSecp256k1MatchesDecredAdd(t *testing.T) {
	s := LoadSecp256k1()
	curve := secp256k1.S256()

	k1, _ := rand.Int(rand.Reader, s.Order)
	k2, _ := rand.Int(rand.Reader, s.Order)
	if k1.Sign() == 0 {
		k1 = big.NewInt(3)
	}
	if k2.Sign() == 0 {
		k2 = big.NewInt(5)
	}

	p1 := s.GetPoint(k1)
	p2 := s.GetPoint(k2)
	ours := s.Curve.Add(p1, p2)

	wantX, wantY := curve.Add(p1.X, p1.Y, p2.X, p2.Y)
	if ours.X.Cmp(wantX) != 0 || ours.Y.Cmp(wantY) != 0 {
		t.Fatalf("add mismatch: ours (%s, %s), decred (%s, %s)", ours.X, ours.Y, wantX, wantY)
	}
}
