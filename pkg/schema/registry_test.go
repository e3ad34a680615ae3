package schema

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresetsAreSelfConsistent(t *testing.T) {
	presets := map[string]*Scheme{
		"secp256k1":  LoadSecp256k1(),
		"fp254bnb":   LoadFp254BNb(),
		"curve25519": LoadCurve25519(),
		"curve1174":  LoadCurve1174(),
	}

	for name, s := range presets {
		t.Run(name, func(t *testing.T) {
			if !s.Curve.Check(s.Generator) {
				t.Fatal("generator must be on curve")
			}
			if !s.Curve.Check(s.GetPoint(big.NewInt(25))) {
				t.Fatal("25*G must be on curve")
			}
			if got := s.GetPoint(s.Order); !got.Equal(s.Curve.Zero()) {
				t.Fatalf("n*G = %s, want zero", got)
			}
		})
	}
}

func TestGeneratePairAndCheckPair(t *testing.T) {
	s := LoadSecp256k1()

	priv, pub, err := s.GeneratePair(rand.Reader)
	assert.NoError(t, err)
	assert.NotEqual(t, 0, priv.Sign())
	assert.True(t, s.CheckPair(priv, pub))

	other, _ := rand.Int(rand.Reader, s.Order)
	if other.Sign() == 0 {
		other = big.NewInt(1)
	}
	if other.Cmp(priv) != 0 && s.CheckPair(other, pub) {
		t.Fatal("CheckPair must reject an unrelated private key")
	}
}
