package schema

import (
	"math/big"

	"github.com/smallyunet/ecc-core/pkg/curve"
)

func hex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("schema: invalid hex constant " + s)
	}
	return n
}

// LoadSecp256k1 returns the secp256k1 schema: Weierstrass y² = x³ + 7.
func LoadSecp256k1() *Scheme {
	m := hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	return &Scheme{
		Title: "secp256k1",
		Bits:  256,
		Curve: &curve.WeierstrassCurve{
			A: big.NewInt(0),
			B: big.NewInt(7),
			M: m,
		},
		Order:    hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"),
		Cofactor: big.NewInt(1),
		Generator: curve.NewPoint(
			hex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
			hex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
		),
	}
}

// LoadFp254BNb returns the Fp254BNb schema: Weierstrass y² = x³ + 2.
func LoadFp254BNb() *Scheme {
	m := hex("2523648240000001BA344D80000000086121000000000013A700000000000013")
	return &Scheme{
		Title: "fp254bnb",
		Bits:  254,
		Curve: &curve.WeierstrassCurve{
			A: big.NewInt(0),
			B: big.NewInt(2),
			M: m,
		},
		Order:    hex("2523648240000001BA344D8000000007FF9F800000000010A10000000000000D"),
		Cofactor: big.NewInt(1),
		Generator: curve.NewPoint(
			hex("2523648240000001BA344D80000000086121000000000013A700000000000012"),
			big.NewInt(1),
		),
	}
}

// LoadCurve25519 returns the Curve25519 schema: Montgomery
// y² = x³ + 486662x² + x.
func LoadCurve25519() *Scheme {
	m := hex("7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFED")
	return &Scheme{
		Title: "curve25519",
		Bits:  255,
		Curve: &curve.MontgomeryCurve{
			A: hex("76D06"),
			B: big.NewInt(1),
			M: m,
		},
		Order:    hex("1000000000000000000000000000000014DEF9DEA2F79CD65812631A5CF5D3ED"),
		Cofactor: big.NewInt(8),
		Generator: curve.NewPoint(
			big.NewInt(9),
			hex("20AE19A1B8A086B4E01EDD2C7748D14C923D4D7E6D7C61B229E9C5A27ECED3D9"),
		),
	}
}

// LoadCurve1174 returns the Curve1174 schema: twisted Edwards
// x² + y² = 1 + d·x²·y² (untwisted, c = 1).
func LoadCurve1174() *Scheme {
	m := hex("7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF7")
	return &Scheme{
		Title: "curve1174",
		Bits:  251,
		Curve: &curve.EdwardsCurve{
			C: big.NewInt(1),
			D: hex("7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFB61"),
			M: m,
		},
		Order:    hex("1FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF77965C4DFD307348944D45FD166C971"),
		Cofactor: big.NewInt(4),
		Generator: curve.NewPoint(
			hex("37FBB0CEA308C479343AEE7C029A190C021D96A492ECD6516123F27BCE29EDA"),
			hex("6B72F82D47FB7CC6656841169840E0C4FE2DEE2AF3F976BA4CCB1BF9B46360E"),
		),
	}
}
