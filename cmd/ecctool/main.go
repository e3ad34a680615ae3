// Command ecctool is a small CLI front end over the ecc-core packages:
// generate a key pair, ElGamal-encrypt or decrypt a message, and build
// or check an ECDSA signature, all against a named schema preset.
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/smallyunet/ecc-core/pkg/curve"
	"github.com/smallyunet/ecc-core/pkg/ecdsa"
	"github.com/smallyunet/ecc-core/pkg/elgamal"
	"github.com/smallyunet/ecc-core/pkg/mapper"
	"github.com/smallyunet/ecc-core/pkg/schema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	preset := fs.String("preset", "secp256k1", "schema preset: secp256k1, fp254bnb, curve25519, curve1174")
	message := fs.String("message", "", "message text")
	privKeyHex := fs.String("priv", "", "private key, hex")
	pubKeyHex := fs.String("pub", "", "public key, as \"<x-hex> <y-hex>\"")
	cipherHex := fs.String("cipher", "", "ciphertext points, hex-encoded, space-separated C1x C1y C2x C2y ...")
	sigHex := fs.String("sig", "", "signature, as \"<r-hex> <s-hex>\"")
	fs.Parse(os.Args[2:])

	s, err := loadPreset(*preset)
	if err != nil {
		fatal(err)
	}

	switch cmd {
	case "keygen":
		runKeyGen(s)
	case "encrypt":
		runEncrypt(s, *message, *pubKeyHex)
	case "decrypt":
		runDecrypt(s, *privKeyHex, *cipherHex)
	case "sign":
		runSign(s, *privKeyHex, *message)
	case "verify":
		runVerify(s, *pubKeyHex, *message, *sigHex)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ecctool <keygen|encrypt|decrypt|sign|verify> [flags]")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func loadPreset(name string) (*schema.Scheme, error) {
	switch name {
	case "secp256k1":
		return schema.LoadSecp256k1(), nil
	case "fp254bnb":
		return schema.LoadFp254BNb(), nil
	case "curve25519":
		return schema.LoadCurve25519(), nil
	case "curve1174":
		return schema.LoadCurve1174(), nil
	default:
		return nil, fmt.Errorf("unknown preset %q", name)
	}
}

func runKeyGen(s *schema.Scheme) {
	priv, pub, err := s.GeneratePair(rand.Reader)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("priv=%s\n", priv.Text(16))
	fmt.Printf("pub=%s %s\n", pub.X.Text(16), pub.Y.Text(16))
}

func runEncrypt(s *schema.Scheme, message, pubKeyHex string) {
	pub, err := parsePoint(pubKeyHex)
	if err != nil {
		fatal(err)
	}

	m := mapper.New(s.Bits, s.Curve)
	plaintext, err := m.Pack([]byte(message))
	if err != nil {
		fatal(err)
	}

	ciphertext, err := elgamal.Encrypt(rand.Reader, s, pub, plaintext)
	if err != nil {
		fatal(err)
	}
	for _, ct := range ciphertext {
		fmt.Printf("%s %s %s %s\n",
			ct.C1.X.Text(16), ct.C1.Y.Text(16), ct.C2.X.Text(16), ct.C2.Y.Text(16))
	}
}

func runDecrypt(s *schema.Scheme, privKeyHex, cipherHex string) {
	priv, ok := new(big.Int).SetString(privKeyHex, 16)
	if !ok {
		fatal(fmt.Errorf("malformed private key %q", privKeyHex))
	}

	ciphertext, err := parseCiphertext(cipherHex)
	if err != nil {
		fatal(err)
	}

	recovered := elgamal.Decrypt(s, priv, ciphertext)
	m := mapper.New(s.Bits, s.Curve)
	plain := m.Unpack(recovered)
	fmt.Println(trimTrailingZeros(plain))
}

func runSign(s *schema.Scheme, privKeyHex, message string) {
	priv, ok := new(big.Int).SetString(privKeyHex, 16)
	if !ok {
		fatal(fmt.Errorf("malformed private key %q", privKeyHex))
	}

	hash := sha256.Sum256([]byte(message))
	sig, err := ecdsa.BuildSignature(rand.Reader, s, priv, hash[:])
	if err != nil {
		fatal(err)
	}
	fmt.Printf("%s %s\n", sig.R.Text(16), sig.S.Text(16))
}

func runVerify(s *schema.Scheme, pubKeyHex, message, sigHex string) {
	pub, err := parsePoint(pubKeyHex)
	if err != nil {
		fatal(err)
	}
	sig, err := parseSignature(sigHex)
	if err != nil {
		fatal(err)
	}

	hash := sha256.Sum256([]byte(message))
	if ecdsa.CheckSignature(s, pub, hash[:], sig) {
		fmt.Println("valid")
	} else {
		fmt.Println("invalid")
		os.Exit(1)
	}
}

func trimTrailingZeros(b []byte) string {
	i := len(b)
	for i > 0 && b[i-1] == 0 {
		i--
	}
	return string(b[:i])
}

func parseHexInt(s string) (*big.Int, bool) {
	return new(big.Int).SetString(s, 16)
}

func parsePoint(s string) (curve.Point, error) {
	var xs, ys string
	if _, err := fmt.Sscanf(s, "%s %s", &xs, &ys); err != nil {
		return curve.Point{}, fmt.Errorf("malformed point %q: %w", s, err)
	}
	x, ok := parseHexInt(xs)
	if !ok {
		return curve.Point{}, fmt.Errorf("malformed x coordinate %q", xs)
	}
	y, ok := parseHexInt(ys)
	if !ok {
		return curve.Point{}, fmt.Errorf("malformed y coordinate %q", ys)
	}
	return curve.NewPoint(x, y), nil
}

func parseSignature(s string) (*ecdsa.Signature, error) {
	var rs, ss string
	if _, err := fmt.Sscanf(s, "%s %s", &rs, &ss); err != nil {
		return nil, fmt.Errorf("malformed signature %q: %w", s, err)
	}
	r, ok := parseHexInt(rs)
	if !ok {
		return nil, fmt.Errorf("malformed r %q", rs)
	}
	sv, ok := parseHexInt(ss)
	if !ok {
		return nil, fmt.Errorf("malformed s %q", ss)
	}
	return &ecdsa.Signature{R: r, S: sv}, nil
}

func parseCiphertext(s string) ([]elgamal.Ciphertext, error) {
	fields := splitFields(s)
	if len(fields)%4 != 0 {
		return nil, fmt.Errorf("ciphertext hex must come in groups of 4")
	}

	out := make([]elgamal.Ciphertext, 0, len(fields)/4)
	for i := 0; i < len(fields); i += 4 {
		c1x, ok := parseHexInt(fields[i])
		if !ok {
			return nil, fmt.Errorf("malformed C1.x %q", fields[i])
		}
		c1y, ok := parseHexInt(fields[i+1])
		if !ok {
			return nil, fmt.Errorf("malformed C1.y %q", fields[i+1])
		}
		c2x, ok := parseHexInt(fields[i+2])
		if !ok {
			return nil, fmt.Errorf("malformed C2.x %q", fields[i+2])
		}
		c2y, ok := parseHexInt(fields[i+3])
		if !ok {
			return nil, fmt.Errorf("malformed C2.y %q", fields[i+3])
		}
		out = append(out, elgamal.Ciphertext{
			C1: curve.NewPoint(c1x, c1y),
			C2: curve.NewPoint(c2x, c2y),
		})
	}
	return out, nil
}

func splitFields(s string) []string {
	var fields []string
	cur := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			if len(cur) > 0 {
				fields = append(fields, string(cur))
				cur = cur[:0]
			}
			continue
		}
		cur = append(cur, s[i])
	}
	if len(cur) > 0 {
		fields = append(fields, string(cur))
	}
	return fields
}
