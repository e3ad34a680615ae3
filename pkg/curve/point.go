// Package curve implements point arithmetic over short Weierstrass,
// Montgomery, and twisted Edwards elliptic curves.
package curve

import (
	"fmt"
	"math/big"
)

// Point is an affine (x, y) pair over a prime field, or the group's
// neutral element. Points are value types: callers get a fresh Point
// back from every operation and never see their inputs mutated.
type Point struct {
	X, Y *big.Int
	Zero bool
}

// NewPoint builds an ordinary affine point.
func NewPoint(x, y *big.Int) Point {
	return Point{X: x, Y: y}
}

// NewZero builds the neutral element marker. Edwards curves never need
// this constructor for their own zero() (they use an ordinary affine
// point instead), but it is still a valid representation callers may
// compare against.
func NewZero() Point {
	return Point{Zero: true}
}

// Equal reports whether two points are the same group element.
func (p Point) Equal(q Point) bool {
	if p.Zero != q.Zero {
		return false
	}
	if p.Zero {
		return true
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// String renders the point the way the original "{x, y}" / "{null}"
// debug format did.
func (p Point) String() string {
	if p.Zero {
		return "{null}"
	}
	return fmt.Sprintf("{%s, %s}", p.X.Text(16), p.Y.Text(16))
}

// ToHex renders a point as "<x-hex> <y-hex>", each coordinate prefixed
// with 0x. The neutral element has no hex form.
func (p Point) ToHex() (string, error) {
	if p.Zero {
		return "", fmt.Errorf("curve: cannot hex-encode the neutral element")
	}
	return fmt.Sprintf("0x%s 0x%s", p.X.Text(16), p.Y.Text(16)), nil
}

// PointFromHex parses the format produced by Point.ToHex.
func PointFromHex(s string) (Point, error) {
	var xs, ys string
	if _, err := fmt.Sscanf(s, "%s %s", &xs, &ys); err != nil {
		return Point{}, fmt.Errorf("curve: malformed point hex %q: %w", s, err)
	}
	x, ok := parseHex(xs)
	if !ok {
		return Point{}, fmt.Errorf("curve: malformed x coordinate %q", xs)
	}
	y, ok := parseHex(ys)
	if !ok {
		return Point{}, fmt.Errorf("curve: malformed y coordinate %q", ys)
	}
	return NewPoint(x, y), nil
}

func parseHex(s string) (*big.Int, bool) {
	s = trimHexPrefix(s)
	return new(big.Int).SetString(s, 16)
}

func trimHexPrefix(s string) string {
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// ToBytes serializes the point as two big-endian, width-byte coordinate
// blocks back to back. width is normally the modulus byte length of the
// curve the point lives on.
func (p Point) ToBytes(width int) []byte {
	out := make([]byte, 2*width)
	if p.Zero {
		return out
	}
	p.X.FillBytes(out[:width])
	p.Y.FillBytes(out[width:])
	return out
}

// PointFromBytes parses the format produced by Point.ToBytes.
func PointFromBytes(b []byte) (Point, error) {
	if len(b)%2 != 0 {
		return Point{}, fmt.Errorf("curve: point byte slice has odd length %d", len(b))
	}
	width := len(b) / 2
	x := new(big.Int).SetBytes(b[:width])
	y := new(big.Int).SetBytes(b[width:])
	return NewPoint(x, y), nil
}
