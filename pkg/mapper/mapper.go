// Package mapper implements a deterministic, reversible mapping
// between byte blocks and sequences of valid curve points.
package mapper

import (
	"errors"
	"math/big"

	"github.com/smallyunet/ecc-core/pkg/curve"
)

// ErrMappingExhausted is returned by Pack when the one-byte nonce
// search fails for a block; the caller should shrink the block size.
var ErrMappingExhausted = errors.New("mapper: nonce search exhausted for block, shrink block size")

// maxNonce is the largest value a one-byte nonce can hold.
const maxNonce = 255

// Mapper converts byte blocks to and from curve points. BlockSize bytes
// of plaintext plus one nonce byte must fit under the curve's modulus,
// i.e. BlockSize+1 <= floor(bitlen(m)/8).
type Mapper struct {
	BlockSize int
	Curve     curve.Curve
}

// New builds a Mapper for the given curve, sized so block+nonce fits
// under bits bits (the scheme's declared bit length is a safe value to
// pass here, matching the original Mapper::new(bits, curve) signature).
func New(bits int, c curve.Curve) *Mapper {
	return &Mapper{
		BlockSize: bits/8 - 1,
		Curve:     c,
	}
}

// Pack splits bytes into BlockSize-byte blocks (zero-padding the final
// block), and for each block searches for a one-byte nonce such that
// [nonce][block] interpreted as a big-endian integer is a valid
// x-coordinate, emitting the point (x, y1) with the canonical smaller
// root.
func (m *Mapper) Pack(data []byte) ([]curve.Point, error) {
	blocks := splitPadded(data, m.BlockSize)
	points := make([]curve.Point, len(blocks))

	for i, block := range blocks {
		p, err := m.packBlock(block)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

func (m *Mapper) packBlock(block []byte) (curve.Point, error) {
	candidate := make([]byte, 1+m.BlockSize)
	copy(candidate[1:], block)

	for nonce := 0; nonce <= maxNonce; nonce++ {
		candidate[0] = byte(nonce)
		x := new(big.Int).SetBytes(candidate)
		y1, _, err := m.Curve.FindY(x)
		if err == nil {
			return curve.NewPoint(x, y1), nil
		}
	}
	return curve.Point{}, ErrMappingExhausted
}

// Unpack reverses Pack: for each point it strips the leading nonce byte
// from the x-coordinate and appends the remaining BlockSize bytes to
// the output. Trailing zero padding introduced by Pack is preserved;
// callers own plaintext framing.
func (m *Mapper) Unpack(points []curve.Point) []byte {
	out := make([]byte, 0, len(points)*m.BlockSize)
	for _, p := range points {
		raw := make([]byte, 1+m.BlockSize)
		p.X.FillBytes(raw)
		out = append(out, raw[1:]...)
	}
	return out
}

// splitPadded divides data into blockSize-byte chunks, zero-padding the
// final chunk so every block is exactly blockSize bytes.
func splitPadded(data []byte, blockSize int) [][]byte {
	n := len(data) / blockSize
	if len(data)%blockSize != 0 {
		n++
	}
	if n == 0 {
		n = 1
	}
	blocks := make([][]byte, n)
	for i := 0; i < n; i++ {
		block := make([]byte, blockSize)
		start := i * blockSize
		end := start + blockSize
		if start < len(data) {
			if end > len(data) {
				end = len(data)
			}
			copy(block, data[start:end])
		}
		blocks[i] = block
	}
	return blocks
}
