// Package bls implements the BLS12-381 pairing-based primitives of Core A:
// scalar/point wrappers around github.com/kilic/bls12-381, hash-to-curve
// and hash-to-field with domain separation (spec.md §4.8), the publicly
// verifiable EncryptedShare (§4.9), and the pairing-derived SymmetricEnvelope
// (§4.10).
package bls

import (
	"errors"
	"io"
	"math/big"

	"github.com/luxfi/threshold-core/internal/zeroize"
)

// ErrTriedToInvertZero is returned by Scalar.Inverse when called on zero.
var ErrTriedToInvertZero = errors.New("bls: tried to invert zero")

// order is the BLS12-381 scalar field modulus r.
var order, _ = new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bf0000000000000001", 16)

// Scalar is an element of F_r, the BLS12-381 scalar field shared by G1, G2
// and GT. Group scalar-multiplication in this package takes a Scalar's
// Big() representative, which is the type kilic/bls12-381's own point
// arithmetic expects.
type Scalar struct {
	v *big.Int
}

// NewScalar reduces v modulo r.
func NewScalar(v *big.Int) Scalar {
	return Scalar{new(big.Int).Mod(v, order)}
}

// ScalarFromUint64 embeds a small unsigned integer into F_r.
func ScalarFromUint64(v uint64) Scalar {
	return NewScalar(new(big.Int).SetUint64(v))
}

// ScalarFromBytesLE decodes a 32-byte little-endian buffer into F_r.
func ScalarFromBytesLE(b []byte) Scalar {
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}
	return NewScalar(new(big.Int).SetBytes(be))
}

// RandomScalar samples uniformly from [0, r) by rejection sampling.
func RandomScalar(rng io.Reader) (Scalar, error) {
	buf := make([]byte, 32)
	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return Scalar{}, err
		}
		v := new(big.Int).SetBytes(buf)
		if v.Cmp(order) < 0 {
			return Scalar{v}, nil
		}
	}
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool { return s.v.Sign() == 0 }

// Equal reports whether s and t denote the same residue mod r.
func (s Scalar) Equal(t Scalar) bool { return s.v.Cmp(t.v) == 0 }

// Add returns s+t mod r.
func (s Scalar) Add(t Scalar) Scalar { return NewScalar(new(big.Int).Add(s.v, t.v)) }

// Sub returns s-t mod r.
func (s Scalar) Sub(t Scalar) Scalar { return NewScalar(new(big.Int).Sub(s.v, t.v)) }

// Neg returns -s mod r.
func (s Scalar) Neg() Scalar { return NewScalar(new(big.Int).Neg(s.v)) }

// Mul returns s*t mod r.
func (s Scalar) Mul(t Scalar) Scalar { return NewScalar(new(big.Int).Mul(s.v, t.v)) }

// ScalarMul is an alias for Mul, so that Scalar satisfies polynomial.Value
// and can be passed to the group-valued interpolation helpers; scalar-valued
// interpolation has its own body in polynomial.Interpolate (spec.md §4.7).
func (s Scalar) ScalarMul(t Scalar) Scalar { return s.Mul(t) }

// Inverse returns s^-1 mod r, or ErrTriedToInvertZero if s is zero.
func (s Scalar) Inverse() (Scalar, error) {
	if s.IsZero() {
		return Scalar{}, ErrTriedToInvertZero
	}
	return Scalar{new(big.Int).ModInverse(s.v, order)}, nil
}

// Big returns the canonical integer representative, 0 <= v < r.
func (s Scalar) Big() *big.Int { return new(big.Int).Set(s.v) }

// BytesLE encodes s as a 32-byte little-endian buffer.
func (s Scalar) BytesLE() []byte {
	be := s.v.FillBytes(make([]byte, 32))
	le := make([]byte, 32)
	for i, b := range be {
		le[31-i] = b
	}
	return le
}

// Zeroize overwrites the scalar's backing integer, for use when a
// short-lived secret scalar's storage is about to be released (spec.md §5,
// §9). Go's GC means this is best-effort, not a hard guarantee.
func (s *Scalar) Zeroize() {
	zeroize.BigInt(s.v)
}
