package curve

import (
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
)

// Scalar is an unsigned integer reduced modulo a curve's generator order N.
type Scalar struct {
	params *Params
	val    *saferith.Nat
}

// NewScalar reduces v modulo p.N.
func (p *Params) NewScalar(v *saferith.Nat) *Scalar {
	return &Scalar{p, new(saferith.Nat).Mod(v, p.N)}
}

// ScalarFromUint64 embeds a small unsigned integer into F_N.
func (p *Params) ScalarFromUint64(v uint64) *Scalar {
	return p.NewScalar(new(saferith.Nat).SetUint64(v))
}

// ScalarFromBytesLE decodes a 32-byte little-endian buffer into F_N.
func (p *Params) ScalarFromBytesLE(b []byte) *Scalar {
	be := reverseBytes(b)
	return p.NewScalar(new(saferith.Nat).SetBytes(be))
}

// RandomScalar samples a value uniformly from [0, N) by rejection sampling
// against 32 random bytes, per spec.md §3.
func (p *Params) RandomScalar(rng io.Reader) (*Scalar, error) {
	modBits := p.N.Nat().Big().BitLen()
	byteLen := (modBits + 7) / 8
	buf := make([]byte, byteLen)
	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, err
		}
		v := new(big.Int).SetBytes(buf)
		if v.Cmp(p.N.Nat().Big()) < 0 {
			return &Scalar{p, new(saferith.Nat).SetBytes(buf)}, nil
		}
	}
}

// Params returns the scalar's parent curve descriptor.
func (s *Scalar) Params() *Params { return s.params }

// IsZero reports whether s is the additive identity.
func (s *Scalar) IsZero() bool { return s.val.Big().Sign() == 0 }

// Equal reports whether s and t denote the same residue mod N.
func (s *Scalar) Equal(t *Scalar) bool {
	if s.params != t.params {
		return false
	}
	return s.val.Big().Cmp(t.val.Big()) == 0
}

// Cmp provides a total order on scalars for heap use (spec.md §4.4).
func (s *Scalar) Cmp(t *Scalar) int { return s.val.Big().Cmp(t.val.Big()) }

// Add returns s+t mod N.
func (s *Scalar) Add(t *Scalar) *Scalar {
	return &Scalar{s.params, new(saferith.Nat).ModAdd(s.val, t.val, s.params.N)}
}

// Sub returns s-t mod N.
func (s *Scalar) Sub(t *Scalar) *Scalar {
	return &Scalar{s.params, new(saferith.Nat).ModSub(s.val, t.val, s.params.N)}
}

// Neg returns -s mod N.
func (s *Scalar) Neg() *Scalar {
	return &Scalar{s.params, new(saferith.Nat).ModNeg(s.val, s.params.N)}
}

// Mul returns s*t mod N.
func (s *Scalar) Mul(t *Scalar) *Scalar {
	return &Scalar{s.params, new(saferith.Nat).ModMul(s.val, t.val, s.params.N)}
}

// Inverse returns s^-1 mod N, or ErrTriedToInvertZero if s is zero.
func (s *Scalar) Inverse() (*Scalar, error) {
	if s.IsZero() {
		return nil, ErrTriedToInvertZero
	}
	return &Scalar{s.params, new(saferith.Nat).ModInverse(s.val, s.params.N)}, nil
}

// Big returns the canonical integer representative of s, 0 <= v < N.
func (s *Scalar) Big() *big.Int { return s.val.Big() }

// BytesLE encodes s as a 32-byte little-endian buffer.
func (s *Scalar) BytesLE() []byte {
	be := s.val.Bytes()
	buf := make([]byte, 32)
	copy(buf[32-len(be):], be)
	return reverseBytes(buf)
}

// HexDigits renders the canonical integer representative as a hexadecimal
// string with no leading zeros, for use by the base-16 windowed scalar
// multiplication of spec.md §4.2 ("the scalar is rendered as a hex string
// without leading zeros").
func (s *Scalar) HexDigits() string {
	if s.IsZero() {
		return "0"
	}
	return s.val.Big().Text(16)
}
