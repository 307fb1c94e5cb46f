package curve

import (
	"errors"
	"math/big"

	"github.com/cronokirby/saferith"
)

// ErrTriedToInvertZero is returned by Inverse when called on the additive
// identity, which has no multiplicative inverse.
var ErrTriedToInvertZero = errors.New("curve: tried to invert zero")

// FieldElement is an unsigned integer reduced modulo a curve's prime
// modulus P. The zero value is invalid; use Params.NewField or one of the
// Params.Field* constructors.
type FieldElement struct {
	params *Params
	val    *saferith.Nat
}

// NewField reduces v modulo p.P and returns the resulting field element.
func (p *Params) NewField(v *saferith.Nat) *FieldElement {
	return &FieldElement{p, new(saferith.Nat).Mod(v, p.P)}
}

// FieldFromUint64 embeds a small unsigned integer into F_P.
func (p *Params) FieldFromUint64(v uint64) *FieldElement {
	return p.NewField(new(saferith.Nat).SetUint64(v))
}

// FieldFromBytesLE decodes a 32-byte little-endian buffer into F_P, per the
// external encoding contract of spec.md §6.
func (p *Params) FieldFromBytesLE(b []byte) *FieldElement {
	be := reverseBytes(b)
	return p.NewField(new(saferith.Nat).SetBytes(be))
}

// Params returns the field's parent curve descriptor.
func (f *FieldElement) Params() *Params { return f.params }

// IsZero reports whether f is the additive identity.
func (f *FieldElement) IsZero() bool { return f.val.Big().Sign() == 0 }

// Equal reports whether f and g denote the same residue in the same field.
func (f *FieldElement) Equal(g *FieldElement) bool {
	if f.params != g.params {
		return false
	}
	return f.val.Big().Cmp(g.val.Big()) == 0
}

// Add returns f+g mod P.
func (f *FieldElement) Add(g *FieldElement) *FieldElement {
	return &FieldElement{f.params, new(saferith.Nat).ModAdd(f.val, g.val, f.params.P)}
}

// Sub returns f-g mod P.
func (f *FieldElement) Sub(g *FieldElement) *FieldElement {
	return &FieldElement{f.params, new(saferith.Nat).ModSub(f.val, g.val, f.params.P)}
}

// Neg returns -f mod P.
func (f *FieldElement) Neg() *FieldElement {
	return &FieldElement{f.params, new(saferith.Nat).ModNeg(f.val, f.params.P)}
}

// Mul returns f*g mod P.
func (f *FieldElement) Mul(g *FieldElement) *FieldElement {
	return &FieldElement{f.params, new(saferith.Nat).ModMul(f.val, g.val, f.params.P)}
}

// Square returns f*f mod P.
func (f *FieldElement) Square() *FieldElement { return f.Mul(f) }

// Inverse returns f^-1 mod P, or ErrTriedToInvertZero if f is zero.
func (f *FieldElement) Inverse() (*FieldElement, error) {
	if f.IsZero() {
		return nil, ErrTriedToInvertZero
	}
	return &FieldElement{f.params, new(saferith.Nat).ModInverse(f.val, f.params.P)}, nil
}

// Big returns the canonical integer representative of f, 0 <= v < P.
func (f *FieldElement) Big() *big.Int { return f.val.Big() }

// BytesLE encodes f as a 32-byte little-endian buffer.
func (f *FieldElement) BytesLE() []byte {
	be := f.val.Bytes()
	buf := make([]byte, 32)
	copy(buf[32-len(be):], be)
	return reverseBytes(buf)
}

// BytesBE encodes f as a 32-byte big-endian buffer, the form Fiat-Shamir
// transcripts absorb coordinates in (spec.md §4.6).
func (f *FieldElement) BytesBE() []byte {
	be := f.val.Bytes()
	buf := make([]byte, 32)
	copy(buf[32-len(be):], be)
	return buf
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
