// Package curve implements the base-curve/cycle-curve arithmetic of the
// composable Sigma-protocol proof system: prime-field elements, curve-order
// scalars, and short-Weierstrass points with complete addition, shared by
// Secp256k1 (the base curve) and Tom256k1 (its cycle partner).
package curve

import (
	"math/big"

	"github.com/cronokirby/saferith"
)

// Params is the compile-time descriptor of a short-Weierstrass curve
// y^2 = x^3 + A*x + B over F_P, with a distinguished generator (Gx, Gy) of
// order N.
type Params struct {
	Name   string
	P      *saferith.Modulus
	N      *saferith.Modulus
	A, B   *saferith.Nat
	Gx, Gy *saferith.Nat
}

func modulusFromHex(hexStr string) *saferith.Modulus {
	v, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("curve: invalid hex modulus literal " + hexStr)
	}
	return saferith.ModulusFromNat(new(saferith.Nat).SetBytes(v.Bytes()))
}

func natFromHex(hexStr string) *saferith.Nat {
	v, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("curve: invalid hex literal " + hexStr)
	}
	return new(saferith.Nat).SetBytes(v.Bytes())
}

func natFromUint64(v uint64) *saferith.Nat {
	return new(saferith.Nat).SetUint64(v)
}

// Secp256k1 is the base curve of the cycle: the standard Bitcoin/Ethereum
// curve, y^2 = x^3 + 7.
var Secp256k1 = &Params{
	Name: "secp256k1",
	P:    modulusFromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"),
	N:    modulusFromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"),
	A:    natFromUint64(0),
	B:    natFromUint64(7),
	Gx:   natFromHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
	Gy:   natFromHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
}

// Tom256k1 is the cycle curve: its order equals Secp256k1's prime modulus,
// and its own prime modulus equals Secp256k1's order, so that a coordinate
// of a Secp256k1 point can be losslessly reinterpreted as a Tom256k1
// scalar (see FieldToCycleScalar). A=0, B=7, as specified in spec.md §6.
// Generator coordinates from original_source/tom256/src/curve.rs.
var Tom256k1 = &Params{
	Name: "tom256k1",
	P:    modulusFromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"),
	N:    modulusFromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"),
	A:    natFromUint64(0),
	B:    natFromUint64(7),
	Gx:   natFromHex("ac81a9587b8da43a9519bd50d96191fd8f2c4f66b8f1550e366e3c7f9ed18897"),
	Gy:   natFromHex("6ad7d16db13c428e5dce61c8bfe2b3860a306d201f059826120e7ac684ee209f"),
}

// CyclePartner returns the curve whose scalar field equals p's base field,
// i.e. the other curve of the cycle. Secp256k1 <-> Tom256k1.
func (p *Params) CyclePartner() *Params {
	switch p {
	case Secp256k1:
		return Tom256k1
	case Tom256k1:
		return Secp256k1
	default:
		panic("curve: " + p.Name + " is not part of a known cycle")
	}
}

// FieldZero returns the additive identity of F_P.
func (p *Params) FieldZero() *FieldElement { return &FieldElement{p, new(saferith.Nat).SetUint64(0)} }

// FieldOne returns the multiplicative identity of F_P.
func (p *Params) FieldOne() *FieldElement { return &FieldElement{p, new(saferith.Nat).SetUint64(1)} }

// ScalarZero returns the additive identity of F_N.
func (p *Params) ScalarZero() *Scalar { return &Scalar{p, new(saferith.Nat).SetUint64(0)} }

// ScalarOne returns the multiplicative identity of F_N.
func (p *Params) ScalarOne() *Scalar { return &Scalar{p, new(saferith.Nat).SetUint64(1)} }

// Generator returns the curve's base point G in projective form.
func (p *Params) Generator() *ProjectivePoint {
	return NewProjective(p.NewField(p.Gx), p.NewField(p.Gy), p.FieldOne())
}
