package curve

import "strings"

// ProjectivePoint is a point (X:Y:Z) on a short-Weierstrass curve with
// A=0, represented in homogeneous projective coordinates. The identity is
// X=0, Y!=0, Z=0.
type ProjectivePoint struct {
	params *Params
	X, Y, Z *FieldElement
}

// NewProjective builds a projective point from raw coordinates without
// checking curve membership; callers that need the check should call
// IsOnCurve explicitly.
func NewProjective(x, y, z *FieldElement) *ProjectivePoint {
	return &ProjectivePoint{x.params, x, y, z}
}

// Identity returns the point at infinity of p.
func (p *Params) Identity() *ProjectivePoint {
	return &ProjectivePoint{p, p.FieldZero(), p.FieldOne(), p.FieldZero()}
}

// Params returns the point's parent curve descriptor.
func (p *ProjectivePoint) Params() *Params { return p.params }

// IsIdentity reports whether p is the point at infinity.
func (p *ProjectivePoint) IsIdentity() bool { return p.Z.IsZero() }

// IsOnCurve verifies the projective curve equation Y^2*Z == X^3 + A*X*Z^2 + B*Z^3.
func (p *ProjectivePoint) IsOnCurve() bool {
	prm := p.params
	a := prm.NewField(prm.A)
	b := prm.NewField(prm.B)
	lhs := p.Y.Square().Mul(p.Z)
	x3 := p.X.Square().Mul(p.X)
	axz2 := a.Mul(p.X).Mul(p.Z.Square())
	bz3 := b.Mul(p.Z.Square()).Mul(p.Z)
	rhs := x3.Add(axz2).Add(bz3)
	return lhs.Equal(rhs)
}

// Equal tests projective equality up to rescaling: X0*Z1==X1*Z0 and
// Y0*Z1==Y1*Z0, per spec.md §3. Must be used instead of affine equality
// unless both operands are known affine (spec.md §9).
func (p *ProjectivePoint) Equal(q *ProjectivePoint) bool {
	return p.X.Mul(q.Z).Equal(q.X.Mul(p.Z)) && p.Y.Mul(q.Z).Equal(q.Y.Mul(p.Z))
}

// Add implements the complete addition formula for a=0 short-Weierstrass
// curves (Renes-Costello-Batina, Algorithm 9). It is branch-free and
// correct for all inputs, including the identity and P==Q; the sequence of
// temporaries below is canonical per spec.md §4.2 and must be reproduced
// exactly so that independent implementations agree bit-for-bit.
func (p *ProjectivePoint) Add(q *ProjectivePoint) *ProjectivePoint {
	prm := p.params
	b3 := prm.NewField(prm.B).Add(prm.NewField(prm.B)).Add(prm.NewField(prm.B))

	x1, y1, z1 := p.X, p.Y, p.Z
	x2, y2, z2 := q.X, q.Y, q.Z

	t0 := x1.Mul(x2)
	t1 := y1.Mul(y2)
	t2 := z1.Mul(z2)
	t3 := x1.Add(y1)
	t4 := x2.Add(y2)
	t3 = t3.Mul(t4)
	t4 = t0.Add(t1)
	t3 = t3.Sub(t4)
	t4 = y1.Add(z1)
	x3 := y2.Add(z2)
	t4 = t4.Mul(x3)
	x3 = t1.Add(t2)
	t4 = t4.Sub(x3)
	x3 = x1.Add(z1)
	y3 := x2.Add(z2)
	x3 = x3.Mul(y3)
	y3 = t0.Add(t2)
	y3 = x3.Sub(y3)
	x3 = t0.Add(t0)
	t0 = x3.Add(t0)
	t2 = b3.Mul(t2)
	z3 := t1.Add(t2)
	t1 = t1.Sub(t2)
	y3 = b3.Mul(y3)
	x3 = t4.Mul(y3)
	t2 = t3.Mul(t1)
	x3 = t2.Sub(x3)
	y3 = y3.Mul(t0)
	t1 = t1.Mul(z3)
	y3 = t1.Add(y3)
	t0 = t0.Mul(t3)
	z3 = z3.Mul(t4)
	z3 = z3.Add(t0)

	return &ProjectivePoint{prm, x3, y3, z3}
}

// Neg returns -p, i.e. (X, -Y, Z).
func (p *ProjectivePoint) Neg() *ProjectivePoint {
	return &ProjectivePoint{p.params, p.X, p.Y.Neg(), p.Z}
}

// Double returns p+p.
func (p *ProjectivePoint) Double() *ProjectivePoint { return p.Add(p) }

// ToAffine multiplies coordinates by Z^-1; the identity maps to the
// identity (Z=0 stays 0).
func (p *ProjectivePoint) ToAffine() *AffinePoint {
	if p.IsIdentity() {
		return &AffinePoint{p.params, p.params.FieldZero(), p.params.FieldOne(), 0}
	}
	zInv, err := p.Z.Inverse()
	if err != nil {
		// Z is only invertible to fail here if the point were malformed
		// (non-identity with Z==0), which Add/Double never produce.
		panic("curve: non-identity point with zero Z")
	}
	return &AffinePoint{p.params, p.X.Mul(zInv), p.Y.Mul(zInv), 1}
}

// AffinePoint is a point (x, y) with an implicit z in {0, 1}; z=0 denotes
// the identity.
type AffinePoint struct {
	params *Params
	X, Y   *FieldElement
	z      uint8
}

// NewAffine builds a finite (z=1) affine point.
func NewAffine(x, y *FieldElement) *AffinePoint { return &AffinePoint{x.params, x, y, 1} }

// Params returns the point's parent curve descriptor.
func (a *AffinePoint) Params() *Params { return a.params }

// IsIdentity reports whether a is the point at infinity.
func (a *AffinePoint) IsIdentity() bool { return a.z == 0 }

// ToProjective lifts a to projective coordinates.
func (a *AffinePoint) ToProjective() *ProjectivePoint {
	if a.IsIdentity() {
		return a.params.Identity()
	}
	return &ProjectivePoint{a.params, a.X, a.Y, a.params.FieldOne()}
}

// Equal tests affine equality directly (valid only when both operands are
// already known affine, per spec.md §9).
func (a *AffinePoint) Equal(b *AffinePoint) bool {
	if a.IsIdentity() || b.IsIdentity() {
		return a.IsIdentity() == b.IsIdentity()
	}
	return a.X.Equal(b.X) && a.Y.Equal(b.Y)
}

// windowTable precomputes {0*P, 1*P, ..., 15*P} for base-16 windowed
// scalar multiplication.
func windowTable(p *ProjectivePoint) [16]*ProjectivePoint {
	var table [16]*ProjectivePoint
	table[0] = p.params.Identity()
	for i := 1; i < 16; i++ {
		table[i] = table[i-1].Add(p)
	}
	return table
}

// ScalarMul computes s*P using base-16 windowed multiplication: the scalar
// is rendered as a hex string without leading zeros, and the accumulator is
// doubled four times per hex digit before adding the looked-up multiple
// (spec.md §4.2).
func ScalarMul(s *Scalar, p *ProjectivePoint) *ProjectivePoint {
	table := windowTable(p)
	digits := s.HexDigits()
	acc := p.params.Identity()
	for _, d := range digits {
		for i := 0; i < 4; i++ {
			acc = acc.Double()
		}
		acc = acc.Add(table[hexVal(d)])
	}
	return acc
}

// DoubleScalarMul computes a*P + b*Q with a single shared double/accumulate
// loop, padding the shorter scalar's hex rendering with leading zeros
// (spec.md §4.2). This is the hot path used during proof aggregation.
func DoubleScalarMul(a *Scalar, p *ProjectivePoint, b *Scalar, q *ProjectivePoint) *ProjectivePoint {
	tableP := windowTable(p)
	tableQ := windowTable(q)

	da, db := a.HexDigits(), b.HexDigits()
	if len(da) < len(db) {
		da = strings.Repeat("0", len(db)-len(da)) + da
	} else if len(db) < len(da) {
		db = strings.Repeat("0", len(da)-len(db)) + db
	}

	acc := p.params.Identity()
	for i := 0; i < len(da); i++ {
		for j := 0; j < 4; j++ {
			acc = acc.Double()
		}
		acc = acc.Add(tableP[hexVal(rune(da[i]))])
		acc = acc.Add(tableQ[hexVal(rune(db[i]))])
	}
	return acc
}

func hexVal(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	default:
		panic("curve: invalid hex digit in scalar rendering")
	}
}
