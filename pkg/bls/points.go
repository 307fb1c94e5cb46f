package bls

import (
	bls12381 "github.com/kilic/bls12-381"
)

var g1 = bls12381.NewG1()
var g2 = bls12381.NewG2()
var gt = bls12381.NewGT()

// G1Point wraps a BLS12-381 G1 element.
type G1Point struct {
	p *bls12381.PointG1
}

// G1Generator returns the canonical G1 base point.
func G1Generator() G1Point { return G1Point{g1.One()} }

// G1Identity returns the G1 point at infinity.
func G1Identity() G1Point { return G1Point{g1.Zero()} }

// Add returns a+b on G1.
func (a G1Point) Add(b G1Point) G1Point {
	r := &bls12381.PointG1{}
	g1.Add(r, a.p, b.p)
	return G1Point{r}
}

// Neg returns -a on G1.
func (a G1Point) Neg() G1Point {
	r := &bls12381.PointG1{}
	g1.Neg(r, a.p)
	return G1Point{r}
}

// ScalarMul returns s*a on G1.
func (a G1Point) ScalarMul(s Scalar) G1Point {
	r := &bls12381.PointG1{}
	g1.MulScalar(r, a.p, s.Big())
	return G1Point{r}
}

// Equal reports whether a and b denote the same G1 element.
func (a G1Point) Equal(b G1Point) bool { return g1.Equal(a.p, b.p) }

// IsZero reports whether a is the G1 identity.
func (a G1Point) IsZero() bool { return g1.IsZero(a.p) }

// CompressedBytes returns the 48-byte compressed encoding of a, per
// spec.md §6.
func (a G1Point) CompressedBytes() []byte { return g1.ToCompressed(a.p) }

// G1FromCompressed decodes a 48-byte compressed G1 encoding.
func G1FromCompressed(b []byte) (G1Point, error) {
	p, err := g1.FromCompressed(b)
	if err != nil {
		return G1Point{}, err
	}
	return G1Point{p}, nil
}

// G2Point wraps a BLS12-381 G2 element.
type G2Point struct {
	p *bls12381.PointG2
}

// G2Generator returns the canonical G2 base point.
func G2Generator() G2Point { return G2Point{g2.One()} }

// G2Identity returns the G2 point at infinity.
func G2Identity() G2Point { return G2Point{g2.Zero()} }

// Add returns a+b on G2.
func (a G2Point) Add(b G2Point) G2Point {
	r := &bls12381.PointG2{}
	g2.Add(r, a.p, b.p)
	return G2Point{r}
}

// Neg returns -a on G2.
func (a G2Point) Neg() G2Point {
	r := &bls12381.PointG2{}
	g2.Neg(r, a.p)
	return G2Point{r}
}

// ScalarMul returns s*a on G2, satisfying polynomial.Value's interface
// (spec.md §4.7) so the group-valued share-verification-key polynomial in
// pkg/dkg interpolates over G2Point exactly like a scalar-valued one.
func (a G2Point) ScalarMul(s Scalar) G2Point {
	r := &bls12381.PointG2{}
	g2.MulScalar(r, a.p, s.Big())
	return G2Point{r}
}

// Equal reports whether a and b denote the same G2 element.
func (a G2Point) Equal(b G2Point) bool { return g2.Equal(a.p, b.p) }

// IsZero reports whether a is the G2 identity.
func (a G2Point) IsZero() bool { return g2.IsZero(a.p) }

// CompressedBytes returns the 96-byte compressed encoding of a.
func (a G2Point) CompressedBytes() []byte { return g2.ToCompressed(a.p) }

// G2FromCompressed decodes a 96-byte compressed G2 encoding.
func G2FromCompressed(b []byte) (G2Point, error) {
	p, err := g2.FromCompressed(b)
	if err != nil {
		return G2Point{}, err
	}
	return G2Point{p}, nil
}

// Pair computes the Ate pairing e(a, b) in GT.
func Pair(a G1Point, b G2Point) GTElement {
	eng := bls12381.NewPairingEngine()
	eng.AddPair(a.p, b.p)
	return GTElement{eng.Result()}
}

// GTElement wraps a BLS12-381 target-group element.
type GTElement struct {
	e *bls12381.E
}

// Equal reports whether g and h denote the same GT element, used by the
// bilinear verification checks of spec.md §4.9.
func (g GTElement) Equal(h GTElement) bool { return gt.Equal(g.e, h.e) }

// Add returns g+h in GT (the group operation of GT, used to combine two
// pairing terms on the right-hand side of the EncryptedShare verification
// equation of spec.md §4.9). GT is a multiplicative subgroup of Fp12, so
// the group operation is Fp12 multiplication.
func (g GTElement) Add(h GTElement) GTElement {
	r := &bls12381.E{}
	gt.Mul(r, g.e, h.e)
	return GTElement{r}
}

// Bytes returns the canonical serialization of the GT element, used as the
// input to hash_to_fp when deriving the EncryptedShare masking scalar
// str(e) of spec.md §4.9.
func (g GTElement) Bytes() []byte { return gt.ToBytes(g.e) }

// PairingCheckEqual verifies e(p1, q1) == e(p2, q2) by computing both
// pairings in full and comparing the results.
func PairingCheckEqual(p1 G1Point, q1 G2Point, p2 G1Point, q2 G2Point) bool {
	return Pair(p1, q1).Equal(Pair(p2, q2))
}
