package zkp

import (
	"io"

	"github.com/luxfi/threshold-core/pkg/curve"
	"github.com/luxfi/threshold-core/pkg/multimult"
	"github.com/luxfi/threshold-core/pkg/pedersen"
	"github.com/luxfi/threshold-core/pkg/transcript"
)

const membershipHashID = "membership-proof"

// maxRingLen bounds how large a ring this implementation will pad to a
// power of two, guarding against accidental huge allocations.
const maxRingLen = 1 << 24

// RingMembership proves, via the Groth-Kohlweiss one-out-of-many
// construction, that a committed scalar equals one entry of a public ring
// of scalars, without revealing which (spec.md §4.16).
type RingMembership struct {
	Bits             int
	Cl, Ca, Cb, Cd   []*curve.ProjectivePoint
	Fi, Za, Zb       []*curve.Scalar
	Zd               *curve.Scalar
}

func padRing(ring []*curve.Scalar) ([]*curve.Scalar, int, error) {
	if len(ring) == 0 {
		return nil, 0, ErrEmptyRing
	}
	if len(ring) > maxRingLen {
		return nil, 0, ErrRingTooLong
	}
	n := 0
	size := 1
	for size < len(ring) {
		size *= 2
		n++
	}
	padded := make([]*curve.Scalar, size)
	copy(padded, ring)
	for i := len(ring); i < size; i++ {
		padded[i] = ring[0]
	}
	return padded, n, nil
}

func scalarPow(base *curve.Scalar, k int) *curve.Scalar {
	result := base.Params().ScalarOne()
	for i := 0; i < k; i++ {
		result = result.Mul(base)
	}
	return result
}

// interpolateCoeffs recovers the coefficients of the unique polynomial of
// degree < len(xs) through (xs, ys), via the master/subproduct-polynomial
// algorithm (spec.md §4.7; grounded identically to pkg/polynomial, but
// typed over curve.Scalar since RingMembership operates on the Sigma-proof
// curve rather than the BLS scalar field).
func interpolateCoeffs(xs, ys []*curve.Scalar) ([]*curve.Scalar, error) {
	if len(xs) != len(ys) {
		return nil, ErrProofInvalid
	}
	n := len(xs)
	params := xs[0].Params()
	zero := params.ScalarZero()

	s := make([]*curve.Scalar, n+1)
	for i := range s {
		s[i] = zero
	}
	s[n] = params.ScalarOne()
	s[n-1] = xs[0].Neg()
	for i := 1; i < n; i++ {
		xi := xs[i]
		for j := n - 1 - i; j < n-1; j++ {
			s[j] = s[j].Sub(xi.Mul(s[j+1]))
		}
		s[n-1] = s[n-1].Sub(xi)
	}

	coeffs := make([]*curve.Scalar, n)
	for i := range coeffs {
		coeffs[i] = zero
	}
	for i := 0; i < n; i++ {
		phi := zero
		for j := n; j >= 1; j-- {
			phi = params.ScalarFromUint64(uint64(j)).Mul(s[j]).Add(xs[i].Mul(phi))
		}
		ff, err := phi.Inverse()
		if err != nil {
			return nil, err
		}
		b := params.ScalarOne()
		for j := n - 1; j >= 0; j-- {
			coeffs[j] = coeffs[j].Add(b.Mul(ff).Mul(ys[i]))
			b = s[j].Add(xs[i].Mul(b))
		}
	}
	return coeffs, nil
}

// ConstructMembership proves commitmentToKey opens to ring[index].
func ConstructMembership(rng io.Reader, gen *pedersen.Generator, commitmentToKey *pedersen.Commitment, index int, ring []*curve.Scalar) (*RingMembership, error) {
	padded, n, err := padRing(ring)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(ring) {
		return nil, ErrProofInvalid
	}
	params := gen.Params()

	aVec := make([]*curve.Scalar, n)
	lVec := make([]*curve.Scalar, n)
	rVec := make([]*curve.Scalar, n)
	sVec := make([]*curve.Scalar, n)
	tVec := make([]*curve.Scalar, n)
	rhoVec := make([]*curve.Scalar, n)
	cl := make([]*curve.ProjectivePoint, n)
	ca := make([]*curve.ProjectivePoint, n)
	cb := make([]*curve.ProjectivePoint, n)

	tmpIndex := index
	for i := 0; i < n; i++ {
		bit := tmpIndex % 2
		tmpIndex /= 2
		lVec[i] = params.ScalarFromUint64(uint64(bit))

		var err error
		if aVec[i], err = params.RandomScalar(rng); err != nil {
			return nil, err
		}
		if rVec[i], err = params.RandomScalar(rng); err != nil {
			return nil, err
		}
		if sVec[i], err = params.RandomScalar(rng); err != nil {
			return nil, err
		}
		if tVec[i], err = params.RandomScalar(rng); err != nil {
			return nil, err
		}
		if rhoVec[i], err = params.RandomScalar(rng); err != nil {
			return nil, err
		}

		cl[i] = gen.CommitWithRandomness(lVec[i], rVec[i]).Point()
		ca[i] = gen.CommitWithRandomness(aVec[i], sVec[i]).Point()
		cb[i] = gen.CommitWithRandomness(lVec[i].Mul(aVec[i]), tVec[i]).Point()
	}

	omegas := make([]*curve.Scalar, n)
	for i := range omegas {
		omegas[i] = params.ScalarFromUint64(uint64(i))
	}

	polyVals := make([]*curve.Scalar, n)
	for k, omega := range omegas {
		f0 := make([]*curve.Scalar, n)
		f1 := make([]*curve.Scalar, n)
		ratio := make([]*curve.Scalar, n)
		product := params.ScalarOne()
		for j := 0; j < n; j++ {
			f0[j] = params.ScalarOne().Sub(lVec[j]).Mul(omega).Sub(aVec[j])
			f1[j] = lVec[j].Mul(omega).Add(aVec[j])
			inv, err := f0[j].Inverse()
			if err != nil {
				return nil, err
			}
			ratio[j] = f1[j].Mul(inv)
			product = product.Mul(f0[j])
		}

		prod := []*curve.Scalar{product}
		for i := 0; i < n; i++ {
			old := len(prod)
			for j := 0; j < old; j++ {
				prod = append(prod, ratio[i].Mul(prod[j]))
			}
		}

		polyVal := params.ScalarZero()
		for i := 0; i < len(padded); i++ {
			polyVal = polyVal.Add(padded[index].Sub(padded[i]).Mul(prod[i]))
		}
		polyVals[k] = polyVal
	}

	coeffs, err := interpolateCoeffs(omegas, polyVals)
	if err != nil {
		return nil, err
	}

	cd := make([]*curve.ProjectivePoint, n)
	for i := 0; i < n; i++ {
		cd[i] = gen.CommitWithRandomness(coeffs[i], rhoVec[i]).Point()
	}

	tr := transcript.New(membershipHashID, params)
	tr.AppendPoint(commitmentToKey.Point())
	for i := 0; i < n; i++ {
		tr.AppendPoint(cl[i]).AppendPoint(ca[i]).AppendPoint(cb[i]).AppendPoint(cd[i])
	}
	e := tr.Challenge()

	fi := make([]*curve.Scalar, n)
	za := make([]*curve.Scalar, n)
	zb := make([]*curve.Scalar, n)
	zd := commitmentToKey.Randomness().Mul(scalarPow(e, n))
	for i := 0; i < n; i++ {
		fi[i] = lVec[i].Mul(e).Add(aVec[i])
		za[i] = rVec[i].Mul(e).Add(sVec[i])
		zb[i] = rVec[i].Mul(e.Sub(fi[i])).Add(tVec[i])
		zd = zd.Sub(rhoVec[i].Mul(scalarPow(e, i)))
	}

	return &RingMembership{Bits: n, Cl: cl, Ca: ca, Cb: cb, Cd: cd, Fi: fi, Za: za, Zb: zb, Zd: zd}, nil
}

// Verify checks p against the public commitment point and ring.
func (p *RingMembership) Verify(gen *pedersen.Generator, commitmentToKey *curve.ProjectivePoint, ring []*curve.Scalar) error {
	padded, n, err := padRing(ring)
	if err != nil {
		return err
	}
	if n != p.Bits {
		return ErrProofInvalid
	}
	params := gen.Params()

	tr := transcript.New(membershipHashID, params)
	tr.AppendPoint(commitmentToKey)
	for i := 0; i < n; i++ {
		tr.AppendPoint(p.Cl[i]).AppendPoint(p.Ca[i]).AppendPoint(p.Cb[i]).AppendPoint(p.Cd[i])
	}
	e := tr.Challenge()

	mm := multimult.New(params)
	mm.AddKnown(gen.G())
	mm.AddKnown(gen.H())

	for j := 0; j < n; j++ {
		// e*Cl_j + Ca_j =? Comm(fi_j; za_j)
		mm.Insert(gen.G(), p.Fi[j])
		mm.Insert(gen.H(), p.Za[j])
		mm.Insert(p.Cl[j], e.Neg())
		mm.Insert(p.Ca[j], params.ScalarOne().Neg())

		// (e-fi_j)*Cl_j + Cb_j =? Comm(0; zb_j)
		mm.Insert(gen.H(), p.Zb[j])
		mm.Insert(p.Cl[j], e.Sub(p.Fi[j]).Neg())
		mm.Insert(p.Cb[j], params.ScalarOne().Neg())
	}

	for i := 0; i < len(padded); i++ {
		fProd := params.ScalarOne()
		for j := 0; j < n; j++ {
			bit := (i >> uint(j)) & 1
			if bit == 1 {
				fProd = fProd.Mul(p.Fi[j])
			} else {
				fProd = fProd.Mul(e.Sub(p.Fi[j]))
			}
		}
		ci := commitmentToKey.Add(curve.ScalarMul(padded[i], gen.G()).Neg())
		mm.Insert(ci, fProd)
	}
	for k := 0; k < n; k++ {
		mm.Insert(p.Cd[k], scalarPow(e, k).Neg())
	}
	mm.Insert(gen.H(), p.Zd.Neg())

	if !mm.Evaluate().IsIdentity() {
		return ErrProofInvalid
	}
	return nil
}
