package zkp

import (
	"io"

	"github.com/luxfi/threshold-core/pkg/curve"
	"github.com/luxfi/threshold-core/pkg/multimult"
	"github.com/luxfi/threshold-core/pkg/pedersen"
)

// PointAddCommitments holds Pedersen commitments, on the cycle curve, to
// the affine coordinates of three base-curve points P, Q, R. Cross-curve
// commitment uses curve.FieldToCycleScalar to reinterpret each base-field
// coordinate as a cycle-curve scalar (spec.md §4.14, §9).
type PointAddCommitments struct {
	Px, Py, Qx, Qy, Rx, Ry *pedersen.Commitment
}

// CommitPointAdd commits to the coordinates of p, q, r (all on the same
// base curve) using cycleGen, a Pedersen generator on the cycle curve.
func CommitPointAdd(rng io.Reader, cycleGen *pedersen.Generator, p, q, r *curve.AffinePoint) (*PointAddCommitments, error) {
	commit := func(f *curve.FieldElement) (*pedersen.Commitment, error) {
		return cycleGen.Commit(curve.FieldToCycleScalar(f), rng)
	}
	px, err := commit(p.X)
	if err != nil {
		return nil, err
	}
	py, err := commit(p.Y)
	if err != nil {
		return nil, err
	}
	qx, err := commit(q.X)
	if err != nil {
		return nil, err
	}
	qy, err := commit(q.Y)
	if err != nil {
		return nil, err
	}
	rx, err := commit(r.X)
	if err != nil {
		return nil, err
	}
	ry, err := commit(r.Y)
	if err != nil {
		return nil, err
	}
	return &PointAddCommitments{Px: px, Py: py, Qx: qx, Qy: qy, Rx: rx, Ry: ry}, nil
}

// Points returns the six public commitment points, the form a verifier
// receives.
func (c *PointAddCommitments) Points() (px, py, qx, qy, rx, ry *curve.ProjectivePoint) {
	return c.Px.Point(), c.Py.Point(), c.Qx.Point(), c.Qy.Point(), c.Rx.Point(), c.Ry.Point()
}

// PointAddProof proves that three committed affine base-curve points
// satisfy P+Q=R, via the explicit chord-and-tangent algebra of spec.md
// §4.14: four MultiplicationProofs pin down the slope and its square, and
// two EqualityProofs close the x- and y-coordinate relations.
type PointAddProof struct {
	CAux8, CAux10, CAux11, CAux13 *curve.ProjectivePoint // public commitment points for the freshly-committed auxiliaries
	Mult8, Mult10, Mult11, Mult13 *MultiplicationProof
	EqX, EqY                      *EqualityProof
}

// ConstructPointAdd builds a PointAddProof that p+q=r, given the
// commitments produced by CommitPointAdd and the cycle-curve generator
// they were committed under.
func ConstructPointAdd(rng io.Reader, cycleGen *pedersen.Generator, commitments *PointAddCommitments, p, q, r *curve.AffinePoint) (*PointAddProof, error) {
	aux7 := q.X.Sub(p.X)
	aux8, err := aux7.Inverse()
	if err != nil {
		return nil, err
	}
	aux9 := q.Y.Sub(p.Y)
	aux10 := aux8.Mul(aux9)
	aux11 := aux10.Square()
	aux12 := p.X.Sub(r.X)
	aux13 := aux10.Mul(aux12)

	params := cycleGen.Params()
	sAux7 := curve.FieldToCycleScalar(aux7)
	sAux8 := curve.FieldToCycleScalar(aux8)
	sAux9 := curve.FieldToCycleScalar(aux9)
	sAux10 := curve.FieldToCycleScalar(aux10)
	sAux11 := curve.FieldToCycleScalar(aux11)
	sAux12 := curve.FieldToCycleScalar(aux12)
	sAux13 := curve.FieldToCycleScalar(aux13)

	cAux7 := commitments.Qx.Sub(commitments.Px)
	cAux8, err := cycleGen.Commit(sAux8, rng)
	if err != nil {
		return nil, err
	}
	cAux9 := commitments.Qy.Sub(commitments.Py)
	cAux10, err := cycleGen.Commit(sAux10, rng)
	if err != nil {
		return nil, err
	}
	cAux11, err := cycleGen.Commit(sAux11, rng)
	if err != nil {
		return nil, err
	}
	cAux12 := commitments.Px.Sub(commitments.Rx)
	cAux13, err := cycleGen.Commit(sAux13, rng)
	if err != nil {
		return nil, err
	}
	cOne := cycleGen.CommitWithRandomness(params.ScalarOne(), params.ScalarZero())

	mult8, err := ConstructMultiplication(rng, cycleGen, cAux8, cAux7, cOne, sAux8, sAux7, params.ScalarOne())
	if err != nil {
		return nil, err
	}
	mult10, err := ConstructMultiplication(rng, cycleGen, cAux8, cAux9, cAux10, sAux8, sAux9, sAux10)
	if err != nil {
		return nil, err
	}
	mult11, err := ConstructMultiplication(rng, cycleGen, cAux10, cAux10, cAux11, sAux10, sAux10, sAux11)
	if err != nil {
		return nil, err
	}
	mult13, err := ConstructMultiplication(rng, cycleGen, cAux10, cAux12, cAux13, sAux10, sAux12, sAux13)
	if err != nil {
		return nil, err
	}

	sumX := commitments.Rx.Add(commitments.Px).Add(commitments.Qx)
	eqX, err := ConstructEquality(rng, cycleGen, cAux11, sumX, sAux11)
	if err != nil {
		return nil, err
	}
	sumY := commitments.Ry.Add(commitments.Py)
	eqY, err := ConstructEquality(rng, cycleGen, cAux13, sumY, sAux13)
	if err != nil {
		return nil, err
	}

	return &PointAddProof{
		CAux8: cAux8.Point(), CAux10: cAux10.Point(), CAux11: cAux11.Point(), CAux13: cAux13.Point(),
		Mult8: mult8, Mult10: mult10, Mult11: mult11, Mult13: mult13,
		EqX: eqX, EqY: eqY,
	}, nil
}

// Drain absorbs all six sub-proofs into mm (spec.md §4.14: "all six
// sub-proofs are drained into a single multimult for verification").
func (p *PointAddProof) Drain(rng io.Reader, cycleGen *pedersen.Generator, px, py, qx, qy, rx, ry *curve.ProjectivePoint, mm *multimult.MultiMult) error {
	params := cycleGen.Params()
	cAux7 := qx.Add(px.Neg())
	cAux9 := qy.Add(py.Neg())
	cAux12 := px.Add(rx.Neg())
	cOne := cycleGen.CommitWithRandomness(params.ScalarOne(), params.ScalarZero()).Point()

	if err := p.Mult8.Drain(rng, cycleGen, p.CAux8, cAux7, cOne, mm); err != nil {
		return err
	}
	if err := p.Mult10.Drain(rng, cycleGen, p.CAux8, cAux9, p.CAux10, mm); err != nil {
		return err
	}
	if err := p.Mult11.Drain(rng, cycleGen, p.CAux10, p.CAux10, p.CAux11, mm); err != nil {
		return err
	}
	if err := p.Mult13.Drain(rng, cycleGen, p.CAux10, cAux12, p.CAux13, mm); err != nil {
		return err
	}

	sumX := rx.Add(px).Add(qx)
	if err := p.EqX.Drain(rng, cycleGen, p.CAux11, sumX, mm); err != nil {
		return err
	}
	sumY := ry.Add(py)
	if err := p.EqY.Drain(rng, cycleGen, p.CAux13, sumY, mm); err != nil {
		return err
	}
	return nil
}

// Verify checks p in isolation against the six public commitment points.
func (p *PointAddProof) Verify(rng io.Reader, cycleGen *pedersen.Generator, px, py, qx, qy, rx, ry *curve.ProjectivePoint) error {
	mm := multimult.New(cycleGen.Params())
	if err := p.Drain(rng, cycleGen, px, py, qx, qy, rx, ry, mm); err != nil {
		return err
	}
	if !mm.Evaluate().IsIdentity() {
		return ErrProofInvalid
	}
	return nil
}
