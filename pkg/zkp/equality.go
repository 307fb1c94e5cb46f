package zkp

import (
	"io"

	"github.com/luxfi/threshold-core/pkg/curve"
	"github.com/luxfi/threshold-core/pkg/multimult"
	"github.com/luxfi/threshold-core/pkg/pedersen"
	"github.com/luxfi/threshold-core/pkg/transcript"
)

// equalityHashID domain-separates the Fiat-Shamir transcript of an
// EqualityProof from every other proof type.
const equalityHashID = "equality-proof"

// EqualityProof proves that two Pedersen commitments open to the same
// secret, without revealing it (spec.md §4.12).
type EqualityProof struct {
	T1, T2 *curve.ProjectivePoint
	Z      *curve.Scalar
	T1r    *curve.Scalar
	T2r    *curve.Scalar
}

// ConstructEquality proves that c1 and c2 both open to secret.
func ConstructEquality(rng io.Reader, gen *pedersen.Generator, c1, c2 *pedersen.Commitment, secret *curve.Scalar) (*EqualityProof, error) {
	params := gen.Params()
	k, err := params.RandomScalar(rng)
	if err != nil {
		return nil, err
	}
	rho1, err := params.RandomScalar(rng)
	if err != nil {
		return nil, err
	}
	rho2, err := params.RandomScalar(rng)
	if err != nil {
		return nil, err
	}

	t1 := gen.CommitWithRandomness(k, rho1)
	t2 := gen.CommitWithRandomness(k, rho2)

	e := equalityChallenge(params, c1.Point(), c2.Point(), t1.Point(), t2.Point())

	z := k.Sub(e.Mul(secret))
	t1r := rho1.Sub(e.Mul(c1.Randomness()))
	t2r := rho2.Sub(e.Mul(c2.Randomness()))

	return &EqualityProof{T1: t1.Point(), T2: t2.Point(), Z: z, T1r: t1r, T2r: t2r}, nil
}

func equalityChallenge(params *curve.Params, c1, c2, t1, t2 *curve.ProjectivePoint) *curve.Scalar {
	tr := transcript.New(equalityHashID, params)
	tr.AppendPoint(c1).AppendPoint(c2).AppendPoint(t1).AppendPoint(t2)
	return tr.Challenge()
}

// Drain absorbs p's two verification relations into mm, each scaled by an
// independent random coefficient so that many proofs can be batched into
// one aggregated evaluation (spec.md §4.4, §4.12):
//
//	zG + t1*H + e*C1 - T1 = 0
//	zG + t2*H + e*C2 - T2 = 0
func (p *EqualityProof) Drain(rng io.Reader, gen *pedersen.Generator, c1, c2 *curve.ProjectivePoint, mm *multimult.MultiMult) error {
	params := gen.Params()
	e := equalityChallenge(params, c1, c2, p.T1, p.T2)

	lambda1, err := params.RandomScalar(rng)
	if err != nil {
		return err
	}
	lambda2, err := params.RandomScalar(rng)
	if err != nil {
		return err
	}

	mm.AddKnown(gen.G())
	mm.AddKnown(gen.H())

	mm.Insert(gen.G(), lambda1.Mul(p.Z))
	mm.Insert(gen.H(), lambda1.Mul(p.T1r))
	mm.Insert(c1, lambda1.Mul(e))
	mm.Insert(p.T1, lambda1.Neg())

	mm.Insert(gen.G(), lambda2.Mul(p.Z))
	mm.Insert(gen.H(), lambda2.Mul(p.T2r))
	mm.Insert(c2, lambda2.Mul(e))
	mm.Insert(p.T2, lambda2.Neg())

	return nil
}

// Verify checks p in isolation: honest proofs accept, and flipping any
// single mask or commitment bit rejects (spec.md §8 property 7).
func (p *EqualityProof) Verify(rng io.Reader, gen *pedersen.Generator, c1, c2 *curve.ProjectivePoint) error {
	mm := multimult.New(gen.Params())
	if err := p.Drain(rng, gen, c1, c2, mm); err != nil {
		return err
	}
	if !mm.Evaluate().IsIdentity() {
		return ErrProofInvalid
	}
	return nil
}
