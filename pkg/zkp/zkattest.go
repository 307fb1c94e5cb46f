package zkp

import (
	"context"
	"io"

	"github.com/luxfi/threshold-core/internal/pool"
	"github.com/luxfi/threshold-core/pkg/curve"
	"github.com/luxfi/threshold-core/pkg/pedersen"
)

// ZkAttestProof attests, without revealing which, that an ECDSA signature
// (r, s) on msgHash was produced by one member of a public ring of
// x-coordinates (spec.md §4.17).
//
// The self-consistent ECDSA identity this implementation proves is
// r*P = s*R - msgHash*G, rearranged as R = u2*P - Q with u2 = r*s^-1 and
// Q = -u1*G, u1 = msgHash*s^-1: R is therefore the hidden (committed)
// point in the ExpProof, and P the plaintext base. The ring member's
// public key P is passed in the clear to both Construct and Verify in
// this implementation; anonymity is carried only by RingMembership's
// hidden index over P's x-coordinate, not by also hiding P from the
// ExpProof. Hiding P fully would require an exponentiation proof whose
// *base* (not just its exponent) is itself committed — effectively a
// double-and-add chain of PointAddProofs — which the source material for
// this proof system (exp.rs, membership.rs) left as unimplemented
// stubs and which is out of scope here; see DESIGN.md.
type ZkAttestProof struct {
	R               *ExpProof
	Membership      *RingMembership
	CommitmentToKey *curve.ProjectivePoint
}

// ConstructZkAttest builds a ZkAttestProof that the ECDSA signature (r, s)
// on msgHash was produced by pub, a member of ring at ringIndex whose
// x-coordinate is ring[ringIndex].
func ConstructZkAttest(
	ctx context.Context, rng io.Reader, workers *pool.Pool,
	baseGen, cycleGen *pedersen.Generator,
	msgHash, r, s *curve.Scalar, pub *curve.AffinePoint,
	ring []*curve.Scalar, ringIndex int, lambda int,
) (*ZkAttestProof, error) {
	params := baseGen.Params()
	if r.IsZero() || s.IsZero() {
		return nil, ErrInvalidSignature
	}
	if pub.IsIdentity() {
		return nil, ErrInvalidPubkey
	}

	sInv, err := s.Inverse()
	if err != nil {
		return nil, ErrInvalidSignature
	}
	u1 := sInv.Mul(msgHash)
	u2 := sInv.Mul(r)

	rPoint := curve.ScalarMul(u1, params.Generator()).Add(curve.ScalarMul(u2, pub.ToProjective()))
	rAffine := rPoint.ToAffine()
	if rAffine.IsIdentity() || !rAffine.X.Equal(params.FieldFromBytesLE(r.BytesLE())) {
		return nil, ErrInvalidSignature
	}

	qPoint := curve.ScalarMul(u1.Neg(), params.Generator())
	qAffine := qPoint.ToAffine()

	expProof, _, err := ConstructExp(ctx, rng, workers, baseGen, cycleGen, pub.ToProjective(),
		PointExpSecrets{Exp: u2, Point: rAffine, Q: qAffine}, lambda)
	if err != nil {
		return nil, err
	}

	commitmentToKey, err := cycleGen.Commit(curve.FieldToCycleScalar(pub.X), rng)
	if err != nil {
		return nil, err
	}
	membership, err := ConstructMembership(rng, cycleGen, commitmentToKey, ringIndex, ring)
	if err != nil {
		return nil, err
	}

	return &ZkAttestProof{R: expProof, Membership: membership, CommitmentToKey: commitmentToKey.Point()}, nil
}

// VerifyZkAttest checks proof against the public signature, ring member
// pub, and ring.
func VerifyZkAttest(
	ctx context.Context, rng io.Reader, workers *pool.Pool,
	baseGen, cycleGen *pedersen.Generator,
	msgHash, r, s *curve.Scalar, pub *curve.AffinePoint,
	ring []*curve.Scalar, proof *ZkAttestProof,
) error {
	params := baseGen.Params()
	if r.IsZero() || s.IsZero() {
		return ErrInvalidSignature
	}
	if pub.IsIdentity() {
		return ErrInvalidPubkey
	}

	sInv, err := s.Inverse()
	if err != nil {
		return ErrInvalidSignature
	}
	u1 := sInv.Mul(msgHash)

	qPoint := curve.ScalarMul(u1.Neg(), params.Generator())
	qAffine := qPoint.ToAffine()

	if err := proof.R.Verify(ctx, rng, workers, baseGen, cycleGen, pub.ToProjective(), qAffine); err != nil {
		return err
	}
	if err := proof.Membership.Verify(cycleGen, proof.CommitmentToKey, ring); err != nil {
		return err
	}
	return nil
}
