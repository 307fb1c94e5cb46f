// Package zkp implements the composable Sigma-protocol proof system over
// the Secp256k1/Tom256k1 cycle of curves (spec.md §4.12-§4.17): equality,
// multiplication, point-addition and exponentiation proofs, a
// Groth-Kohlweiss ring-membership proof, and the ZkAttestProof assembly
// that uses them to attest ECDSA signature validity by an anonymous ring
// member.
//
// Verifiers check their linear relations through a multimult.MultiMult,
// each relation scaled by a fresh random coefficient (spec.md §4.4).
// EqualityProof, MultiplicationProof and PointAddProof expose Drain, which
// absorbs the relations into a caller-supplied multimult so a caller can
// batch many proofs into one aggregated check; their Verify drains into a
// single-use multimult of its own. ExpProof.Verify and
// RingMembership.Verify build their own multimults and have no Drain.
package zkp

import "errors"

var (
	// ErrProofInvalid is returned when a proof's aggregated relation does
	// not evaluate to the identity.
	ErrProofInvalid = errors.New("zkp: proof invalid")

	// ErrIntermediateIsIdentity is returned when a prover or verifier
	// recomputes an intermediate curve point and finds it is the point at
	// infinity, which no valid trial or opening may produce.
	ErrIntermediateIsIdentity = errors.New("zkp: intermediate value is identity")

	// ErrSecurityLevelNotAchieved is returned when an ExpProof is
	// constructed or verified with a security parameter too small to be
	// meaningful.
	ErrSecurityLevelNotAchieved = errors.New("zkp: security level not achieved")

	// ErrChallengeMismatch is returned when a decoded proof's stored
	// challenge does not match the one recomputed from its transcript.
	ErrChallengeMismatch = errors.New("zkp: challenge mismatch")

	// ErrRingTooLong is returned when a ring exceeds the maximum size this
	// implementation will pad to a power of two.
	ErrRingTooLong = errors.New("zkp: ring too long")

	// ErrEmptyRing is returned when RingMembership is constructed over an
	// empty ring.
	ErrEmptyRing = errors.New("zkp: empty ring")

	// ErrInvalidHashLength is returned when a message hash passed to
	// ZkAttestProof is not exactly 32 bytes.
	ErrInvalidHashLength = errors.New("zkp: invalid hash length")

	// ErrInvalidPubkey is returned when a public key point supplied to
	// ZkAttestProof is the identity or not on the curve.
	ErrInvalidPubkey = errors.New("zkp: invalid public key")

	// ErrInvalidSignature is returned when an ECDSA (r, s) pair is
	// malformed (zero, or out of range) before any proof is attempted.
	ErrInvalidSignature = errors.New("zkp: invalid signature")
)
