package zkp_test

import (
	"context"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/threshold-core/internal/pool"
	"github.com/luxfi/threshold-core/pkg/curve"
	"github.com/luxfi/threshold-core/pkg/zkp"
)

// signECDSA produces a valid (r, s) over curve.Secp256k1 for a freshly
// generated keypair, using this module's own curve arithmetic throughout
// (rather than crypto/ecdsa, which operates over a different point
// representation).
func signECDSA(t *testing.T, params *curve.Params, msgHash *curve.Scalar) (r, s *curve.Scalar, priv *curve.Scalar, pub *curve.AffinePoint) {
	t.Helper()
	priv = randomScalar(t, params)
	pub = curve.ScalarMul(priv, params.Generator()).ToAffine()

	for {
		k := randomScalar(t, params)
		rProj := curve.ScalarMul(k, params.Generator())
		if rProj.IsIdentity() {
			continue
		}
		rAffine := rProj.ToAffine()
		rCand := params.ScalarFromBytesLE(rAffine.X.BytesLE())
		if rCand.IsZero() {
			continue
		}
		kInv, err := k.Inverse()
		require.NoError(t, err)
		sCand := kInv.Mul(msgHash.Add(rCand.Mul(priv)))
		if sCand.IsZero() {
			continue
		}
		return rCand, sCand, priv, pub
	}
}

func fixedMsgHash(t *testing.T, params *curve.Params) *curve.Scalar {
	t.Helper()
	digest := sha256.Sum256([]byte("threshold-core zkattest scenario S6"))
	return params.ScalarFromBytesLE(digest[:])
}

func buildZkAttestRing(t *testing.T, params *curve.Params, n, index int, memberX *curve.FieldElement) []*curve.Scalar {
	t.Helper()
	ring := make([]*curve.Scalar, n)
	for i := range ring {
		if i == index {
			ring[i] = curve.FieldToCycleScalar(memberX)
			continue
		}
		ring[i] = curve.FieldToCycleScalar(randomAffine(t, params).X)
	}
	return ring
}

func TestZkAttestValidSignatureByRingMemberVerifies(t *testing.T) {
	cyc := newCycle(t)
	baseParams := curve.Secp256k1
	ctx := context.Background()
	workers := pool.New(4)

	msgHash := fixedMsgHash(t, baseParams)
	r, s, _, pub := signECDSA(t, baseParams, msgHash)

	const ringSize = 128
	const index = 1
	ring := buildZkAttestRing(t, baseParams, ringSize, index, pub.X)

	proof, err := zkp.ConstructZkAttest(ctx, rng(t), workers, cyc.Base, cyc.Cycle, msgHash, r, s, pub, ring, index, 16)
	require.NoError(t, err)

	assert.NoError(t, zkp.VerifyZkAttest(ctx, rng(t), workers, cyc.Base, cyc.Cycle, msgHash, r, s, pub, ring, proof))
}

func TestZkAttestRejectsTamperedRing(t *testing.T) {
	cyc := newCycle(t)
	baseParams := curve.Secp256k1
	ctx := context.Background()
	workers := pool.New(4)

	msgHash := fixedMsgHash(t, baseParams)
	r, s, _, pub := signECDSA(t, baseParams, msgHash)

	ring := buildZkAttestRing(t, baseParams, 8, 2, pub.X)
	proof, err := zkp.ConstructZkAttest(ctx, rng(t), workers, cyc.Base, cyc.Cycle, msgHash, r, s, pub, ring, 2, 16)
	require.NoError(t, err)

	tamperedRing := buildZkAttestRing(t, baseParams, 8, 2, randomAffine(t, baseParams).X)
	assert.Error(t, zkp.VerifyZkAttest(ctx, rng(t), workers, cyc.Base, cyc.Cycle, msgHash, r, s, pub, tamperedRing, proof))
}

func TestZkAttestRejectsWrongDeclaredIndex(t *testing.T) {
	cyc := newCycle(t)
	baseParams := curve.Secp256k1
	ctx := context.Background()
	workers := pool.New(4)

	msgHash := fixedMsgHash(t, baseParams)
	r, s, _, pub := signECDSA(t, baseParams, msgHash)

	ring := buildZkAttestRing(t, baseParams, 8, 2, pub.X)

	// Constructing against a claimed index that does not hold pub's
	// x-coordinate makes the prover's own commitment inconsistent with the
	// ring entry it is forced to match.
	proof, err := zkp.ConstructZkAttest(ctx, rng(t), workers, cyc.Base, cyc.Cycle, msgHash, r, s, pub, ring, 5, 16)
	require.NoError(t, err)
	assert.Error(t, zkp.VerifyZkAttest(ctx, rng(t), workers, cyc.Base, cyc.Cycle, msgHash, r, s, pub, ring, proof))
}

func TestZkAttestRejectsTamperedSignature(t *testing.T) {
	cyc := newCycle(t)
	baseParams := curve.Secp256k1
	ctx := context.Background()
	workers := pool.New(4)

	msgHash := fixedMsgHash(t, baseParams)
	r, s, _, pub := signECDSA(t, baseParams, msgHash)

	ring := buildZkAttestRing(t, baseParams, 8, 3, pub.X)
	_, err := zkp.ConstructZkAttest(ctx, rng(t), workers, cyc.Base, cyc.Cycle, msgHash, r, s.Add(baseParams.ScalarOne()), pub, ring, 3, 16)
	assert.Error(t, err)
}

func TestZkAttestRejectsTamperedMessage(t *testing.T) {
	cyc := newCycle(t)
	baseParams := curve.Secp256k1
	ctx := context.Background()
	workers := pool.New(4)

	msgHash := fixedMsgHash(t, baseParams)
	r, s, _, pub := signECDSA(t, baseParams, msgHash)

	ring := buildZkAttestRing(t, baseParams, 8, 4, pub.X)
	proof, err := zkp.ConstructZkAttest(ctx, rng(t), workers, cyc.Base, cyc.Cycle, msgHash, r, s, pub, ring, 4, 16)
	require.NoError(t, err)

	otherHash := msgHash.Add(baseParams.ScalarOne())
	assert.Error(t, zkp.VerifyZkAttest(ctx, rng(t), workers, cyc.Base, cyc.Cycle, otherHash, r, s, pub, ring, proof))
}
