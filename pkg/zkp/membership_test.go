package zkp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/threshold-core/pkg/curve"
	"github.com/luxfi/threshold-core/pkg/zkp"
)

func buildRing(t *testing.T, params *curve.Params, n int) []*curve.Scalar {
	t.Helper()
	ring := make([]*curve.Scalar, n)
	for i := range ring {
		ring[i] = randomScalar(t, params)
	}
	return ring
}

func TestRingMembershipHonestAccepts(t *testing.T) {
	cyc := newCycle(t)
	gen := cyc.Base
	params := gen.Params()

	ring := buildRing(t, params, 5)
	index := 3

	commitment, err := gen.Commit(ring[index], rng(t))
	require.NoError(t, err)

	proof, err := zkp.ConstructMembership(rng(t), gen, commitment, index, ring)
	require.NoError(t, err)

	assert.NoError(t, proof.Verify(gen, commitment.Point(), ring))
}

func TestRingMembershipRejectsDisjointRing(t *testing.T) {
	cyc := newCycle(t)
	gen := cyc.Base
	params := gen.Params()

	ring := buildRing(t, params, 5)
	index := 1

	commitment, err := gen.Commit(ring[index], rng(t))
	require.NoError(t, err)

	proof, err := zkp.ConstructMembership(rng(t), gen, commitment, index, ring)
	require.NoError(t, err)

	otherRing := buildRing(t, params, 5)
	assert.Error(t, proof.Verify(gen, commitment.Point(), otherRing))
}

func TestRingMembershipRejectsWrongDeclaredIndex(t *testing.T) {
	cyc := newCycle(t)
	gen := cyc.Base
	params := gen.Params()

	ring := buildRing(t, params, 8)
	actualIndex := 2
	claimedIndex := 5

	commitment, err := gen.Commit(ring[actualIndex], rng(t))
	require.NoError(t, err)

	proof, err := zkp.ConstructMembership(rng(t), gen, commitment, claimedIndex, ring)
	require.NoError(t, err)

	assert.Error(t, proof.Verify(gen, commitment.Point(), ring))
}

func TestRingMembershipRejectsEmptyRing(t *testing.T) {
	cyc := newCycle(t)
	gen := cyc.Base

	_, err := zkp.ConstructMembership(rng(t), gen, nil, 0, nil)
	assert.ErrorIs(t, err, zkp.ErrEmptyRing)
}
