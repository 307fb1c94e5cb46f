package zkp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/threshold-core/internal/pool"
	"github.com/luxfi/threshold-core/pkg/curve"
	"github.com/luxfi/threshold-core/pkg/zkp"
)

func TestExpProofCompleteness(t *testing.T) {
	for _, lambda := range []int{10, 60, 80} {
		lambda := lambda
		t.Run("", func(t *testing.T) {
			cyc := newCycle(t)
			baseParams := curve.Secp256k1
			ctx := context.Background()
			workers := pool.New(4)

			x := randomScalar(t, baseParams)
			z := curve.ScalarMul(x, baseParams.Generator()).ToAffine()

			proof, _, err := zkp.ConstructExp(ctx, rng(t), workers, cyc.Base, cyc.Cycle, nil,
				zkp.PointExpSecrets{Exp: x, Point: z}, lambda)
			require.NoError(t, err)

			assert.NoError(t, proof.Verify(ctx, rng(t), workers, cyc.Base, cyc.Cycle, nil, nil))
		})
	}
}

func TestExpProofRejectsWrongClaimedPoint(t *testing.T) {
	cyc := newCycle(t)
	baseParams := curve.Secp256k1
	ctx := context.Background()
	workers := pool.New(4)

	x := randomScalar(t, baseParams)
	wrongZ := curve.ScalarMul(x.Add(baseParams.ScalarOne()), baseParams.Generator()).ToAffine()

	proof, _, err := zkp.ConstructExp(ctx, rng(t), workers, cyc.Base, cyc.Cycle, nil,
		zkp.PointExpSecrets{Exp: x, Point: wrongZ}, 16)
	require.NoError(t, err)

	assert.Error(t, proof.Verify(ctx, rng(t), workers, cyc.Base, cyc.Cycle, nil, nil))
}

func TestExpProofWithPublicOffset(t *testing.T) {
	cyc := newCycle(t)
	baseParams := curve.Secp256k1
	ctx := context.Background()
	workers := pool.New(4)

	x := randomScalar(t, baseParams)
	c := randomScalar(t, baseParams)
	q := curve.ScalarMul(c, baseParams.Generator()).ToAffine()

	z := curve.ScalarMul(x, baseParams.Generator()).Add(q.ToProjective().Neg()).ToAffine()

	proof, _, err := zkp.ConstructExp(ctx, rng(t), workers, cyc.Base, cyc.Cycle, nil,
		zkp.PointExpSecrets{Exp: x, Point: z, Q: q}, 16)
	require.NoError(t, err)

	assert.NoError(t, proof.Verify(ctx, rng(t), workers, cyc.Base, cyc.Cycle, nil, q))
}

func TestExpProofGeneralizedBase(t *testing.T) {
	cyc := newCycle(t)
	baseParams := curve.Secp256k1
	ctx := context.Background()
	workers := pool.New(4)

	base := curve.ScalarMul(randomScalar(t, baseParams), baseParams.Generator())
	x := randomScalar(t, baseParams)
	z := curve.ScalarMul(x, base).ToAffine()

	proof, _, err := zkp.ConstructExp(ctx, rng(t), workers, cyc.Base, cyc.Cycle, base,
		zkp.PointExpSecrets{Exp: x, Point: z}, 16)
	require.NoError(t, err)

	assert.NoError(t, proof.Verify(ctx, rng(t), workers, cyc.Base, cyc.Cycle, base, nil))
}
