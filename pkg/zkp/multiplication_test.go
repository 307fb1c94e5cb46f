package zkp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/threshold-core/pkg/zkp"
)

func TestMultiplicationProofHonestAccepts(t *testing.T) {
	cyc := newCycle(t)
	gen := cyc.Base
	params := gen.Params()

	x := randomScalar(t, params)
	y := randomScalar(t, params)
	z := x.Mul(y)

	cx, err := gen.Commit(x, rng(t))
	require.NoError(t, err)
	cy, err := gen.Commit(y, rng(t))
	require.NoError(t, err)
	cz, err := gen.Commit(z, rng(t))
	require.NoError(t, err)

	proof, err := zkp.ConstructMultiplication(rng(t), gen, cx, cy, cz, x, y, z)
	require.NoError(t, err)

	assert.NoError(t, proof.Verify(rng(t), gen, cx.Point(), cy.Point(), cz.Point()))
}

func TestMultiplicationProofRejectsBitFlip(t *testing.T) {
	cyc := newCycle(t)
	gen := cyc.Base
	params := gen.Params()

	x := randomScalar(t, params)
	y := randomScalar(t, params)
	z := x.Mul(y)

	cx, err := gen.Commit(x, rng(t))
	require.NoError(t, err)
	cy, err := gen.Commit(y, rng(t))
	require.NoError(t, err)
	cz, err := gen.Commit(z, rng(t))
	require.NoError(t, err)

	proof, err := zkp.ConstructMultiplication(rng(t), gen, cx, cy, cz, x, y, z)
	require.NoError(t, err)

	proof.Tz = proof.Tz.Add(params.ScalarOne())
	assert.ErrorIs(t, proof.Verify(rng(t), gen, cx.Point(), cy.Point(), cz.Point()), zkp.ErrProofInvalid)
}

func TestMultiplicationProofRejectsWrongProduct(t *testing.T) {
	cyc := newCycle(t)
	gen := cyc.Base
	params := gen.Params()

	x := randomScalar(t, params)
	y := randomScalar(t, params)
	notZ := randomScalar(t, params)

	cx, err := gen.Commit(x, rng(t))
	require.NoError(t, err)
	cy, err := gen.Commit(y, rng(t))
	require.NoError(t, err)
	cz, err := gen.Commit(notZ, rng(t))
	require.NoError(t, err)

	proof, err := zkp.ConstructMultiplication(rng(t), gen, cx, cy, cz, x, y, x.Mul(y))
	require.NoError(t, err)

	assert.ErrorIs(t, proof.Verify(rng(t), gen, cx.Point(), cy.Point(), cz.Point()), zkp.ErrProofInvalid)
}
