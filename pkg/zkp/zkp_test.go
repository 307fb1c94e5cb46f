package zkp_test

import (
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/threshold-core/pkg/curve"
	"github.com/luxfi/threshold-core/pkg/pedersen"
)

func newCycle(t *testing.T) *pedersen.Cycle {
	t.Helper()
	cyc, err := pedersen.NewCycle(curve.Secp256k1, rand.Reader)
	require.NoError(t, err)
	return cyc
}

func randomScalar(t *testing.T, params *curve.Params) *curve.Scalar {
	t.Helper()
	s, err := params.RandomScalar(rand.Reader)
	require.NoError(t, err)
	return s
}

func randomAffine(t *testing.T, params *curve.Params) *curve.AffinePoint {
	t.Helper()
	k := randomScalar(t, params)
	return curve.ScalarMul(k, params.Generator()).ToAffine()
}

func rng(t *testing.T) io.Reader {
	t.Helper()
	return rand.Reader
}
