package polynomial_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/threshold-core/pkg/bls"
	"github.com/luxfi/threshold-core/pkg/polynomial"
)

func TestInterpolateConstant(t *testing.T) {
	x := []bls.Scalar{bls.ScalarFromUint64(3)}
	y := []bls.Scalar{bls.ScalarFromUint64(53)}

	p, err := polynomial.Interpolate(x, y)
	require.NoError(t, err)
	assert.True(t, p.ConstantTerm().Equal(bls.ScalarFromUint64(53)))
	assert.True(t, p.Evaluate(bls.ScalarFromUint64(123456)).Equal(bls.ScalarFromUint64(53)))
}

func TestInterpolateLinear(t *testing.T) {
	// y = 32*x - 13
	x := []bls.Scalar{bls.ScalarFromUint64(2), bls.ScalarFromUint64(3)}
	y := []bls.Scalar{bls.ScalarFromUint64(51), bls.ScalarFromUint64(83)}

	p, err := polynomial.Interpolate(x, y)
	require.NoError(t, err)
	assert.True(t, p.ConstantTerm().Equal(bls.ScalarFromUint64(13).Neg()))
	assert.True(t, p.Coeffs()[1].Equal(bls.ScalarFromUint64(32)))
	assert.True(t, p.Evaluate(bls.ScalarFromUint64(100)).Equal(bls.ScalarFromUint64(3187)))
}

func TestInterpolateLengthMismatch(t *testing.T) {
	x := []bls.Scalar{bls.ScalarFromUint64(1), bls.ScalarFromUint64(2)}
	y := []bls.Scalar{bls.ScalarFromUint64(1)}

	_, err := polynomial.Interpolate(x, y)
	assert.ErrorIs(t, err, polynomial.ErrInvalidInputLengths)
}

func TestRecoverSecretMatchesShares(t *testing.T) {
	secret, err := bls.RandomScalar(rand.Reader)
	require.NoError(t, err)

	p, err := polynomial.NewRandom(rand.Reader, secret, 2)
	require.NoError(t, err)

	xs := []bls.Scalar{bls.ScalarFromUint64(1), bls.ScalarFromUint64(2), bls.ScalarFromUint64(3)}
	ys := make([]bls.Scalar, len(xs))
	for i, x := range xs {
		ys[i] = p.Evaluate(x)
	}

	recovered, err := polynomial.RecoverSecret(xs, ys)
	require.NoError(t, err)
	assert.True(t, recovered.Equal(secret))
}

func TestInterpolateGroupMatchesSecretShares(t *testing.T) {
	secret, err := bls.RandomScalar(rand.Reader)
	require.NoError(t, err)

	p, err := polynomial.NewRandom(rand.Reader, secret, 2)
	require.NoError(t, err)

	xs := []bls.Scalar{bls.ScalarFromUint64(1), bls.ScalarFromUint64(2), bls.ScalarFromUint64(3)}
	ys := make([]bls.G2Point, len(xs))
	for i, x := range xs {
		ys[i] = bls.G2Generator().ScalarMul(p.Evaluate(x))
	}

	recovered, err := polynomial.RecoverGroupSecret(xs, ys)
	require.NoError(t, err)
	assert.True(t, recovered.Equal(bls.G2Generator().ScalarMul(secret)))
}
