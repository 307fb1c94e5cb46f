package curve_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/threshold-core/pkg/curve"
)

func randomScalar(t *testing.T, params *curve.Params) *curve.Scalar {
	t.Helper()
	s, err := params.RandomScalar(rand.Reader)
	require.NoError(t, err)
	return s
}

func TestGeneratorsAreOnCurve(t *testing.T) {
	for _, params := range []*curve.Params{curve.Secp256k1, curve.Tom256k1} {
		assert.True(t, params.Generator().IsOnCurve(), "%s generator", params.Name)
	}
}

func TestIdentityIsAdditiveIdentity(t *testing.T) {
	for _, params := range []*curve.Params{curve.Secp256k1, curve.Tom256k1} {
		g := params.Generator()
		id := params.Identity()
		assert.True(t, id.IsIdentity())
		assert.True(t, g.Add(id).Equal(g), "%s: G+O", params.Name)
		assert.True(t, id.Add(g).Equal(g), "%s: O+G", params.Name)
	}
}

func TestAddIsCommutative(t *testing.T) {
	params := curve.Secp256k1
	a := curve.ScalarMul(randomScalar(t, params), params.Generator())
	b := curve.ScalarMul(randomScalar(t, params), params.Generator())
	assert.True(t, a.Add(b).Equal(b.Add(a)))
}

func TestAddIsAssociative(t *testing.T) {
	params := curve.Secp256k1
	a := curve.ScalarMul(randomScalar(t, params), params.Generator())
	b := curve.ScalarMul(randomScalar(t, params), params.Generator())
	c := curve.ScalarMul(randomScalar(t, params), params.Generator())
	lhs := a.Add(b).Add(c)
	rhs := a.Add(b.Add(c))
	assert.True(t, lhs.Equal(rhs))
}

func TestDoubleMatchesSelfAdd(t *testing.T) {
	params := curve.Secp256k1
	p := curve.ScalarMul(randomScalar(t, params), params.Generator())
	assert.True(t, p.Double().Equal(p.Add(p)))
}

func TestNegCancelsUnderAdd(t *testing.T) {
	params := curve.Secp256k1
	p := curve.ScalarMul(randomScalar(t, params), params.Generator())
	assert.True(t, p.Add(p.Neg()).IsIdentity())
}

func TestScalarMulDistributesOverAdd(t *testing.T) {
	params := curve.Secp256k1
	g := params.Generator()
	a := randomScalar(t, params)
	b := randomScalar(t, params)
	lhs := curve.ScalarMul(a.Add(b), g)
	rhs := curve.ScalarMul(a, g).Add(curve.ScalarMul(b, g))
	assert.True(t, lhs.Equal(rhs))
}

func TestScalarMulZeroIsIdentity(t *testing.T) {
	params := curve.Secp256k1
	g := params.Generator()
	assert.True(t, curve.ScalarMul(params.ScalarZero(), g).IsIdentity())
}

func TestScalarMulOneIsIdentityElement(t *testing.T) {
	params := curve.Secp256k1
	g := params.Generator()
	assert.True(t, curve.ScalarMul(params.ScalarOne(), g).Equal(g))
}

func TestDoubleScalarMulMatchesTwoScalarMuls(t *testing.T) {
	params := curve.Secp256k1
	g := params.Generator()
	h := curve.ScalarMul(randomScalar(t, params), g)
	a := randomScalar(t, params)
	b := randomScalar(t, params)

	got := curve.DoubleScalarMul(a, g, b, h)
	want := curve.ScalarMul(a, g).Add(curve.ScalarMul(b, h))
	assert.True(t, got.Equal(want))
}

func TestToAffineRoundTrip(t *testing.T) {
	params := curve.Secp256k1
	p := curve.ScalarMul(randomScalar(t, params), params.Generator())
	affine := p.ToAffine()
	assert.True(t, affine.ToProjective().Equal(p))
}

func TestToAffineIdentity(t *testing.T) {
	params := curve.Secp256k1
	affine := params.Identity().ToAffine()
	assert.True(t, affine.IsIdentity())
}

func TestCyclePartnerIsInvolution(t *testing.T) {
	assert.Same(t, curve.Tom256k1, curve.Secp256k1.CyclePartner())
	assert.Same(t, curve.Secp256k1, curve.Tom256k1.CyclePartner())
}

// A cycle curve's order must equal its partner's field modulus and vice
// versa; FieldToCycleScalar/ScalarToCycleField rely on this to reinterpret
// a coordinate losslessly as a scalar of the other curve.
func TestCycleOrderMatchesPartnerModulus(t *testing.T) {
	assert.Equal(t, curve.Secp256k1.N.Nat().Big().String(), curve.Tom256k1.P.Nat().Big().String())
	assert.Equal(t, curve.Tom256k1.N.Nat().Big().String(), curve.Secp256k1.P.Nat().Big().String())
}
