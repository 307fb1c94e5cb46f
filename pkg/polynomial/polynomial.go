// Package polynomial implements Shamir secret-sharing polynomials over the
// BLS12-381 scalar field and Lagrange interpolation, both in coefficient
// form (spec.md §4.7) and as a point evaluation usable with group-valued
// shares (G1/G2 points), where the classic subproduct-polynomial algorithm
// does not apply directly since two group elements cannot be multiplied.
package polynomial

import (
	"errors"
	"io"

	"github.com/luxfi/threshold-core/pkg/bls"
)

var (
	// ErrInvalidInputLengths mirrors the x/y length mismatch rejected by
	// the original Interpolate implementation.
	ErrInvalidInputLengths = errors.New("polynomial: x and y slices have different lengths")
	// ErrNotEnoughSamples is returned when fewer than one sample is given.
	ErrNotEnoughSamples = errors.New("polynomial: not enough samples to interpolate")
)

// Polynomial is a polynomial over the BLS12-381 scalar field, stored with
// coeffs[0] as the constant term.
type Polynomial struct {
	coeffs []bls.Scalar
}

// NewFromCoefficients wraps an explicit coefficient list, lowest degree first.
func NewFromCoefficients(coeffs []bls.Scalar) *Polynomial {
	return &Polynomial{coeffs: coeffs}
}

// Coeffs returns the polynomial's coefficients, lowest degree first.
func (p *Polynomial) Coeffs() []bls.Scalar { return p.coeffs }

// Degree returns the polynomial's degree.
func (p *Polynomial) Degree() int { return len(p.coeffs) - 1 }

// ConstantTerm returns coeffs[0], the secret in a Shamir sharing polynomial.
func (p *Polynomial) ConstantTerm() bls.Scalar { return p.coeffs[0] }

// NewRandom builds a degree-t polynomial with a fixed constant term and t
// uniformly random remaining coefficients, the dealer polynomial of a
// (t+1, n) threshold scheme (spec.md §4.7, used in the DKG ShareGeneration
// phase).
func NewRandom(rng io.Reader, secret bls.Scalar, degree int) (*Polynomial, error) {
	coeffs := make([]bls.Scalar, degree+1)
	coeffs[0] = secret
	for i := 1; i <= degree; i++ {
		c, err := bls.RandomScalar(rng)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return &Polynomial{coeffs: coeffs}, nil
}

// Evaluate computes p(x) via Horner's method.
func (p *Polynomial) Evaluate(x bls.Scalar) bls.Scalar {
	acc := bls.ScalarFromUint64(0)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coeffs[i])
	}
	return acc
}

// Interpolate reconstructs the unique degree-(n-1) polynomial passing
// through (x[i], y[i]) using the master/subproduct-polynomial algorithm:
// it builds the coefficients of prod(X - x[j]) once, then derives each
// point's Lagrange weight from that shared product rather than recomputing
// n-1 pairwise differences per point, as naive Lagrange interpolation does.
func Interpolate(x, y []bls.Scalar) (*Polynomial, error) {
	if len(x) != len(y) {
		return nil, ErrInvalidInputLengths
	}
	n := len(x)
	if n == 0 {
		return nil, ErrNotEnoughSamples
	}

	zero := bls.ScalarFromUint64(0)
	one := bls.ScalarFromUint64(1)

	// s holds the coefficients of prod_j (X - x[j]), built incrementally.
	s := make([]bls.Scalar, n+1)
	for i := range s {
		s[i] = zero
	}
	s[n] = one
	s[n-1] = x[0].Neg()

	for i := 1; i < n; i++ {
		xi := x[i]
		for j := n - 1 - i; j < n-1; j++ {
			aux := xi.Mul(s[j+1])
			s[j] = s[j].Sub(aux)
		}
		s[n-1] = s[n-1].Sub(xi)
	}

	coeffs := make([]bls.Scalar, n)
	for i := range coeffs {
		coeffs[i] = zero
	}

	for i := 0; i < n; i++ {
		// phi = f'(x[i]) = prod_{j != i} (x[i] - x[j]), the Lagrange
		// denominator for sample i, recovered from s via synthetic division.
		phi := zero
		for j := n; j >= 1; j-- {
			phi = phi.Mul(x[i])
			phi = phi.Add(bls.ScalarFromUint64(uint64(j)).Mul(s[j]))
		}
		ff, err := phi.Inverse()
		if err != nil {
			return nil, err
		}
		b := one
		for j := n - 1; j >= 0; j-- {
			aux := b.Mul(ff).Mul(y[i])
			coeffs[j] = coeffs[j].Add(aux)
			b = b.Mul(x[i]).Add(s[j])
		}
	}

	return &Polynomial{coeffs: coeffs}, nil
}

// RecoverSecret interpolates the polynomial through (x[i], y[i]) and
// returns its constant term, the Shamir-reconstructed secret at x=0.
func RecoverSecret(x, y []bls.Scalar) (bls.Scalar, error) {
	p, err := Interpolate(x, y)
	if err != nil {
		return bls.Scalar{}, err
	}
	return p.ConstantTerm(), nil
}
