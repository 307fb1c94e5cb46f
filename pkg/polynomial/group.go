package polynomial

import "github.com/luxfi/threshold-core/pkg/bls"

// Value is satisfied by any additive group supporting scalar multiplication
// by a bls.Scalar: bls.G1Point and bls.G2Point both qualify. Group elements
// cannot be multiplied by each other, so the coefficient-reconstruction
// algorithm in Interpolate does not generalize to them; InterpolateGroup
// below instead evaluates the Lagrange form directly at one point, which
// only needs scalar-by-scalar arithmetic for the weights and a single
// scalar-multiply-and-add per share for the combination.
type Value[T any] interface {
	Add(T) T
	ScalarMul(bls.Scalar) T
}

// LagrangeCoefficients computes the weights lambda_i such that, for the
// unique degree-(n-1) polynomial f with f(xs[i]) = ys[i],
// f(at) = sum_i lambda_i * ys[i] — without needing the ys themselves. This
// lets the weights be computed once in the scalar field and then applied to
// group-valued shares (spec.md §4.7, used by §4.11's global verifying-key
// and decryption-share reconstruction).
func LagrangeCoefficients(xs []bls.Scalar, at bls.Scalar) ([]bls.Scalar, error) {
	n := len(xs)
	if n == 0 {
		return nil, ErrNotEnoughSamples
	}
	coeffs := make([]bls.Scalar, n)
	for i := 0; i < n; i++ {
		num := bls.ScalarFromUint64(1)
		den := bls.ScalarFromUint64(1)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			num = num.Mul(at.Sub(xs[j]))
			den = den.Mul(xs[i].Sub(xs[j]))
		}
		denInv, err := den.Inverse()
		if err != nil {
			return nil, err
		}
		coeffs[i] = num.Mul(denInv)
	}
	return coeffs, nil
}

// InterpolateGroup evaluates the degree-(n-1) polynomial through
// (xs[i], ys[i]) at point `at` for group-valued ys.
func InterpolateGroup[T Value[T]](xs []bls.Scalar, ys []T, at bls.Scalar) (T, error) {
	var zero T
	if len(xs) != len(ys) {
		return zero, ErrInvalidInputLengths
	}
	lambdas, err := LagrangeCoefficients(xs, at)
	if err != nil {
		return zero, err
	}
	acc := ys[0].ScalarMul(lambdas[0])
	for i := 1; i < len(ys); i++ {
		acc = acc.Add(ys[i].ScalarMul(lambdas[i]))
	}
	return acc, nil
}

// RecoverGroupSecret reconstructs f(0) from group-valued shares, the group
// analogue of RecoverSecret used when combining per-participant public
// shares or decryption shares.
func RecoverGroupSecret[T Value[T]](xs []bls.Scalar, ys []T) (T, error) {
	return InterpolateGroup(xs, ys, bls.ScalarFromUint64(0))
}
