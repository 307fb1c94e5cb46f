// Package pedersen implements Pedersen commitments over the cycle-of-curves
// base and cycle curves (spec.md §4.5): hiding, binding commitments of the
// form s*G + r*H with a homomorphism required by every Sigma-protocol proof
// in pkg/zkp.
package pedersen

import (
	"io"

	"github.com/luxfi/threshold-core/pkg/curve"
)

// Generator is a public group element H, derived once at setup as r*G for
// a secret random r discarded after setup.
type Generator struct {
	params *curve.Params
	g, h   *curve.ProjectivePoint
}

// NewGenerator derives H from a fresh random scalar and the curve's base
// point G, discarding the scalar immediately (spec.md §3).
func NewGenerator(params *curve.Params, rng io.Reader) (*Generator, error) {
	r, err := params.RandomScalar(rng)
	if err != nil {
		return nil, err
	}
	g := params.Generator()
	h := curve.ScalarMul(r, g)
	return &Generator{params, g, h}, nil
}

// NewGeneratorFromPoint builds a Generator from an externally-supplied H
// (e.g. a nothing-up-my-sleeve hash-derived point, or one loaded from
// storage).
func NewGeneratorFromPoint(params *curve.Params, h *curve.ProjectivePoint) *Generator {
	return &Generator{params, params.Generator(), h}
}

// Params returns the generator's parent curve descriptor.
func (gen *Generator) Params() *curve.Params { return gen.params }

// H returns the blinding generator.
func (gen *Generator) H() *curve.ProjectivePoint { return gen.h }

// G returns the curve's base generator.
func (gen *Generator) G() *curve.ProjectivePoint { return gen.g }

// Commitment is a Pedersen commitment (C, r): C = s*G + r*H for committed
// secret s and randomness r.
type Commitment struct {
	gen *Generator
	C   *curve.ProjectivePoint
	R   *curve.Scalar
}

// Commit samples fresh randomness r and returns (s*G + r*H, r).
func (gen *Generator) Commit(s *curve.Scalar, rng io.Reader) (*Commitment, error) {
	r, err := gen.params.RandomScalar(rng)
	if err != nil {
		return nil, err
	}
	return gen.CommitWithRandomness(s, r), nil
}

// CommitWithRandomness is the deterministic variant used by provers
// re-deriving a previously committed value.
func (gen *Generator) CommitWithRandomness(s, r *curve.Scalar) *Commitment {
	c := curve.DoubleScalarMul(s, gen.g, r, gen.h)
	return &Commitment{gen, c, r}
}

// Open reconstructs the commitment point for a claimed (s, r) pair, for
// verification against a stored Commitment.C.
func (gen *Generator) Open(s, r *curve.Scalar) *curve.ProjectivePoint {
	return curve.DoubleScalarMul(s, gen.g, r, gen.h)
}

// Add returns the commitment to a+b, with randomness r_a+r_b, realizing
// the homomorphism commit(a)+commit(b) = commit(a+b) (spec.md §4.5).
func (c *Commitment) Add(d *Commitment) *Commitment {
	return &Commitment{c.gen, c.C.Add(d.C), c.R.Add(d.R)}
}

// Sub returns the commitment to a-b, with randomness r_a-r_b.
func (c *Commitment) Sub(d *Commitment) *Commitment {
	return &Commitment{c.gen, c.C.Add(d.C.Neg()), c.R.Sub(d.R)}
}

// ScalarMul returns the commitment to k*a, with randomness k*r, realizing
// k*commit(a) = commit(k*a).
func (c *Commitment) ScalarMul(k *curve.Scalar) *Commitment {
	return &Commitment{c.gen, curve.ScalarMul(k, c.C), c.R.Mul(k)}
}

// Point returns the commitment's group element.
func (c *Commitment) Point() *curve.ProjectivePoint { return c.C }

// Randomness returns the commitment's opening randomness.
func (c *Commitment) Randomness() *curve.Scalar { return c.R }
