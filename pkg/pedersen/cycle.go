package pedersen

import (
	"io"

	"github.com/luxfi/threshold-core/pkg/curve"
)

// Cycle bundles two independent Pedersen generators, one on each curve of a
// cycle pair (spec.md §3 "PedersenCycle"). Proofs that straddle the cycle
// (PointAddProof, ExpProof, ZkAttestProof) commit base-curve quantities on
// the Cycle generator and cycle-curve quantities on the Base generator.
type Cycle struct {
	Base  *Generator // generator on the base curve (e.g. Secp256k1)
	Cycle *Generator // generator on the cycle curve (e.g. Tom256k1)
}

// NewCycle builds independent generators for base and its cycle partner.
func NewCycle(base *curve.Params, rng io.Reader) (*Cycle, error) {
	baseGen, err := NewGenerator(base, rng)
	if err != nil {
		return nil, err
	}
	cycleGen, err := NewGenerator(base.CyclePartner(), rng)
	if err != nil {
		return nil, err
	}
	return &Cycle{Base: baseGen, Cycle: cycleGen}, nil
}
