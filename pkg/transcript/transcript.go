// Package transcript implements domain-separated Fiat-Shamir challenge
// derivation (spec.md §4.6): a Keccak/SHA3-256 hasher seeded with a
// per-proof domain-separation label, absorbing group elements by their
// big-endian coordinate byte strings in a canonical, fixed order.
package transcript

import (
	"hash"

	"golang.org/x/crypto/sha3"

	"github.com/luxfi/threshold-core/pkg/curve"
)

// Transcript accumulates a Fiat-Shamir absorb sequence for one proof
// instance. The absorb order is part of the protocol contract (spec.md §9)
// — two implementations that absorb the same values in the same order will
// derive the same challenge.
type Transcript struct {
	h      hash.Hash
	params *curve.Params
}

// New seeds a transcript with a domain-separation label and the curve
// whose order the final challenge will be reduced modulo.
func New(label string, params *curve.Params) *Transcript {
	t := &Transcript{h: sha3.New256(), params: params}
	t.h.Write([]byte(label))
	return t
}

// AppendPoint absorbs a group element's affine coordinates as big-endian
// byte strings. The identity absorbs as ToAffine's (0, 1) pair.
func (t *Transcript) AppendPoint(p *curve.ProjectivePoint) *Transcript {
	a := p.ToAffine()
	t.h.Write(a.X.BytesBE())
	t.h.Write(a.Y.BytesBE())
	return t
}

// AppendScalar absorbs a scalar's big-endian byte string.
func (t *Transcript) AppendScalar(s *curve.Scalar) *Transcript {
	be := make([]byte, 32)
	le := s.BytesLE()
	for i, b := range le {
		be[31-i] = b
	}
	t.h.Write(be)
	return t
}

// AppendBytes absorbs an arbitrary byte string, for protocol-level context
// (e.g. a message hash or public point in ZkAttestProof).
func (t *Transcript) AppendBytes(b []byte) *Transcript {
	t.h.Write(b)
	return t
}

// digest returns the 32-byte SHA3-256 digest of everything absorbed so far
// without mutating the transcript, so challenges can be derived
// incrementally if a protocol needs to (none here do, but cloning the
// underlying hash keeps the option open).
func (t *Transcript) digest() []byte {
	sum := t.h.(interface{ Sum([]byte) []byte })
	return sum.Sum(nil)
}

// Challenge finalizes the absorbed transcript into a challenge scalar,
// reducing the 256-bit digest modulo the curve's order.
func (t *Transcript) Challenge() *curve.Scalar {
	digest := t.digest()
	le := make([]byte, len(digest))
	for i, b := range digest {
		le[len(digest)-1-i] = b
	}
	return t.params.ScalarFromBytesLE(le)
}

// ChallengeBits reinterprets the 256-bit digest as a bit string of n bits,
// little-endian by byte and LSB-first within a byte, for ExpProof's
// cut-and-choose challenge (spec.md §4.6, §4.15). n must not exceed 256.
func (t *Transcript) ChallengeBits(n int) []bool {
	if n > 256 {
		panic("transcript: security parameter exceeds digest size")
	}
	digest := t.digest()
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		byteIdx := i / 8
		bitIdx := uint(i % 8)
		bits[i] = (digest[byteIdx]>>bitIdx)&1 == 1
	}
	return bits
}
