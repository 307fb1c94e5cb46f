package bls

import (
	"io"
)

// EncryptedShare is a publicly verifiable identity-based encryption of a
// secret share, carrying a NIZK of consistency checkable by pairing
// without knowing the recipient's secret key (spec.md §3, §4.9).
type EncryptedShare struct {
	C Scalar
	U G2Point
	V G1Point
}

// NewEncryptedShare encrypts share s to the holder of pubkey = x*G2 under
// identity id, per spec.md §4.9. r=0 has negligible probability, but it is
// still rejected explicitly with ErrEphemeralIsZero before r is inverted,
// per the Open Question noted in spec.md §9.
func NewEncryptedShare(rng io.Reader, id []byte, pubkey G2Point, s Scalar) (EncryptedShare, error) {
	r, err := RandomScalar(rng)
	if err != nil {
		return EncryptedShare{}, err
	}
	if r.IsZero() {
		return EncryptedShare{}, ErrEphemeralIsZero
	}

	q := HashToG1(id)
	e := Pair(q, pubkey.ScalarMul(r))
	h := HashToFp(e.Bytes())
	c := s.Add(h)
	u := G2Generator().ScalarMul(r)

	hPoint := HashToG1(encodeShareInput(q, c, u))
	rInv, err := r.Inverse()
	if err != nil {
		return EncryptedShare{}, err
	}
	v := hPoint.ScalarMul(h.Mul(rInv))

	return EncryptedShare{C: c, U: u, V: v}, nil
}

func encodeShareInput(q G1Point, c Scalar, u G2Point) []byte {
	buf := make([]byte, 0, len(q.CompressedBytes())+32+len(u.CompressedBytes()))
	buf = append(buf, q.CompressedBytes()...)
	buf = append(buf, c.BytesLE()...)
	buf = append(buf, u.CompressedBytes()...)
	return buf
}

// Verify checks the NIZK of consistency for the share against the public
// verification key vk = s*G2, without requiring the recipient's secret
// key. It returns a boolean rather than an error — verification failure is
// adversarial input, not an exceptional condition, so the DKG layer can
// attribute blame to a specific participant (spec.md §4.9, §7).
func (es EncryptedShare) Verify(id []byte, vk G2Point) bool {
	q := HashToG1(id)
	h := HashToG1(encodeShareInput(q, es.C, es.U))

	lhs := Pair(h, G2Generator().ScalarMul(es.C))
	rhs := Pair(h, vk).Add(Pair(es.V, es.U))
	return lhs.Equal(rhs)
}

// Decrypt recovers the committed share using the recipient's secret key x.
// A wrong key yields an arbitrary scalar, not an error: downstream
// Lagrange interpolation detects the mismatch via share verification
// (spec.md §7).
func (es EncryptedShare) Decrypt(id []byte, x Scalar) Scalar {
	q := HashToG1(id)
	ePrime := Pair(q.ScalarMul(x), es.U)
	hPrime := HashToFp(ePrime.Bytes())
	return es.C.Sub(hPrime)
}
