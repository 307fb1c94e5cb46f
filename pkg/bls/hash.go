package bls

import (
	"math/big"

	"golang.org/x/crypto/sha3"
)

// G1DST and G2DST are the byte-exact domain separation tags required by
// spec.md §6.
const (
	G1DST = "ThIs2Is A8rAnDoM DoMaIn SePaRaTiOn+TaG fOr G1"
	G2DST = "ThIs#Is_A rAnDoM!DoMaIn SePaRaTiOn9TaG fOr G2"
)

// HashToG1 maps an arbitrary message to a point on G1 via
// kilic/bls12-381's own hash-to-curve (the Fouque-Tibouchi map: the
// message is expanded to two independent field elements, each mapped to a
// curve point by the simplified SWU construction, and the two points
// added), domain-separated by G1DST (spec.md §4.8). The discrete log of
// the result relative to G1Generator is unknown to everyone, which is
// what makes Sign/VerifySignature (spec.md §4.11) existentially
// unforgeable under the BLS assumption; hashing to a scalar and
// multiplying by the generator instead would leak exactly that discrete
// log and break the scheme.
//
// g1.HashToCurveFT only errors when its domain tag exceeds 255 bytes,
// which G1DST never does, so a non-nil err here means memory corruption,
// not a reachable runtime condition.
func HashToG1(msg []byte) G1Point {
	p, err := g1.HashToCurveFT(msg, []byte(G1DST))
	if err != nil {
		panic("bls: HashToG1: " + err.Error())
	}
	return G1Point{p}
}

// HashToG2 is HashToG1's G2 analogue, with domain separation tag G2DST.
func HashToG2(msg []byte) G2Point {
	p, err := g2.HashToCurveFT(msg, []byte(G2DST))
	if err != nil {
		panic("bls: HashToG2: " + err.Error())
	}
	return G2Point{p}
}

// HashToFp hashes a message to F_r via SHA3-384 into a 48-byte buffer,
// reduced modulo r (spec.md §4.8's "BLS scalar-from-okm procedure").
func HashToFp(msg []byte) Scalar {
	h := sha3.New384()
	h.Write(msg)
	sum := h.Sum(nil)
	return NewScalar(new(big.Int).SetBytes(sum))
}
