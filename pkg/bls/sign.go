package bls

// Sign produces a BLS signature share sk*hash_to_g1(msg) (spec.md §4.11).
func Sign(sk Scalar, msg []byte) G1Point {
	return HashToG1(msg).ScalarMul(sk)
}

// VerifySignature checks pair(hash_to_g1(msg), vk) == pair(sig, G2), the
// BLS pairing verification equation of spec.md §4.11.
func VerifySignature(msg []byte, sig G1Point, vk G2Point) bool {
	return PairingCheckEqual(HashToG1(msg), vk, sig, G2Generator())
}
