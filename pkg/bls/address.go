package bls

import "bytes"

// Address is a 32-byte participant identifier derived by hashing a
// participant's G2 public key into the scalar field (spec.md §3, §6):
// raw 32 bytes of hash_to_fp(pubkey_compressed).to_bytes().
type Address [32]byte

// NewAddress derives the Address for a G2 public key.
func NewAddress(pubkey G2Point) Address {
	s := HashToFp(pubkey.CompressedBytes())
	var a Address
	copy(a[:], s.BytesLE())
	return a
}

// Bytes returns the raw 32-byte identifier.
func (a Address) Bytes() []byte { return a[:] }

// Scalar reinterprets the address as an F_r scalar, for polynomial
// evaluation (spec.md §3).
func (a Address) Scalar() Scalar { return ScalarFromBytesLE(a[:]) }

// Less implements the total byte-lex order required for SharesMap/
// participants ordering (spec.md §3).
func (a Address) Less(b Address) bool { return bytes.Compare(a[:], b[:]) < 0 }

// Equal reports whether a and b are the same address.
func (a Address) Equal(b Address) bool { return a == b }
