// Package zeroize provides best-effort secret-wiping helpers. Go's
// garbage collector can relocate or retain copies of a value before these
// helpers run, so this is defense in depth, not a hardened guarantee
// (spec.md §1, §5: the core is not side-channel-hardened).
package zeroize

import "math/big"

// Bytes overwrites b in place with zeros.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// BigInt zeroes n's internal representation in place.
func BigInt(n *big.Int) {
	if n == nil {
		return
	}
	n.SetInt64(0)
}
