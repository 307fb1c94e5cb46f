package dkg

import "fmt"

// Parameters is the (threshold, nodes) pair of a DKG instance: t signatures
// out of n participants reconstruct the shared secret. A violated
// constructor precondition is a programming error, not a runtime one
// (spec.md §4.11), so NewParameters panics rather than returning an error.
type Parameters struct {
	T int
	N int
}

// NewParameters validates 0 < t <= n and panics otherwise.
func NewParameters(t, n int) Parameters {
	if t <= 0 || t > n {
		panic(fmt.Sprintf("dkg: invalid parameters t=%d n=%d: require 0 < t <= n", t, n))
	}
	return Parameters{T: t, N: n}
}
