package dkg

import (
	"sort"

	"github.com/luxfi/threshold-core/pkg/bls"
)

// PublicShare is a single participant's verification key for one
// coordinate of the sharing polynomial, together with the encrypted share
// itself (spec.md §3).
type PublicShare struct {
	VK  bls.G2Point
	ESH bls.EncryptedShare
}

// Verify checks the share's NIZK of consistency against the recipient
// identified by addr (spec.md §4.9).
func (ps PublicShare) Verify(addr bls.Address) bool {
	return ps.ESH.Verify(addr.Bytes(), ps.VK)
}

// SharesMap is the insertion-once Address -> []PublicShare map of spec.md
// §3: at most one entry per address, every inserted vector exactly
// shareVecLen long, no address overwritten.
type SharesMap struct {
	shareVecLen int
	entries     map[bls.Address][]PublicShare
}

// NewSharesMap creates an empty map expecting vectors of length
// shareVecLen (the number of participants).
func NewSharesMap(shareVecLen int) *SharesMap {
	return &SharesMap{shareVecLen: shareVecLen, entries: make(map[bls.Address][]PublicShare)}
}

// Insert records addr's share vector. It rejects a duplicate address, a
// mis-sized vector, or an insert once shareVecLen entries are already held.
func (m *SharesMap) Insert(addr bls.Address, shares []PublicShare) error {
	if _, ok := m.entries[addr]; ok {
		return ErrSharesAlreadyProvided
	}
	if len(m.entries) >= m.shareVecLen {
		return ErrSharesMapFull
	}
	if len(shares) != m.shareVecLen {
		return ErrInvalidShareVectorLength
	}
	m.entries[addr] = shares
	return nil
}

// Len returns the number of addresses with a published share vector.
func (m *SharesMap) Len() int { return len(m.entries) }

// Get returns the share vector published by addr, if any.
func (m *SharesMap) Get(addr bls.Address) ([]PublicShare, bool) {
	v, ok := m.entries[addr]
	return v, ok
}

// Addresses returns the set of addresses with a published entry, ordered
// by address byte-lex (spec.md §3).
func (m *SharesMap) Addresses() []bls.Address {
	addrs := make([]bls.Address, 0, len(m.entries))
	for a := range m.entries {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i].Less(addrs[j]) })
	return addrs
}

// VerifyAll checks every published share vector: coordinate j of each
// vector must verify against orderedParticipants[j], the address the share
// at that coordinate is encrypted for (spec.md §4.11's ShareCollection ->
// Finalized precondition).
func (m *SharesMap) VerifyAll(orderedParticipants []bls.Address) bool {
	for _, vec := range m.entries {
		if len(vec) != len(orderedParticipants) {
			return false
		}
		for j, ps := range vec {
			if !ps.Verify(orderedParticipants[j]) {
				return false
			}
		}
	}
	return true
}
