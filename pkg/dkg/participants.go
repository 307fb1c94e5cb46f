package dkg

import (
	"sort"

	"github.com/luxfi/threshold-core/pkg/bls"
)

// Participants is the Discovery-phase registry of Address -> G2 public key.
// Registration is restricted to the Discovery state (spec.md §9's Open
// Question: some variants allow late registration, the canonical design
// here does not). Ordering is by Address byte-lex, giving every node the
// same coordinate index for a given address once the set is closed.
type Participants struct {
	pub map[bls.Address]bls.G2Point
}

// NewParticipants creates an empty registry.
func NewParticipants() *Participants {
	return &Participants{pub: make(map[bls.Address]bls.G2Point)}
}

// Add registers addr with its public key, rejecting a duplicate address.
func (p *Participants) Add(addr bls.Address, pubkey bls.G2Point) error {
	if _, ok := p.pub[addr]; ok {
		return ErrDuplicateParticipant
	}
	p.pub[addr] = pubkey
	return nil
}

// Len returns the number of registered participants.
func (p *Participants) Len() int { return len(p.pub) }

// Get returns the public key registered for addr.
func (p *Participants) Get(addr bls.Address) (bls.G2Point, bool) {
	v, ok := p.pub[addr]
	return v, ok
}

// Ordered returns every registered address sorted by byte-lex order. This
// ordering fixes the coordinate index used throughout recover_keys.
func (p *Participants) Ordered() []bls.Address {
	addrs := make([]bls.Address, 0, len(p.pub))
	for a := range p.pub {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i].Less(addrs[j]) })
	return addrs
}

// Index returns addr's coordinate index in the canonical Ordered() list.
func (p *Participants) Index(addr bls.Address) (int, bool) {
	for i, a := range p.Ordered() {
		if a.Equal(addr) {
			return i, true
		}
	}
	return 0, false
}

// Clone returns a deep copy of the participant registry.
func (p *Participants) Clone() *Participants {
	out := NewParticipants()
	for a, pk := range p.pub {
		out.pub[a] = pk
	}
	return out
}
