package dkg

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/luxfi/threshold-core/pkg/bls"
)

// Config is the long-term storage for a Finalized node: everything needed
// to resume signing (or initiate a reshare) after a restart, without
// rerunning the DKG. The core never reads this from the environment or any
// store on its own — persistence is entirely the caller's responsibility
// (spec.md §6: "persisted state: none by the core").
type Config struct {
	Params       Parameters
	SelfAddress  bls.Address
	Priv         bls.Scalar
	Pub          bls.G2Point
	ShareSigning bls.Scalar
	ShareVK      bls.G2Point
	GlobalVK     bls.G2Point
	Participants map[bls.Address]bls.G2Point
}

// ConfigFromFinalized snapshots a Finalized node's recovered keys and
// participant set.
func ConfigFromFinalized(f *Finalized) Config {
	participants := make(map[bls.Address]bls.G2Point, f.participants.Len())
	for _, addr := range f.participants.Ordered() {
		pk, _ := f.participants.Get(addr)
		participants[addr] = pk
	}
	return Config{
		Params:       f.params,
		SelfAddress:  f.selfAddr,
		Priv:         f.keypair.Priv,
		Pub:          f.keypair.Pub,
		ShareSigning: f.shareKeypair.Priv,
		ShareVK:      f.shareKeypair.Pub,
		GlobalVK:     f.globalVK,
		Participants: participants,
	}
}

// Validate checks internal consistency, mirroring the precondition checks
// a loaded config must satisfy before being trusted by a resumed node.
func (c Config) Validate() error {
	if c.Params.T <= 0 || c.Params.T > c.Params.N {
		return errors.New("dkg/config: invalid threshold parameters")
	}
	if len(c.Participants) != c.Params.N {
		return fmt.Errorf("dkg/config: have %d participants, want %d", len(c.Participants), c.Params.N)
	}
	if !bls.G2Generator().ScalarMul(c.ShareSigning).Equal(c.ShareVK) {
		return ErrInvalidKeypair
	}
	return nil
}

// ToFinalized rebuilds a Finalized node from a validated config, for
// resuming signing or beginning a reshare after a restart.
func (c Config) ToFinalized() (*Finalized, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	participants := NewParticipants()
	for addr, pk := range c.Participants {
		if err := participants.Add(addr, pk); err != nil {
			return nil, err
		}
	}
	return &Finalized{
		common: common{
			params:       c.Params,
			selfAddr:     c.SelfAddress,
			keypair:      bls.KeyPair{Priv: c.Priv, Pub: c.Pub},
			participants: participants,
		},
		shareKeypair: bls.KeyPair{Priv: c.ShareSigning, Pub: c.ShareVK},
		globalVK:     c.GlobalVK,
	}, nil
}

type wireConfig struct {
	T            int               `cbor:"t"`
	N            int               `cbor:"n"`
	SelfAddress  []byte            `cbor:"self_address"`
	Priv         []byte            `cbor:"priv"`
	Pub          []byte            `cbor:"pub"`
	ShareSigning []byte            `cbor:"share_signing"`
	ShareVK      []byte            `cbor:"share_vk"`
	GlobalVK     []byte            `cbor:"global_vk"`
	Participants map[string][]byte `cbor:"participants"`
}

// MarshalBinary encodes the config as CBOR.
func (c Config) MarshalBinary() ([]byte, error) {
	participants := make(map[string][]byte, len(c.Participants))
	for addr, pk := range c.Participants {
		participants[string(addr.Bytes())] = pk.CompressedBytes()
	}
	w := wireConfig{
		T:            c.Params.T,
		N:            c.Params.N,
		SelfAddress:  c.SelfAddress.Bytes(),
		Priv:         c.Priv.BytesLE(),
		Pub:          c.Pub.CompressedBytes(),
		ShareSigning: c.ShareSigning.BytesLE(),
		ShareVK:      c.ShareVK.CompressedBytes(),
		GlobalVK:     c.GlobalVK.CompressedBytes(),
		Participants: participants,
	}
	return cbor.Marshal(w)
}

// UnmarshalBinary decodes a config produced by MarshalBinary.
func (c *Config) UnmarshalBinary(data []byte) error {
	var w wireConfig
	if err := cbor.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("dkg/config: decode: %w", err)
	}
	pub, err := bls.G2FromCompressed(w.Pub)
	if err != nil {
		return fmt.Errorf("dkg/config: decode pub: %w", err)
	}
	shareVK, err := bls.G2FromCompressed(w.ShareVK)
	if err != nil {
		return fmt.Errorf("dkg/config: decode share vk: %w", err)
	}
	globalVK, err := bls.G2FromCompressed(w.GlobalVK)
	if err != nil {
		return fmt.Errorf("dkg/config: decode global vk: %w", err)
	}

	var selfAddr bls.Address
	copy(selfAddr[:], w.SelfAddress)

	participants := make(map[bls.Address]bls.G2Point, len(w.Participants))
	for addrBytes, pkBytes := range w.Participants {
		var addr bls.Address
		copy(addr[:], []byte(addrBytes))
		pk, err := bls.G2FromCompressed(pkBytes)
		if err != nil {
			return fmt.Errorf("dkg/config: decode participant public key: %w", err)
		}
		participants[addr] = pk
	}

	*c = Config{
		Params:       Parameters{T: w.T, N: w.N},
		SelfAddress:  selfAddr,
		Priv:         bls.ScalarFromBytesLE(w.Priv),
		Pub:          pub,
		ShareSigning: bls.ScalarFromBytesLE(w.ShareSigning),
		ShareVK:      shareVK,
		GlobalVK:     globalVK,
		Participants: participants,
	}
	return nil
}
