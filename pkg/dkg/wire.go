package dkg

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/luxfi/threshold-core/pkg/bls"
)

// wirePublicShare is the CBOR encoding of a PublicShare: every field is a
// fixed-length byte string in the canonical encodings of spec.md §6.
type wirePublicShare struct {
	VK []byte `cbor:"vk"`
	C  []byte `cbor:"c"`
	U  []byte `cbor:"u"`
	V  []byte `cbor:"v"`
}

func toWire(ps PublicShare) wirePublicShare {
	return wirePublicShare{
		VK: ps.VK.CompressedBytes(),
		C:  ps.ESH.C.BytesLE(),
		U:  ps.ESH.U.CompressedBytes(),
		V:  ps.ESH.V.CompressedBytes(),
	}
}

func fromWire(w wirePublicShare) (PublicShare, error) {
	vk, err := bls.G2FromCompressed(w.VK)
	if err != nil {
		return PublicShare{}, fmt.Errorf("dkg: decode share verification key: %w", err)
	}
	u, err := bls.G2FromCompressed(w.U)
	if err != nil {
		return PublicShare{}, fmt.Errorf("dkg: decode encrypted share U: %w", err)
	}
	v, err := bls.G1FromCompressed(w.V)
	if err != nil {
		return PublicShare{}, fmt.Errorf("dkg: decode encrypted share V: %w", err)
	}
	return PublicShare{
		VK: vk,
		ESH: bls.EncryptedShare{
			C: bls.ScalarFromBytesLE(w.C),
			U: u,
			V: v,
		},
	}, nil
}

// MarshalShareVector encodes a dealt share vector (one node's row of
// SharesMap) for transport between participants.
func MarshalShareVector(shares []PublicShare) ([]byte, error) {
	wire := make([]wirePublicShare, len(shares))
	for i, ps := range shares {
		wire[i] = toWire(ps)
	}
	return cbor.Marshal(wire)
}

// UnmarshalShareVector decodes a share vector produced by MarshalShareVector.
func UnmarshalShareVector(data []byte) ([]PublicShare, error) {
	var wire []wirePublicShare
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("dkg: decode share vector: %w", err)
	}
	shares := make([]PublicShare, len(wire))
	for i, w := range wire {
		ps, err := fromWire(w)
		if err != nil {
			return nil, err
		}
		shares[i] = ps
	}
	return shares, nil
}
