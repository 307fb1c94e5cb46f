package bls

import (
	"errors"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// SymmetricEnvelope AEAD-seals a message under a pairing-derived ephemeral
// key (spec.md §4.10). It carries a payload to a single participant, or —
// via threshold decryption — to a quorum reconstructing K_shared from
// decryption shares (spec.md §4.11). The DKG's own share delivery uses
// EncryptedShare, not SymmetricEnvelope.
type SymmetricEnvelope struct {
	Ciphertext       []byte
	EphemeralPubkey  G2Point
	Nonce            [chacha20poly1305.NonceSize]byte
}

// Seal encrypts m for the holder of recipient public key pubkey = x*G2.
func Seal(rng io.Reader, pubkey G2Point, m []byte) (SymmetricEnvelope, error) {
	k, err := RandomScalar(rng)
	if err != nil {
		return SymmetricEnvelope{}, err
	}
	kPub := G2Generator().ScalarMul(k)
	kShared := pubkey.ScalarMul(k)
	return sealWithSharedPoint(rng, kPub, kShared, m)
}

func sealWithSharedPoint(rng io.Reader, kPub, kShared G2Point, m []byte) (SymmetricEnvelope, error) {
	key := deriveKey(kShared)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return SymmetricEnvelope{}, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	if _, err := io.ReadFull(rng, nonce[:]); err != nil {
		return SymmetricEnvelope{}, err
	}
	ct := aead.Seal(nil, nonce[:], m, nil)
	return SymmetricEnvelope{Ciphertext: ct, EphemeralPubkey: kPub, Nonce: nonce}, nil
}

func deriveKey(kShared G2Point) []byte {
	k := HashToFp(kShared.CompressedBytes())
	return k.BytesLE()
}

// ErrNotAuthentic is returned by Open when the AEAD tag fails to verify.
var ErrNotAuthentic = errors.New("bls: envelope ciphertext is not authentic")

// Open decrypts the envelope using the recipient's secret key x, computing
// K_shared = x*EphemeralPubkey.
func (env SymmetricEnvelope) Open(x Scalar) ([]byte, error) {
	kShared := env.EphemeralPubkey.ScalarMul(x)
	return env.openWithSharedPoint(kShared)
}

// OpenWithSharedPoint decrypts using an already-reconstructed K_shared,
// e.g. one recovered by interpolating >= t decryption shares at x=0
// (spec.md §4.11).
func (env SymmetricEnvelope) OpenWithSharedPoint(kShared G2Point) ([]byte, error) {
	return env.openWithSharedPoint(kShared)
}

func (env SymmetricEnvelope) openWithSharedPoint(kShared G2Point) ([]byte, error) {
	key := deriveKey(kShared)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, env.Nonce[:], env.Ciphertext, nil)
	if err != nil {
		return nil, ErrNotAuthentic
	}
	return pt, nil
}
