package bls

import "io"

// KeyPair is a BLS12-381 G2 keypair: a secret scalar and its public image
// x*G2. Grounded on original_source/agora-threshold-sig/src/keypair.rs,
// which pairs a zeroizing secret scalar with a G2 public key.
type KeyPair struct {
	Priv Scalar
	Pub  G2Point
}

// GenerateKeyPair samples a fresh random keypair.
func GenerateKeyPair(rng io.Reader) (KeyPair, error) {
	priv, err := RandomScalar(rng)
	if err != nil {
		return KeyPair{}, err
	}
	return NewKeyPair(priv), nil
}

// NewKeyPair derives the public key for an existing secret scalar.
func NewKeyPair(priv Scalar) KeyPair {
	return KeyPair{Priv: priv, Pub: G2Generator().ScalarMul(priv)}
}

// Equal reports whether two keypairs hold the same secret and public key.
func (k KeyPair) Equal(other KeyPair) bool {
	return k.Priv.Equal(other.Priv) && k.Pub.Equal(other.Pub)
}

// Zeroize overwrites the secret scalar. pkg/dkg calls it when share
// recovery rejects an inconsistent share keypair (spec.md §5, §9).
func (k *KeyPair) Zeroize() { k.Priv.Zeroize() }
