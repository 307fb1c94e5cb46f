package bls_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/threshold-core/pkg/bls"
)

func TestEncryptedShareRoundTrip(t *testing.T) {
	recipient, err := bls.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	id := []byte("participant-3")
	share := randomScalar(t)
	vk := bls.G2Generator().ScalarMul(share)

	es, err := bls.NewEncryptedShare(rand.Reader, id, recipient.Pub, share)
	require.NoError(t, err)

	assert.True(t, es.Verify(id, vk))
	assert.True(t, es.Decrypt(id, recipient.Priv).Equal(share))
}

func TestEncryptedShareRejectsWrongVerificationKey(t *testing.T) {
	recipient, err := bls.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	id := []byte("participant-4")
	share := randomScalar(t)
	wrongVk := bls.G2Generator().ScalarMul(randomScalar(t))

	es, err := bls.NewEncryptedShare(rand.Reader, id, recipient.Pub, share)
	require.NoError(t, err)

	assert.False(t, es.Verify(id, wrongVk))
}

func TestEncryptedShareRejectsWrongIdentity(t *testing.T) {
	recipient, err := bls.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	share := randomScalar(t)
	vk := bls.G2Generator().ScalarMul(share)

	es, err := bls.NewEncryptedShare(rand.Reader, []byte("participant-5"), recipient.Pub, share)
	require.NoError(t, err)

	assert.False(t, es.Verify([]byte("participant-6"), vk))
}

func TestEncryptedShareDecryptWithWrongKeyYieldsWrongShare(t *testing.T) {
	recipient, err := bls.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	impostor, err := bls.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	id := []byte("participant-7")
	share := randomScalar(t)

	es, err := bls.NewEncryptedShare(rand.Reader, id, recipient.Pub, share)
	require.NoError(t, err)

	assert.False(t, es.Decrypt(id, impostor.Priv).Equal(share))
}
