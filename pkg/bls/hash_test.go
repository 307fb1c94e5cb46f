package bls_test

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/luxfi/threshold-core/pkg/bls"
)

func TestHashToG1IsDeterministic(t *testing.T) {
	msg := []byte("threshold-core hash-to-curve determinism")
	assert.True(t, bls.HashToG1(msg).Equal(bls.HashToG1(msg)))
}

func TestHashToG1DistinguishesMessages(t *testing.T) {
	a := bls.HashToG1([]byte("message one"))
	b := bls.HashToG1([]byte("message two"))
	assert.False(t, a.Equal(b))
}

func TestHashToG1AndHashToG2ReturnNonIdentityPoints(t *testing.T) {
	msg := []byte("same input, two curves")
	g1 := bls.HashToG1(msg)
	g2 := bls.HashToG2(msg)
	assert.False(t, g1.IsZero())
	assert.False(t, g2.IsZero())
}

// legacyHashToScalar reproduces the hash-to-scalar-then-multiply-by-
// generator construction HashToG1 used before it was wired to
// kilic/bls12-381's HashToCurveFT. A correct HashToG1's output must not
// equal legacyHashToScalar(msg)*G1 for the messages this test samples,
// since nobody (including the verifier) is meant to be able to express
// HashToG1(msg) as a known scalar multiple of the generator.
func legacyHashToScalar(msg []byte, dst string) bls.Scalar {
	out := make([]byte, 0, 48)
	var i uint32
	for len(out) < 48 {
		h := sha3.New256()
		h.Write([]byte(dst))
		h.Write(msg)
		var ctr [4]byte
		binary.BigEndian.PutUint32(ctr[:], i)
		h.Write(ctr[:])
		var lenBuf [4]byte
		binary.BigEndian.PutUint32(lenBuf[:], 48)
		h.Write(lenBuf[:])
		out = append(out, h.Sum(nil)...)
		i++
	}
	return bls.NewScalar(new(big.Int).SetBytes(out[:48]))
}

func TestHashToG1IsNotHashToScalarTimesGenerator(t *testing.T) {
	for _, msg := range [][]byte{
		[]byte("alice"),
		[]byte("bob"),
		[]byte("threshold-core DKG share id 7"),
	} {
		legacy := bls.G1Generator().ScalarMul(legacyHashToScalar(msg, bls.G1DST))
		assert.False(t, bls.HashToG1(msg).Equal(legacy),
			"HashToG1(%q) must not equal the hash-to-scalar-then-multiply construction, "+
				"or its discrete log relative to G1 would be known", msg)
	}
}

func TestHashToFpIsDeterministicAndDistinguishesMessages(t *testing.T) {
	a := bls.HashToFp([]byte("payload a"))
	b := bls.HashToFp([]byte("payload a"))
	c := bls.HashToFp([]byte("payload b"))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
