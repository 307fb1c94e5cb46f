package dkg

import (
	"github.com/luxfi/threshold-core/pkg/bls"
	"github.com/luxfi/threshold-core/pkg/polynomial"
)

// recoverKeys implements spec.md §4.11's recover_keys: from a SharesMap
// holding at least t verified entries, reconstruct this node's
// share-signing keypair and the scheme's global verifying key.
func recoverKeys(selfAddr bls.Address, keypair bls.KeyPair, participants *Participants, sharesMap *SharesMap) (bls.KeyPair, bls.G2Point, error) {
	full := participants.Ordered()
	s := sharesMap.Addresses()

	xs := make([]bls.Scalar, len(s))
	for i, a := range s {
		xs[i] = a.Scalar()
	}

	// Step 1: per-coordinate aggregate verification keys SHVK[0..n).
	shvk := make([]bls.G2Point, len(full))
	for i := range full {
		ys := make([]bls.G2Point, len(s))
		for k, addr := range s {
			vec, _ := sharesMap.Get(addr)
			ys[k] = vec[i].VK
		}
		agg, err := polynomial.RecoverGroupSecret(xs, ys)
		if err != nil {
			return bls.KeyPair{}, bls.G2Point{}, err
		}
		shvk[i] = agg
	}

	// Step 2: locate this node's coordinate.
	selfIndex, ok := participants.Index(selfAddr)
	if !ok {
		return bls.KeyPair{}, bls.G2Point{}, ErrSelfIndexNotFound
	}

	// Step 3: decrypt every ciphertext addressed to self.
	ds := make([]bls.Scalar, len(s))
	for k, addr := range s {
		vec, _ := sharesMap.Get(addr)
		ds[k] = vec[selfIndex].ESH.Decrypt(selfAddr.Bytes(), keypair.Priv)
	}

	// Step 4: interpolate to recover this node's share-signing key.
	shsk, err := polynomial.RecoverSecret(xs, ds)
	if err != nil {
		return bls.KeyPair{}, bls.G2Point{}, err
	}
	for i := range ds {
		ds[i].Zeroize()
	}

	// Step 5: interpolate SHVK over the full participant list to get gvk.
	xsFull := make([]bls.Scalar, len(full))
	for i, a := range full {
		xsFull[i] = a.Scalar()
	}
	gvk, err := polynomial.RecoverGroupSecret(xsFull, shvk)
	if err != nil {
		return bls.KeyPair{}, bls.G2Point{}, err
	}

	// Step 6: consistency check between shsk and its public image.
	shareKeypair := bls.NewKeyPair(shsk)
	if !shareKeypair.Pub.Equal(shvk[selfIndex]) {
		shareKeypair.Zeroize()
		return bls.KeyPair{}, bls.G2Point{}, ErrInvalidKeypair
	}

	return shareKeypair, gvk, nil
}
