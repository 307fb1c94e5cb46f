package dkg_test

import (
	"crypto/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/luxfi/threshold-core/pkg/bls"
	"github.com/luxfi/threshold-core/pkg/dkg"
)

// runDiscovery builds n Discovery nodes, each registering every other
// node's address and public key, and advances all of them to
// ShareGeneration.
func runDiscovery(params dkg.Parameters, keypairs []bls.KeyPair) ([]*dkg.ShareGeneration, []bls.Address) {
	n := len(keypairs)
	discoveries := make([]*dkg.Discovery, n)
	for i, kp := range keypairs {
		discoveries[i] = dkg.NewDiscovery(params, kp)
	}
	addrs := make([]bls.Address, n)
	for i, d := range discoveries {
		addrs[i] = d.SelfAddress()
	}
	for i, d := range discoveries {
		for j, kp := range keypairs {
			if i == j {
				continue
			}
			Expect(d.AddParticipant(addrs[j], kp.Pub)).To(Succeed())
		}
	}
	generations := make([]*dkg.ShareGeneration, n)
	for i, d := range discoveries {
		sg, err := d.ToShareGeneration()
		Expect(err).NotTo(HaveOccurred())
		generations[i] = sg
	}
	return generations, addrs
}

// runDealing advances every ShareGeneration to ShareCollection, then
// exchanges every node's dealt share vector with every other node.
func runDealing(generations []*dkg.ShareGeneration, addrs []bls.Address) []*dkg.ShareCollection {
	n := len(generations)
	collections := make([]*dkg.ShareCollection, n)
	for i, sg := range generations {
		sc, err := sg.GenerateShares(rand.Reader)
		Expect(err).NotTo(HaveOccurred())
		collections[i] = sc
	}
	for i, sc := range collections {
		for j, other := range collections {
			if i == j {
				continue
			}
			vec, ok := other.Shares(addrs[j])
			Expect(ok).To(BeTrue())
			Expect(sc.Submit(addrs[j], vec)).To(Succeed())
		}
	}
	return collections
}

func finalizeAll(collections []*dkg.ShareCollection) []*dkg.Finalized {
	n := len(collections)
	finals := make([]*dkg.Finalized, n)
	for i, sc := range collections {
		f, err := sc.Finalize()
		Expect(err).NotTo(HaveOccurred())
		finals[i] = f
	}
	return finals
}

func generateKeypairs(n int) []bls.KeyPair {
	keypairs := make([]bls.KeyPair, n)
	for i := range keypairs {
		kp, err := bls.GenerateKeyPair(rand.Reader)
		Expect(err).NotTo(HaveOccurred())
		keypairs[i] = kp
	}
	return keypairs
}

var _ = Describe("DKG end-to-end", func() {
	It("S3: DKG(3,2) produces one shared verifying key and a 2-of-3 aggregate that verifies", func() {
		params := dkg.NewParameters(2, 3)
		keypairs := generateKeypairs(3)

		generations, addrs := runDiscovery(params, keypairs)
		collections := runDealing(generations, addrs)
		finals := finalizeAll(collections)

		gvk := finals[0].GlobalVerifyingKey()
		for _, f := range finals[1:] {
			Expect(f.GlobalVerifyingKey().Equal(gvk)).To(BeTrue())
		}

		msg := []byte("hello world")
		partials := []bls.G1Point{finals[0].Sign(msg), finals[1].Sign(msg)}
		agg, err := dkg.AggregateSignature(addrs[:2], partials)
		Expect(err).NotTo(HaveOccurred())
		Expect(bls.VerifySignature(msg, agg, gvk)).To(BeTrue())

		Expect(bls.VerifySignature(msg, finals[0].Sign(msg), gvk)).To(BeFalse())
	})

	It("S4: DKG(5,3) resharing preserves the global verifying key", func() {
		params := dkg.NewParameters(3, 5)
		keypairs := generateKeypairs(5)

		generations, addrs := runDiscovery(params, keypairs)
		collections := runDealing(generations, addrs)
		finals := finalizeAll(collections)
		oldGVK := finals[0].GlobalVerifyingKey()

		nextGenerations := make([]*dkg.ShareGeneration, len(finals))
		for i, f := range finals {
			nextGenerations[i] = f.Reshare(params)
		}
		nextCollections := runDealing(nextGenerations, addrs)
		nextFinals := finalizeAll(nextCollections)

		for _, f := range nextFinals {
			Expect(f.GlobalVerifyingKey().Equal(oldGVK)).To(BeTrue())
		}
	})
})
