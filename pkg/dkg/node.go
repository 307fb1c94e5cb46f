// Package dkg implements the distributed key generation state machine of
// spec.md §4.11: a typed, one-way sequence of phases (Discovery ->
// ShareGeneration -> ShareCollection -> Finalized) producing a threshold
// BLS keypair whose global verifying key is identical across all honest
// participants.
package dkg

import (
	"encoding/hex"
	"io"

	"go.uber.org/zap"

	"github.com/luxfi/threshold-core/internal/xlog"
	"github.com/luxfi/threshold-core/pkg/bls"
	"github.com/luxfi/threshold-core/pkg/polynomial"
)

// common holds the fields shared by every phase. logger is nil unless a
// caller opts in via WithLogger: the core performs no I/O by default
// (spec.md §5), but every phase transition is worth a structured log line
// when the caller wants one.
type common struct {
	params       Parameters
	selfAddr     bls.Address
	keypair      bls.KeyPair
	participants *Participants
	logger       *zap.Logger
	correlation  string
}

func (c common) logTransition(to string) {
	if c.logger == nil {
		return
	}
	c.logger.Info("dkg phase transition",
		zap.String("correlation_id", c.correlation),
		zap.String("to", to),
		zap.String("self_address", hex.EncodeToString(c.selfAddr.Bytes())),
	)
}

// Option configures optional, non-default behavior of a Discovery node.
type Option func(*common)

// WithLogger attaches a zap.Logger that receives one info-level line per
// phase transition. Without it, the core stays silent.
func WithLogger(l *zap.Logger) Option {
	return func(c *common) { c.logger = l }
}

// Discovery is the entry phase: the node registers itself, then collects
// the other participants' addresses and public keys.
type Discovery struct {
	common
}

// NewDiscovery starts a DKG instance for the given parameters, registering
// self under the address derived from keypair.Pub.
func NewDiscovery(params Parameters, keypair bls.KeyPair, opts ...Option) *Discovery {
	selfAddr := bls.NewAddress(keypair.Pub)
	participants := NewParticipants()
	_ = participants.Add(selfAddr, keypair.Pub)
	c := common{
		params:       params,
		selfAddr:     selfAddr,
		keypair:      keypair,
		participants: participants,
		correlation:  xlog.CorrelationID(selfAddr.Bytes()),
	}
	for _, opt := range opts {
		opt(&c)
	}
	c.logTransition("discovery")
	return &Discovery{common: c}
}

// SelfAddress returns this node's address.
func (d *Discovery) SelfAddress() bls.Address { return d.selfAddr }

// AddParticipant registers a remote participant's address and public key.
// Registration is restricted to the Discovery phase (spec.md §9).
func (d *Discovery) AddParticipant(addr bls.Address, pubkey bls.G2Point) error {
	return d.participants.Add(addr, pubkey)
}

// ParticipantCount returns the number of currently registered participants.
func (d *Discovery) ParticipantCount() int { return d.participants.Len() }

// ToShareGeneration advances to the dealing phase once all n participants
// are registered.
func (d *Discovery) ToShareGeneration() (*ShareGeneration, error) {
	if d.participants.Len() != d.params.N {
		return nil, ErrNotEnoughParticipants
	}
	d.logTransition("share_generation")
	return &ShareGeneration{common: d.common}, nil
}

// ToShareCollection advances directly to the receiving phase, for a node
// that only collects shares dealt by others in this round.
func (d *Discovery) ToShareCollection() (*ShareCollection, error) {
	if d.participants.Len() != d.params.N {
		return nil, ErrNotEnoughParticipants
	}
	d.logTransition("share_collection")
	return &ShareCollection{common: d.common, sharesMap: NewSharesMap(d.params.N)}, nil
}

// ShareGeneration holds an optional carried-over private share (used when
// resharing) and produces this node's dealt share vector.
type ShareGeneration struct {
	common
	privateShare *bls.Scalar
}

// GenerateShares samples a degree-(t-1) polynomial — reusing the carried
// private share as its constant term when resharing, else a fresh random
// secret — and deals one PublicShare per participant, keyed by that
// participant's address-derived scalar. The polynomial is zeroized before
// returning (spec.md §4.11, §5).
func (g *ShareGeneration) GenerateShares(rng io.Reader) (*ShareCollection, error) {
	var secret bls.Scalar
	if g.privateShare != nil {
		secret = *g.privateShare
	} else {
		s, err := bls.RandomScalar(rng)
		if err != nil {
			return nil, err
		}
		secret = s
	}

	poly, err := polynomial.NewRandom(rng, secret, g.params.T-1)
	if err != nil {
		return nil, err
	}

	ordered := g.participants.Ordered()
	shares := make([]PublicShare, len(ordered))
	for i, addr := range ordered {
		pubkey, _ := g.participants.Get(addr)
		x := addr.Scalar()
		s := poly.Evaluate(x)
		vk := bls.G2Generator().ScalarMul(s)
		esh, err := bls.NewEncryptedShare(rng, addr.Bytes(), pubkey, s)
		if err != nil {
			return nil, err
		}
		shares[i] = PublicShare{VK: vk, ESH: esh}
		s.Zeroize()
	}
	for _, c := range poly.Coeffs() {
		c.Zeroize()
	}

	sharesMap := NewSharesMap(g.params.N)
	if err := sharesMap.Insert(g.selfAddr, shares); err != nil {
		return nil, err
	}
	g.logTransition("share_collection")
	return &ShareCollection{common: g.common, sharesMap: sharesMap}, nil
}

// ShareCollection accumulates published share vectors from participants
// until at least t are present and verified.
type ShareCollection struct {
	common
	sharesMap *SharesMap
}

// Submit records the share vector published by addr — either a remote
// participant's dealt shares or (already inserted by GenerateShares) this
// node's own. Out-of-order delivery across participants is safe; a
// duplicate submission for the same address is rejected.
func (s *ShareCollection) Submit(addr bls.Address, shares []PublicShare) error {
	return s.sharesMap.Insert(addr, shares)
}

// CollectedCount returns the number of addresses with a published vector.
func (s *ShareCollection) CollectedCount() int { return s.sharesMap.Len() }

// Shares returns the share vector published by addr, for rebroadcasting to
// other nodes in the transport layer above this core.
func (s *ShareCollection) Shares(addr bls.Address) ([]PublicShare, bool) {
	return s.sharesMap.Get(addr)
}

// Finalize requires at least t verified share vectors and runs
// recover_keys to produce the node's Finalized state.
func (s *ShareCollection) Finalize() (*Finalized, error) {
	if s.sharesMap.Len() < s.params.T {
		return nil, ErrNotEnoughShares
	}
	if !s.sharesMap.VerifyAll(s.participants.Ordered()) {
		return nil, ErrShareVerificationFailed
	}

	shareKeypair, gvk, err := recoverKeys(s.selfAddr, s.keypair, s.participants, s.sharesMap)
	if err != nil {
		return nil, err
	}

	s.logTransition("finalized")
	return &Finalized{common: s.common, shareKeypair: shareKeypair, globalVK: gvk}, nil
}

// Finalized is the terminal phase: the node holds a share-signing keypair
// consistent with the scheme-wide global verifying key.
type Finalized struct {
	common
	shareKeypair bls.KeyPair
	globalVK     bls.G2Point
}

// Sign produces this node's partial BLS signature share on msg.
func (f *Finalized) Sign(msg []byte) bls.G1Point {
	return bls.Sign(f.shareKeypair.Priv, msg)
}

// VerifyingKey returns this node's share-verification key (SHVK[self]).
func (f *Finalized) VerifyingKey() bls.G2Point { return f.shareKeypair.Pub }

// GlobalVerifyingKey returns the scheme-wide verifying key, identical
// across all honest participants (spec.md §8, scenario S3/S4).
func (f *Finalized) GlobalVerifyingKey() bls.G2Point { return f.globalVK }

// DecryptionShare produces this node's contribution toward threshold
// decryption of env: env.EphemeralPubkey * shsk (spec.md §4.11).
func (f *Finalized) DecryptionShare(env bls.SymmetricEnvelope) bls.G2Point {
	return env.EphemeralPubkey.ScalarMul(f.shareKeypair.Priv)
}

// Reshare emits a new ShareGeneration phase under params (which may change
// the threshold but keeps the same participant set), carrying this node's
// current share-signing key as the constant term of the next dealing
// polynomial and so preserving the global verifying key across the reshare
// (spec.md §4.11).
func (f *Finalized) Reshare(params Parameters) *ShareGeneration {
	priv := f.shareKeypair.Priv
	next := common{
		params: params, selfAddr: f.selfAddr, keypair: f.keypair, participants: f.participants,
		logger: f.logger, correlation: f.correlation,
	}
	next.logTransition("reshare_generation")
	return &ShareGeneration{common: next, privateShare: &priv}
}

// AggregateSignature combines >= t partial signatures into a BLS signature
// verifiable against the global verifying key, via Lagrange interpolation
// at x=0 over G1 (spec.md §4.11, §8 property 6).
func AggregateSignature(addrs []bls.Address, partials []bls.G1Point) (bls.G1Point, error) {
	xs := make([]bls.Scalar, len(addrs))
	for i, a := range addrs {
		xs[i] = a.Scalar()
	}
	return polynomial.RecoverGroupSecret(xs, partials)
}

// CombineDecryptionShares reconstructs the shared point used to decrypt a
// SymmetricEnvelope from >= t participant decryption shares.
func CombineDecryptionShares(addrs []bls.Address, shares []bls.G2Point) (bls.G2Point, error) {
	xs := make([]bls.Scalar, len(addrs))
	for i, a := range addrs {
		xs[i] = a.Scalar()
	}
	return polynomial.RecoverGroupSecret(xs, shares)
}
