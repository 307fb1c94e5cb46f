// Package xlog wraps zap with the structured-logging conventions this
// module follows for DKG phase transitions: one logger per Node, fields
// rather than formatted strings, and a short non-cryptographic correlation
// ID. Seeded with material every participant shares, the ID lets a single
// DKG run's log lines be grepped together across participants; pkg/dkg
// seeds it with the node's own address, so its IDs differ per node.
// pkg/zkp does no logging.
package xlog

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
	"go.uber.org/zap"
)

// New builds a development-friendly, leveled logger. Production wiring
// (sampling, JSON sinks) is left to the caller — the core never decides
// where logs go, only what's in them.
func New() (*zap.Logger, error) {
	return zap.NewDevelopment()
}

// CorrelationID derives a short, non-cryptographic identifier for a DKG
// session from its seed material (e.g. the sorted participant address
// list), so log lines from every participant in the same run can be
// correlated without coordinating on a shared counter.
func CorrelationID(seed []byte) string {
	sum := blake3.Sum256(seed)
	return hex.EncodeToString(sum[:8])
}
