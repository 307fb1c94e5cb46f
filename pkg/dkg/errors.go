package dkg

import "errors"

// Errors surfaced at the DKG boundary, per spec.md §6/§7. Programming
// errors (violated Parameters preconditions) panic instead of returning an
// error; these are the remainder: input-validation, protocol, and proof
// failures, all recoverable by the caller.
var (
	ErrNotEnoughParticipants    = errors.New("dkg: not enough participants registered")
	ErrNotEnoughShares          = errors.New("dkg: fewer than threshold shares collected")
	ErrSharesAlreadyProvided    = errors.New("dkg: shares already provided for this address")
	ErrSharesMapFull            = errors.New("dkg: shares map already holds one entry per participant")
	ErrInvalidShareVectorLength = errors.New("dkg: share vector length does not match participant count")
	ErrSelfIndexNotFound        = errors.New("dkg: self address not found among participants")
	ErrInvalidKeypair           = errors.New("dkg: recovered share-signing key is inconsistent with its verification key")
	ErrShareVerificationFailed  = errors.New("dkg: a published share failed verification")
	ErrDuplicateParticipant     = errors.New("dkg: address already registered as a participant")
)
