package bls

import "errors"

// ErrEphemeralIsZero is returned by NewEncryptedShare on the
// negligible-probability event that the sampled ephemeral scalar r is
// zero, which would otherwise make r^-1 undefined (spec.md §9).
var ErrEphemeralIsZero = errors.New("bls: ephemeral scalar is zero")
