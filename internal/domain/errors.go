package domain

import "errors"

// Error kinds shared across the key and registration paths. Callers match
// them with errors.Is; the wrapped error carries the detail.
var (
	// ErrCryptoUnavailable means the platform could not supply secure
	// randomness or the Ed25519 primitive. Fatal, never retried.
	ErrCryptoUnavailable = errors.New("crypto unavailable")

	// ErrEncoding means a raw key did not have the fixed Ed25519 length or
	// shape. It indicates a defective crypto provider or a corrupted input.
	ErrEncoding = errors.New("encoding error")

	// ErrCollaborator means the PDS or PLC directory rejected or failed a
	// request. Already generated key material stays valid.
	ErrCollaborator = errors.New("collaborator failure")
)
