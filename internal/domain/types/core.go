package types

// DID is a decentralized identifier such as did:plc:... or did:key:....
type DID string

// String returns the string form of the DID.
func (d DID) String() string { return string(d) }

// Handle is an account handle, e.g. labeler.example.com.
type Handle string

// String returns the string form of the handle.
func (h Handle) String() string { return string(h) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
