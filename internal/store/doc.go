// Package store keeps the labeler signing key on disk between runs.
//
// The keypair is serialised as JSON and sealed with ChaCha20-Poly1305 under
// a key derived from the operator's passphrase with scrypt. The blob records
// its format version, KDF parameters and, in clear, the did:key of the stored
// key. Files are written atomically with mode 0600.
//
// Persisting the key is opt-in; the key encoder itself never writes anything.
package store
