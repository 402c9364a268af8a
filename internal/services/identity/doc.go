// Package identity stores and reloads the labeler signing key.
//
// It enforces the passphrase policy, checks that the keypair encodes
// cleanly, and persists it via the domain.KeyStore.
package identity
