// Package keygen is the key encoder: it generates an Ed25519 signing key for
// a labeler and returns the multibase private key and did:key public
// identifier derived from it.
//
// The key is exported through the platform's PKCS#8 / SPKI encoders and the
// raw 32-byte halves are taken from the tail of those exports before
// encoding. Nothing is printed or persisted here.
package keygen
