// Package crypto exposes the minimal Ed25519 primitives used by labelkey.
//
// Contents
//
//   - Ed25519 key generation from a caller-supplied randomness source and
//     reconstruction from a seed (GenerateEd25519, KeyFromSeed)
//   - PKCS#8 / SPKI DER export and stripping of the fixed algorithm wrapper
//     down to the raw 32-byte key (ExportPKCS8, RawSeedFromPKCS8, ...)
//   - Signing and verification, used to prove a reloaded seed still matches
//     its stored public key (SignEd25519, VerifyEd25519)
//   - Short public-key fingerprints for display (Fingerprint)
//
// # Notes
//
// Failures of the platform primitive are reported as domain.ErrCryptoUnavailable.
// Exports that do not carry exactly one 32-byte Ed25519 key are reported as
// domain.ErrEncoding.
package crypto
