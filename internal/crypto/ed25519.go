package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"

	"labelkey/internal/domain"
)

// GenerateEd25519 returns a new Ed25519 signing key pair read from r.
// A nil r uses crypto/rand.
func GenerateEd25519(r io.Reader) (ed25519.PrivateKey, ed25519.PublicKey, error) {
	if r == nil {
		r = rand.Reader
	}
	pub, priv, err := ed25519.GenerateKey(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: ed25519 key generation: %v", domain.ErrCryptoUnavailable, err)
	}
	return priv, pub, nil
}

// KeyFromSeed rebuilds the full Ed25519 key pair from its 32-byte seed.
func KeyFromSeed(seed domain.Ed25519Seed) (ed25519.PrivateKey, ed25519.PublicKey) {
	priv := ed25519.NewKeyFromSeed(seed[:])
	return priv, priv.Public().(ed25519.PublicKey)
}

// SignEd25519 signs msg with priv and returns the signature.
func SignEd25519(priv ed25519.PrivateKey, msg []byte) []byte {
	return ed25519.Sign(priv, msg)
}

// VerifyEd25519 verifies sig over msg with pub.
func VerifyEd25519(pub domain.Ed25519Public, msg, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig)
}
