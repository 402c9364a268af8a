package crypto

import (
	"bytes"
	"crypto/ed25519"
	"crypto/x509"
	"fmt"

	"labelkey/internal/domain"
)

// RawKeySize is the length of a raw Ed25519 seed or public key.
const RawKeySize = 32

// DER wrappers the encoders put in front of a raw Ed25519 key. They are
// constant for this algorithm: PKCS#8 v1 without attributes, and SPKI with
// the id-Ed25519 OID (1.3.101.112).
var (
	pkcs8Ed25519Prefix = []byte{
		0x30, 0x2e, 0x02, 0x01, 0x00, 0x30, 0x05, 0x06,
		0x03, 0x2b, 0x65, 0x70, 0x04, 0x22, 0x04, 0x20,
	}
	spkiEd25519Prefix = []byte{
		0x30, 0x2a, 0x30, 0x05, 0x06, 0x03, 0x2b, 0x65,
		0x70, 0x03, 0x21, 0x00,
	}
)

// ExportPKCS8 returns the PKCS#8 DER export of priv.
func ExportPKCS8(priv ed25519.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("%w: pkcs8 export: %v", domain.ErrCryptoUnavailable, err)
	}
	return der, nil
}

// ExportSPKI returns the SubjectPublicKeyInfo DER export of pub.
func ExportSPKI(pub ed25519.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: spki export: %v", domain.ErrCryptoUnavailable, err)
	}
	return der, nil
}

// RawSeedFromPKCS8 strips the PKCS#8 wrapper and returns the last 32 bytes
// of der, the raw Ed25519 seed.
func RawSeedFromPKCS8(der []byte) (domain.Ed25519Seed, error) {
	var out domain.Ed25519Seed
	raw, err := stripWrapper("pkcs8 private key", der, pkcs8Ed25519Prefix)
	if err != nil {
		return out, err
	}
	copy(out[:], raw)
	return out, nil
}

// RawPublicFromSPKI strips the SPKI wrapper and returns the last 32 bytes
// of der, the raw Ed25519 public key.
func RawPublicFromSPKI(der []byte) (domain.Ed25519Public, error) {
	var out domain.Ed25519Public
	raw, err := stripWrapper("spki public key", der, spkiEd25519Prefix)
	if err != nil {
		return out, err
	}
	copy(out[:], raw)
	return out, nil
}

func stripWrapper(what string, der, prefix []byte) ([]byte, error) {
	if len(der) < RawKeySize {
		return nil, fmt.Errorf("%w: %s export is %d bytes, need at least %d",
			domain.ErrEncoding, what, len(der), RawKeySize)
	}
	if len(der) != len(prefix)+RawKeySize || !bytes.HasPrefix(der, prefix) {
		return nil, fmt.Errorf("%w: %s export is not a %d-byte ed25519 structure",
			domain.ErrEncoding, what, len(prefix)+RawKeySize)
	}
	return der[len(der)-RawKeySize:], nil
}
