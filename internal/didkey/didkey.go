package didkey

import (
	"fmt"
	"strings"

	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-varint"

	"labelkey/internal/domain"
)

const (
	// Scheme is the URI prefix of a did:key identifier.
	Scheme = "did:key:"

	// Base is the multibase used for both key encodings. Its prefix is 'z'.
	Base = multibase.Base58BTC

	keySize = 32
)

// ed25519PubTag is the unsigned-varint form of multicodec 0xed (ed25519-pub).
var ed25519PubTag = []byte{0xed, 0x01}

// FormatPrivate renders a raw 32-byte Ed25519 seed as z<base58btc(seed)>.
func FormatPrivate(seed []byte) (string, error) {
	if len(seed) != keySize {
		return "", fmt.Errorf("%w: private key must be %d bytes, got %d", domain.ErrEncoding, keySize, len(seed))
	}
	return encode(seed)
}

// ParsePrivate decodes a multibase private key back to its raw 32 bytes.
func ParsePrivate(s string) (domain.Ed25519Seed, error) {
	var out domain.Ed25519Seed
	raw, err := decode(s)
	if err != nil {
		return out, err
	}
	if len(raw) != keySize {
		return out, fmt.Errorf("%w: private key decodes to %d bytes, want %d", domain.ErrEncoding, len(raw), keySize)
	}
	copy(out[:], raw)
	return out, nil
}

// FormatPublic renders a raw 32-byte Ed25519 public key as
// did:key:z<base58btc(0xed 0x01 || key)>.
func FormatPublic(pub []byte) (domain.DID, error) {
	if len(pub) != keySize {
		return "", fmt.Errorf("%w: public key must be %d bytes, got %d", domain.ErrEncoding, keySize, len(pub))
	}
	buf := make([]byte, 0, len(ed25519PubTag)+keySize)
	buf = append(buf, ed25519PubTag...)
	buf = append(buf, pub...)
	s, err := encode(buf)
	if err != nil {
		return "", err
	}
	return domain.DID(Scheme + s), nil
}

// ParsePublic decodes a did:key identifier, checks that it is tagged as an
// Ed25519 public key and returns the raw 32-byte key.
func ParsePublic(did string) (domain.Ed25519Public, error) {
	var out domain.Ed25519Public
	if !strings.HasPrefix(did, Scheme) {
		return out, fmt.Errorf("%w: %q is not a did:key", domain.ErrEncoding, did)
	}
	raw, err := decode(strings.TrimPrefix(did, Scheme))
	if err != nil {
		return out, err
	}
	code, n, err := varint.FromUvarint(raw)
	if err != nil {
		return out, fmt.Errorf("%w: did:key codec: %v", domain.ErrEncoding, err)
	}
	if multicodec.Code(code) != multicodec.Ed25519Pub {
		return out, fmt.Errorf("%w: did:key codec is %s, want %s",
			domain.ErrEncoding, multicodec.Code(code), multicodec.Ed25519Pub)
	}
	if len(raw) != n+keySize {
		return out, fmt.Errorf("%w: did:key payload is %d bytes, want %d",
			domain.ErrEncoding, len(raw), n+keySize)
	}
	copy(out[:], raw[n:])
	return out, nil
}

// IsPrivate reports whether s looks like an encoded private key rather than a did:key.
func IsPrivate(s string) bool {
	return !strings.HasPrefix(s, Scheme) && len(s) > 0 && s[0] == byte(Base)
}

func encode(b []byte) (string, error) {
	s, err := multibase.Encode(Base, b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrEncoding, err)
	}
	return s, nil
}

func decode(s string) ([]byte, error) {
	enc, raw, err := multibase.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: multibase: %v", domain.ErrEncoding, err)
	}
	if enc != Base {
		return nil, fmt.Errorf("%w: multibase prefix %q, want %q", domain.ErrEncoding, rune(enc), rune(Base))
	}
	return raw, nil
}
