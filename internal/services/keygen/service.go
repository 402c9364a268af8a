package keygen

import (
	"crypto/ed25519"
	"fmt"
	"io"

	logging "github.com/ipfs/go-log/v2"

	"labelkey/internal/crypto"
	"labelkey/internal/didkey"
	"labelkey/internal/domain"
	"labelkey/internal/util/memzero"
)

var log = logging.Logger("keygen")

// pairCheckMessage is signed with a reloaded seed and verified against the
// public key it was stored with.
var pairCheckMessage = []byte("labelkey/keypair-check/v1")

// Service generates labeler signing keys and renders them in their
// multibase / did:key forms.
type Service struct {
	rand io.Reader
}

// New returns a key encoder reading randomness from r. A nil r uses crypto/rand.
func New(r io.Reader) *Service { return &Service{rand: r} }

// GenerateAndEncode creates a fresh Ed25519 keypair and returns it together
// with its encodings.
func (s *Service) GenerateAndEncode() (domain.Keypair, domain.EncodedKeys, error) {
	priv, pub, err := crypto.GenerateEd25519(s.rand)
	if err != nil {
		return domain.Keypair{}, domain.EncodedKeys{}, err
	}
	defer memzero.Zero(priv)

	kp, keys, err := encodeKeys(priv, pub)
	if err != nil {
		return domain.Keypair{}, domain.EncodedKeys{}, err
	}
	log.Debugw("generated signing key", "did", keys.PublicDIDKey)
	return kp, keys, nil
}

// Encode renders an existing keypair. The public half must belong to the
// private half.
func (s *Service) Encode(keypair domain.Keypair) (domain.EncodedKeys, error) {
	priv, pub := crypto.KeyFromSeed(keypair.Private)
	defer memzero.Zero(priv)

	if err := checkPair(priv, keypair.Public); err != nil {
		return domain.EncodedKeys{}, err
	}
	_, keys, err := encodeKeys(priv, pub)
	return keys, err
}

// Decode rebuilds the keypair behind a multibase private key, so a key
// generated earlier can be registered again.
func (s *Service) Decode(privateMultibase string) (domain.Keypair, domain.EncodedKeys, error) {
	seed, err := didkey.ParsePrivate(privateMultibase)
	if err != nil {
		return domain.Keypair{}, domain.EncodedKeys{}, err
	}
	priv, pub := crypto.KeyFromSeed(seed)
	defer memzero.Zero(priv)
	memzero.Zero(seed[:])

	return encodeKeys(priv, pub)
}

// EncodeExport renders the keys held in a PKCS#8 private export and an SPKI
// public export. Only the trailing 32 bytes of each export are used; any
// export that is not the fixed-size Ed25519 structure fails with
// domain.ErrEncoding.
func EncodeExport(pkcs8, spki []byte) (domain.Keypair, domain.EncodedKeys, error) {
	seed, err := crypto.RawSeedFromPKCS8(pkcs8)
	if err != nil {
		return domain.Keypair{}, domain.EncodedKeys{}, err
	}
	pub, err := crypto.RawPublicFromSPKI(spki)
	if err != nil {
		return domain.Keypair{}, domain.EncodedKeys{}, err
	}

	privStr, err := didkey.FormatPrivate(seed[:])
	if err != nil {
		return domain.Keypair{}, domain.EncodedKeys{}, err
	}
	did, err := didkey.FormatPublic(pub[:])
	if err != nil {
		return domain.Keypair{}, domain.EncodedKeys{}, err
	}
	return domain.Keypair{Private: seed, Public: pub},
		domain.EncodedKeys{PrivateMultibase: privStr, PublicDIDKey: did},
		nil
}

// checkPair proves priv can produce signatures pub accepts.
func checkPair(priv ed25519.PrivateKey, pub domain.Ed25519Public) error {
	sig := crypto.SignEd25519(priv, pairCheckMessage)
	if !crypto.VerifyEd25519(pub, pairCheckMessage, sig) {
		return fmt.Errorf("%w: public key does not match private key", domain.ErrEncoding)
	}
	return nil
}

func encodeKeys(priv ed25519.PrivateKey, pub ed25519.PublicKey) (domain.Keypair, domain.EncodedKeys, error) {
	pkcs8, err := crypto.ExportPKCS8(priv)
	if err != nil {
		return domain.Keypair{}, domain.EncodedKeys{}, err
	}
	defer memzero.Zero(pkcs8)

	spki, err := crypto.ExportSPKI(pub)
	if err != nil {
		return domain.Keypair{}, domain.EncodedKeys{}, err
	}
	return EncodeExport(pkcs8, spki)
}

// Compile-time assertion that Service implements domain.KeyEncoder.
var _ domain.KeyEncoder = (*Service)(nil)
