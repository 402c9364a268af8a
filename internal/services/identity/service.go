package identity

import (
	"fmt"
	"unicode"

	logging "github.com/ipfs/go-log/v2"

	"labelkey/internal/domain"
)

var log = logging.Logger("identity")

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Service keeps the labeler signing key in an encrypted keystore so the same
// key can be registered or handed to the labeler service later.
type Service struct {
	keys  domain.KeyEncoder
	store domain.KeyStore
}

// New returns an identity service that encodes with keys and persists to s.
func New(keys domain.KeyEncoder, s domain.KeyStore) *Service {
	return &Service{keys: keys, store: s}
}

// SaveIdentity encrypts keypair under passphrase and returns its encodings.
func (s *Service) SaveIdentity(
	passphrase string,
	keypair domain.Keypair,
) (domain.EncodedKeys, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.EncodedKeys{}, ErrWeakPassphrase
	}
	encoded, err := s.keys.Encode(keypair)
	if err != nil {
		return domain.EncodedKeys{}, err
	}
	if err := s.store.SaveKeypair(passphrase, keypair); err != nil {
		return domain.EncodedKeys{}, fmt.Errorf("save keystore: %w", err)
	}
	log.Infow("stored signing key", "did", encoded.PublicDIDKey)
	return encoded, nil
}

// LoadIdentity decrypts the stored keypair and returns it with its encodings.
func (s *Service) LoadIdentity(passphrase string) (domain.Keypair, domain.EncodedKeys, error) {
	kp, err := s.store.LoadKeypair(passphrase)
	if err != nil {
		return domain.Keypair{}, domain.EncodedKeys{}, fmt.Errorf("load keystore: %w", err)
	}
	encoded, err := s.keys.Encode(kp)
	if err != nil {
		return domain.Keypair{}, domain.EncodedKeys{}, err
	}
	return kp, encoded, nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
