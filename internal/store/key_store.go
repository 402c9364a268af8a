package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"labelkey/internal/domain"
	"labelkey/internal/util/memzero"
)

// KeyFilename is the keystore file written under the store directory.
const KeyFilename = "signing-key.json.enc"

// KeyFileStore persists the labeler signing key to disk, encrypted.
type KeyFileStore struct {
	dir string
	mu  sync.Mutex

	// DIDFor labels the blob with the public identifier of the stored key.
	// Optional.
	DIDFor func(domain.Keypair) (domain.DID, error)
}

// NewKeyFileStore returns a KeyFileStore rooted at dir.
func NewKeyFileStore(dir string) *KeyFileStore {
	return &KeyFileStore{dir: dir}
}

// Path returns the location of the keystore file.
func (s *KeyFileStore) Path() string { return filepath.Join(s.dir, KeyFilename) }

// SaveKeypair writes the encrypted keypair to disk, replacing any previous key.
func (s *KeyFileStore) SaveKeypair(passphrase string, keypair domain.Keypair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var did domain.DID
	if s.DIDFor != nil {
		var err error
		if did, err = s.DIDFor(keypair); err != nil {
			return err
		}
	}

	raw, err := json.Marshal(keypair)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	N, r, p := scryptParamsDefault()
	ct, err := seal(passphrase, raw, did.String(), N, r, p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return writeFile(s.Path(), ct, 0o600)
}

// LoadKeypair reads and decrypts the keypair.
func (s *KeyFileStore) LoadKeypair(passphrase string) (domain.Keypair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.Path())
	if err != nil {
		return domain.Keypair{}, err
	}
	if b == nil {
		return domain.Keypair{}, fmt.Errorf("no keystore at %s", s.Path())
	}
	pt, err := open(passphrase, b)
	if err != nil {
		return domain.Keypair{}, err
	}
	defer memzero.Zero(pt)

	var kp domain.Keypair
	if err := json.Unmarshal(pt, &kp); err != nil {
		return domain.Keypair{}, err
	}
	return kp, nil
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
