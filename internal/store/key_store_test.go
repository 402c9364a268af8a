package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"labelkey/internal/domain"
	"labelkey/internal/store"
)

func TestKeypair_SaveLoad_OK(t *testing.T) {
	var ks domain.KeyStore = store.NewKeyFileStore(t.TempDir())

	kp := domain.Keypair{
		Private: domain.Ed25519Seed{1, 2, 3},
		Public:  domain.Ed25519Public{4, 5, 6},
	}
	require.NoError(t, ks.SaveKeypair("pass", kp))

	got, err := ks.LoadKeypair("pass")
	require.NoError(t, err)
	require.Equal(t, kp, got)
}

func TestKeypair_WrongPassphrase_Fails(t *testing.T) {
	ks := store.NewKeyFileStore(t.TempDir())

	require.NoError(t, ks.SaveKeypair("correct", domain.Keypair{Private: domain.Ed25519Seed{9}}))
	_, err := ks.LoadKeypair("wrong")
	require.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestKeypair_FileIsPrivateAndLabelled(t *testing.T) {
	ks := store.NewKeyFileStore(filepath.Join(t.TempDir(), "nested"))
	ks.DIDFor = func(domain.Keypair) (domain.DID, error) { return "did:key:zTest", nil }

	require.NoError(t, ks.SaveKeypair("pw", domain.Keypair{Private: domain.Ed25519Seed{7}}))

	info, err := os.Stat(ks.Path())
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	b, err := os.ReadFile(ks.Path())
	require.NoError(t, err)
	require.Contains(t, string(b), "did:key:zTest")
}

func TestKeypair_TamperedLabel_Fails(t *testing.T) {
	ks := store.NewKeyFileStore(t.TempDir())
	ks.DIDFor = func(domain.Keypair) (domain.DID, error) { return "did:key:zOriginal", nil }

	require.NoError(t, ks.SaveKeypair("pw", domain.Keypair{Private: domain.Ed25519Seed{7}}))

	b, err := os.ReadFile(ks.Path())
	require.NoError(t, err)
	b = []byte(strings.Replace(string(b), "zOriginal", "zSwapped0", 1))
	require.NoError(t, os.WriteFile(ks.Path(), b, 0o600))

	_, err = ks.LoadKeypair("pw")
	require.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestKeypair_Missing(t *testing.T) {
	ks := store.NewKeyFileStore(t.TempDir())
	_, err := ks.LoadKeypair("pw")
	require.Error(t, err)
}
