package crypto_test

import (
	"crypto/ed25519"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"labelkey/internal/crypto"
	"labelkey/internal/domain"
)

func fixedSeed() domain.Ed25519Seed {
	var seed domain.Ed25519Seed
	for i := range seed {
		seed[i] = byte(i)
	}
	return seed
}

func TestExportStripRecoversRawKeys(t *testing.T) {
	priv, pub := crypto.KeyFromSeed(fixedSeed())

	pkcs8, err := crypto.ExportPKCS8(priv)
	require.NoError(t, err)
	spki, err := crypto.ExportSPKI(pub)
	require.NoError(t, err)

	seed, err := crypto.RawSeedFromPKCS8(pkcs8)
	require.NoError(t, err)
	require.Equal(t, fixedSeed(), seed)

	rawPub, err := crypto.RawPublicFromSPKI(spki)
	require.NoError(t, err)
	require.Equal(t, []byte(pub), rawPub[:])
}

func TestRawSeedFromPKCS8_Truncated(t *testing.T) {
	priv, _ := crypto.KeyFromSeed(fixedSeed())
	pkcs8, err := crypto.ExportPKCS8(priv)
	require.NoError(t, err)

	for _, n := range []int{0, 16, 31, len(pkcs8) - 1} {
		_, err := crypto.RawSeedFromPKCS8(pkcs8[:n])
		require.ErrorIs(t, err, domain.ErrEncoding, "len %d", n)
	}
}

func TestRawPublicFromSPKI_WrongAlgorithm(t *testing.T) {
	_, pub := crypto.KeyFromSeed(fixedSeed())
	spki, err := crypto.ExportSPKI(pub)
	require.NoError(t, err)
	spki[8] ^= 0xff // corrupt the OID

	_, err = crypto.RawPublicFromSPKI(spki)
	require.ErrorIs(t, err, domain.ErrEncoding)
}

func TestGenerateEd25519_NoRandomness(t *testing.T) {
	_, _, err := crypto.GenerateEd25519(iotest.ErrReader(errors.New("entropy pool empty")))
	require.ErrorIs(t, err, domain.ErrCryptoUnavailable)
}

func TestSignVerifyWithSeedKey(t *testing.T) {
	priv, pub := crypto.KeyFromSeed(fixedSeed())
	msg := []byte("labeler key check")

	sig := crypto.SignEd25519(priv, msg)
	require.Len(t, sig, ed25519.SignatureSize)

	var pubArr domain.Ed25519Public
	copy(pubArr[:], pub)
	require.True(t, crypto.VerifyEd25519(pubArr, msg, sig))

	pubArr[0] ^= 0x01
	require.False(t, crypto.VerifyEd25519(pubArr, msg, sig))
}

func TestFingerprint(t *testing.T) {
	_, pub := crypto.KeyFromSeed(fixedSeed())
	var pubArr domain.Ed25519Public
	copy(pubArr[:], pub)

	fp := crypto.Fingerprint(pubArr)
	require.Len(t, fp.String(), 20)
	require.Equal(t, fp, crypto.Fingerprint(pubArr))
	require.NotEqual(t, fp, crypto.Fingerprint(domain.Ed25519Public{}))
}
