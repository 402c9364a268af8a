package didkey

import (
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-varint"
	"github.com/stretchr/testify/require"

	"labelkey/internal/domain"
)

// did:key of the all-zero public key, pinned as a regression fixture.
const zeroKeyDID = "did:key:z6MkeTG3bFFSLYVU7VqhgZxqr6YzpaGrQtFMh1uvqGy1vDnP"

func TestEd25519PubTagMatchesMulticodecTable(t *testing.T) {
	require.Equal(t, varint.ToUvarint(uint64(multicodec.Ed25519Pub)), ed25519PubTag)
}

func TestFormatPublicZeroKey(t *testing.T) {
	did, err := FormatPublic(make([]byte, 32))
	require.NoError(t, err)
	require.Equal(t, domain.DID(zeroKeyDID), did)

	raw, err := base58.Decode(strings.TrimPrefix(did.String(), "did:key:z"))
	require.NoError(t, err)
	require.Len(t, raw, 34)
	require.Equal(t, append([]byte{0xed, 0x01}, make([]byte, 32)...), raw)
}

func TestFormatPrivateZeroKey(t *testing.T) {
	s, err := FormatPrivate(make([]byte, 32))
	require.NoError(t, err)
	require.Equal(t, "z"+strings.Repeat("1", 32), s)
}

func TestRoundTripRandomKeys(t *testing.T) {
	for i := 0; i < 32; i++ {
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)
		seed := priv.Seed()

		privStr, err := FormatPrivate(seed)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(privStr, "z"))
		rawPriv, err := base58.Decode(privStr[1:])
		require.NoError(t, err)
		require.Len(t, rawPriv, 32)
		require.Equal(t, seed, rawPriv)

		gotSeed, err := ParsePrivate(privStr)
		require.NoError(t, err)
		require.Equal(t, seed, gotSeed[:])

		did, err := FormatPublic(pub)
		require.NoError(t, err)
		rawPub, err := base58.Decode(strings.TrimPrefix(did.String(), "did:key:z"))
		require.NoError(t, err)
		require.Len(t, rawPub, 34)
		require.Equal(t, []byte{0xed, 0x01}, rawPub[:2])
		require.Equal(t, []byte(pub), rawPub[2:])

		gotPub, err := ParsePublic(did.String())
		require.NoError(t, err)
		require.Equal(t, []byte(pub), gotPub[:])
	}
}

func TestEncodingIsDeterministic(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(255 - i)
	}

	a, err := FormatPrivate(key)
	require.NoError(t, err)
	b, err := FormatPrivate(key)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := FormatPublic(key)
	require.NoError(t, err)
	d, err := FormatPublic(key)
	require.NoError(t, err)
	require.Equal(t, c, d)
}

func TestFormatRejectsWrongLength(t *testing.T) {
	_, err := FormatPrivate(make([]byte, 31))
	require.ErrorIs(t, err, domain.ErrEncoding)
	_, err = FormatPublic(make([]byte, 33))
	require.ErrorIs(t, err, domain.ErrEncoding)
}

func TestParsePublicErrors(t *testing.T) {
	secp256k1 := append([]byte{0xe7, 0x01}, make([]byte, 33)...)
	short := append([]byte{0xed, 0x01}, make([]byte, 31)...)

	cases := map[string]string{
		"not did:key":     "did:plc:abc",
		"wrong multibase": "did:key:f" + strings.Repeat("00", 34),
		"bad base58":      "did:key:z0OIl",
		"wrong codec":     "did:key:z" + base58.Encode(secp256k1),
		"short key":       "did:key:z" + base58.Encode(short),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePublic(in)
			require.ErrorIs(t, err, domain.ErrEncoding)
		})
	}
}

func TestParsePrivateErrors(t *testing.T) {
	_, err := ParsePrivate("z" + base58.Encode(make([]byte, 31)))
	require.ErrorIs(t, err, domain.ErrEncoding)
	_, err = ParsePrivate("m" + strings.Repeat("A", 43))
	require.ErrorIs(t, err, domain.ErrEncoding)
	_, err = ParsePrivate("")
	require.ErrorIs(t, err, domain.ErrEncoding)
}

func TestIsPrivate(t *testing.T) {
	require.True(t, IsPrivate("z11111111111111111111111111111111"))
	require.False(t, IsPrivate(zeroKeyDID))
	require.False(t, IsPrivate(""))
}
