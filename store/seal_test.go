package store

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	secret := bytes.Repeat([]byte{0x5e}, 32)

	sealed, err := Seal(secret, testPassphrase)
	require.NoError(t, err)
	assert.Len(t, sealed, SaltLen+NonceLen+len(secret)+ChecksumLen+16)

	got, err := Open(sealed, testPassphrase)
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

func TestSeal_FreshSaltAndNonce(t *testing.T) {
	secret := []byte("abandon abandon about")
	a, err := Seal(secret, testPassphrase)
	require.NoError(t, err)
	b, err := Seal(secret, testPassphrase)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestOpen_WrongPassphrase(t *testing.T) {
	sealed, err := Seal([]byte{1, 2, 3}, testPassphrase)
	require.NoError(t, err)

	_, err = Open(sealed, "nope")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestOpen_Tampered(t *testing.T) {
	sealed, err := Seal([]byte{1, 2, 3}, testPassphrase)
	require.NoError(t, err)
	sealed[len(sealed)-1] ^= 0xff

	_, err = Open(sealed, testPassphrase)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestOpen_TooShort(t *testing.T) {
	_, err := Open(make([]byte, SaltLen+NonceLen), testPassphrase)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestSeal_EmptySecret(t *testing.T) {
	_, err := Seal(nil, testPassphrase)
	assert.ErrorIs(t, err, ErrEmptySecret)
}
