package crypto

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigningKeyPair_MarshalParseRoundTrip(t *testing.T) {
	kp, err := GenerateSigningKeyPair()
	require.NoError(t, err)
	require.Len(t, kp.PrivateKey, ed25519.PrivateKeySize)

	der, err := MarshalPrivateKey(kp.PrivateKey)
	require.NoError(t, err)

	parsed, err := ParsePrivateKey(der)
	require.NoError(t, err)
	assert.True(t, kp.PrivateKey.Equal(parsed.PrivateKey))
	assert.True(t, kp.PublicKey.Equal(parsed.PublicKey))
}

func TestParsePrivateKey_Garbage(t *testing.T) {
	_, err := ParsePrivateKey([]byte("definitely not pkcs8"))
	assert.ErrorIs(t, err, ErrInvalidPrivateKey)
}

func TestSignVerify(t *testing.T) {
	kp, err := GenerateSigningKeyPair()
	require.NoError(t, err)
	other, err := GenerateSigningKeyPair()
	require.NoError(t, err)

	msg := []byte("1760000000")
	sig := Sign(kp.PrivateKey, msg)

	assert.True(t, Verify(kp.PublicKey, msg, sig))
	assert.False(t, Verify(other.PublicKey, msg, sig), "foreign public key must not verify")
	assert.False(t, Verify(kp.PublicKey, []byte("1760000001"), sig), "different challenge must not verify")
	assert.False(t, Verify(nil, msg, sig), "malformed public key must not verify")
}
