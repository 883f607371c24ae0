package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"fmt"

	"github.com/MKhiriev/product-tracker/models"
)

// GenerateSigningKeyPair creates a fresh Ed25519 key pair from the OS CSPRNG.
func GenerateSigningKeyPair() (models.KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("generate ed25519 key: %w", err)
	}
	return models.KeyPair{PrivateKey: priv, PublicKey: pub}, nil
}

// MarshalPrivateKey encodes priv in its canonical byte form, PKCS#8 DER.
func MarshalPrivateKey(priv ed25519.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("marshal pkcs8: %w", err)
	}
	return der, nil
}

// ParsePrivateKey reverses [MarshalPrivateKey] and rebuilds the full key
// pair. Anything that is not a PKCS#8 Ed25519 key yields
// [ErrInvalidPrivateKey].
func ParsePrivateKey(der []byte) (models.KeyPair, error) {
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}

	priv, ok := key.(ed25519.PrivateKey)
	if !ok {
		return models.KeyPair{}, fmt.Errorf("%w: unexpected key type %T", ErrInvalidPrivateKey, key)
	}

	return models.KeyPair{
		PrivateKey: priv,
		PublicKey:  priv.Public().(ed25519.PublicKey),
	}, nil
}

// Sign signs message with priv.
func Sign(priv ed25519.PrivateKey, message []byte) []byte {
	return ed25519.Sign(priv, message)
}

// Verify reports whether sig is a valid signature of message by pub.
func Verify(pub ed25519.PublicKey, message, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(pub, message, sig)
}
