package models

import "crypto/ed25519"

// KeyPair is an Ed25519 signing key pair. It only ever lives in memory; the
// private half is persisted exclusively in encrypted form.
type KeyPair struct {
	PrivateKey ed25519.PrivateKey
	PublicKey  ed25519.PublicKey
}
