package service

import "errors"

var (
	// ErrAlreadyExists is returned by CreateIdentity when the installation
	// already has an identity.
	ErrAlreadyExists = errors.New("client with private key already exists")

	// ErrNoIdentity is returned when an operation needs the local identity
	// but none has been created.
	ErrNoIdentity = errors.New("no client identity exists")

	// ErrNotFound is returned by LoadPrivateKey for an unknown identity id.
	ErrNotFound = errors.New("identity not found")

	// ErrSignature is returned when the signed challenge does not verify
	// against the identity's own public key.
	ErrSignature = errors.New("challenge signature verification failed")

	// ErrRegistration is returned when the identity key was persisted but
	// the identity could not be recorded in the registry. The key is rolled
	// back in that case.
	ErrRegistration = errors.New("identity registration failed")

	// ErrSessionInvalid is returned when a sealed session token fails
	// verification or has expired.
	ErrSessionInvalid = errors.New("session token is invalid")
)
