// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// product-tracker command layer and CLI.
//
// All Msg* constants are human-readable message strings returned to the
// shell when an operation is rejected. The underlying cause is logged, never
// shown. Keeping them in one place ensures consistent wording.
package app

const (
	// MsgClientAlreadyExists is returned when identity creation is rejected
	// because this installation already has an identity.
	MsgClientAlreadyExists = "Client with private key already exists"

	// MsgClientCreationFailed is returned when identity creation fails for
	// any other reason (storage, encryption, registration).
	MsgClientCreationFailed = "Failed to create client"

	// MsgNoClient is returned when sign-in is attempted before an identity
	// has been created.
	MsgNoClient = "No client found, create one first"

	// MsgSignInFailed is returned when the private key cannot be loaded,
	// decrypted or used to sign the challenge.
	MsgSignInFailed = "Sign in failed"

	// MsgKeyDecryptionFailed is returned when the stored key blob does not
	// authenticate, typically because the encryption key changed.
	MsgKeyDecryptionFailed = "Private key could not be decrypted, check the encryption key"

	// MsgKeyStorageCorrupt is returned when the stored key blob is unreadable
	// or malformed.
	MsgKeyStorageCorrupt = "Private key storage is corrupt or unreadable"

	// MsgSessionInvalid is returned when a sealed session token is forged,
	// tampered with or expired.
	MsgSessionInvalid = "Session is invalid or expired"

	// MsgInternalError is returned when an unexpected failure occurs that
	// the user cannot resolve.
	MsgInternalError = "Internal error"
)
