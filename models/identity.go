// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Locator is an opaque handle to a stored key blob. On the filesystem store
// it is the absolute path of the blob file.
type Locator string

// String returns the locator as a plain string.
func (l Locator) String() string {
	return string(l)
}

// Identity is the single local cryptographic principal of an application
// installation. Its private key lives on disk only in encrypted form and is
// referenced by PrivateKeyPath.
type Identity struct {
	// ID is the identity UUID. It doubles as the name of the identity
	// directory under the application data root and as Session.ClientID.
	ID uuid.UUID `json:"id"`

	// PrivateKeyPath locates the encrypted private key blob. It is empty
	// until the blob has been persisted.
	PrivateKeyPath Locator `json:"private_key_path"`

	// CreatedAt is the moment the identity was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Identity model.
func (i Identity) TableName() string {
	return "clients"
}
