// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// NonceSize is the length in bytes of the AES-GCM nonce carried in front of
// every [EncryptedBlob].
const NonceSize = 12

// ErrMalformedBlob is returned when a serialized blob cannot be decoded or is
// shorter than one nonce.
var ErrMalformedBlob = errors.New("malformed encrypted blob")

// EncryptedBlob is the output of one authenticated encryption call: a fresh
// random nonce and the ciphertext with its authentication tag appended.
// Blobs are immutable; re-encrypting always yields a new blob.
type EncryptedBlob struct {
	Nonce      []byte
	Ciphertext []byte
}

// Bytes returns the wire form nonce || ciphertext_with_tag.
func (b EncryptedBlob) Bytes() []byte {
	out := make([]byte, 0, len(b.Nonce)+len(b.Ciphertext))
	out = append(out, b.Nonce...)
	return append(out, b.Ciphertext...)
}

// String returns the standard base64 encoding of [EncryptedBlob.Bytes]. This
// is the text form written to disk.
func (b EncryptedBlob) String() string {
	return base64.StdEncoding.EncodeToString(b.Bytes())
}

// EncryptedBlobFromBytes splits raw nonce || ciphertext bytes. It returns
// [ErrMalformedBlob] if raw is shorter than one nonce.
func EncryptedBlobFromBytes(raw []byte) (EncryptedBlob, error) {
	if len(raw) < NonceSize {
		return EncryptedBlob{}, fmt.Errorf("%w: %d bytes is shorter than the nonce", ErrMalformedBlob, len(raw))
	}

	nonce := make([]byte, NonceSize)
	copy(nonce, raw[:NonceSize])
	ciphertext := make([]byte, len(raw)-NonceSize)
	copy(ciphertext, raw[NonceSize:])

	return EncryptedBlob{Nonce: nonce, Ciphertext: ciphertext}, nil
}

// ParseEncryptedBlob decodes the base64 text form produced by
// [EncryptedBlob.String]. Surrounding whitespace is ignored.
func ParseEncryptedBlob(encoded string) (EncryptedBlob, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return EncryptedBlob{}, fmt.Errorf("%w: %v", ErrMalformedBlob, err)
	}
	return EncryptedBlobFromBytes(raw)
}
