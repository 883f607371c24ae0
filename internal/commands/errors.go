package commands

import (
	"errors"

	"github.com/MKhiriev/product-tracker/internal/app"
	"github.com/MKhiriev/product-tracker/internal/crypto"
	"github.com/MKhiriev/product-tracker/internal/service"
	"github.com/MKhiriev/product-tracker/internal/store"
)

// CommandError is a rejected command. Message is user facing; Err is the
// cause.
type CommandError struct {
	Message string
	Err     error
}

func (e *CommandError) Error() string {
	return e.Message
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// errorMessages is checked in order; the first matching cause wins.
var errorMessages = []struct {
	target  error
	message string
}{
	{service.ErrAlreadyExists, app.MsgClientAlreadyExists},
	{service.ErrNoIdentity, app.MsgNoClient},
	{service.ErrSessionInvalid, app.MsgSessionInvalid},
	{crypto.ErrAuthenticationFailed, app.MsgKeyDecryptionFailed},
	{store.ErrBlobFormat, app.MsgKeyStorageCorrupt},
}

func messageFromError(err error, fallback string) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return fallback
}

func reject(err error, fallback string) error {
	return &CommandError{
		Message: messageFromError(err, fallback),
		Err:     err,
	}
}
