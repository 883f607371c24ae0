package service

import (
	"time"

	"github.com/MKhiriev/product-tracker/models"
)

// sessionValidator is the concrete implementation of [SessionValidator].
type sessionValidator struct {
	now func() time.Time
}

// NewSessionValidator constructs a [SessionValidator] using the wall clock.
func NewSessionValidator() SessionValidator {
	return &sessionValidator{now: time.Now}
}

// IsValid reports whether session expires strictly after the current unix
// second. A session is invalid from the instant its ExpiresAt is reached.
func (v *sessionValidator) IsValid(session models.Session) bool {
	return session.ExpiresAt > v.now().Unix()
}
