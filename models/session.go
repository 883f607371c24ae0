// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a time-bounded authorization issued after a successful local
// challenge-response sign-in. It is handed to the application shell, which
// presents it back for validation; it is never persisted by the engine.
type Session struct {
	// Token is a random identifier unique to this session.
	Token string `json:"token"`

	// ClientID references [Identity.ID] of the identity that signed in.
	ClientID uuid.UUID `json:"client_id"`

	// ExpiresAt is the unix timestamp (seconds) after which the session is
	// no longer valid.
	ExpiresAt int64 `json:"expires_at"`
}

// Expiry returns ExpiresAt as a [time.Time].
func (s Session) Expiry() time.Time {
	return time.Unix(s.ExpiresAt, 0)
}
