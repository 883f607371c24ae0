// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MKhiriev/product-tracker/internal/app"
	"github.com/MKhiriev/product-tracker/internal/logger"
	"github.com/MKhiriev/product-tracker/internal/service"
	"github.com/MKhiriev/product-tracker/models"
)

// CreateClientResult is returned by [Commands.CreateClient].
type CreateClientResult struct {
	ClientID       uuid.UUID `json:"client_id"`
	PrivateKeyPath string    `json:"private_key_path"`
}

// SignInResult is the issued session plus its sealed token form.
type SignInResult struct {
	models.Session
	SealedToken string `json:"sealed_token,omitempty"`
}

// StatusResult describes the local identity, if any.
type StatusResult struct {
	HasClient      bool       `json:"has_client"`
	ClientID       *uuid.UUID `json:"client_id,omitempty"`
	PrivateKeyPath string     `json:"private_key_path,omitempty"`
	CreatedAt      int64      `json:"created_at,omitempty"`
}

// ClientEntry is one row of [Commands.ListClients]. OnDisk marks the
// registered client whose key directory is the installation's identity.
type ClientEntry struct {
	ClientID       uuid.UUID `json:"client_id"`
	PrivateKeyPath string    `json:"private_key_path"`
	CreatedAt      int64     `json:"created_at"`
	OnDisk         bool      `json:"on_disk"`
}

// OpenSessionResult is a session recovered from a sealed token.
type OpenSessionResult struct {
	models.Session
	Valid bool `json:"valid"`
}

// Commands exposes the user-facing operations over [service.Services].
type Commands struct {
	services *service.Services
	logger   *logger.Logger
}

// NewCommands constructs the command set over services.
func NewCommands(services *service.Services, logger *logger.Logger) *Commands {
	return &Commands{
		services: services,
		logger:   logger,
	}
}

// CreateClient creates the local identity. A second call on the same
// installation is rejected with [app.MsgClientAlreadyExists].
func (c *Commands) CreateClient(ctx context.Context) (CreateClientResult, error) {
	ctx = c.logger.WithContext(ctx)

	identity, err := c.services.Identities.CreateIdentity(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "*Commands.CreateClient").Msg("error creating client")
		return CreateClientResult{}, reject(err, app.MsgClientCreationFailed)
	}

	return CreateClientResult{
		ClientID:       identity.ID,
		PrivateKeyPath: identity.PrivateKeyPath.String(),
	}, nil
}

// SignIn authenticates the local identity and issues a session. The
// session is also returned sealed so the shell can hand it back later.
func (c *Commands) SignIn(ctx context.Context) (SignInResult, error) {
	ctx = c.logger.WithContext(ctx)

	session, err := c.services.Authenticator.Authenticate(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "*Commands.SignIn").Msg("error signing in")
		return SignInResult{}, reject(err, app.MsgSignInFailed)
	}

	sealed, err := c.services.Sealer.Seal(session)
	if err != nil {
		c.logger.Err(err).Str("func", "*Commands.SignIn").Msg("error sealing session")
		return SignInResult{}, reject(err, app.MsgSignInFailed)
	}

	return SignInResult{Session: session, SealedToken: sealed}, nil
}

// ValidateSession reports whether session has not yet expired.
func (c *Commands) ValidateSession(_ context.Context, session models.Session) bool {
	return c.services.Validator.IsValid(session)
}

// Status describes the local identity without touching its key.
func (c *Commands) Status(ctx context.Context) (StatusResult, error) {
	ctx = c.logger.WithContext(ctx)

	has, err := c.services.Identities.HasIdentity(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "*Commands.Status").Msg("error checking client")
		return StatusResult{}, reject(err, app.MsgInternalError)
	}
	if !has {
		return StatusResult{}, nil
	}

	identity, err := c.services.Identities.CurrentIdentity(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "*Commands.Status").Msg("error resolving client")
		return StatusResult{}, reject(err, app.MsgInternalError)
	}

	return StatusResult{
		HasClient:      true,
		ClientID:       &identity.ID,
		PrivateKeyPath: identity.PrivateKeyPath.String(),
		CreatedAt:      identity.CreatedAt.Unix(),
	}, nil
}

// ListClients returns every registered client. A registry row without a
// key directory (left by a failed rollback or a removed data directory) is
// listed with OnDisk false.
func (c *Commands) ListClients(ctx context.Context) ([]ClientEntry, error) {
	ctx = c.logger.WithContext(ctx)

	identities, err := c.services.Identities.ListIdentities(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "*Commands.ListClients").Msg("error listing clients")
		return nil, reject(err, app.MsgInternalError)
	}

	current, err := c.services.Identities.CurrentIdentity(ctx)
	if err != nil && !errors.Is(err, service.ErrNoIdentity) {
		c.logger.Err(err).Str("func", "*Commands.ListClients").Msg("error resolving client")
		return nil, reject(err, app.MsgInternalError)
	}

	entries := make([]ClientEntry, 0, len(identities))
	for _, identity := range identities {
		entries = append(entries, ClientEntry{
			ClientID:       identity.ID,
			PrivateKeyPath: identity.PrivateKeyPath.String(),
			CreatedAt:      identity.CreatedAt.Unix(),
			OnDisk:         err == nil && identity.ID == current.ID,
		})
	}

	return entries, nil
}

// SealSession seals session into a tamper-evident token.
func (c *Commands) SealSession(_ context.Context, session models.Session) (string, error) {
	sealed, err := c.services.Sealer.Seal(session)
	if err != nil {
		c.logger.Err(err).Str("func", "*Commands.SealSession").Msg("error sealing session")
		return "", reject(err, app.MsgInternalError)
	}

	return sealed, nil
}

// OpenSession verifies a sealed token and returns the session it carries.
// Forged, tampered and expired tokens are rejected with
// [app.MsgSessionInvalid].
func (c *Commands) OpenSession(_ context.Context, token string) (OpenSessionResult, error) {
	session, err := c.services.Sealer.Open(token)
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "*Commands.OpenSession").Msg("session token rejected")
		return OpenSessionResult{}, reject(err, app.MsgSessionInvalid)
	}

	return OpenSessionResult{
		Session: session,
		Valid:   c.services.Validator.IsValid(session),
	}, nil
}
