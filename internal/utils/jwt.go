package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/product-tracker/models"
)

// GenerateSessionToken seals session into a compact HMAC-SHA256 JWT.
//
// The token carries the session in standard claims:
//   - ID        (jti): the session token
//   - Subject   (sub): the identity (client) id
//   - ExpiresAt (exp): the session expiry
//   - Issuer    (iss): identifies the application instance that issued it
//   - IssuedAt  (iat): the current time
//
// All parameters are required. Returns an error if any of them are empty.
//
// Example usage:
//
//	sealed, err := utils.GenerateSessionToken("product-tracker", session, key)
func GenerateSessionToken(issuer string, session models.Session, signKey []byte) (string, error) {
	if issuer == "" || len(signKey) == 0 || session.Token == "" || session.ClientID == uuid.Nil {
		return "", errors.New("invalid params for generating session token")
	}

	claims := &jwt.RegisteredClaims{
		ID:        session.Token,
		Issuer:    issuer,
		Subject:   session.ClientID.String(),
		ExpiresAt: jwt.NewNumericDate(session.Expiry()),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during singing session token: %w", err)
	}

	return tokenString, nil
}

// ValidateSessionToken verifies a token produced by [GenerateSessionToken]
// and returns the session it carries.
//
// Validation includes:
//   - Signature verification (HS256 only) using signKey
//   - Issuer (iss) claim check against issuer
//   - Expiration (exp) claim presence and check against now
//   - Subject (sub) and ID (jti) presence, subject parsed as a UUID
func ValidateSessionToken(tokenString string, signKey []byte, issuer string, now time.Time) (models.Session, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	if claims.ID == "" || claims.Subject == "" {
		return models.Session{}, errors.New("session token misses id or subject")
	}

	clientID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during parsing session subject: %w", err)
	}

	return models.Session{
		Token:     claims.ID,
		ClientID:  clientID,
		ExpiresAt: claims.ExpiresAt.Unix(),
	}, nil
}
