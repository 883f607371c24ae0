package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/product-tracker/models"
)

var testSignKey = []byte("0123456789abcdef0123456789abcdef")

func testSession(expiresAt time.Time) models.Session {
	return models.Session{
		Token:     uuid.NewString(),
		ClientID:  uuid.New(),
		ExpiresAt: expiresAt.Unix(),
	}
}

func TestGenerateSessionToken_RoundTrip(t *testing.T) {
	now := time.Now()
	session := testSession(now.Add(3 * time.Hour))

	sealed, err := GenerateSessionToken("test-issuer", session, testSignKey)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if strings.Count(sealed, ".") != 2 {
		t.Fatalf("expected compact JWT, got %q", sealed)
	}

	got, err := ValidateSessionToken(sealed, testSignKey, "test-issuer", now)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got != session {
		t.Errorf("expected %+v, got %+v", session, got)
	}
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	valid := testSession(time.Now().Add(time.Hour))

	tests := []struct {
		name    string
		issuer  string
		session models.Session
		key     []byte
	}{
		{"empty issuer", "", valid, testSignKey},
		{"empty key", "iss", valid, nil},
		{"empty token", "iss", models.Session{ClientID: valid.ClientID, ExpiresAt: valid.ExpiresAt}, testSignKey},
		{"nil client", "iss", models.Session{Token: valid.Token, ExpiresAt: valid.ExpiresAt}, testSignKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateSessionToken(tt.issuer, tt.session, tt.key); err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateSessionToken_Expired(t *testing.T) {
	now := time.Now()
	session := testSession(now)

	sealed, err := GenerateSessionToken("iss", session, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the expiry instant itself is no longer valid
	_, err = ValidateSessionToken(sealed, testSignKey, "iss", time.Unix(session.ExpiresAt, 0))
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}

	if _, err = ValidateSessionToken(sealed, testSignKey, "iss", time.Unix(session.ExpiresAt-1, 0)); err != nil {
		t.Errorf("expected token to be valid one second before expiry, got %v", err)
	}
}

func TestValidateSessionToken_WrongKey(t *testing.T) {
	sealed, err := GenerateSessionToken("iss", testSession(time.Now().Add(time.Hour)), testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = ValidateSessionToken(sealed, []byte("another-key-another-key-another!!"), "iss", time.Now())
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestValidateSessionToken_WrongIssuer(t *testing.T) {
	sealed, err := GenerateSessionToken("iss", testSession(time.Now().Add(time.Hour)), testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = ValidateSessionToken(sealed, testSignKey, "other", time.Now())
	if !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Errorf("expected ErrTokenInvalidIssuer, got %v", err)
	}
}

func TestValidateSessionToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		ID:        "tok",
		Subject:   uuid.NewString(),
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	sealed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err = ValidateSessionToken(sealed, testSignKey, "iss", time.Now()); err == nil {
		t.Error("expected HS512 token to be rejected")
	}
}

func TestValidateSessionToken_MissingClaims(t *testing.T) {
	tests := []struct {
		name   string
		claims *jwt.RegisteredClaims
	}{
		{
			name:   "no expiry",
			claims: &jwt.RegisteredClaims{ID: "tok", Subject: uuid.NewString(), Issuer: "iss"},
		},
		{
			name:   "no id",
			claims: &jwt.RegisteredClaims{Subject: uuid.NewString(), Issuer: "iss", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		},
		{
			name:   "subject is not a uuid",
			claims: &jwt.RegisteredClaims{ID: "tok", Subject: "42", Issuer: "iss", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sealed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString(testSignKey)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if _, err = ValidateSessionToken(sealed, testSignKey, "iss", time.Now()); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestValidateSessionToken_Garbage(t *testing.T) {
	if _, err := ValidateSessionToken("not.a.jwt", testSignKey, "iss", time.Now()); err == nil {
		t.Error("expected error for malformed token")
	}
}
