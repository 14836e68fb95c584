package middleware

import (
	"testing"
	"time"

	"eventify/globals"
	"eventify/models"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken("u123", models.UserTypeCustomer)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseBearer("Bearer " + tok)
	if err != nil {
		t.Fatalf("ParseBearer: %v", err)
	}
	if claims.UserID != "u123" {
		t.Errorf("UserID = %q, want u123", claims.UserID)
	}
	if claims.UserType != models.UserTypeCustomer {
		t.Errorf("UserType = %q, want customer", claims.UserType)
	}
}

func TestParseBearerRejectsBadHeaders(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"empty", ""},
		{"no scheme", "abc.def.ghi"},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tc := range cases {
		if _, err := ParseBearer(tc.header); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestParseBearerRejectsExpiredToken(t *testing.T) {
	claims := &Claims{
		UserID:   "u123",
		UserType: models.UserTypeCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseBearer("Bearer " + tok); err == nil {
		t.Error("expired token should not parse")
	}
}

func TestParseBearerRejectsWrongSecret(t *testing.T) {
	claims := &Claims{
		UserID:   "u123",
		UserType: models.UserTypeCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("someone-elses-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseBearer("Bearer " + tok); err == nil {
		t.Error("token signed with a different secret should not parse")
	}
}

func TestTokenCarriesOrganizerKind(t *testing.T) {
	tok, err := GenerateToken("o456", models.UserTypeOrganizer)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := ParseBearer("Bearer " + tok)
	if err != nil {
		t.Fatalf("ParseBearer: %v", err)
	}
	if claims.UserType != models.UserTypeOrganizer {
		t.Errorf("UserType = %q, want organizer", claims.UserType)
	}
}
