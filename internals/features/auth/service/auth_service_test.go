package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"coachingku_backend/internals/features/auth/dto"
)

func newAuth(t *testing.T, secret string) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	s := NewAuthService("admin", string(hash), secret)
	s.now = func() time.Time { return time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC) }
	return s
}

func TestLoginIssuesStaffToken(t *testing.T) {
	s := newAuth(t, "test-secret")
	out, err := s.Login(dto.LoginRequest{Username: "admin", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.ExpiresAt != s.now().Add(accessTTLDefault).Unix() {
		t.Fatalf("expires = %d", out.ExpiresAt)
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(out.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims["role"] != "staff" || claims["user_name"] != "admin" {
		t.Fatalf("claims = %v", claims)
	}
}

func TestLoginRejects(t *testing.T) {
	s := newAuth(t, "test-secret")
	cases := []dto.LoginRequest{
		{Username: "admin", Password: "wrong"},
		{Username: "root", Password: "s3cret"},
	}
	for _, req := range cases {
		if _, err := s.Login(req); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%s) = %v", req.Username, err)
		}
	}

	if _, err := newAuth(t, "").Login(dto.LoginRequest{Username: "admin", Password: "s3cret"}); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("missing secret = %v", err)
	}
	disabled := NewAuthService("admin", "", "x")
	if _, err := disabled.Login(dto.LoginRequest{Username: "admin", Password: "x"}); !errors.Is(err, ErrAuthDisabled) {
		t.Fatalf("disabled = %v", err)
	}
}
