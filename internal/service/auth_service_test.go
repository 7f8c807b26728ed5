package service

import (
	"strings"
	"testing"
	"time"

	"github.com/binarychai/playlist-backend/internal/config"
	"github.com/binarychai/playlist-backend/internal/model"
)

func testConfig(expiry time.Duration) *config.Config {
	return &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  expiry,
		BcryptCost: 4, // Minimum cost keeps the test fast.
	}
}

func testAdmin() *model.Admin {
	return &model.Admin{
		ID:    7,
		Name:  "Test Admin",
		Email: "admin@example.com",
		Role:  model.RoleSuperAdmin,
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	s := NewAuthService(testConfig(time.Hour))

	hash, err := s.HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash equals plaintext")
	}

	if err := s.CheckPassword(hash, "s3cret-pass"); err != nil {
		t.Errorf("CheckPassword with correct password: %v", err)
	}
	if err := s.CheckPassword(hash, "wrong-pass"); err != ErrInvalidCredentials {
		t.Errorf("CheckPassword with wrong password = %v, want ErrInvalidCredentials", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	s := NewAuthService(testConfig(time.Hour))

	token, err := s.GenerateToken(testAdmin())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.AdminID != 7 {
		t.Errorf("AdminID = %d, want 7", claims.AdminID)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("Email = %q, want admin@example.com", claims.Email)
	}
	if claims.Role != model.RoleSuperAdmin {
		t.Errorf("Role = %q, want super_admin", claims.Role)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	s := NewAuthService(testConfig(-time.Minute))

	token, err := s.GenerateToken(testAdmin())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := s.ValidateToken(token); err == nil {
		t.Error("expired token validated")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	s := NewAuthService(testConfig(time.Hour))

	token, err := s.GenerateToken(testAdmin())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := s.ValidateToken(tampered); err == nil {
		t.Error("tampered token validated")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := NewAuthService(testConfig(time.Hour))
	verifier := NewAuthService(&config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour})

	token, err := issuer.GenerateToken(testAdmin())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Error("token signed with a different secret validated")
	}
}
