package service

import (
	"errors"
	"testing"

	"github.com/optomarket/optomarket-api/internal/config"
	"github.com/optomarket/optomarket-api/internal/constants"
	"github.com/optomarket/optomarket-api/internal/repository"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := setupDB(t)
	return NewAuthService(repository.NewUserRepository(db), config.JWTConfig{
		SecretKey:   "test-secret",
		ExpireHours: 1,
	})
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("Buyer@Example.com", "secret123", "Buyer")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "buyer@example.com" {
		t.Fatalf("email not normalized: %s", user.Email)
	}
	if user.Role != constants.RoleUser {
		t.Fatalf("want role user, got %s", user.Role)
	}
	if user.PasswordHash == "secret123" {
		t.Fatal("password stored in clear")
	}

	token, logged, err := svc.Login("buyer@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if logged.ID != user.ID {
		t.Fatalf("login returned wrong user: %d", logged.ID)
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != constants.RoleUser {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Register("a@b.com", "secret123", ""); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register("a@b.com", "secret456", ""); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Register("a@b.com", "secret123", ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.Login("a@b.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: want ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login("missing@b.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: want ErrInvalidCredentials, got %v", err)
	}
}

func TestParseTokenRejectsForgedSignature(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Register("a@b.com", "secret123", ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, _, err := svc.Login("a@b.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	forged := NewAuthService(nil, config.JWTConfig{SecretKey: "another-secret"})
	if _, err := forged.ParseToken(token); err == nil {
		t.Fatal("token accepted under a different secret")
	}
}
