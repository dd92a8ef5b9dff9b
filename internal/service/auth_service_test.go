package service

import (
	"errors"
	"testing"

	"github.com/petmall-admin/internal/config"
	"github.com/petmall-admin/internal/repository"
)

func newAuthServiceForTest(t *testing.T) *AuthService {
	t.Helper()
	db := openServiceTestDB(t)
	cfg := &config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret", ExpireHours: 1},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{MinLength: 6},
		},
	}
	return NewAuthService(cfg, repository.NewAdminRepository(db))
}

func TestAuthRegisterAndLoginByUsernameOrEmail(t *testing.T) {
	svc := newAuthServiceForTest(t)

	admin, err := svc.Register(RegisterInput{Username: "ops", Email: "Ops@PetMall.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(RegisterInput{Username: "ops2", Email: "ops@petmall.com", Password: "secret123"}); !errors.Is(err, ErrAdminExists) {
		t.Fatalf("duplicate email should be rejected, got %v", err)
	}
	if _, err := svc.Register(RegisterInput{Username: "weak", Email: "weak@petmall.com", Password: "123"}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("short password should be rejected, got %v", err)
	}

	for _, identifier := range []string{"ops", "ops@petmall.com"} {
		got, token, _, err := svc.Login(identifier, "secret123")
		if err != nil {
			t.Fatalf("login with %s failed: %v", identifier, err)
		}
		if got.ID != admin.ID || got.LastLoginAt == nil {
			t.Fatalf("unexpected admin: %+v", got)
		}
		claims, err := svc.ParseJWT(token)
		if err != nil {
			t.Fatalf("parse token failed: %v", err)
		}
		if claims.AdminID != admin.ID || claims.Username != "ops" {
			t.Fatalf("unexpected claims: %+v", claims)
		}
	}

	if _, _, _, err := svc.Login("ops", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password should fail, got %v", err)
	}
	if _, _, _, err := svc.Login("nobody", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown admin should fail, got %v", err)
	}
	if _, err := svc.ParseJWT("not-a-token"); err == nil {
		t.Fatalf("garbage token should not parse")
	}
}
