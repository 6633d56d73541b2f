package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/goldenpays/consultancy-api/internal/auth"
	"github.com/goldenpays/consultancy-api/internal/config"
	"github.com/goldenpays/consultancy-api/internal/domain"
	"github.com/goldenpays/consultancy-api/internal/repository"
	"github.com/goldenpays/consultancy-api/internal/validation"
)

const (
	adminEmail    = "admin@goldenpays.uk"
	adminPassword = "GoldenPays2026!"
)

func newAuthService(t *testing.T, tm *auth.TokenManager) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	principals := repository.NewStaticPrincipalRepository(domain.Principal{
		ID:           "1",
		Email:        adminEmail,
		Name:         "Administrator",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	})
	if tm == nil {
		tm = auth.NewTokenManager("secret", time.Hour)
	}
	return NewAuthService(AuthDependencies{
		Principals:   principals,
		TokenManager: tm,
		BcryptCost:   bcrypt.MinCost,
	})
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	svc := newAuthService(t, nil)

	cred, err := svc.Authenticate(context.Background(), LoginInput{Email: adminEmail, Password: adminPassword})
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if cred.Token == "" {
		t.Fatalf("expected token")
	}
	if cred.User.ID != "1" || cred.User.Role != domain.RoleAdmin || cred.User.Name != "Administrator" {
		t.Fatalf("unexpected user view %+v", cred.User)
	}
	if got := cred.ExpiresAt.Sub(cred.IssuedAt); got != time.Hour {
		t.Fatalf("expected 1h lifetime, got %s", got)
	}

	claims, err := svc.Verify(context.Background(), cred.Token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.PrincipalID != "1" || claims.Email != adminEmail || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestAuthService_Authenticate_Failures(t *testing.T) {
	svc := newAuthService(t, nil)

	tests := []struct {
		name           string
		input          LoginInput
		wantValidation bool
	}{
		{name: "unknown email", input: LoginInput{Email: "nobody@goldenpays.uk", Password: adminPassword}},
		{name: "wrong password", input: LoginInput{Email: adminEmail, Password: "wrong-password"}},
		{name: "email case differs", input: LoginInput{Email: "Admin@goldenpays.uk", Password: adminPassword}},
		{name: "malformed email", input: LoginInput{Email: "not-an-email", Password: adminPassword}, wantValidation: true},
		{name: "short password", input: LoginInput{Email: adminEmail, Password: "12345"}, wantValidation: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(context.Background(), tt.input)
			if tt.wantValidation {
				if !validation.IsValidationError(err) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthService_Verify(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tm := auth.NewTokenManager("secret", time.Hour).WithClock(func() time.Time { return now })
	svc := newAuthService(t, tm)

	cred, err := svc.Authenticate(context.Background(), LoginInput{Email: adminEmail, Password: adminPassword})
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}

	if _, err := svc.Verify(context.Background(), ""); !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
	if _, err := svc.Verify(context.Background(), "garbage"); !errors.Is(err, domain.ErrInvalidOrExpiredCredential) {
		t.Fatalf("expected ErrInvalidOrExpiredCredential, got %v", err)
	}

	forged := newAuthService(t, auth.NewTokenManager("other-secret", time.Hour).WithClock(func() time.Time { return now }))
	if _, err := forged.Verify(context.Background(), cred.Token); !errors.Is(err, domain.ErrInvalidOrExpiredCredential) {
		t.Fatalf("token signed with another secret must fail, got %v", err)
	}

	later := newAuthService(t, tm.WithClock(func() time.Time { return now.Add(2 * time.Hour) }))
	if _, err := later.Verify(context.Background(), cred.Token); !errors.Is(err, domain.ErrInvalidOrExpiredCredential) {
		t.Fatalf("expired token must fail, got %v", err)
	}
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	svc := newAuthService(t, nil)
	ctx := context.Background()

	cred, err := svc.Authenticate(ctx, LoginInput{Email: adminEmail, Password: adminPassword})
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	claims, err := svc.Verify(ctx, cred.Token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if err := svc.Logout(ctx, claims); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, err := svc.Verify(ctx, cred.Token); !errors.Is(err, domain.ErrInvalidOrExpiredCredential) {
		t.Fatalf("revoked token must fail, got %v", err)
	}

	other, err := svc.Authenticate(ctx, LoginInput{Email: adminEmail, Password: adminPassword})
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if _, err := svc.Verify(ctx, other.Token); err != nil {
		t.Fatalf("a fresh token must stay valid: %v", err)
	}
}

func TestAuthService_AuthenticateProvisionedAdmin(t *testing.T) {
	for _, key := range []string{"ADMIN_ID", "ADMIN_EMAIL", "ADMIN_NAME", "ADMIN_PASSWORD_HASH", "AUTH_BCRYPT_COST", "JWT_EXPIRES_IN"} {
		t.Setenv(key, "")
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	svc := NewAuthService(AuthDependencies{
		Principals: repository.NewStaticPrincipalRepository(domain.Principal{
			ID:           cfg.Auth.AdminID,
			Email:        cfg.Auth.AdminEmail,
			Name:         cfg.Auth.AdminName,
			PasswordHash: cfg.Auth.AdminPasswordHash,
			Role:         domain.RoleAdmin,
		}),
		TokenManager: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		BcryptCost:   auth.HashCost(cfg.Auth.AdminPasswordHash, cfg.Auth.BcryptCost),
	})

	cred, err := svc.Authenticate(context.Background(), LoginInput{Email: adminEmail, Password: adminPassword})
	if err != nil {
		t.Fatalf("provisioned administrator should authenticate: %v", err)
	}
	claims, err := svc.Verify(context.Background(), cred.Token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Role != domain.RoleAdmin || claims.PrincipalID != "1" || claims.Email != adminEmail {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if got := cred.ExpiresAt.Sub(cred.IssuedAt); got != 24*time.Hour {
		t.Fatalf("expected default 24h lifetime, got %s", got)
	}
}
