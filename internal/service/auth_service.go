package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goldenpays/consultancy-api/internal/auth"
	"github.com/goldenpays/consultancy-api/internal/domain"
	"github.com/goldenpays/consultancy-api/internal/observability"
	"github.com/goldenpays/consultancy-api/internal/repository"
	"github.com/goldenpays/consultancy-api/internal/validation"
)

// LoginInput is the raw login payload.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// AuthService issues and verifies administrator credentials.
type AuthService struct {
	principals repository.PrincipalRepository
	tokenMgr   *auth.TokenManager
	revoker    auth.Revoker
	validator  *validation.Validator
	metrics    *observability.Metrics
	logger     *zap.Logger
	bcryptCost int

	dummyOnce sync.Once
	dummyHash string
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	Principals   repository.PrincipalRepository
	TokenManager *auth.TokenManager
	Revoker      auth.Revoker
	Validator    *validation.Validator
	Metrics      *observability.Metrics
	Logger       *zap.Logger
	BcryptCost   int
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	v := deps.Validator
	if v == nil {
		v = validation.New()
	}
	revoker := deps.Revoker
	if revoker == nil {
		revoker = auth.NewMemoryRevoker()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		principals: deps.Principals,
		tokenMgr:   deps.TokenManager,
		revoker:    revoker,
		validator:  v,
		metrics:    deps.Metrics,
		logger:     logger,
		bcryptCost: deps.BcryptCost,
	}
}

// Authenticate checks the credentials and issues a signed token. An unknown
// email and a wrong password both yield domain.ErrInvalidCredentials, and both
// pay for one bcrypt comparison.
func (s *AuthService) Authenticate(ctx context.Context, input LoginInput) (*domain.Credential, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	principal, err := s.principals.GetByEmail(ctx, input.Email)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		_ = auth.ComparePassword(s.dummy(), input.Password)
		s.metrics.RecordLogin(false)
		return nil, domain.ErrInvalidCredentials
	case err != nil:
		return nil, err
	}

	if err := auth.ComparePassword(principal.PasswordHash, input.Password); err != nil {
		s.metrics.RecordLogin(false)
		return nil, domain.ErrInvalidCredentials
	}

	view := principal.View()
	token, issuedAt, expiresAt, err := s.tokenMgr.GenerateToken(view)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordLogin(true)
	s.logger.Info("principal authenticated", zap.String("principal_id", view.ID))

	return &domain.Credential{
		Token:     token,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
		User:      view,
	}, nil
}

// Verify validates a raw bearer token. It returns domain.ErrMissingCredential
// for an empty token and domain.ErrInvalidOrExpiredCredential for anything
// malformed, expired, badly signed or revoked.
func (s *AuthService) Verify(ctx context.Context, token string) (*auth.Claims, error) {
	if token == "" {
		return nil, domain.ErrMissingCredential
	}
	claims, err := s.tokenMgr.ParseToken(token)
	if err != nil {
		return nil, domain.ErrInvalidOrExpiredCredential
	}
	if id := claims.TokenID(); id != "" {
		revoked, err := s.revoker.IsRevoked(ctx, id)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, domain.ErrInvalidOrExpiredCredential
		}
	}
	return claims, nil
}

// Logout revokes the token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil {
		return domain.ErrMissingCredential
	}
	if claims.TokenID() == "" {
		return nil
	}
	until := claims.Expiry()
	if until.IsZero() {
		until = time.Now().Add(24 * time.Hour)
	}
	if err := s.revoker.Revoke(ctx, claims.TokenID(), until); err != nil {
		return err
	}
	s.logger.Info("token revoked", zap.String("principal_id", claims.PrincipalID))
	return nil
}

// dummy returns a hash of the configured cost used to equalize timing for
// unknown emails.
func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		hash, err := auth.HashPassword("not-a-real-password", s.bcryptCost)
		if err != nil {
			s.logger.Warn("dummy hash generation failed", zap.Error(err))
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
