package dto

import (
	"time"

	"github.com/goldenpays/consultancy-api/internal/auth"
	"github.com/goldenpays/consultancy-api/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserView is the public projection of the administrator.
type UserView struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  domain.Role `json:"role"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserView  `json:"user"`
}

// ClaimsView mirrors the decoded token payload.
type ClaimsView struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	Iat   int64       `json:"iat,omitempty"`
	Exp   int64       `json:"exp,omitempty"`
}

// VerifyResponse reports a valid token.
type VerifyResponse struct {
	Valid bool       `json:"valid"`
	User  ClaimsView `json:"user"`
}

// NewLoginResponse maps a credential.
func NewLoginResponse(cred *domain.Credential) LoginResponse {
	return LoginResponse{
		Success:   true,
		Token:     cred.Token,
		ExpiresAt: cred.ExpiresAt,
		User: UserView{
			ID:    cred.User.ID,
			Email: cred.User.Email,
			Name:  cred.User.Name,
			Role:  cred.User.Role,
		},
	}
}

// NewClaimsView maps verified claims.
func NewClaimsView(claims *auth.Claims) ClaimsView {
	view := ClaimsView{ID: claims.PrincipalID, Email: claims.Email, Role: claims.Role}
	if claims.IssuedAt != nil {
		view.Iat = claims.IssuedAt.Unix()
	}
	if claims.RegisteredClaims.ExpiresAt != nil {
		view.Exp = claims.RegisteredClaims.ExpiresAt.Unix()
	}
	return view
}
