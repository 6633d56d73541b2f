package repository

import (
	"context"

	"github.com/goldenpays/consultancy-api/internal/domain"
)

// PrincipalRepository resolves administrative identities by login email.
type PrincipalRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Principal, error)
}

type staticPrincipalRepository struct {
	principals map[string]domain.Principal
}

// NewStaticPrincipalRepository serves principals provisioned at process start.
// Emails are matched exactly, case included.
func NewStaticPrincipalRepository(principals ...domain.Principal) PrincipalRepository {
	byEmail := make(map[string]domain.Principal, len(principals))
	for _, p := range principals {
		byEmail[p.Email] = p
	}
	return &staticPrincipalRepository{principals: byEmail}
}

// GetByEmail returns domain.ErrInvalidCredentials for unknown emails so that
// callers cannot tell a missing account from a wrong password.
func (r *staticPrincipalRepository) GetByEmail(_ context.Context, email string) (*domain.Principal, error) {
	p, ok := r.principals[email]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return &p, nil
}
