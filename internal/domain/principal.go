package domain

import "time"

// Role enumerates principal roles. The back office has a single role today.
type Role string

const (
	RoleAdmin Role = "admin"
)

// Principal is the provisioned administrative identity.
type Principal struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
}

// PrincipalView is the public-safe projection of a Principal.
type PrincipalView struct {
	ID    string
	Email string
	Name  string
	Role  Role
}

// View strips the password hash.
func (p Principal) View() PrincipalView {
	return PrincipalView{ID: p.ID, Email: p.Email, Name: p.Name, Role: p.Role}
}

// Credential is the outcome of a successful login. It is never stored server-side.
type Credential struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
	User      PrincipalView
}
