// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultProfileImage is assigned to locally registered members.
const DefaultProfileImage = "default_profile.jpg"

// Member is an account of the service, local or federated.
type Member struct {
	ID           uuid.UUID // Surrogate key generated by the database.
	Username     string    // Subject identity. Email for local accounts, provider id for federated ones.
	PasswordHash string    // bcrypt hash. Federated accounts hold the hash of a random placeholder.
	Email        string
	Nickname     string
	Introduction string
	ProfileImg   string
	Role         Role
	Provider     Provider // Provider of origin, ProviderNone for local accounts.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsFederated reports whether the member was provisioned through an identity provider.
func (m *Member) IsFederated() bool {
	return m.Provider != ProviderNone
}

// Principal derives the token-embedded identity of the member.
func (m *Member) Principal() *Principal {
	return NewPrincipal(m.Username, m.Role)
}
