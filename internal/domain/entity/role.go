package entity

import (
	"slices"
	"strings"
)

// Role is the single role tag of a subject.
type Role string

const (
	// RoleMember is granted to every registered account.
	RoleMember Role = "MEMBER"
	// RoleAdmin manages categories and regions.
	RoleAdmin Role = "ADMIN"
)

const authorityPrefix = "ROLE_"

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleAdmin:
		return true
	default:
		return false
	}
}

// Authority returns the granted authority string of the role, e.g. ROLE_MEMBER.
func (r Role) Authority() string {
	return authorityPrefix + string(r)
}

// Authorities is the set of authority strings carried by a token.
type Authorities []string

// Contains checks if the authorities grant a specific role.
func (as Authorities) Contains(role Role) bool {
	return slices.Contains(as, role.Authority())
}

// Role resolves the role tag from the authority set. Unknown authorities are ignored.
func (as Authorities) Role() (Role, bool) {
	for _, authority := range as {
		role := Role(strings.TrimPrefix(authority, authorityPrefix))
		if role.IsValid() {
			return role, true
		}
	}

	return "", false
}
