package entity

// Principal is the authenticated identity embedded in a token. It is never mutated once built.
type Principal struct {
	Subject     string
	Role        Role
	Authorities Authorities
}

// NewPrincipal builds the principal of a subject holding a single role.
func NewPrincipal(subject string, role Role) *Principal {
	return &Principal{
		Subject:     subject,
		Role:        role,
		Authorities: Authorities{role.Authority()},
	}
}

// HasRole reports whether the principal was granted the role.
func (p *Principal) HasRole(role Role) bool {
	return p != nil && p.Authorities.Contains(role)
}
