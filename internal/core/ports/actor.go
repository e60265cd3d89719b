package ports

import "github.com/Klit-Bucinca/SkillHire/internal/core/domain"

// Actor is the verified identity behind a request, extracted from the JWT by
// the auth middleware. Services trust it for every ownership decision.
type Actor struct {
	ID       int64
	Username string
	Role     domain.Role
}

// IsAdmin reports whether the actor holds the Admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == domain.RoleAdmin
}
