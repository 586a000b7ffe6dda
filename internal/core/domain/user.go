package domain

import "time"

// Role is a closed enumeration of grants a user may hold. Roles are additive:
// admin is checked explicitly wherever elevated access is required, never
// inferred from the absence of other roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the identity record held by the credential store.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the request-scoped resolved caller. The role set is re-read
// from the store on every request, so it reflects current grants rather than
// whatever the token carried at issuance.
type Principal struct {
	UserID string
	Email  string
	Roles  []Role
}

// HasRole reports whether the principal holds the given role.
func (p *Principal) HasRole(role Role) bool {
	if p == nil {
		return false
	}
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}

// IncludeInactive is the resource visibility rule: admins see every record
// regardless of its active flag, everyone else only sees active ones. Every
// content listing and read handler funnels through this single branch.
func IncludeInactive(p *Principal) bool {
	return p.IsAdmin()
}
