package kernel

import "strings"

// Role is the role claim supplied by the identity collaborator. Only
// RoleVolunteer and RoleAdmin carry meaning; any other value is an ordinary user.
type Role string

const (
	RoleUser      Role = "user"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// Principal is the actor issuing a request. Its claims are trusted as given.
// The zero value is the anonymous principal.
type Principal struct {
	id   string
	role Role
}

// NewPrincipal builds an authenticated principal. A blank id yields the
// anonymous principal. The role is kept verbatim, so " volunteer " is not
// RoleVolunteer.
func NewPrincipal(id string, role Role) Principal {
	id = strings.TrimSpace(id)
	if id == "" {
		return Anonymous()
	}
	return Principal{id: id, role: role}
}

// Anonymous returns the principal of an unauthenticated caller.
func Anonymous() Principal {
	return Principal{}
}

func (p Principal) ID() string {
	return p.id
}

func (p Principal) Role() Role {
	return p.role
}

func (p Principal) IsAuthenticated() bool {
	return p.id != ""
}

func (p Principal) IsVolunteer() bool {
	return p.IsAuthenticated() && p.role == RoleVolunteer
}

// HasRole reports whether an authenticated principal carries role.
func (p Principal) HasRole(role Role) bool {
	return p.IsAuthenticated() && p.role == role
}

// OwnerRef returns the id to store as a pickup owner: nil for anonymous callers.
func (p Principal) OwnerRef() *string {
	if !p.IsAuthenticated() {
		return nil
	}
	id := p.id
	return &id
}
