package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"      // Sees and manages every site
	RoleSupervisor Role = "supervisor" // Restricted to the assigned site
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleSupervisor
}

// Profile is an authenticated staff member.
type Profile struct {
	ID           string
	Name         string
	Email        string
	PasswordHash *string
	Role         Role
	SiteLocation *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if profile has the admin role
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Scope returns the visibility scope this profile acts with.
func (p *Profile) Scope() Scope {
	return NewScope(p.ID, p.Role, p.SiteLocation)
}
