package user

// Scope is the authorization context of a request. Admins see every site;
// supervisors only their own. It is built once from the access token and
// passed explicitly to services.
type Scope struct {
	UserID string
	Role   Role
	Site   *string
}

func NewScope(userID string, role Role, site *string) Scope {
	s := Scope{UserID: userID, Role: role}
	if site != nil {
		v := *site
		s.Site = &v
	}
	return s
}

func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

func (s Scope) CanSeeAllSites() bool {
	return s.IsAdmin()
}

// Allows reports whether a record at site is visible. A supervisor with no
// assigned site sees nothing.
func (s Scope) Allows(site string) bool {
	if s.CanSeeAllSites() {
		return true
	}
	return s.Site != nil && *s.Site == site
}

// SiteFilter returns the site repositories must restrict to, or nil for all sites.
func (s Scope) SiteFilter() *string {
	if s.CanSeeAllSites() {
		return nil
	}
	if s.Site == nil {
		empty := ""
		return &empty
	}
	site := *s.Site
	return &site
}

// Label is the human-readable extent of the scope.
func (s Scope) Label() string {
	if s.CanSeeAllSites() {
		return "All sites"
	}
	if s.Site == nil || *s.Site == "" {
		return "No site assigned"
	}
	return *s.Site
}

// RequireAdmin returns ErrAdminPrivilegeRequired for non-admin scopes.
func (s Scope) RequireAdmin() error {
	if !s.IsAdmin() {
		return ErrAdminPrivilegeRequired
	}
	return nil
}
