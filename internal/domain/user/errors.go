package user

import "errors"

var (
	ErrProfileNotFound         = errors.New("profile not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrAdminPrivilegeRequired  = errors.New("admin privilege required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrOutOfScope              = errors.New("record belongs to a site outside your scope")
	ErrSiteLocationRequired    = errors.New("site location is required for supervisors")
)
