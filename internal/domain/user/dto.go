package user

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/validator"
)

// ProfileResponse represents profile data in API responses
type ProfileResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	SiteLocation *string `json:"site_location,omitempty"`
	ScopeLabel   string  `json:"scope_label"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func NewProfileResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		Role:         string(p.Role),
		SiteLocation: p.SiteLocation,
		ScopeLabel:   p.Scope().Label(),
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}
}

// UpdateProfileRequest edits the caller's own profile. Role is not editable.
type UpdateProfileRequest struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	SiteLocation *string `json:"site_location,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		} else if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 255 characters",
			})
		}
	}

	if r.Email != nil {
		if validator.IsEmpty(*r.Email) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "email must not be empty",
			})
		} else if !validator.IsValidEmail(*r.Email) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "invalid email format",
			})
		}
	}

	if r.SiteLocation != nil && len(*r.SiteLocation) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "site_location",
			Message: "site_location must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	r.trim()
	return nil
}

func (r *UpdateProfileRequest) trim() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &v
	}
	if r.SiteLocation != nil {
		v := strings.TrimSpace(*r.SiteLocation)
		r.SiteLocation = &v
	}
}
