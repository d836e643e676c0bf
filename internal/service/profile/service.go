package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
)

type ProfileServiceImpl struct {
	profileRepo user.ProfileRepository
}

func NewProfileService(profileRepo user.ProfileRepository) user.ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

// GetProfile implements user.ProfileService.
func (s *ProfileServiceImpl) GetProfile(ctx context.Context, scope user.Scope) (user.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, scope.UserID)
	if err != nil {
		return user.ProfileResponse{}, err
	}
	return user.NewProfileResponse(profile), nil
}

// UpdateProfile implements user.ProfileService. Supervisors cannot clear
// their site; an admin may.
func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, scope user.Scope, req user.UpdateProfileRequest) (user.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return user.ProfileResponse{}, err
	}

	current, err := s.profileRepo.GetByID(ctx, scope.UserID)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	if req.SiteLocation != nil && *req.SiteLocation == "" && current.Role == user.RoleSupervisor {
		return user.ProfileResponse{}, user.ErrSiteLocationRequired
	}

	if req.Email != nil && *req.Email != current.Email {
		exists, err := s.profileRepo.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return user.ProfileResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
		// the NOCASE/LOWER lookup also matches the caller's own address
		if exists && !strings.EqualFold(*req.Email, current.Email) {
			return user.ProfileResponse{}, user.ErrUserEmailExists
		}
	}

	updated, err := s.profileRepo.Update(ctx, scope.UserID, req)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	return user.NewProfileResponse(updated), nil
}
