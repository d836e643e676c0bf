package user

import "context"

type ProfileService interface {
	GetProfile(ctx context.Context, scope Scope) (ProfileResponse, error)
	UpdateProfile(ctx context.Context, scope Scope, req UpdateProfileRequest) (ProfileResponse, error)
}
