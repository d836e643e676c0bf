package user

import (
	"context"
)

type ProfileRepository interface {
	GetByEmail(ctx context.Context, email string) (Profile, error)
	GetByID(ctx context.Context, id string) (Profile, error)
	Create(ctx context.Context, newProfile Profile) (Profile, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, id string, req UpdateProfileRequest) (Profile, error)
}
