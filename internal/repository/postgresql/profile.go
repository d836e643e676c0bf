package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type profileRepositoryImpl struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) user.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

const profileColumns = `id, name, email, password_hash, role, site_location, created_at, updated_at`

func scanProfile(row pgx.Row) (user.Profile, error) {
	var p user.Profile
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.PasswordHash,
		&p.Role,
		&p.SiteLocation,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func (r *profileRepositoryImpl) getOne(ctx context.Context, where string, arg interface{}) (user.Profile, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProfile(q.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, user.ErrProfileNotFound
		}
		return user.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// GetByEmail implements user.ProfileRepository.
func (r *profileRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.Profile, error) {
	return r.getOne(ctx, `LOWER(email) = LOWER($1)`, email)
}

// GetByID implements user.ProfileRepository.
func (r *profileRepositoryImpl) GetByID(ctx context.Context, id string) (user.Profile, error) {
	return r.getOne(ctx, `id = $1`, id)
}

// Create implements user.ProfileRepository.
func (r *profileRepositoryImpl) Create(ctx context.Context, newProfile user.Profile) (user.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO profiles (id, name, email, password_hash, role, site_location)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + profileColumns

	created, err := scanProfile(q.QueryRow(ctx, query,
		newProfile.ID,
		newProfile.Name,
		newProfile.Email,
		newProfile.PasswordHash,
		string(newProfile.Role),
		newProfile.SiteLocation,
	))
	if err != nil {
		if isUniqueViolation(err, "profiles_email_key") {
			return user.Profile{}, user.ErrUserEmailExists
		}
		return user.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}
	return created, nil
}

// ExistsByEmail implements user.ProfileRepository.
func (r *profileRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM profiles WHERE LOWER(email) = LOWER($1))`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// Update implements user.ProfileRepository. An empty site location clears it.
func (r *profileRepositoryImpl) Update(ctx context.Context, id string, req user.UpdateProfileRequest) (user.Profile, error) {
	q := GetQuerier(ctx, r.db)

	var (
		sets []string
		args []interface{}
	)
	if req.Name != nil {
		args = append(args, *req.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if req.Email != nil {
		args = append(args, *req.Email)
		sets = append(sets, fmt.Sprintf("email = $%d", len(args)))
	}
	if req.SiteLocation != nil {
		args = append(args, *req.SiteLocation)
		sets = append(sets, fmt.Sprintf("site_location = NULLIF($%d, '')", len(args)))
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE profiles SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), profileColumns)

	updated, err := scanProfile(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, user.ErrProfileNotFound
		}
		if isUniqueViolation(err, "profiles_email_key") {
			return user.Profile{}, user.ErrUserEmailExists
		}
		return user.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return updated, nil
}
