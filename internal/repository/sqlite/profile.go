package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
)

type profileRepositoryImpl struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) user.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

const profileColumns = `id, name, email, password_hash, role, site_location, created_at, updated_at`

func scanProfile(row rowScanner) (user.Profile, error) {
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
	q := getQuerier(ctx, r.db)

	p, err := scanProfile(q.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.Profile{}, user.ErrProfileNotFound
		}
		return user.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// GetByEmail implements user.ProfileRepository. The email column is NOCASE.
func (r *profileRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.Profile, error) {
	return r.getOne(ctx, `email = ?`, email)
}

// GetByID implements user.ProfileRepository.
func (r *profileRepositoryImpl) GetByID(ctx context.Context, id string) (user.Profile, error) {
	return r.getOne(ctx, `id = ?`, id)
}

// Create implements user.ProfileRepository.
func (r *profileRepositoryImpl) Create(ctx context.Context, newProfile user.Profile) (user.Profile, error) {
	q := getQuerier(ctx, r.db)

	now := time.Now().UTC()
	newProfile.CreatedAt = now
	newProfile.UpdatedAt = now

	_, err := q.ExecContext(ctx, `
		INSERT INTO profiles (id, name, email, password_hash, role, site_location, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		newProfile.ID,
		newProfile.Name,
		newProfile.Email,
		newProfile.PasswordHash,
		string(newProfile.Role),
		newProfile.SiteLocation,
		newProfile.CreatedAt,
		newProfile.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "profiles.email") {
			return user.Profile{}, user.ErrUserEmailExists
		}
		return user.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}
	return newProfile, nil
}

// ExistsByEmail implements user.ProfileRepository.
func (r *profileRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := getQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM profiles WHERE email = ?)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// Update implements user.ProfileRepository. An empty site location clears it.
func (r *profileRepositoryImpl) Update(ctx context.Context, id string, req user.UpdateProfileRequest) (user.Profile, error) {
	q := getQuerier(ctx, r.db)

	var (
		sets []string
		args []interface{}
	)
	if req.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *req.Name)
	}
	if req.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *req.Email)
	}
	if req.SiteLocation != nil {
		sets = append(sets, "site_location = NULLIF(?, '')")
		args = append(args, *req.SiteLocation)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC(), id)

	res, err := q.ExecContext(ctx, `UPDATE profiles SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		if isUniqueViolation(err, "profiles.email") {
			return user.Profile{}, user.ErrUserEmailExists
		}
		return user.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return user.Profile{}, user.ErrProfileNotFound
	}
	return r.GetByID(ctx, id)
}
