package auth

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/repository/sqlite"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/repository/sqlite/sqlitetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

func newTestAuthService(t *testing.T) (auth.AuthService, user.ProfileRepository) {
	db := sqlitetest.NewDB(t)
	profileRepo := sqlite.NewProfileRepository(db)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(sqlite.NewTransactor(db), profileRepo, jwtService, sqlite.NewTokenRepository(db)), profileRepo
}

var testSession = auth.SessionTrackingRequest{IPAddress: "127.0.0.1", UserAgent: "Mozilla/5.0"}

func registerSupervisor(t *testing.T, svc auth.AuthService, email string) auth.TokenResponse {
	site := "Downtown"
	resp, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:            "Site Supervisor",
		Email:           email,
		Password:        "password123",
		ConfirmPassword: "password123",
		Role:            "supervisor",
		SiteLocation:    &site,
	}, testSession)
	require.NoError(t, err)
	return resp
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, profiles := newTestAuthService(t)

	resp := registerSupervisor(t, svc, "Sup@Example.com")

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.RefreshTokenExpiresIn, resp.AccessTokenExpiresIn)
	assert.Equal(t, "sup@example.com", resp.Profile.Email)
	assert.Equal(t, "Downtown", resp.Profile.ScopeLabel)

	stored, err := profiles.GetByEmail(context.Background(), "sup@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored.PasswordHash)
	assert.NotEqual(t, "password123", *stored.PasswordHash)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	registerSupervisor(t, svc, "dup@example.com")

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name: "Admin", Email: "DUP@example.com", Password: "password123", ConfirmPassword: "password123", Role: "admin",
	}, testSession)
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestAuthService_Register_SupervisorNeedsSite(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name: "Sup", Email: "nosite@example.com", Password: "password123", ConfirmPassword: "password123", Role: "supervisor",
	}, testSession)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "site_location")
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newTestAuthService(t)
	registerSupervisor(t, svc, "login@example.com")
	ctx := context.Background()

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "LOGIN@example.com", Password: "password123"}, testSession)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "supervisor", resp.Profile.Role)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "login@example.com", Password: "wrongpassword"}, testSession)
	assert.Equal(t, auth.ErrInvalidCredentials, err)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "password123"}, testSession)
	assert.Equal(t, auth.ErrInvalidCredentials, err)
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()
	tokens := registerSupervisor(t, svc, "refresh@example.com")

	access, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, access.AccessToken)

	// an access token is not accepted as a refresh token
	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: tokens.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	require.NoError(t, svc.Logout(ctx, tokens.RefreshToken))
	require.NoError(t, svc.Logout(ctx, tokens.RefreshToken))

	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_Refresh_TokenFromAnotherSecret(t *testing.T) {
	svc, _ := newTestAuthService(t)
	other := jwt.NewJWTService("another-secret", testAccessExp, testRefreshExp)
	forged, _, err := other.GenerateRefreshToken("0190c8a4-0000-7000-8000-000000000000")
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: forged})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
