package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/wage"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newID(t *testing.T) string {
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return id.String()
}

func createProfile(t *testing.T, repo user.ProfileRepository, email string) user.Profile {
	site := "Downtown"
	p, err := repo.Create(context.Background(), user.Profile{
		ID:           newID(t),
		Name:         "Supervisor",
		Email:        email,
		Role:         user.RoleSupervisor,
		SiteLocation: &site,
	})
	require.NoError(t, err)
	return p
}

func TestProfileRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewProfileRepository(setup.DB)

	p := createProfile(t, repo, "sup@example.com")

	got, err := repo.GetByEmail(ctx, "SUP@example.com")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = repo.Create(ctx, user.Profile{ID: newID(t), Name: "Dup", Email: "sup@example.com", Role: user.RoleAdmin})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	empty := ""
	name := "Renamed"
	updated, err := repo.Update(ctx, p.ID, user.UpdateProfileRequest{Name: &name, SiteLocation: &empty})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Nil(t, updated.SiteLocation)

	_, err = repo.GetByID(ctx, newID(t))
	assert.ErrorIs(t, err, user.ErrProfileNotFound)
}

func TestEmployeeAndAttendanceRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	profiles := postgresql.NewProfileRepository(setup.DB)
	employees := postgresql.NewEmployeeRepository(setup.DB)
	records := postgresql.NewAttendanceRepository(setup.DB)

	marker := createProfile(t, profiles, "marker@example.com")

	emp, err := employees.Create(ctx, employee.Employee{
		ID: newID(t), EmployeeCode: "EMP001", Name: "Ravi", JobCategory: "Mason",
		DailyWage: decimal.RequireFromString("500.50"), SiteLocation: "Downtown", AddedBy: marker.ID,
	})
	require.NoError(t, err)
	assert.True(t, emp.DailyWage.Equal(decimal.RequireFromString("500.50")))

	_, err = employees.Create(ctx, employee.Employee{
		ID: newID(t), EmployeeCode: "EMP001", Name: "Other", JobCategory: "Helper",
		DailyWage: decimal.NewFromInt(1), SiteLocation: "Uptown", AddedBy: marker.ID,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)

	rec, err := records.Create(ctx, attendance.Record{
		ID: newID(t), EmployeeID: emp.ID, Date: "2024-01-01", AttendanceType: attendance.TypeHalf, MarkedBy: marker.ID,
	})
	require.NoError(t, err)

	_, err = records.Create(ctx, attendance.Record{
		ID: newID(t), EmployeeID: emp.ID, Date: "2024-01-01", AttendanceType: attendance.TypeFull, MarkedBy: marker.ID,
	})
	assert.True(t, errors.Is(err, attendance.ErrAttendanceAlreadyMarked))

	exists, err := records.ExistsByEmployeeAndDate(ctx, emp.ID, "2024-01-01")
	require.NoError(t, err)
	assert.True(t, exists)

	date := "2024-01-01"
	site := "Downtown"
	list, err := records.List(ctx, attendance.AttendanceFilter{Date: &date, SiteLocation: &site})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, rec.ID, list[0].ID)
	assert.Equal(t, "2024-01-01", list[0].Date)
	require.NotNil(t, list[0].EmployeeName)
	assert.Equal(t, "Ravi", *list[0].EmployeeName)
	require.NotNil(t, list[0].MarkedByName)

	count, err := records.CountByDate(ctx, "2024-01-01", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// deleting the employee keeps the record; it no longer resolves
	require.NoError(t, employees.Delete(ctx, emp.ID))
	orphan, err := records.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan.EmployeeName)

	sites, err := employees.DistinctSites(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, sites)
}

func TestWagePaymentRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewWagePaymentRepository(setup.DB)
	payer := createProfile(t, postgresql.NewProfileRepository(setup.DB), "payer@example.com")

	employeeID := newID(t)
	p, err := repo.Create(ctx, wage.Payment{
		ID: newID(t), EmployeeID: employeeID, AdvanceAmount: decimal.NewFromInt(-25), Date: "2024-02-01", PaidBy: payer.ID,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.AdvanceAmount.Equal(decimal.NewFromInt(-25)))
	assert.Nil(t, got.EmployeeName)

	list, err := repo.List(ctx, wage.AdvanceFilter{EmployeeID: &employeeID})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, p.ID))
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), wage.ErrPaymentNotFound)
}

func TestTransactorAndTokens(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	profiles := postgresql.NewProfileRepository(setup.DB)
	tokens := postgresql.NewJWTRepository(setup.DB)
	tx := postgresql.NewTransactor(setup.DB)

	boom := errors.New("boom")
	err := tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		_, err := profiles.Create(txCtx, user.Profile{ID: newID(t), Name: "Rolled", Email: "rolled@example.com", Role: user.RoleAdmin})
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)
	_, err = profiles.GetByEmail(ctx, "rolled@example.com")
	assert.ErrorIs(t, err, user.ErrProfileNotFound)

	var owner user.Profile
	require.NoError(t, tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		owner, err = profiles.Create(txCtx, user.Profile{ID: newID(t), Name: "Admin", Email: "admin@example.com", Role: user.RoleAdmin})
		if err != nil {
			return err
		}
		return tokens.CreateRefreshToken(txCtx, owner.ID, "refresh-token", 4102444800, auth.SessionTrackingRequest{UserAgent: "test"})
	}))

	userID, revoked, err := tokens.IsRefreshTokenRevoked(ctx, "refresh-token")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Equal(t, owner.ID, userID)

	require.NoError(t, tokens.RevokeRefreshToken(ctx, "refresh-token"))
	_, revoked, err = tokens.IsRefreshTokenRevoked(ctx, "refresh-token")
	require.NoError(t, err)
	assert.True(t, revoked)

	_, revoked, err = tokens.IsRefreshTokenRevoked(ctx, "unknown")
	require.NoError(t, err)
	assert.True(t, revoked)
}
