package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/wage"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/repository/sqlite"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/repository/sqlite/sqlitetest"
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

func strPtr(s string) *string { return &s }

func seedEmployee(t *testing.T, repo employee.EmployeeRepository, code, name, site, wage string) employee.Employee {
	emp, err := repo.Create(context.Background(), employee.Employee{
		ID: newID(t), EmployeeCode: code, Name: name, JobCategory: "Mason",
		DailyWage: decimal.RequireFromString(wage), SiteLocation: site, AddedBy: newID(t),
	})
	require.NoError(t, err)
	return emp
}

func TestProfileRepository_CaseInsensitiveEmail(t *testing.T) {
	db := sqlitetest.NewDB(t)
	ctx := context.Background()
	repo := sqlite.NewProfileRepository(db)

	p, err := repo.Create(ctx, user.Profile{
		ID: newID(t), Name: "Asha", Email: "asha@example.com", Role: user.RoleSupervisor, SiteLocation: strPtr("Downtown"),
	})
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "ASHA@Example.com")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, user.RoleSupervisor, got.Role)
	require.NotNil(t, got.SiteLocation)
	assert.Equal(t, "Downtown", *got.SiteLocation)

	exists, err := repo.ExistsByEmail(ctx, "Asha@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.Create(ctx, user.Profile{ID: newID(t), Name: "Dup", Email: "ASHA@example.com", Role: user.RoleAdmin})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestProfileRepository_Update(t *testing.T) {
	db := sqlitetest.NewDB(t)
	ctx := context.Background()
	repo := sqlite.NewProfileRepository(db)

	p, err := repo.Create(ctx, user.Profile{ID: newID(t), Name: "Admin", Email: "admin@example.com", Role: user.RoleAdmin, SiteLocation: strPtr("HQ")})
	require.NoError(t, err)
	other, err := repo.Create(ctx, user.Profile{ID: newID(t), Name: "Other", Email: "other@example.com", Role: user.RoleAdmin})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, p.ID, user.UpdateProfileRequest{Name: strPtr("Chief"), SiteLocation: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "Chief", updated.Name)
	assert.Nil(t, updated.SiteLocation)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))

	_, err = repo.Update(ctx, other.ID, user.UpdateProfileRequest{Email: strPtr("admin@example.com")})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	_, err = repo.Update(ctx, newID(t), user.UpdateProfileRequest{Name: strPtr("Ghost")})
	assert.ErrorIs(t, err, user.ErrProfileNotFound)

	unchanged, err := repo.Update(ctx, other.ID, user.UpdateProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Other", unchanged.Name)
}

func TestEmployeeRepository(t *testing.T) {
	db := sqlitetest.NewDB(t)
	ctx := context.Background()
	repo := sqlite.NewEmployeeRepository(db)

	ravi := seedEmployee(t, repo, "EMP002", "Ravi Kumar", "Downtown", "500.50")
	seedEmployee(t, repo, "EMP001", "Arjun Singh", "Uptown", "600")

	got, err := repo.GetByID(ctx, ravi.ID)
	require.NoError(t, err)
	assert.True(t, got.DailyWage.Equal(decimal.RequireFromString("500.50")))
	assert.Equal(t, "Downtown", got.SiteLocation)

	_, err = repo.Create(ctx, employee.Employee{
		ID: newID(t), EmployeeCode: "EMP001", Name: "Copy", JobCategory: "Helper",
		DailyWage: decimal.NewFromInt(1), SiteLocation: "Uptown", AddedBy: newID(t),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)

	all, err := repo.List(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "EMP001", all[0].EmployeeCode)

	downtown, err := repo.List(ctx, employee.EmployeeFilter{SiteLocation: strPtr("Downtown")})
	require.NoError(t, err)
	require.Len(t, downtown, 1)
	assert.Equal(t, ravi.ID, downtown[0].ID)

	found, err := repo.List(ctx, employee.EmployeeFilter{Search: "arjun"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "EMP001", found[0].EmployeeCode)

	count, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	count, err = repo.Count(ctx, strPtr(""))
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	sites, err := repo.DistinctSites(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Downtown", "Uptown"}, sites)

	require.NoError(t, repo.Delete(ctx, ravi.ID))
	assert.ErrorIs(t, repo.Delete(ctx, ravi.ID), employee.ErrEmployeeNotFound)
	_, err = repo.GetByID(ctx, ravi.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceRepository(t *testing.T) {
	db := sqlitetest.NewDB(t)
	ctx := context.Background()
	employees := sqlite.NewEmployeeRepository(db)
	repo := sqlite.NewAttendanceRepository(db)

	downtown := seedEmployee(t, employees, "EMP002", "Ravi", "Downtown", "500")
	uptown := seedEmployee(t, employees, "EMP001", "Arjun", "Uptown", "600")

	mark := func(emp employee.Employee, date string, typ attendance.Type) attendance.Record {
		rec, err := repo.Create(ctx, attendance.Record{
			ID: newID(t), EmployeeID: emp.ID, Date: date, AttendanceType: typ, MarkedBy: newID(t),
		})
		require.NoError(t, err)
		return rec
	}
	mark(downtown, "2024-01-02", attendance.TypeFull)
	first := mark(downtown, "2024-01-01", attendance.TypeHalf)
	mark(uptown, "2024-01-01", attendance.TypeOneAndHalf)

	_, err := repo.Create(ctx, attendance.Record{
		ID: newID(t), EmployeeID: downtown.ID, Date: "2024-01-01", AttendanceType: attendance.TypeFull, MarkedBy: newID(t),
	})
	assert.True(t, errors.Is(err, attendance.ErrAttendanceAlreadyMarked))

	exists, err := repo.ExistsByEmployeeAndDate(ctx, downtown.ID, "2024-01-01")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.ExistsByEmployeeAndDate(ctx, downtown.ID, "2024-01-03")
	require.NoError(t, err)
	assert.False(t, exists)

	all, err := repo.List(ctx, attendance.AttendanceFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2024-01-01", all[0].Date)
	require.NotNil(t, all[0].EmployeeCode)
	assert.Equal(t, "EMP001", *all[0].EmployeeCode)
	assert.Equal(t, "2024-01-02", all[2].Date)

	ranged, err := repo.List(ctx, attendance.AttendanceFilter{StartDate: strPtr("2024-01-02"), EndDate: strPtr("2024-01-31")})
	require.NoError(t, err)
	assert.Len(t, ranged, 1)

	bySite, err := repo.List(ctx, attendance.AttendanceFilter{Date: strPtr("2024-01-01"), SiteLocation: strPtr("Downtown")})
	require.NoError(t, err)
	require.Len(t, bySite, 1)
	assert.Equal(t, first.ID, bySite[0].ID)
	assert.Equal(t, attendance.TypeHalf, bySite[0].AttendanceType)

	count, err := repo.CountByDate(ctx, "2024-01-01", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	count, err = repo.CountByDate(ctx, "2024-01-01", strPtr("Uptown"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	require.NoError(t, employees.Delete(ctx, downtown.ID))
	orphan, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan.EmployeeName)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), attendance.ErrAttendanceNotFound)
}

func TestWagePaymentRepository(t *testing.T) {
	db := sqlitetest.NewDB(t)
	ctx := context.Background()
	employees := sqlite.NewEmployeeRepository(db)
	repo := sqlite.NewWagePaymentRepository(db)

	emp := seedEmployee(t, employees, "EMP001", "Ravi", "Downtown", "500")

	older, err := repo.Create(ctx, wage.Payment{
		ID: newID(t), EmployeeID: emp.ID, AdvanceAmount: decimal.RequireFromString("100.25"), Date: "2024-02-01", PaidBy: newID(t),
	})
	require.NoError(t, err)
	newer, err := repo.Create(ctx, wage.Payment{
		ID: newID(t), EmployeeID: emp.ID, AdvanceAmount: decimal.NewFromInt(-25), Date: "2024-02-05", PaidBy: newID(t),
	})
	require.NoError(t, err)

	list, err := repo.List(ctx, wage.AdvanceFilter{EmployeeID: &emp.ID})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.True(t, list[1].AdvanceAmount.Equal(decimal.RequireFromString("100.25")))
	require.NotNil(t, list[0].EmployeeName)
	assert.Equal(t, "Ravi", *list[0].EmployeeName)

	none, err := repo.List(ctx, wage.AdvanceFilter{SiteLocation: strPtr("Uptown")})
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, repo.Delete(ctx, older.ID))
	_, err = repo.GetByID(ctx, older.ID)
	assert.ErrorIs(t, err, wage.ErrPaymentNotFound)
}

func TestTransactorAndTokenRepository(t *testing.T) {
	db := sqlitetest.NewDB(t)
	ctx := context.Background()
	profiles := sqlite.NewProfileRepository(db)
	tokens := sqlite.NewTokenRepository(db)
	tx := sqlite.NewTransactor(db)

	boom := errors.New("boom")
	err := tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if _, err := profiles.Create(txCtx, user.Profile{ID: newID(t), Name: "Rolled", Email: "rolled@example.com", Role: user.RoleAdmin}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	_, err = profiles.GetByEmail(ctx, "rolled@example.com")
	assert.ErrorIs(t, err, user.ErrProfileNotFound)

	owner := newID(t)
	require.NoError(t, tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if _, err := profiles.Create(txCtx, user.Profile{ID: owner, Name: "Admin", Email: "admin@example.com", Role: user.RoleAdmin}); err != nil {
			return err
		}
		return tokens.CreateRefreshToken(txCtx, owner, "refresh-token", 4102444800, auth.SessionTrackingRequest{UserAgent: "test", IPAddress: "127.0.0.1"})
	}))

	userID, revoked, err := tokens.IsRefreshTokenRevoked(ctx, "refresh-token")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Equal(t, owner, userID)

	require.NoError(t, tokens.RevokeRefreshToken(ctx, "refresh-token"))
	_, revoked, err = tokens.IsRefreshTokenRevoked(ctx, "refresh-token")
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, tokens.CreateRefreshToken(ctx, owner, "expired-token", 946684800, auth.SessionTrackingRequest{}))
	_, revoked, err = tokens.IsRefreshTokenRevoked(ctx, "expired-token")
	require.NoError(t, err)
	assert.True(t, revoked)

	_, revoked, err = tokens.IsRefreshTokenRevoked(ctx, "never-issued")
	require.NoError(t, err)
	assert.True(t, revoked)
}
