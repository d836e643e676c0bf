package attendance

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/repository/sqlite"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/repository/sqlite/sqlitetest"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc       *AttendanceServiceImpl
	employees employee.EmployeeRepository
	profiles  user.ProfileRepository
}

func newFixture(t *testing.T) fixture {
	db := sqlitetest.NewDB(t)
	f := fixture{
		employees: sqlite.NewEmployeeRepository(db),
		profiles:  sqlite.NewProfileRepository(db),
	}
	f.svc = NewAttendanceService(sqlite.NewAttendanceRepository(db), f.employees, f.profiles).(*AttendanceServiceImpl)
	f.svc.today = func() string { return "2024-01-15" }
	return f
}

func newID(t *testing.T) string {
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return id.String()
}

func (f fixture) seedSupervisor(t *testing.T, email, site string) user.Scope {
	p, err := f.profiles.Create(context.Background(), user.Profile{
		ID: newID(t), Name: "Supervisor " + site, Email: email, Role: user.RoleSupervisor, SiteLocation: &site,
	})
	require.NoError(t, err)
	return p.Scope()
}

func (f fixture) seedEmployee(t *testing.T, code, site string) employee.Employee {
	emp, err := f.employees.Create(context.Background(), employee.Employee{
		ID: newID(t), EmployeeCode: code, Name: "Worker " + code, JobCategory: "Helper",
		DailyWage: decimal.NewFromInt(400), SiteLocation: site, AddedBy: newID(t),
	})
	require.NoError(t, err)
	return emp
}

func TestAttendanceService_MarkDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sup := f.seedSupervisor(t, "sup@example.com", "Downtown")
	emp := f.seedEmployee(t, "EMP001", "Downtown")

	resp, err := f.svc.MarkAttendance(ctx, sup, attendance.MarkAttendanceRequest{EmployeeID: emp.ID})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", resp.Date)
	assert.Equal(t, "full", resp.AttendanceType)
	assert.Equal(t, "Full Day", resp.TypeLabel)
	assert.Equal(t, "9:00 AM - 5:00 PM", resp.TimeWindow)
	assert.Equal(t, "EMP001", resp.EmployeeCode)
	assert.Equal(t, "Supervisor Downtown", resp.MarkedByName)
}

func TestAttendanceService_DuplicateRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sup := f.seedSupervisor(t, "sup@example.com", "Downtown")
	emp := f.seedEmployee(t, "EMP001", "Downtown")

	_, err := f.svc.MarkAttendance(ctx, sup, attendance.MarkAttendanceRequest{EmployeeID: emp.ID, Date: "2024-01-01", AttendanceType: "half"})
	require.NoError(t, err)

	_, err = f.svc.MarkAttendance(ctx, sup, attendance.MarkAttendanceRequest{EmployeeID: emp.ID, Date: "2024-01-01", AttendanceType: "1.5"})
	assert.ErrorIs(t, err, attendance.ErrAttendanceAlreadyMarked)

	list, err := f.svc.ListByDate(ctx, sup, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, list.Records, 1)
	assert.Equal(t, "half", list.Records[0].AttendanceType)
}

// countingRepository records how many inserts reach the store.
type countingRepository struct {
	attendance.AttendanceRepository
	creates int
}

func (r *countingRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	r.creates++
	return r.AttendanceRepository.Create(ctx, record)
}

func TestAttendanceService_DuplicateCheckedBeforeInsert(t *testing.T) {
	db := sqlitetest.NewDB(t)
	ctx := context.Background()
	repo := &countingRepository{AttendanceRepository: sqlite.NewAttendanceRepository(db)}
	f := fixture{
		employees: sqlite.NewEmployeeRepository(db),
		profiles:  sqlite.NewProfileRepository(db),
	}
	f.svc = NewAttendanceService(repo, f.employees, f.profiles).(*AttendanceServiceImpl)

	sup := f.seedSupervisor(t, "sup@example.com", "Downtown")
	emp := f.seedEmployee(t, "EMP001", "Downtown")

	_, err := f.svc.MarkAttendance(ctx, sup, attendance.MarkAttendanceRequest{EmployeeID: emp.ID, Date: "2024-01-01"})
	require.NoError(t, err)
	require.Equal(t, 1, repo.creates)

	_, err = f.svc.MarkAttendance(ctx, sup, attendance.MarkAttendanceRequest{EmployeeID: emp.ID, Date: "2024-01-01", AttendanceType: "half"})
	assert.ErrorIs(t, err, attendance.ErrAttendanceAlreadyMarked)
	assert.Equal(t, 1, repo.creates, "duplicate must be rejected without an insert")
}

func TestAttendanceService_Scope(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	downtown := f.seedSupervisor(t, "down@example.com", "Downtown")
	uptown := f.seedSupervisor(t, "up@example.com", "Uptown")
	admin := user.NewScope(newID(t), user.RoleAdmin, nil)

	downtownEmp := f.seedEmployee(t, "EMP001", "Downtown")
	uptownEmp := f.seedEmployee(t, "EMP002", "Uptown")

	_, err := f.svc.MarkAttendance(ctx, uptown, attendance.MarkAttendanceRequest{EmployeeID: downtownEmp.ID})
	assert.ErrorIs(t, err, user.ErrOutOfScope)

	_, err = f.svc.MarkAttendance(ctx, downtown, attendance.MarkAttendanceRequest{EmployeeID: downtownEmp.ID})
	require.NoError(t, err)
	_, err = f.svc.MarkAttendance(ctx, admin, attendance.MarkAttendanceRequest{EmployeeID: uptownEmp.ID})
	require.NoError(t, err)

	own, err := f.svc.ListByDate(ctx, downtown, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", own.Date)
	assert.EqualValues(t, 1, own.TotalCount)

	// marked by an id with no profile
	all, err := f.svc.ListByDate(ctx, admin, "2024-01-15")
	require.NoError(t, err)
	require.Len(t, all.Records, 2)
	assert.Equal(t, "System", all.Records[1].MarkedByName)

	_, err = f.svc.ListByDate(ctx, admin, "15-01-2024")
	assert.Error(t, err)

	_, err = f.svc.MarkAttendance(ctx, admin, attendance.MarkAttendanceRequest{EmployeeID: newID(t)})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sup := f.seedSupervisor(t, "sup@example.com", "Downtown")
	admin := user.NewScope(newID(t), user.RoleAdmin, nil)
	emp := f.seedEmployee(t, "EMP001", "Downtown")

	rec, err := f.svc.MarkAttendance(ctx, sup, attendance.MarkAttendanceRequest{EmployeeID: emp.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.DeleteAttendance(ctx, sup, rec.ID), user.ErrAdminPrivilegeRequired)
	require.NoError(t, f.svc.DeleteAttendance(ctx, admin, rec.ID))
	assert.ErrorIs(t, f.svc.DeleteAttendance(ctx, admin, rec.ID), attendance.ErrAttendanceNotFound)

	// deleted records free the day again
	_, err = f.svc.MarkAttendance(ctx, sup, attendance.MarkAttendanceRequest{EmployeeID: emp.ID})
	assert.NoError(t, err)
}
