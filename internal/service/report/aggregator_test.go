package report

import (
	"testing"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

var (
	adminScope    = user.NewScope("admin-1", user.RoleAdmin, nil)
	downtownScope = user.NewScope("sup-1", user.RoleSupervisor, strPtr("Downtown"))
)

func fixtures() ([]employee.Employee, []attendance.Record) {
	employees := []employee.Employee{
		{ID: "e1", EmployeeCode: "EMP001", Name: "Ravi", JobCategory: "Mason", SiteLocation: "Downtown", DailyWage: decimal.NewFromInt(500)},
		{ID: "e2", EmployeeCode: "EMP002", Name: "Asha", JobCategory: "Helper", SiteLocation: "Uptown", DailyWage: decimal.NewFromInt(400)},
		{ID: "e3", EmployeeCode: "EMP003", Name: "Kiran", JobCategory: "Carpenter", SiteLocation: "Downtown", DailyWage: decimal.NewFromInt(600)},
	}
	records := []attendance.Record{
		{ID: "r5", EmployeeID: "e3", Date: "2024-01-02", AttendanceType: attendance.TypeOneAndHalf},
		{ID: "r1", EmployeeID: "e1", Date: "2024-01-01", AttendanceType: attendance.TypeFull},
		{ID: "r2", EmployeeID: "e1", Date: "2024-01-02", AttendanceType: attendance.TypeHalf},
		{ID: "r3", EmployeeID: "e2", Date: "2024-01-01", AttendanceType: attendance.TypeFull},
		{ID: "r4", EmployeeID: "ghost", Date: "2024-01-03", AttendanceType: attendance.TypeFull},
	}
	return employees, records
}

func TestBuild_AdminAll(t *testing.T) {
	employees, records := fixtures()
	rows, agg := Build(adminScope, report.Filter{Mode: report.ModeAll}, records, employees)

	require.Len(t, rows, 5)
	assert.Equal(t, []string{"r1", "r3", "r2", "r5", "r4"}, recordIDs(rows))
	assert.Equal(t, 5, agg.TotalRecords)
	// 500 + 400 + 250 + 900 + 0
	assert.True(t, agg.TotalWages.Equal(decimal.NewFromInt(2050)), agg.TotalWages.String())
	assert.Equal(t, 4, agg.UniqueEmployees) // three codes plus Unknown
	assert.Equal(t, 3, agg.UniqueSites)     // Downtown, Uptown, Unknown
}

func TestBuild_OrphanRow(t *testing.T) {
	employees, records := fixtures()
	rows, _ := Build(adminScope, report.Filter{Mode: report.ModeEmployee, EmployeeID: "ghost"}, records, employees)

	require.Len(t, rows, 1)
	r := rows[0]
	assert.Equal(t, "Unknown", r.EmployeeName)
	assert.Equal(t, "Unknown", r.EmployeeCode)
	assert.Equal(t, "Unknown", r.JobCategory)
	assert.Equal(t, "Unknown", r.SiteLocation)
	assert.True(t, r.DailyWage.IsZero())
	assert.True(t, r.CalculatedWage.IsZero())
}

func TestFilterRecords_DateRangeNeedsBothBounds(t *testing.T) {
	employees, records := fixtures()

	both := FilterRecords(adminScope, report.Filter{Mode: report.ModeAll, StartDate: "2024-01-02", EndDate: "2024-01-02"}, records, employees)
	assert.Len(t, both, 2)

	startOnly := FilterRecords(adminScope, report.Filter{Mode: report.ModeAll, StartDate: "2024-01-02"}, records, employees)
	assert.Len(t, startOnly, 5)
}

func TestFilterRecords_EmptySelectorDoesNotFilter(t *testing.T) {
	employees, records := fixtures()
	assert.Len(t, FilterRecords(adminScope, report.Filter{Mode: report.ModeEmployee}, records, employees), 5)
	assert.Len(t, FilterRecords(adminScope, report.Filter{Mode: report.ModeSite}, records, employees), 5)
}

func TestFilterRecords_SiteMode(t *testing.T) {
	employees, records := fixtures()
	got := FilterRecords(adminScope, report.Filter{Mode: report.ModeSite, Site: "Downtown"}, records, employees)
	assert.ElementsMatch(t, []string{"r1", "r2", "r5"}, ids(got))
}

func TestFilterRecords_SupervisorAlwaysScoped(t *testing.T) {
	employees, records := fixtures()

	all := FilterRecords(downtownScope, report.Filter{Mode: report.ModeAll}, records, employees)
	assert.ElementsMatch(t, []string{"r1", "r2", "r5"}, ids(all), "orphans and other sites are hidden")

	uptown := FilterRecords(downtownScope, report.Filter{Mode: report.ModeSite, Site: "Uptown"}, records, employees)
	assert.Empty(t, uptown)

	otherEmployee := FilterRecords(downtownScope, report.Filter{Mode: report.ModeEmployee, EmployeeID: "e2"}, records, employees)
	assert.Empty(t, otherEmployee)

	noSite := user.NewScope("sup-2", user.RoleSupervisor, nil)
	assert.Empty(t, FilterRecords(noSite, report.Filter{Mode: report.ModeAll}, records, employees))
}

func TestBuild_Idempotent(t *testing.T) {
	employees, records := fixtures()
	filter := report.Filter{Mode: report.ModeAll, StartDate: "2024-01-01", EndDate: "2024-01-31"}

	rows1, agg1 := Build(adminScope, filter, records, employees)
	rows2, agg2 := Build(adminScope, filter, records, employees)
	assert.Equal(t, rows1, rows2)
	assert.Equal(t, agg1, agg2)
}

func TestAggregate_Empty(t *testing.T) {
	agg := Aggregate(nil)
	assert.Equal(t, 0, agg.TotalRecords)
	assert.True(t, agg.TotalWages.IsZero())
	assert.Equal(t, 0, agg.UniqueEmployees)
	assert.Equal(t, 0, agg.UniqueSites)
}

func ids(records []attendance.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func recordIDs(rows []report.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.RecordID
	}
	return out
}
