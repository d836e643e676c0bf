package report

import (
	"sort"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/service/wage"
	"github.com/shopspring/decimal"
)

// FilterRecords applies, in order: the date range (only when both bounds are
// set), the filter mode, and the caller's site restriction. Supervisors are
// always narrowed to employees at their own site, whatever the filter says.
func FilterRecords(scope user.Scope, filter report.Filter, records []attendance.Record, employees []employee.Employee) []attendance.Record {
	filtered := records

	if filter.HasDateRange() {
		filtered = keep(filtered, func(r attendance.Record) bool {
			return r.Date >= filter.StartDate && r.Date <= filter.EndDate
		})
	}

	switch {
	case filter.Mode == report.ModeEmployee && filter.EmployeeID != "":
		filtered = keep(filtered, func(r attendance.Record) bool {
			return r.EmployeeID == filter.EmployeeID
		})
	case filter.Mode == report.ModeSite && filter.Site != "":
		siteEmployees := employeeIDs(employees, func(e employee.Employee) bool {
			return e.SiteLocation == filter.Site
		})
		filtered = keep(filtered, func(r attendance.Record) bool {
			return siteEmployees[r.EmployeeID]
		})
	}

	if !scope.CanSeeAllSites() {
		ownEmployees := employeeIDs(employees, func(e employee.Employee) bool {
			return scope.Allows(e.SiteLocation)
		})
		filtered = keep(filtered, func(r attendance.Record) bool {
			return ownEmployees[r.EmployeeID]
		})
	}

	return filtered
}

// BuildRows joins records to their employees. A record whose employee is gone
// gets Unknown text fields and zero wages. Rows are ordered by date, employee
// code and record id.
func BuildRows(records []attendance.Record, employees []employee.Employee) []report.Row {
	byID := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	rows := make([]report.Row, 0, len(records))
	for _, r := range records {
		row := report.Row{
			RecordID:       r.ID,
			EmployeeID:     r.EmployeeID,
			EmployeeName:   report.UnknownValue,
			EmployeeCode:   report.UnknownValue,
			JobCategory:    report.UnknownValue,
			SiteLocation:   report.UnknownValue,
			Date:           r.Date,
			AttendanceType: r.AttendanceType,
			DailyWage:      decimal.Zero,
			CalculatedWage: decimal.Zero,
		}
		if e, ok := byID[r.EmployeeID]; ok {
			row.EmployeeName = e.Name
			row.EmployeeCode = e.EmployeeCode
			row.JobCategory = e.JobCategory
			row.SiteLocation = e.SiteLocation
			row.DailyWage = e.DailyWage
			row.CalculatedWage = wage.DayWage(e.DailyWage, r.AttendanceType)
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		if rows[i].EmployeeCode != rows[j].EmployeeCode {
			return rows[i].EmployeeCode < rows[j].EmployeeCode
		}
		return rows[i].RecordID < rows[j].RecordID
	})
	return rows
}

// Aggregate summarizes rows. Employees are counted by code and sites by
// location, so orphaned rows contribute one "Unknown" to each.
func Aggregate(rows []report.Row) report.Aggregates {
	agg := report.Aggregates{TotalRecords: len(rows), TotalWages: decimal.Zero}
	codes := make(map[string]struct{})
	sites := make(map[string]struct{})
	for _, r := range rows {
		agg.TotalWages = agg.TotalWages.Add(r.CalculatedWage)
		codes[r.EmployeeCode] = struct{}{}
		sites[r.SiteLocation] = struct{}{}
	}
	agg.UniqueEmployees = len(codes)
	agg.UniqueSites = len(sites)
	return agg
}

// Build runs the whole pipeline.
func Build(scope user.Scope, filter report.Filter, records []attendance.Record, employees []employee.Employee) ([]report.Row, report.Aggregates) {
	rows := BuildRows(FilterRecords(scope, filter, records, employees), employees)
	return rows, Aggregate(rows)
}

func keep(records []attendance.Record, pred func(attendance.Record) bool) []attendance.Record {
	out := make([]attendance.Record, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

func employeeIDs(employees []employee.Employee, pred func(employee.Employee) bool) map[string]bool {
	ids := make(map[string]bool)
	for _, e := range employees {
		if pred(e) {
			ids[e.ID] = true
		}
	}
	return ids
}
