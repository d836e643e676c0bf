package wage

import (
	"sort"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/wage"
	"github.com/shopspring/decimal"
)

// DayEntry is the wage earned on one attended day.
type DayEntry struct {
	Date           string
	AttendanceType attendance.Type
	Wage           decimal.Decimal
}

type PeriodWage struct {
	TotalWage  decimal.Decimal
	DaysWorked int
	Breakdown  []DayEntry
}

// DayWage is the daily wage scaled by the attendance multiplier. The result is
// not rounded.
func DayWage(dailyWage decimal.Decimal, attendanceType attendance.Type) decimal.Decimal {
	return dailyWage.Mul(attendanceType.Multiplier())
}

func inPeriod(date, startDate, endDate string) bool {
	// YYYY-MM-DD strings order the same as the dates they encode
	return date >= startDate && date <= endDate
}

// TotalWageForPeriod sums the day wages of emp's records dated within
// [startDate, endDate]. Records of other employees are ignored.
func TotalWageForPeriod(emp employee.Employee, records []attendance.Record, startDate, endDate string) PeriodWage {
	result := PeriodWage{TotalWage: decimal.Zero, Breakdown: []DayEntry{}}
	for _, r := range records {
		if r.EmployeeID != emp.ID || !inPeriod(r.Date, startDate, endDate) {
			continue
		}
		dayWage := DayWage(emp.DailyWage, r.AttendanceType)
		result.TotalWage = result.TotalWage.Add(dayWage)
		result.DaysWorked++
		result.Breakdown = append(result.Breakdown, DayEntry{
			Date:           r.Date,
			AttendanceType: r.AttendanceType,
			Wage:           dayWage,
		})
	}
	sort.SliceStable(result.Breakdown, func(i, j int) bool {
		return result.Breakdown[i].Date < result.Breakdown[j].Date
	})
	return result
}

// TotalAdvances sums the advances paid to employeeID. With ScopingSamePeriod
// only advances dated within [startDate, endDate] count; otherwise every
// advance does.
func TotalAdvances(employeeID string, payments []wage.Payment, scoping wage.AdvanceScoping, startDate, endDate string) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.EmployeeID != employeeID {
			continue
		}
		if scoping == wage.ScopingSamePeriod && !inPeriod(p.Date, startDate, endDate) {
			continue
		}
		total = total.Add(p.AdvanceAmount)
	}
	return total
}

// Remaining is what is still owed; negative when advances exceed wages.
func Remaining(totalWage, totalAdvances decimal.Decimal) decimal.Decimal {
	return totalWage.Sub(totalAdvances)
}
