package report

import (
	"time"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// Mode selects which attendance records a report covers.
type Mode string

const (
	ModeAll      Mode = "all"
	ModeEmployee Mode = "employee"
	ModeSite     Mode = "site"
)

func (m Mode) IsValid() bool {
	return m == ModeAll || m == ModeEmployee || m == ModeSite
}

// UnknownValue fills row fields whose employee no longer exists.
const UnknownValue = "Unknown"

// Row is one attendance record joined to its employee.
type Row struct {
	RecordID       string
	EmployeeID     string
	EmployeeName   string
	EmployeeCode   string
	JobCategory    string
	SiteLocation   string
	Date           string
	AttendanceType attendance.Type
	DailyWage      decimal.Decimal
	CalculatedWage decimal.Decimal
}

type Aggregates struct {
	TotalRecords    int
	TotalWages      decimal.Decimal
	UniqueEmployees int // distinct employee codes, "Unknown" counts once
	UniqueSites     int
}

type Report struct {
	Filter      Filter
	Rows        []Row
	Aggregates  Aggregates
	GeneratedAt time.Time
}
