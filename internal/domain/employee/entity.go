package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a site worker paid by the day.
type Employee struct {
	ID           string
	EmployeeCode string
	Name         string
	JobCategory  string
	DailyWage    decimal.Decimal
	SiteLocation string
	AddedBy      string
	CreatedAt    time.Time
}
